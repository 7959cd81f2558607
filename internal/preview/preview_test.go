package preview

import (
	"bytes"
	"strings"
	"testing"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/charmbracelet/colorprofile"
	"github.com/slimy-theme/slimy/internal/scheme"
	"github.com/slimy-theme/slimy/internal/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(s string) *string { return &s }

func buildDoc(t *testing.T, id string, italics bool) theme.ColorTheme {
	t.Helper()
	s, v, err := scheme.Builtin().Lookup(id)
	require.NoError(t, err)
	return theme.Build(s, v, italics)
}

func TestResolve(t *testing.T) {
	tokens := []theme.TokenColor{
		{Settings: theme.TokenSettings{Foreground: "#eeeeee", Background: "#111111"}},
		{Scope: []string{"keyword"}, Settings: theme.TokenSettings{Foreground: "#aa0000"}},
		{Scope: "keyword.control, storage", Settings: theme.TokenSettings{Foreground: "#00aa00", FontStyle: ptr("italic")}},
		{Scope: []string{"keyword"}, Settings: theme.TokenSettings{FontStyle: ptr("")}},
		{Scope: []string{"source.go keyword.control.flow"}, Settings: theme.TokenSettings{Foreground: "#0000aa"}},
		{Scope: []string{"keyword.control.flow"}, Settings: theme.TokenSettings{Foreground: "#123456"}},
		{Scope: []string{"keyword.control.flow"}, Settings: theme.TokenSettings{Foreground: "#654321"}},
		{Scope: []interface{}{"comment", 3}, Settings: theme.TokenSettings{Foreground: "#999999", FontStyle: ptr("bold")}},
	}

	tests := []struct {
		scope    string
		expected Resolved
	}{
		{scope: "variable", expected: Resolved{Foreground: "#eeeeee", Background: "#111111"}},
		{scope: "keyword.operator", expected: Resolved{Foreground: "#aa0000", Background: "#111111", FontStyle: ""}},
		{scope: "keyword.control", expected: Resolved{Foreground: "#00aa00", Background: "#111111", FontStyle: "italic"}},
		{scope: "keyword.control.flow.go", expected: Resolved{Foreground: "#654321", Background: "#111111", FontStyle: "italic"}},
		{scope: "storage.type", expected: Resolved{Foreground: "#00aa00", Background: "#111111", FontStyle: "italic"}},
		{scope: "keywords", expected: Resolved{Foreground: "#eeeeee", Background: "#111111"}},
		{scope: "comment.line", expected: Resolved{Foreground: "#999999", Background: "#111111", FontStyle: "bold"}},
	}

	for _, tt := range tests {
		t.Run(tt.scope, func(t *testing.T) {
			assert.Equal(t, tt.expected, Resolve(tokens, tt.scope))
		})
	}
}

func TestResolveBuiltTheme(t *testing.T) {
	doc := buildDoc(t, "dark", true)

	var rule theme.TokenColor
	for _, tc := range doc.TokenColors {
		if tc.Name == "Keyword control" {
			rule = tc
		}
	}
	require.NotEmpty(t, rule.Settings.Foreground)

	r := Resolve(doc.TokenColors, "keyword.control")
	assert.Equal(t, rule.Settings.Foreground, r.Foreground)
	assert.Equal(t, "italic", r.FontStyle)

	bg, _ := doc.Colors.Get("editor.background")
	assert.Equal(t, bg, r.Background)

	plain := Resolve(buildDoc(t, "dark", false).TokenColors, "keyword.control")
	assert.Equal(t, "", plain.FontStyle)
	assert.Equal(t, r.Foreground, plain.Foreground)
}

func TestStyle(t *testing.T) {
	doc := buildDoc(t, "light", true)

	style, err := Style(doc)
	require.NoError(t, err)
	assert.Equal(t, doc.Name, style.Name)

	bg, _ := doc.Colors.Get("editor.background")
	assert.Equal(t, bg, style.Get(chroma.Background).Background.String())

	keyword := Resolve(doc.TokenColors, "keyword.control")
	entry := style.Get(chroma.Keyword)
	assert.Equal(t, opaque(keyword.Foreground), entry.Colour.String())
	assert.Equal(t, chroma.Yes, entry.Italic)

	noItalics, err := Style(buildDoc(t, "light", false))
	require.NoError(t, err)
	assert.NotEqual(t, chroma.Yes, noItalics.Get(chroma.Keyword).Italic)
}

func TestStyleEntry(t *testing.T) {
	assert.Equal(t, "noitalic", styleEntry(Resolved{}))
	assert.Equal(t, "italic bold #112233", styleEntry(Resolved{Foreground: "#11223380", FontStyle: "bold italic"}))
	assert.Equal(t, "noitalic underline #112233", styleEntry(Resolved{Foreground: "#112233", FontStyle: "underline"}))
}

func TestRender(t *testing.T) {
	doc := buildDoc(t, "dark", true)
	source, err := Sample("example.go")
	require.NoError(t, err)

	var plain bytes.Buffer
	require.NoError(t, Render(&plain, doc, "example.go", source, formatters.NoOp))
	assert.Equal(t, source, plain.String())

	var colored bytes.Buffer
	require.NoError(t, Render(&colored, doc, "example.go", source, formatters.TTY16m))
	assert.Contains(t, colored.String(), "\x1b[")
	assert.Contains(t, colored.String(), "Reserve")
}

func TestRenderUnknownLanguage(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Render(&out, buildDoc(t, "dark", true), "notes.unknown-ext", "just words\n", formatters.NoOp))
	assert.Equal(t, "just words\n", out.String())
}

func TestSamples(t *testing.T) {
	names := Samples()
	assert.Equal(t, []string{"example.css", "example.go", "example.py", "example.rs", "example.ts"}, names)

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			source, err := Sample(name)
			require.NoError(t, err)
			assert.NotEmpty(t, strings.TrimSpace(source))
			assert.NotNil(t, lexers.Match(name), "no lexer for %s", name)
		})
	}

	_, err := Sample("example.cobol")
	assert.Error(t, err)
}

func TestFormatter(t *testing.T) {
	tests := []struct {
		profile  colorprofile.Profile
		expected string
	}{
		{colorprofile.TrueColor, "terminal16m"},
		{colorprofile.ANSI256, "terminal256"},
		{colorprofile.ANSI, "terminal16"},
		{colorprofile.Ascii, "noop"},
		{colorprofile.NoTTY, "noop"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatterName(tt.profile))
		assert.NotNil(t, Formatter(tt.profile))
	}
}
