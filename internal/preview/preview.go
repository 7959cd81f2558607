// Package preview highlights source code in the terminal with the colors
// a generated theme would give it in the editor.
package preview

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/charmbracelet/colorprofile"
	"github.com/slimy-theme/slimy/internal/theme"
)

//go:embed samples/*
var samplesFS embed.FS

// scopes maps chroma token types to the TextMate scope whose style they
// take. Types not listed inherit from their parent type.
var scopes = []struct {
	token chroma.TokenType
	scope string
}{
	{chroma.Comment, "comment.line"},
	{chroma.CommentPreproc, "meta.preprocessor"},
	{chroma.Keyword, "keyword.control"},
	{chroma.KeywordConstant, "constant.language"},
	{chroma.KeywordDeclaration, "storage.type"},
	{chroma.KeywordNamespace, "keyword.control.import"},
	{chroma.KeywordType, "storage.type"},
	{chroma.Name, "variable"},
	{chroma.NameAttribute, "entity.other.attribute-name"},
	{chroma.NameBuiltin, "support.function"},
	{chroma.NameClass, "entity.name.type.class"},
	{chroma.NameConstant, "variable.other.constant"},
	{chroma.NameDecorator, "meta.decorator"},
	{chroma.NameFunction, "entity.name.function"},
	{chroma.NameProperty, "variable.other.property"},
	{chroma.NameTag, "entity.name.tag"},
	{chroma.NameVariable, "variable.other"},
	{chroma.LiteralString, "string.quoted"},
	{chroma.LiteralStringEscape, "constant.character.escape"},
	{chroma.LiteralStringRegex, "string.regexp"},
	{chroma.LiteralNumber, "constant.numeric"},
	{chroma.Operator, "keyword.operator"},
	{chroma.Punctuation, "punctuation"},
	{chroma.GenericDeleted, "markup.deleted"},
	{chroma.GenericEmph, "markup.italic"},
	{chroma.GenericHeading, "markup.heading"},
	{chroma.GenericInserted, "markup.inserted"},
	{chroma.GenericStrong, "markup.bold"},
}

// Style converts doc into a chroma style named after the theme.
func Style(doc theme.ColorTheme) (*chroma.Style, error) {
	entries := chroma.StyleEntries{}

	bg, _ := doc.Colors.Get("editor.background")
	fg, _ := doc.Colors.Get("editor.foreground")
	entries[chroma.Background] = strings.TrimSpace(opaque(fg) + " bg:" + opaque(bg))

	for _, s := range scopes {
		if entry := styleEntry(Resolve(doc.TokenColors, s.scope)); entry != "" {
			entries[s.token] = entry
		}
	}

	return chroma.NewStyle(doc.Name, entries)
}

func styleEntry(r Resolved) string {
	var parts []string
	if strings.Contains(r.FontStyle, "italic") {
		parts = append(parts, "italic")
	} else {
		parts = append(parts, "noitalic")
	}
	if strings.Contains(r.FontStyle, "bold") {
		parts = append(parts, "bold")
	}
	if strings.Contains(r.FontStyle, "underline") {
		parts = append(parts, "underline")
	}
	if r.Foreground != "" {
		parts = append(parts, opaque(r.Foreground))
	}
	return strings.Join(parts, " ")
}

// opaque drops the alpha digits chroma cannot parse.
func opaque(hex string) string {
	if len(hex) == 9 {
		return hex[:7]
	}
	return hex
}

// FormatterName maps a terminal color profile to a chroma formatter name.
func FormatterName(profile colorprofile.Profile) string {
	switch profile {
	case colorprofile.TrueColor:
		return "terminal16m"
	case colorprofile.ANSI256:
		return "terminal256"
	case colorprofile.ANSI:
		return "terminal16"
	case colorprofile.NoTTY, colorprofile.Ascii:
		return "noop"
	default:
		return "terminal"
	}
}

// Formatter is the chroma formatter for profile.
func Formatter(profile colorprofile.Profile) chroma.Formatter {
	return formatters.Get(FormatterName(profile))
}

// Render highlights source, picking the lexer from filename or, failing
// that, from the content.
func Render(w io.Writer, doc theme.ColorTheme, filename, source string, formatter chroma.Formatter) error {
	style, err := Style(doc)
	if err != nil {
		return fmt.Errorf("build style: %w", err)
	}

	lexer := lexers.Match(filename)
	if lexer == nil {
		lexer = lexers.Analyse(source)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, source)
	if err != nil {
		return fmt.Errorf("tokenise %s: %w", filename, err)
	}
	return formatter.Format(w, style, iterator)
}

// sampleSuffix keeps the bundled sources out of the Go build.
const sampleSuffix = ".txt"

// Samples lists the bundled sample file names, e.g. "example.go".
func Samples() []string {
	entries, err := fs.ReadDir(samplesFS, "samples")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), sampleSuffix))
	}
	sort.Strings(names)
	return names
}

// Sample returns a bundled sample by the name Samples reports.
func Sample(name string) (string, error) {
	data, err := samplesFS.ReadFile(path.Join("samples", name+sampleSuffix))
	if err != nil {
		return "", fmt.Errorf("unknown sample %q (have: %s)", name, strings.Join(Samples(), ", "))
	}
	return string(data), nil
}
