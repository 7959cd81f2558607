package scheme

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThemeType(t *testing.T) {
	tests := []struct {
		id       string
		expected Type
	}{
		{"dark", Dark},
		{"darkContrast", Dark},
		{"light", Light},
		{"LightContrast", Light},
		{"twilight", Light},
		{"", Dark},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			assert.Equal(t, tt.expected, ThemeType(tt.id))
		})
	}
}

func TestIsHighContrast(t *testing.T) {
	assert.True(t, IsHighContrast("darkContrast"))
	assert.True(t, IsHighContrast("CONTRAST"))
	assert.False(t, IsHighContrast("dark"))
	assert.False(t, IsHighContrast("light"))
}

func TestParseVariant(t *testing.T) {
	v := ParseVariant("darkContrast")
	assert.Equal(t, Variant{ID: "darkContrast", Type: Dark, HighContrast: true}, v)
	assert.True(t, v.IsDark())
	assert.Equal(t, "darkContrast", v.String())

	v = ParseVariant("light")
	assert.Equal(t, Light, v.Type)
	assert.False(t, v.HighContrast)
	assert.False(t, v.IsDark())
}

func TestBuiltin(t *testing.T) {
	r := Builtin()

	var ids []string
	for _, v := range r.Variants() {
		ids = append(ids, v.ID)
	}
	assert.Equal(t, []string{"dark", "darkContrast", "light"}, ids)

	for _, id := range BuiltinIDs {
		s, v, err := r.Lookup(id)
		require.NoError(t, err)
		assert.Equal(t, id, v.ID)
		assert.NoError(t, s.Validate())
	}

	dark, _, err := r.Lookup("dark")
	require.NoError(t, err)
	assert.Nil(t, dark.UI.Panel.Border)
	assert.NotNil(t, dark.UI.Popover.Border)
	assert.False(t, dark.Common.Bg.IsLight())

	light, _, err := r.Lookup("light")
	require.NoError(t, err)
	assert.True(t, light.Common.Bg.IsLight())
}

func TestBuiltinIsFresh(t *testing.T) {
	sa, _, err := Builtin().Lookup("dark")
	require.NoError(t, err)
	sb, _, err := Builtin().Lookup("dark")
	require.NoError(t, err)

	assert.NotSame(t, sa, sb)
	assert.Equal(t, sa.Common.Bg.Hex(), sb.Common.Bg.Hex())
}

func TestLookupUnknown(t *testing.T) {
	_, _, err := Builtin().Lookup("sepia")
	assert.ErrorIs(t, err, ErrUnknownVariant)
	assert.Contains(t, err.Error(), "sepia")
}

func TestLoadSingle(t *testing.T) {
	r, err := Load(strings.NewReader(validScheme), "forest")
	require.NoError(t, err)
	require.Equal(t, 1, r.Len())

	s, v, err := r.Lookup("forest")
	require.NoError(t, err)
	assert.Equal(t, Dark, v.Type)
	assert.Equal(t, "#101010", s.Common.Bg.Hex())
}

func TestLoadMultiple(t *testing.T) {
	doc := "schemes:\n  mossLight:\n" + indent(validScheme, "    ") + "  moss:\n" + indent(validScheme, "    ")

	r, err := Load(strings.NewReader(doc), "ignored")
	require.NoError(t, err)

	variants := r.Variants()
	require.Len(t, variants, 2)
	assert.Equal(t, "mossLight", variants[0].ID)
	assert.Equal(t, Light, variants[0].Type)
	assert.Equal(t, "moss", variants[1].ID)
}

func TestLoadMissingSlots(t *testing.T) {
	doc := strings.Replace(validScheme, "  accent: \"#40c040\"\n", "", 1)
	doc = strings.Replace(doc, "  orange: \"#e08040\"\n", "", 1)

	_, err := Load(strings.NewReader(doc), "broken")
	require.ErrorIs(t, err, ErrMissingColor)
	assert.Contains(t, err.Error(), "common.accent")
	assert.Contains(t, err.Error(), "chalk.orange")
	assert.NotContains(t, err.Error(), "ui.panel.border")
}

func TestLoadRejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "bad hex", doc: strings.Replace(validScheme, "#101010", "#10101g", 1)},
		{name: "unknown slot", doc: validScheme + "extra:\n  thing: \"#000000\"\n"},
		{name: "schemes not a mapping", doc: "schemes:\n  - dark\n"},
		{name: "empty", doc: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.doc), "x")
			assert.Error(t, err)
		})
	}
}

func TestLoadFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/palettes/swampContrast.yaml", []byte(validScheme), 0o644))

	r, err := LoadFile(fs, "/palettes/swampContrast.yaml")
	require.NoError(t, err)

	_, v, err := r.Lookup("swampContrast")
	require.NoError(t, err)
	assert.True(t, v.HighContrast)

	_, err = LoadFile(fs, "/palettes/missing.yaml")
	assert.Error(t, err)
}

func TestMerge(t *testing.T) {
	r := Builtin()
	extra := mustRegistry(t, "bog")
	require.NoError(t, extra.Add("light", mustLoadOne(t, validScheme)))

	r.Merge(extra)

	var ids []string
	for _, v := range r.Variants() {
		ids = append(ids, v.ID)
	}
	assert.Equal(t, []string{"dark", "darkContrast", "light", "bog"}, ids)

	light, _, err := r.Lookup("light")
	require.NoError(t, err)
	assert.Equal(t, "#101010", light.Common.Bg.Hex())
}

func TestEncodeRoundTrip(t *testing.T) {
	r := Builtin()
	r.Merge(mustRegistry(t, "bog"))

	var buf bytes.Buffer
	require.NoError(t, r.Encode(&buf, "light", "bog"))
	assert.True(t, strings.HasPrefix(buf.String(), "schemes:\n  light:\n"))
	assert.NotContains(t, buf.String(), "border: null")

	back, err := Load(&buf, "ignored")
	require.NoError(t, err)

	var ids []string
	for _, v := range back.Variants() {
		ids = append(ids, v.ID)
	}
	assert.Equal(t, []string{"light", "bog"}, ids)

	for _, id := range ids {
		want, _, err := r.Lookup(id)
		require.NoError(t, err)
		got, _, err := back.Lookup(id)
		require.NoError(t, err)
		assert.Equal(t, want.Slots(), got.Slots(), id)
	}

	assert.ErrorIs(t, r.Encode(&bytes.Buffer{}, "sepia"), ErrUnknownVariant)
}

func TestSlots(t *testing.T) {
	s := mustLoadOne(t, validScheme)
	slots := s.Slots()

	require.NotEmpty(t, slots)
	assert.Equal(t, "common.bg", slots[0].Path)
	assert.Equal(t, "chalk.orange", slots[len(slots)-1].Path)

	byPath := make(map[string]Slot)
	for _, slot := range slots {
		byPath[slot.Path] = slot
	}
	assert.True(t, byPath["ui.list.activeBg"].Set)
	assert.True(t, byPath["syntax.cssId"].Set)
	assert.False(t, byPath["ui.panel.border"].Set)
	assert.True(t, byPath["ui.popover.border"].Set)
}

func mustLoadOne(t *testing.T, doc string) *Scheme {
	t.Helper()
	s, err := decode([]byte(doc))
	require.NoError(t, err)
	return s
}

func mustRegistry(t *testing.T, id string) *Registry {
	t.Helper()
	r, err := Load(strings.NewReader(validScheme), id)
	require.NoError(t, err)
	return r
}

func indent(s, prefix string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = prefix + line
		}
	}
	return strings.Join(lines, "\n") + "\n"
}

const validScheme = `common:
  bg: "#101010"
  fg: "#e0e0e0"
  ui: "#909090"
  accent: "#40c040"
ui:
  button:
    bg: "#306030"
  list:
    activeBg: "#303030"
    activeFg: "#f0f0f0"
    hoverBg: "#202020"
    hoverFg: "#e0e0e0"
  selection:
    bg: "#404040"
    inactive: "#40404080"
  panel:
    bg: "#0c0c0c"
  popover:
    bg: "#181818"
    border: "#282828"
  gutter:
    normal: "#505050"
    active: "#a0a0a0"
  guide:
    normal: "#282828"
    active: "#505050"
  state:
    error: "#e04040"
    info: "#4090e0"
    warning: "#e0b040"
    success: "#40c040"
syntax:
  type: "#40c0a0"
  variable: "#e0e0e0"
  error: "#e04040"
  string: "#a0d060"
  entity: "#e0b040"
  markup: "#e08040"
  punctuation: "#909090"
  boolean: "#d080c0"
  class: "#40c0a0"
  special: "#e0b040"
  constant: "#d080c0"
  func: "#70b0e0"
  keyword: "#40c040"
  number: "#d080c0"
  operator: "#a0c090"
  comment: "#606060"
  tag: "#40c040"
  regexp: "#40c0a0"
  storage: "#40c040"
  cssClass: "#e0b040"
  cssTag: "#40c040"
  cssId: "#e08040"
  cssProperties: "#70b0e0"
vcs:
  added: "#40c040"
  modified: "#4090e0"
  removed: "#e04040"
chalk:
  black: "#202020"
  red: "#e04040"
  green: "#40c040"
  yellow: "#e0b040"
  blue: "#4090e0"
  magenta: "#d080c0"
  cyan: "#40c0a0"
  white: "#e0e0e0"
  orange: "#e08040"
`
