package manifest

import (
	"testing"

	"github.com/slimy-theme/slimy/internal/naming"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const packageJSON = `{
  "name": "slimy",
  "version": "1.2.3",
  "engines": {"vscode": "^1.70.0"},
  "contributes": {
    "themes": [
      {"label": "Old", "uiTheme": "vs-dark", "path": "./themes/old.json"},
      {"label": "Stale", "uiTheme": "vs", "path": "./themes/stale.json"}
    ],
    "iconThemes": []
  },
  "scripts": {"build": "slimy build"}
}`

var fresh = []naming.Meta{
	{Label: "Slimy", UITheme: "vs-dark", Path: "./themes/slimy-dark-color-theme.json"},
	{Label: "Slimy (light)", UITheme: "vs", Path: "./themes/slimy-light-color-theme.json"},
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "empty", data: ""},
		{name: "array", data: "[]"},
		{name: "truncated", data: `{"name": "slimy"`},
		{name: "trailing data", data: `{} {}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestSetThemesReplacesList(t *testing.T) {
	m, err := Parse([]byte(packageJSON))
	require.NoError(t, err)

	old, err := m.Themes()
	require.NoError(t, err)
	assert.Len(t, old, 2)

	require.NoError(t, m.SetThemes(fresh))
	require.NoError(t, m.SetThemes(fresh))

	themes, err := m.Themes()
	require.NoError(t, err)
	assert.Equal(t, fresh, themes)
}

func TestSetThemesKeepsOtherKeys(t *testing.T) {
	m, err := Parse([]byte(packageJSON))
	require.NoError(t, err)
	require.NoError(t, m.SetThemes(fresh))

	var keys []string
	for _, f := range m.root {
		keys = append(keys, f.key)
	}
	assert.Equal(t, []string{"name", "version", "engines", "contributes", "scripts"}, keys)
	assert.Equal(t, "slimy", m.Name())

	engines, ok := m.root.get("engines")
	require.True(t, ok)
	assert.JSONEq(t, `{"vscode": "^1.70.0"}`, string(engines))

	contributes, err := m.contributes()
	require.NoError(t, err)
	require.Len(t, contributes, 2)
	assert.Equal(t, "themes", contributes[0].key)
	assert.Equal(t, "iconThemes", contributes[1].key)
}

func TestSetThemesCreatesContributes(t *testing.T) {
	m, err := Parse([]byte(`{"name": "slimy"}`))
	require.NoError(t, err)

	themes, err := m.Themes()
	require.NoError(t, err)
	assert.Empty(t, themes)

	require.NoError(t, m.SetThemes(fresh))
	out, err := m.Bytes()
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"name": "slimy",
		"contributes": {"themes": [
			{"label": "Slimy", "uiTheme": "vs-dark", "path": "./themes/slimy-dark-color-theme.json"},
			{"label": "Slimy (light)", "uiTheme": "vs", "path": "./themes/slimy-light-color-theme.json"}
		]}
	}`, string(out))
}

func TestSetThemesBadContributes(t *testing.T) {
	m, err := Parse([]byte(`{"contributes": 3}`))
	require.NoError(t, err)
	assert.Error(t, m.SetThemes(fresh))
}

func TestBytesFormatting(t *testing.T) {
	m, err := Parse([]byte(`{"name":"a<b>","contributes":{"themes":[]}}`))
	require.NoError(t, err)

	out, err := m.Bytes()
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"name\": \"a<b>\",\n  \"contributes\": {\n    \"themes\": []\n  }\n}\n", string(out))
}

func TestLoadSave(t *testing.T) {
	fs := afero.NewMemMapFs()

	_, err := Load(fs, "/ext/package.json")
	assert.Error(t, err)

	require.NoError(t, afero.WriteFile(fs, "/ext/package.json", []byte(packageJSON), 0o644))
	m, err := Load(fs, "/ext/package.json")
	require.NoError(t, err)
	require.NoError(t, m.SetThemes(fresh))
	require.NoError(t, m.Save(fs, "/ext/package.json"))

	reloaded, err := Load(fs, "/ext/package.json")
	require.NoError(t, err)
	themes, err := reloaded.Themes()
	require.NoError(t, err)
	assert.Equal(t, fresh, themes)

	data, err := afero.ReadFile(fs, "/ext/package.json")
	require.NoError(t, err)
	assert.Contains(t, string(data), "\"scripts\": {\n    \"build\": \"slimy build\"\n  }")
}
