package naming

import (
	"testing"

	"github.com/slimy-theme/slimy/internal/scheme"
	"github.com/stretchr/testify/assert"
)

func TestDisplayName(t *testing.T) {
	tests := []struct {
		id       string
		italics  bool
		expected string
	}{
		{"dark", true, "Slimy"},
		{"dark", false, "Slimy (no italics)"},
		{"darkContrast", true, "Slimy (high-contrast)"},
		{"darkContrast", false, "Slimy (high-contrast, no italics)"},
		{"light", true, "Slimy (light)"},
		{"light", false, "Slimy (light, no italics)"},
		{"lightContrast", false, "Slimy (light, high-contrast, no italics)"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, DisplayName(scheme.ParseVariant(tt.id), tt.italics))
		})
	}
}

func TestFileName(t *testing.T) {
	tests := []struct {
		id       string
		italics  bool
		expected string
	}{
		{"dark", true, "slimy-dark-color-theme.json"},
		{"dark", false, "slimy-dark-noitalics-color-theme.json"},
		{"darkContrast", true, "slimy-dark-contrast-color-theme.json"},
		{"darkContrast", false, "slimy-dark-contrast-noitalics-color-theme.json"},
		{"light", false, "slimy-light-noitalics-color-theme.json"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, FileName(scheme.ParseVariant(tt.id), tt.italics))
		})
	}
}

func TestUIType(t *testing.T) {
	assert.Equal(t, "vs-dark", UIType(scheme.ParseVariant("dark")))
	assert.Equal(t, "vs-dark", UIType(scheme.ParseVariant("darkContrast")))
	assert.Equal(t, "vs", UIType(scheme.ParseVariant("light")))
}

func TestManifestEntry(t *testing.T) {
	assert.Equal(t, Meta{
		Label:   "Slimy (light, no italics)",
		UITheme: "vs",
		Path:    "./themes/slimy-light-noitalics-color-theme.json",
	}, ManifestEntry(scheme.ParseVariant("light"), false))

	assert.Equal(t, Meta{
		Label:   "Slimy (high-contrast)",
		UITheme: "vs-dark",
		Path:    "./themes/slimy-dark-contrast-color-theme.json",
	}, ManifestEntry(scheme.ParseVariant("darkContrast"), true))
}
