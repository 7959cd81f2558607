// Package naming derives the labels and file names a generated theme is
// published under.
package naming

import (
	"strings"

	"github.com/iancoleman/strcase"
	"github.com/slimy-theme/slimy/internal/scheme"
)

const (
	Family    = "Slimy"
	ThemesDir = "themes"
)

// Meta is one entry of the manifest's contributes.themes list.
type Meta struct {
	Label   string `json:"label"`
	UITheme string `json:"uiTheme"`
	Path    string `json:"path"`
}

// DisplayName is "Slimy" followed by the variant's qualifiers in
// parentheses, e.g. "Slimy (light, no italics)".
func DisplayName(v scheme.Variant, italics bool) string {
	var qualifiers []string
	if v.Type == scheme.Light {
		qualifiers = append(qualifiers, "light")
	}
	if v.HighContrast {
		qualifiers = append(qualifiers, "high-contrast")
	}
	if !italics {
		qualifiers = append(qualifiers, "no italics")
	}

	if len(qualifiers) == 0 {
		return Family
	}
	return Family + " (" + strings.Join(qualifiers, ", ") + ")"
}

// UIType is the VS Code base theme the variant extends.
func UIType(v scheme.Variant) string {
	if v.Type == scheme.Dark {
		return "vs-dark"
	}
	return "vs"
}

func FileName(v scheme.Variant, italics bool) string {
	parts := []string{"slimy", strcase.ToKebab(v.ID)}
	if !italics {
		parts = append(parts, "noitalics")
	}
	parts = append(parts, "color-theme.json")
	return strings.Join(parts, "-")
}

func ManifestEntry(v scheme.Variant, italics bool) Meta {
	return Meta{
		Label:   DisplayName(v, italics),
		UITheme: UIType(v),
		Path:    "./" + ThemesDir + "/" + FileName(v, italics),
	}
}
