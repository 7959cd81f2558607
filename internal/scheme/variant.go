package scheme

import "strings"

type Type string

const (
	Dark  Type = "dark"
	Light Type = "light"
)

// Variant identifies a scheme and carries its classification, computed
// once by ParseVariant.
type Variant struct {
	ID           string
	Type         Type
	HighContrast bool
}

func ParseVariant(id string) Variant {
	return Variant{
		ID:           id,
		Type:         ThemeType(id),
		HighContrast: IsHighContrast(id),
	}
}

// ThemeType is Light when id contains "light", ignoring case, else Dark.
func ThemeType(id string) Type {
	if strings.Contains(strings.ToLower(id), "light") {
		return Light
	}
	return Dark
}

// IsHighContrast reports whether id contains "contrast", ignoring case.
func IsHighContrast(id string) bool {
	return strings.Contains(strings.ToLower(id), "contrast")
}

func (v Variant) IsDark() bool {
	return v.Type == Dark
}

func (v Variant) String() string {
	return v.ID
}
