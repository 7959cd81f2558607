package theme

import (
	"github.com/slimy-theme/slimy/internal/color"
	"github.com/slimy-theme/slimy/internal/scheme"
)

const (
	RatioNormal       = color.RatioAA
	RatioHighContrast = color.RatioAAA
)

// RatioFor is the minimum contrast foregrounds must reach on v.
func RatioFor(v scheme.Variant) float64 {
	if v.HighContrast {
		return RatioHighContrast
	}
	return RatioNormal
}

// Prefer returns the first of first and fallbacks that reaches ratio
// against base. When none do it returns first and false; the caller still
// gets a usable color.
func Prefer(base color.Color, ratio float64, first color.Color, fallbacks ...color.Color) (color.Color, bool) {
	if base.ContrastCheck(first, ratio) {
		return first, true
	}
	for _, c := range fallbacks {
		if base.ContrastCheck(c, ratio) {
			return c, true
		}
	}
	return first, false
}

// Miss records a Prefer call where no candidate was readable enough.
type Miss struct {
	Role   string
	Base   color.Color
	Chosen color.Color
	Ratio  float64
	// Best is the highest ratio any candidate reached.
	Best float64
}

func bestContrast(base color.Color, candidates ...color.Color) float64 {
	best := 0.0
	for _, c := range candidates {
		best = max(best, base.Contrast(c))
	}
	return best
}
