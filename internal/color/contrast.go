package color

import "math"

// WCAG minimum ratios for normal text.
const (
	RatioAA  = 4.5
	RatioAAA = 7.1
)

// Luminance is the WCAG relative luminance. Alpha is ignored.
func (c Color) Luminance() float64 {
	r, g, b := c.rgb.Clamped().LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// Contrast is the WCAG contrast ratio between c and other, from 1 to 21.
func (c Color) Contrast(other Color) float64 {
	l1 := c.Luminance()
	l2 := other.Luminance()
	lighter := math.Max(l1, l2)
	darker := math.Min(l1, l2)
	return (lighter + 0.05) / (darker + 0.05)
}

// ContrastCheck reports whether other is readable on c at the given ratio.
func (c Color) ContrastCheck(other Color, ratio float64) bool {
	return c.Contrast(other) >= ratio
}

// IsLight reports whether black text reads better on c than white text.
func (c Color) IsLight() bool {
	return c.Contrast(Black) > c.Contrast(White)
}
