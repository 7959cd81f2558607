// Package color is the immutable color value the theme template is written
// against. Every transform returns a new Color; nothing is mutated in place.
package color

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/exp/constraints"
)

// labStep is the Lab lightness (and LCh chroma) step applied per unit of
// Brighten/Desaturate. go-colorful keeps L and C on a 0..1 scale, so this is
// 18 on the usual 0..100 scale.
const labStep = 0.18

var ErrInvalidHex = errors.New("invalid hex color")

var (
	Black = MustParse("#000000")
	White = MustParse("#ffffff")
)

type Color struct {
	rgb   colorful.Color
	alpha float64
	set   bool
}

// Parse accepts #rgb, #rrggbb and #rrggbbaa, with or without the leading hash.
func Parse(s string) (Color, error) {
	hex := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), "#"))

	switch len(hex) {
	case 3:
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]}) + "ff"
	case 6:
		hex += "ff"
	case 8:
	default:
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}

	return Color{
		rgb: colorful.Color{
			R: float64(v>>24&0xff) / 255.0,
			G: float64(v>>16&0xff) / 255.0,
			B: float64(v>>8&0xff) / 255.0,
		},
		alpha: float64(v&0xff) / 255.0,
		set:   true,
	}, nil
}

// MustParse is Parse for package-level literals. It panics on bad input.
func MustParse(s string) Color {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// IsZero reports whether c was never assigned a value.
func (c Color) IsZero() bool {
	return !c.set
}

func (c Color) Opacity() float64 {
	return c.alpha
}

// Hex renders #rrggbb for opaque colors and #rrggbbaa otherwise.
func (c Color) Hex() string {
	hex := c.rgb.Clamped().Hex()
	if c.alpha >= 1 {
		return hex
	}
	return fmt.Sprintf("%s%02x", hex, uint8(math.Round(clamp(c.alpha, 0, 1)*255)))
}

func (c Color) String() string {
	return c.Hex()
}

// Brighten raises Lab lightness by amount steps. Negative amounts darken.
func (c Color) Brighten(amount float64) Color {
	l, a, b := c.rgb.Lab()
	return c.with(colorful.Lab(l+labStep*amount, a, b))
}

func (c Color) Darken(amount float64) Color {
	return c.Brighten(-amount)
}

// Desaturate lowers LCh chroma by amount steps, stopping at gray.
func (c Color) Desaturate(amount float64) Color {
	h, chroma, l := c.rgb.Hcl()
	return c.with(colorful.Hcl(h, math.Max(0, chroma-labStep*amount), l))
}

// Alpha replaces the opacity.
func (c Color) Alpha(a float64) Color {
	return Color{rgb: c.rgb, alpha: clamp(a, 0, 1), set: true}
}

// Fade scales the current opacity down by ratio: Fade(0.3) keeps 70% of it.
func (c Color) Fade(ratio float64) Color {
	return c.Alpha(c.alpha * (1 - clamp(ratio, 0, 1)))
}

// Mix blends toward other in linear RGB. f=0 is c, f=1 is other.
func (c Color) Mix(other Color, f float64) Color {
	f = clamp(f, 0, 1)
	return Color{
		rgb:   c.rgb.BlendLinearRgb(other.rgb, f).Clamped(),
		alpha: c.alpha + (other.alpha-c.alpha)*f,
		set:   true,
	}
}

func (c Color) with(rgb colorful.Color) Color {
	return Color{rgb: rgb.Clamped(), alpha: c.alpha, set: true}
}

func clamp[T constraints.Float](v, lo, hi T) T {
	return max(lo, min(hi, v))
}
