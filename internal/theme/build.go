package theme

import (
	"github.com/slimy-theme/slimy/internal/naming"
	"github.com/slimy-theme/slimy/internal/scheme"
)

type options struct {
	onMiss func(Miss)
}

type Option func(*options)

// WithMissHandler is called for every readable-color lookup that had to
// fall back to an unreadable first choice.
func WithMissHandler(fn func(Miss)) Option {
	return func(o *options) {
		o.onMiss = fn
	}
}

// Build renders s as variant v. The result depends only on its inputs.
func Build(s *scheme.Scheme, v scheme.Variant, italics bool, opts ...Option) ColorTheme {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	p := newPalette(s, v, o.onMiss)

	var colors Colors
	if p.hc {
		for _, r := range highContrastRoles(p) {
			colors.Set(r.key, r.value.Hex())
		}
	}
	for _, r := range workbenchRoles(p) {
		colors.Set(r.key, r.value.Hex())
	}

	rules := tokenRules(p)
	tokens := make([]TokenColor, 0, len(rules))
	for _, r := range rules {
		tokens = append(tokens, r.render(italics))
	}

	return ColorTheme{
		Name:                 naming.DisplayName(v, italics),
		Type:                 string(v.Type),
		Colors:               colors,
		SemanticHighlighting: false,
		TokenColors:          tokens,
	}
}

// Audit builds every variant of r and returns the contrast misses, keyed by
// variant id. Italics do not affect colors, so each variant is built once.
func Audit(r *scheme.Registry) (map[string][]Miss, error) {
	out := make(map[string][]Miss)
	for _, variant := range r.Variants() {
		s, v, err := r.Lookup(variant.ID)
		if err != nil {
			return nil, err
		}
		var misses []Miss
		Build(s, v, true, WithMissHandler(func(m Miss) {
			misses = append(misses, m)
		}))
		out[v.ID] = misses
	}
	return out, nil
}
