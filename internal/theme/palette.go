package theme

import (
	"github.com/slimy-theme/slimy/internal/color"
	"github.com/slimy-theme/slimy/internal/scheme"
)

// transparent stands in for optional slots a scheme leaves out.
var transparent = color.MustParse("#f0f0f000")

// palette is a scheme plus the derived colors several table rows share.
// It is computed once per Build and read-only afterwards.
type palette struct {
	*scheme.Scheme

	dark  bool
	hc    bool
	ratio float64
	miss  func(Miss)

	badgeBg, badgeFg                     color.Color
	buttonBg, buttonFg                   color.Color
	secondaryButtonBg, secondaryButtonFg color.Color
	listActiveBg, listActiveFg           color.Color
	listHoverBg, listHoverFg             color.Color
	selectionBg, selectionFg             color.Color
	tabActiveFg, tabHoverFg              color.Color

	typeParam      color.Color
	enum           color.Color
	enumMember     color.Color
	iface          color.Color
	namespace      color.Color
	null           color.Color
	undefined      color.Color
	nan            color.Color
	objectKey      color.Color
	keywordControl color.Color
	reference      color.Color
}

func newPalette(s *scheme.Scheme, v scheme.Variant, miss func(Miss)) *palette {
	p := &palette{
		Scheme: s,
		dark:   v.IsDark(),
		hc:     v.HighContrast,
		ratio:  RatioFor(v),
		miss:   miss,
	}

	p.badgeBg = s.Common.Accent.Brighten(p.sink(1))
	p.badgeFg = p.readableFg("badge.foreground", p.badgeBg)

	p.buttonBg = s.UI.Button.Bg
	p.buttonFg = p.readableFg("button.foreground", p.buttonBg)
	p.secondaryButtonBg = s.Common.Accent
	p.secondaryButtonFg = p.readableFg("button.secondaryForeground", p.secondaryButtonBg)

	p.listActiveBg = s.UI.List.ActiveBg
	p.listActiveFg = p.prefer("list.activeSelectionForeground", p.listActiveBg,
		s.UI.List.ActiveFg, s.Common.Fg, s.Common.Bg)
	p.listHoverBg = s.UI.List.HoverBg
	p.listHoverFg = p.prefer("list.hoverForeground", p.listHoverBg,
		s.UI.List.HoverFg, s.Common.Fg, s.Common.Bg)

	p.selectionBg = s.UI.Selection.Bg
	p.selectionFg = s.Common.Fg

	p.tabActiveFg = p.readableFg("tab.activeForeground", s.Common.Bg.Brighten(0.4))
	p.tabHoverFg = p.readableFg("tab.hoverForeground", s.Common.Bg.Brighten(0.2))

	p.typeParam = s.Syntax.Type.Alpha(0.75)
	p.enum = s.Syntax.Type.Brighten(0.15)
	p.enumMember = s.Syntax.Variable.Brighten(0.15)
	p.iface = s.Syntax.Type.Brighten(0.15)
	p.namespace = s.Syntax.Type.Brighten(0.2)
	p.null = s.Syntax.Error.Alpha(0.65)
	p.undefined = s.Syntax.Error.Alpha(0.55)
	p.nan = s.Syntax.Error.Alpha(0.75)
	p.objectKey = s.Syntax.String.Fade(0.3)
	p.keywordControl = s.Syntax.Entity.Desaturate(1).Brighten(p.lift(0.6))
	p.reference = s.Syntax.Markup.Brighten(p.lift(0.3))

	return p
}

// lift turns a brighten amount into one that moves away from the
// background: brighter on dark themes, darker on light ones.
func (p *palette) lift(amount float64) float64 {
	if p.dark {
		return amount
	}
	return -amount
}

// sink is the opposite of lift.
func (p *palette) sink(amount float64) float64 {
	return -p.lift(amount)
}

func (p *palette) contrast(high, normal float64) float64 {
	if p.hc {
		return high
	}
	return normal
}

func (p *palette) contrastColor(high, normal color.Color) color.Color {
	if p.hc {
		return high
	}
	return normal
}

func (p *palette) prefer(role string, base, first color.Color, fallbacks ...color.Color) color.Color {
	chosen, ok := Prefer(base, p.ratio, first, fallbacks...)
	if !ok && p.miss != nil {
		p.miss(Miss{
			Role:   role,
			Base:   base,
			Chosen: chosen,
			Ratio:  p.ratio,
			Best:   bestContrast(base, append([]color.Color{first}, fallbacks...)...),
		})
	}
	return chosen
}

// readableFg picks a text color for base from the scheme's neutrals.
func (p *palette) readableFg(role string, base color.Color) color.Color {
	return p.prefer(role, base, p.Common.Fg, p.Common.Bg, p.Chalk.Black, p.Chalk.White)
}

func optional(c *color.Color) color.Color {
	if c == nil {
		return transparent
	}
	return *c
}
