package preview

import (
	"strings"

	"github.com/slimy-theme/slimy/internal/theme"
)

// Resolved is the effective style of one TextMate scope.
type Resolved struct {
	Foreground string
	Background string
	FontStyle  string
}

type candidate struct {
	value string
	rank  int
	set   bool
}

func (c *candidate) offer(value string, rank int) {
	if !c.set || rank >= c.rank {
		*c = candidate{value: value, rank: rank, set: true}
	}
}

// Resolve applies the theme's token rules to a single scope the way VS
// Code does for a token without parent scopes: every attribute comes from
// the most specific selector that sets it, later rules winning ties. Rules
// without a scope provide the defaults.
func Resolve(tokens []theme.TokenColor, scope string) Resolved {
	var fg, bg, style candidate

	for _, tc := range tokens {
		rank := -1
		if tc.Scope == nil {
			rank = 0
		} else {
			for _, sel := range selectors(tc.Scope) {
				if r := matchRank(sel, scope); r > rank {
					rank = r
				}
			}
		}
		if rank < 0 {
			continue
		}

		if tc.Settings.Foreground != "" {
			fg.offer(tc.Settings.Foreground, rank)
		}
		if tc.Settings.Background != "" {
			bg.offer(tc.Settings.Background, rank)
		}
		if tc.Settings.FontStyle != nil {
			style.offer(*tc.Settings.FontStyle, rank)
		}
	}

	return Resolved{Foreground: fg.value, Background: bg.value, FontStyle: style.value}
}

func selectors(scope interface{}) []string {
	var raw []string
	switch s := scope.(type) {
	case string:
		raw = strings.Split(s, ",")
	case []string:
		raw = s
	case []interface{}:
		for _, v := range s {
			if str, ok := v.(string); ok {
				raw = append(raw, str)
			}
		}
	}

	out := make([]string, 0, len(raw))
	for _, sel := range raw {
		if sel = strings.TrimSpace(sel); sel != "" {
			out = append(out, sel)
		}
	}
	return out
}

// matchRank is the number of scope segments sel matches, or -1. Descendant
// selectors never match since a lone scope has no parents.
func matchRank(sel, scope string) int {
	if strings.ContainsAny(sel, " >") {
		return -1
	}
	if sel != scope && !strings.HasPrefix(scope, sel+".") {
		return -1
	}
	return strings.Count(sel, ".") + 1
}
