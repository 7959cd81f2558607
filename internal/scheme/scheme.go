// Package scheme holds the palettes themes are generated from.
//
// A Scheme is a fixed set of named color slots. Every slot is required
// except the few declared as *color.Color, which render as transparent
// when absent.
package scheme

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/slimy-theme/slimy/internal/color"
)

var (
	ErrMissingColor   = errors.New("missing color")
	ErrUnknownVariant = errors.New("unknown variant")
)

type Scheme struct {
	Common Common `yaml:"common"`
	UI     UI     `yaml:"ui"`
	Syntax Syntax `yaml:"syntax"`
	VCS    VCS    `yaml:"vcs"`
	Chalk  Chalk  `yaml:"chalk"`
}

type Common struct {
	Bg     color.Color `yaml:"bg"`
	Fg     color.Color `yaml:"fg"`
	UI     color.Color `yaml:"ui"`
	Accent color.Color `yaml:"accent"`
}

type UI struct {
	Button struct {
		Bg color.Color `yaml:"bg"`
	} `yaml:"button"`
	List struct {
		ActiveBg color.Color `yaml:"activeBg"`
		ActiveFg color.Color `yaml:"activeFg"`
		HoverBg  color.Color `yaml:"hoverBg"`
		HoverFg  color.Color `yaml:"hoverFg"`
	} `yaml:"list"`
	Selection struct {
		Bg       color.Color  `yaml:"bg"`
		Inactive color.Color  `yaml:"inactive"`
		Border   *color.Color `yaml:"border,omitempty"`
	} `yaml:"selection"`
	Panel struct {
		Bg     color.Color  `yaml:"bg"`
		Border *color.Color `yaml:"border,omitempty"`
		Shadow *color.Color `yaml:"shadow,omitempty"`
	} `yaml:"panel"`
	Popover struct {
		Bg     color.Color  `yaml:"bg"`
		Border *color.Color `yaml:"border,omitempty"`
	} `yaml:"popover"`
	Gutter struct {
		Normal color.Color `yaml:"normal"`
		Active color.Color `yaml:"active"`
	} `yaml:"gutter"`
	Guide struct {
		Normal color.Color `yaml:"normal"`
		Active color.Color `yaml:"active"`
	} `yaml:"guide"`
	State struct {
		Error   color.Color `yaml:"error"`
		Info    color.Color `yaml:"info"`
		Warning color.Color `yaml:"warning"`
		Success color.Color `yaml:"success"`
	} `yaml:"state"`
}

type Syntax struct {
	Type          color.Color `yaml:"type"`
	Variable      color.Color `yaml:"variable"`
	Error         color.Color `yaml:"error"`
	String        color.Color `yaml:"string"`
	Entity        color.Color `yaml:"entity"`
	Markup        color.Color `yaml:"markup"`
	Punctuation   color.Color `yaml:"punctuation"`
	Boolean       color.Color `yaml:"boolean"`
	Class         color.Color `yaml:"class"`
	Special       color.Color `yaml:"special"`
	Constant      color.Color `yaml:"constant"`
	Func          color.Color `yaml:"func"`
	Keyword       color.Color `yaml:"keyword"`
	Number        color.Color `yaml:"number"`
	Operator      color.Color `yaml:"operator"`
	Comment       color.Color `yaml:"comment"`
	Tag           color.Color `yaml:"tag"`
	Regexp        color.Color `yaml:"regexp"`
	Storage       color.Color `yaml:"storage"`
	CSSClass      color.Color `yaml:"cssClass"`
	CSSTag        color.Color `yaml:"cssTag"`
	CSSID         color.Color `yaml:"cssId"`
	CSSProperties color.Color `yaml:"cssProperties"`
}

type VCS struct {
	Added    color.Color `yaml:"added"`
	Modified color.Color `yaml:"modified"`
	Removed  color.Color `yaml:"removed"`
}

type Chalk struct {
	Black   color.Color `yaml:"black"`
	Red     color.Color `yaml:"red"`
	Green   color.Color `yaml:"green"`
	Yellow  color.Color `yaml:"yellow"`
	Blue    color.Color `yaml:"blue"`
	Magenta color.Color `yaml:"magenta"`
	Cyan    color.Color `yaml:"cyan"`
	White   color.Color `yaml:"white"`
	Orange  color.Color `yaml:"orange"`
}

// Slot is one named color of a scheme, addressed by its dotted YAML path.
type Slot struct {
	Path  string
	Color color.Color
	Set   bool
}

var colorType = reflect.TypeOf(color.Color{})

// Slots lists every slot in declaration order. Unset optional slots are
// included with Set false.
func (s *Scheme) Slots() []Slot {
	var out []Slot
	walk(reflect.ValueOf(s).Elem(), "", func(path string, v reflect.Value) {
		switch {
		case v.Type() == colorType:
			c := v.Interface().(color.Color)
			out = append(out, Slot{Path: path, Color: c, Set: !c.IsZero()})
		case v.Kind() == reflect.Pointer && v.Type().Elem() == colorType:
			if v.IsNil() {
				out = append(out, Slot{Path: path})
				return
			}
			out = append(out, Slot{Path: path, Color: v.Elem().Interface().(color.Color), Set: true})
		}
	})
	return out
}

// Validate reports every required slot left empty.
func (s *Scheme) Validate() error {
	var missing []string
	walk(reflect.ValueOf(s).Elem(), "", func(path string, v reflect.Value) {
		if v.Type() == colorType && v.Interface().(color.Color).IsZero() {
			missing = append(missing, path)
		}
	})
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingColor, strings.Join(missing, ", "))
	}
	return nil
}

func walk(v reflect.Value, prefix string, visit func(path string, v reflect.Value)) {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		name, _, _ := strings.Cut(field.Tag.Get("yaml"), ",")
		if name == "" {
			name = strings.ToLower(field.Name)
		}
		path := name
		if prefix != "" {
			path = prefix + "." + name
		}

		fv := v.Field(i)
		if fv.Kind() == reflect.Struct && fv.Type() != colorType {
			walk(fv, path, visit)
			continue
		}
		visit(path, fv)
	}
}
