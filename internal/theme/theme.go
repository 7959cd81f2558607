// Package theme renders a scheme into a VS Code color theme document.
package theme

import (
	"bytes"
	"encoding/json"
	"fmt"
)

type ColorTheme struct {
	Name                 string       `json:"name"`
	Type                 string       `json:"type"`
	Colors               Colors       `json:"colors"`
	SemanticHighlighting bool         `json:"semanticHighlighting"`
	TokenColors          []TokenColor `json:"tokenColors"`
}

// TokenColor is one TextMate rule. Scope is a string or a []string, and
// is omitted for the global rule.
type TokenColor struct {
	Name     string        `json:"name,omitempty"`
	Scope    interface{}   `json:"scope,omitempty"`
	Settings TokenSettings `json:"settings"`
}

// TokenSettings distinguishes an absent fontStyle (nil) from an explicit
// empty one, which resets inherited styles.
type TokenSettings struct {
	Background string  `json:"background,omitempty"`
	Foreground string  `json:"foreground,omitempty"`
	FontStyle  *string `json:"fontStyle,omitempty"`
}

// Colors is the workbench color map. It keeps insertion order so output is
// stable and follows the table it was built from.
type Colors struct {
	keys   []string
	values map[string]string
}

// Set adds key, or overwrites it in place if already present.
func (c *Colors) Set(key, value string) {
	if c.values == nil {
		c.values = make(map[string]string)
	}
	if _, exists := c.values[key]; !exists {
		c.keys = append(c.keys, key)
	}
	c.values[key] = value
}

func (c Colors) Get(key string) (string, bool) {
	v, ok := c.values[key]
	return v, ok
}

func (c Colors) Keys() []string {
	return append([]string(nil), c.keys...)
}

func (c Colors) Len() int {
	return len(c.keys)
}

func (c Colors) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range c.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(c.values[key])
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (c *Colors) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("colors must be an object")
	}

	*c = Colors{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key := tok.(string)

		var value string
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("colors.%s: %w", key, err)
		}
		c.Set(key, value)
	}

	_, err = dec.Token()
	return err
}
