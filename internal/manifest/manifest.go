// Package manifest edits an extension's package.json in place, keeping
// every key it does not touch byte-for-byte and in its existing order.
package manifest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/slimy-theme/slimy/internal/naming"
	"github.com/spf13/afero"
)

const (
	keyContributes = "contributes"
	keyThemes      = "themes"
)

var ErrNotObject = errors.New("not a JSON object")

type field struct {
	key   string
	value json.RawMessage
}

// object is a JSON object that remembers key order.
type object []field

func (o object) get(key string) (json.RawMessage, bool) {
	for _, f := range o {
		if f.key == key {
			return f.value, true
		}
	}
	return nil, false
}

// set replaces key in place or appends it.
func (o *object) set(key string, value json.RawMessage) {
	for i := range *o {
		if (*o)[i].key == key {
			(*o)[i].value = value
			return
		}
	}
	*o = append(*o, field{key: key, value: value})
}

func (o object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range o {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(f.key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(f.value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func parseObject(data []byte) (object, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, ErrNotObject
	}

	obj := object{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected token %v", tok)
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
		obj = append(obj, field{key: key, value: raw})
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("trailing data after manifest object")
	}
	return obj, nil
}

type Manifest struct {
	root object
}

func Parse(data []byte) (*Manifest, error) {
	root, err := parseObject(data)
	if err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	return &Manifest{root: root}, nil
}

func Load(fs afero.Fs, path string) (*Manifest, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	return Parse(data)
}

// Name returns the package name, if any.
func (m *Manifest) Name() string {
	raw, ok := m.root.get("name")
	if !ok {
		return ""
	}
	var name string
	if err := json.Unmarshal(raw, &name); err != nil {
		return ""
	}
	return name
}

// Themes decodes contributes.themes. A missing list is not an error.
func (m *Manifest) Themes() ([]naming.Meta, error) {
	contributes, err := m.contributes()
	if err != nil {
		return nil, err
	}
	raw, ok := contributes.get(keyThemes)
	if !ok {
		return nil, nil
	}
	var themes []naming.Meta
	if err := json.Unmarshal(raw, &themes); err != nil {
		return nil, fmt.Errorf("contributes.themes: %w", err)
	}
	return themes, nil
}

// SetThemes replaces contributes.themes wholesale, creating contributes if
// needed. Sibling keys keep their position and content.
func (m *Manifest) SetThemes(themes []naming.Meta) error {
	contributes, err := m.contributes()
	if err != nil {
		return err
	}
	if themes == nil {
		themes = []naming.Meta{}
	}

	raw, err := marshal(themes)
	if err != nil {
		return err
	}
	contributes.set(keyThemes, raw)

	rawContributes, err := marshal(contributes)
	if err != nil {
		return err
	}
	m.root.set(keyContributes, rawContributes)
	return nil
}

func (m *Manifest) contributes() (object, error) {
	raw, ok := m.root.get(keyContributes)
	if !ok {
		return object{}, nil
	}
	obj, err := parseObject(raw)
	if err != nil {
		return nil, fmt.Errorf("contributes: %w", err)
	}
	return obj, nil
}

// Bytes renders the manifest with two-space indentation and a trailing
// newline, the way npm writes package.json.
func (m *Manifest) Bytes() ([]byte, error) {
	compact, err := marshal(m.root)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, compact, "", "  "); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

func (m *Manifest) Save(fs afero.Fs, path string) error {
	data, err := m.Bytes()
	if err != nil {
		return fmt.Errorf("render manifest: %w", err)
	}
	if err := afero.WriteFile(fs, path, data, 0o644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	return nil
}

func marshal(v interface{}) (json.RawMessage, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
