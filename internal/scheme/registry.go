package scheme

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

//go:embed schemes/*.yaml
var builtinFS embed.FS

// BuiltinIDs is the order the bundled schemes are generated in.
var BuiltinIDs = []string{"dark", "darkContrast", "light"}

// Registry is an insertion-ordered set of schemes keyed by variant id.
type Registry struct {
	ids     []string
	schemes map[string]*Scheme
}

func NewRegistry() *Registry {
	return &Registry{schemes: make(map[string]*Scheme)}
}

// Builtin returns a fresh registry holding the bundled schemes.
func Builtin() *Registry {
	r := NewRegistry()
	for _, id := range BuiltinIDs {
		data, err := builtinFS.ReadFile("schemes/" + id + ".yaml")
		if err != nil {
			panic(fmt.Sprintf("builtin scheme %s: %v", id, err))
		}
		s, err := decode(data)
		if err != nil {
			panic(fmt.Sprintf("builtin scheme %s: %v", id, err))
		}
		if err := r.Add(id, s); err != nil {
			panic(fmt.Sprintf("builtin scheme %s: %v", id, err))
		}
	}
	return r
}

// Add validates s and registers it. Re-adding an id replaces the scheme
// in place.
func (r *Registry) Add(id string, s *Scheme) error {
	if id == "" {
		return fmt.Errorf("scheme id is empty")
	}
	if err := s.Validate(); err != nil {
		return fmt.Errorf("scheme %s: %w", id, err)
	}
	if _, exists := r.schemes[id]; !exists {
		r.ids = append(r.ids, id)
	}
	r.schemes[id] = s
	return nil
}

// Merge adds every scheme of other, in order.
func (r *Registry) Merge(other *Registry) {
	for _, id := range other.ids {
		if _, exists := r.schemes[id]; !exists {
			r.ids = append(r.ids, id)
		}
		r.schemes[id] = other.schemes[id]
	}
}

func (r *Registry) Lookup(id string) (*Scheme, Variant, error) {
	s, ok := r.schemes[id]
	if !ok {
		return nil, Variant{}, fmt.Errorf("%w: %q (known: %s)", ErrUnknownVariant, id, strings.Join(r.ids, ", "))
	}
	return s, ParseVariant(id), nil
}

func (r *Registry) Variants() []Variant {
	out := make([]Variant, 0, len(r.ids))
	for _, id := range r.ids {
		out = append(out, ParseVariant(id))
	}
	return out
}

func (r *Registry) Len() int {
	return len(r.ids)
}

// Load reads a scheme file. The document is either one scheme, registered
// under name, or a "schemes" mapping of id to scheme.
func Load(rd io.Reader, name string) (*Registry, error) {
	data, err := io.ReadAll(rd)
	if err != nil {
		return nil, fmt.Errorf("failed to read scheme: %w", err)
	}

	var doc struct {
		Schemes yaml.Node `yaml:"schemes"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse scheme: %w", err)
	}

	r := NewRegistry()
	if doc.Schemes.Kind == 0 {
		s, err := decode(data)
		if err != nil {
			return nil, fmt.Errorf("scheme %s: %w", name, err)
		}
		if err := r.Add(name, s); err != nil {
			return nil, err
		}
		return r, nil
	}

	if doc.Schemes.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: schemes must be a mapping", doc.Schemes.Line)
	}
	for i := 0; i+1 < len(doc.Schemes.Content); i += 2 {
		id := doc.Schemes.Content[i].Value
		body, err := yaml.Marshal(doc.Schemes.Content[i+1])
		if err != nil {
			return nil, fmt.Errorf("scheme %s: %w", id, err)
		}
		s, err := decode(body)
		if err != nil {
			return nil, fmt.Errorf("scheme %s: %w", id, err)
		}
		if err := r.Add(id, s); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Encode writes the schemes of ids as a "schemes" document that Load reads
// back. No ids writes every scheme.
func (r *Registry) Encode(w io.Writer, ids ...string) error {
	if len(ids) == 0 {
		ids = r.ids
	}

	schemes := &yaml.Node{Kind: yaml.MappingNode}
	for _, id := range ids {
		s, _, err := r.Lookup(id)
		if err != nil {
			return err
		}
		var body yaml.Node
		if err := body.Encode(s); err != nil {
			return fmt.Errorf("scheme %s: %w", id, err)
		}
		schemes.Content = append(schemes.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: id}, &body)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(map[string]*yaml.Node{"schemes": schemes}); err != nil {
		return fmt.Errorf("failed to encode schemes: %w", err)
	}
	return enc.Close()
}

// LoadFile is Load for a file on fs. Single-scheme files take their id
// from the file name.
func LoadFile(fs afero.Fs, path string) (*Registry, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open scheme file: %w", err)
	}
	defer f.Close()

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return Load(f, name)
}

func decode(data []byte) (*Scheme, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var s Scheme
	if err := dec.Decode(&s); err != nil {
		if err == io.EOF {
			return &s, nil
		}
		return nil, err
	}
	return &s, nil
}
