// Package build writes every theme variant to disk and points the
// extension manifest at them.
package build

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/slimy-theme/slimy/internal/log"
	"github.com/slimy-theme/slimy/internal/manifest"
	"github.com/slimy-theme/slimy/internal/naming"
	"github.com/slimy-theme/slimy/internal/scheme"
	"github.com/slimy-theme/slimy/internal/theme"
	"github.com/spf13/afero"
)

// Italics lists the italics settings each variant is built with, in order.
var Italics = []bool{true, false}

type Options struct {
	Registry *scheme.Registry
	// Variants to build, in order. Empty builds every registered variant.
	Variants     []string
	ThemesPath   string
	ManifestPath string
}

type Output struct {
	Variant scheme.Variant
	Italics bool
	Path    string
	Meta    naming.Meta
}

type Report struct {
	Outputs []Output
	// Misses holds the contrast fallbacks hit per variant id.
	Misses map[string][]theme.Miss
	// Dropped lists manifest theme paths that the rewrite removed.
	Dropped []string
}

// Run generates the themes and rewrites the manifest's theme list. The
// manifest is only touched once every theme file has been written.
func Run(fs afero.Fs, opts Options) (Report, error) {
	report := Report{Misses: make(map[string][]theme.Miss)}

	if opts.Registry == nil {
		return report, fmt.Errorf("no scheme registry")
	}

	m, err := manifest.Load(fs, opts.ManifestPath)
	if err != nil {
		return report, err
	}

	if err := fs.MkdirAll(opts.ThemesPath, 0o755); err != nil {
		return report, fmt.Errorf("create themes dir: %w", err)
	}

	ids := opts.Variants
	if len(ids) == 0 {
		for _, v := range opts.Registry.Variants() {
			ids = append(ids, v.ID)
		}
	}

	var entries []naming.Meta
	for _, id := range ids {
		s, v, err := opts.Registry.Lookup(id)
		if err != nil {
			return report, err
		}

		for _, italics := range Italics {
			// Italics do not change colors; record misses once per variant.
			onMiss := func(miss theme.Miss) {
				if italics {
					report.Misses[v.ID] = append(report.Misses[v.ID], miss)
				}
			}
			doc := theme.Build(s, v, italics, theme.WithMissHandler(onMiss))

			data, err := Encode(doc)
			if err != nil {
				return report, fmt.Errorf("encode %s: %w", v.ID, err)
			}

			file := filepath.Join(opts.ThemesPath, naming.FileName(v, italics))
			if err := afero.WriteFile(fs, file, data, 0o644); err != nil {
				return report, fmt.Errorf("write %s: %w", file, err)
			}

			entry := naming.ManifestEntry(v, italics)
			entry.Path = manifestPath(opts.ThemesPath, opts.ManifestPath, naming.FileName(v, italics))
			entries = append(entries, entry)
			report.Outputs = append(report.Outputs, Output{Variant: v, Italics: italics, Path: file, Meta: entry})
		}

		log.Infof("Updated %s", v.ID)
	}

	report.Dropped = dropped(m, entries)
	for _, p := range report.Dropped {
		log.Infof("Dropped theme %s", p)
	}

	if err := m.SetThemes(entries); err != nil {
		return report, err
	}
	if err := m.Save(fs, opts.ManifestPath); err != nil {
		return report, err
	}
	log.Debugf("Wrote %d themes to manifest of %q", len(entries), m.Name())

	return report, nil
}

// dropped returns the paths of the manifest's current themes that entries
// no longer list. An unreadable theme list is replaced without a report.
func dropped(m *manifest.Manifest, entries []naming.Meta) []string {
	current, err := m.Themes()
	if err != nil {
		log.Warnf("Replacing unreadable theme list: %v", err)
		return nil
	}
	keep := make(map[string]bool, len(entries))
	for _, e := range entries {
		keep[e.Path] = true
	}
	var out []string
	for _, t := range current {
		if !keep[t.Path] {
			out = append(out, t.Path)
		}
	}
	return out
}

// Encode renders doc the way JSON.stringify(doc, null, "\t") does: tab
// indentation, no HTML escaping and no trailing newline.
func Encode(doc theme.ColorTheme) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "\t")
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// manifestPath is the theme file's path relative to the manifest, in the
// "./dir/file" form VS Code expects. It falls back to the default layout
// when the two do not share a root.
func manifestPath(themesPath, manifestPath, file string) string {
	rel, err := filepath.Rel(filepath.Dir(manifestPath), filepath.Join(themesPath, file))
	if err != nil || strings.HasPrefix(rel, "..") {
		return "./" + path.Join(naming.ThemesDir, file)
	}
	return "./" + filepath.ToSlash(rel)
}
