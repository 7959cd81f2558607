package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/afero"
)

// DefaultFile is the commented project config written by "slimy init".
const DefaultFile = `# slimy project configuration.
# Every key can also be set with a SLIMY_ environment variable
# (e.g. SLIMY_THEMES_DIR) or the matching command-line flag.

# Extension root. themes-dir and manifest are relative to it, and a
# relative root is relative to this file's directory.
root: .

# Directory the generated *-color-theme.json files are written to.
themes-dir: themes

# Extension manifest whose contributes.themes list is rewritten.
manifest: package.json

# Variants to generate, in order. Each one is built with and without
# italics. Ids containing "light" produce light themes, ids containing
# "contrast" produce high-contrast themes. When unset every known
# variant is built, including those from scheme-file.
# variants:
#   - dark
#   - darkContrast
#   - light

# Optional YAML file with extra or replacement schemes.
# scheme-file: schemes.yaml

# debug, info, warn or error.
log-level: info
`

var ErrConfigExists = errors.New("config file already exists")

// WriteDefault writes DefaultFile to path unless something is already there.
func WriteDefault(fsys afero.Fs, path string) error {
	_, err := fsys.Stat(path)
	if err == nil {
		return fmt.Errorf("%w: %s", ErrConfigExists, path)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if err := afero.WriteFile(fsys, path, []byte(DefaultFile), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
