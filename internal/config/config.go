// Package config resolves build settings from defaults, config files,
// SLIMY_* environment variables and command-line flags, in increasing
// order of precedence.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	KeyRoot       = "root"
	KeyThemesDir  = "themes-dir"
	KeyManifest   = "manifest"
	KeyVariants   = "variants"
	KeySchemeFile = "scheme-file"
	KeyLogLevel   = "log-level"
)

const (
	envPrefix         = "SLIMY"
	ProjectConfigName = ".slimy.yaml"
)

// flagNames maps keys to the flag that overrides them when it differs
// from the key itself.
var flagNames = map[string]string{
	KeyVariants: "variant",
}

type Settings struct {
	Root       string
	ThemesDir  string
	Manifest   string
	Variants   []string
	SchemeFile string
	LogLevel   string

	// ConfigFiles lists the files that were merged, lowest precedence first.
	ConfigFiles []string
}

// ThemesPath is where theme files are written.
func (s *Settings) ThemesPath() string {
	return filepath.Join(s.Root, s.ThemesDir)
}

func (s *Settings) ManifestPath() string {
	return filepath.Join(s.Root, s.Manifest)
}

// SchemePath resolves the custom scheme file against Root. Empty means
// only the bundled schemes are used.
func (s *Settings) SchemePath() string {
	if s.SchemeFile == "" || filepath.IsAbs(s.SchemeFile) {
		return s.SchemeFile
	}
	return filepath.Join(s.Root, s.SchemeFile)
}

type loadSettings struct {
	fs             afero.Fs
	workingDir     string
	userConfigPath string
	configFile     string
	flags          *pflag.FlagSet
}

type Option func(*loadSettings)

// WithFs reads config files from fsys instead of the OS filesystem.
func WithFs(fsys afero.Fs) Option {
	return func(cfg *loadSettings) {
		cfg.fs = fsys
	}
}

// WithWorkingDir overrides the directory project config discovery starts from.
func WithWorkingDir(dir string) Option {
	return func(cfg *loadSettings) {
		cfg.workingDir = dir
	}
}

// WithUserConfig overrides the default user config path.
func WithUserConfig(path string) Option {
	return func(cfg *loadSettings) {
		cfg.userConfigPath = path
	}
}

// WithConfigFile loads path instead of discovering a project config.
// Unlike discovered files it must exist.
func WithConfigFile(path string) Option {
	return func(cfg *loadSettings) {
		cfg.configFile = path
	}
}

// WithFlags lets explicitly set flags override every other source.
func WithFlags(flags *pflag.FlagSet) Option {
	return func(cfg *loadSettings) {
		cfg.flags = flags
	}
}

func Load(opts ...Option) (*Settings, error) {
	settings := loadSettings{}
	for _, opt := range opts {
		opt(&settings)
	}
	if settings.fs == nil {
		settings.fs = afero.NewOsFs()
	}

	v, files, rootBase, err := configure(&settings)
	if err != nil {
		return nil, err
	}

	root := v.GetString(KeyRoot)
	if rootBase != "" && !filepath.IsAbs(root) && !rootOverridden(settings.flags) {
		root = filepath.Join(rootBase, root)
	}

	return &Settings{
		Root:        root,
		ThemesDir:   v.GetString(KeyThemesDir),
		Manifest:    v.GetString(KeyManifest),
		Variants:    v.GetStringSlice(KeyVariants),
		SchemeFile:  v.GetString(KeySchemeFile),
		LogLevel:    v.GetString(KeyLogLevel),
		ConfigFiles: files,
	}, nil
}

// rootOverridden reports whether root came from the environment or a flag,
// in which case it stays relative to the working directory.
func rootOverridden(flags *pflag.FlagSet) bool {
	if _, ok := os.LookupEnv(envPrefix + "_" + strings.ToUpper(KeyRoot)); ok {
		return true
	}
	return flags != nil && flags.Changed(flagName(KeyRoot))
}

func flagName(key string) string {
	if alias, ok := flagNames[key]; ok {
		return alias
	}
	return key
}

// configure returns the merged viper instance, the files it read and the
// directory a relative root is resolved against.
func configure(settings *loadSettings) (*viper.Viper, []string, string, error) {
	workingDir := strings.TrimSpace(settings.workingDir)
	if workingDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, nil, "", fmt.Errorf("determine working directory: %w", err)
		}
		workingDir = wd
	}

	userConfigPath := strings.TrimSpace(settings.userConfigPath)
	if userConfigPath == "" {
		userConfigPath = defaultUserConfigPath()
	}

	v := viper.New()
	v.SetConfigType("yaml")
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	var (
		files    []string
		rootBase string
	)
	merged, setsRoot, err := mergeConfigFile(settings.fs, v, userConfigPath)
	if err != nil {
		return nil, nil, "", fmt.Errorf("load user config: %w", err)
	}
	if merged {
		files = append(files, userConfigPath)
	}
	if setsRoot {
		rootBase = filepath.Dir(userConfigPath)
	}

	projectConfigPath := strings.TrimSpace(settings.configFile)
	if projectConfigPath != "" {
		if _, err := settings.fs.Stat(projectConfigPath); err != nil {
			return nil, nil, "", fmt.Errorf("config file: %w", err)
		}
	} else {
		projectConfigPath, err = findProjectConfig(settings.fs, workingDir)
		if err != nil {
			return nil, nil, "", err
		}
	}
	merged, setsRoot, err = mergeConfigFile(settings.fs, v, projectConfigPath)
	if err != nil {
		return nil, nil, "", fmt.Errorf("load project config: %w", err)
	}
	if merged {
		files = append(files, projectConfigPath)
		// The project config anchors root unless only the user config sets it.
		if setsRoot || rootBase == "" {
			rootBase = filepath.Dir(projectConfigPath)
		}
	}

	if settings.flags != nil {
		if err := bindFlags(v, settings.flags); err != nil {
			return nil, nil, "", err
		}
	}

	return v, files, rootBase, nil
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for _, key := range []string{KeyRoot, KeyThemesDir, KeyManifest, KeyVariants, KeySchemeFile, KeyLogLevel} {
		name := flagName(key)
		flag := flags.Lookup(name)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}
	return nil
}

// mergeConfigFile merges path into v if it exists and is not empty. It also
// reports whether the file sets root.
func mergeConfigFile(fsys afero.Fs, v *viper.Viper, path string) (bool, bool, error) {
	if strings.TrimSpace(path) == "" {
		return false, false, nil
	}
	info, err := fsys.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, false, nil
	}
	if err != nil {
		return false, false, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return false, false, fmt.Errorf("config path %s is a directory", path)
	}
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return false, false, fmt.Errorf("read %s: %w", path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return false, false, nil
	}

	file := viper.New()
	file.SetConfigType("yaml")
	if err := file.ReadConfig(bytes.NewReader(data)); err != nil {
		return false, false, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := v.MergeConfigMap(file.AllSettings()); err != nil {
		return false, false, fmt.Errorf("merge %s: %w", path, err)
	}
	return true, file.IsSet(KeyRoot), nil
}

func defaultUserConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "slimy", "config.yaml")
}

func findProjectConfig(fsys afero.Fs, startDir string) (string, error) {
	dir := startDir
	for {
		candidate := filepath.Join(dir, ProjectConfigName)
		info, err := fsys.Stat(candidate)
		if err == nil {
			if info.IsDir() {
				return "", fmt.Errorf("config path %s is a directory", candidate)
			}
			return candidate, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("stat %s: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyRoot, ".")
	v.SetDefault(KeyThemesDir, "themes")
	v.SetDefault(KeyManifest, "package.json")
	// No variants means every registered scheme.
	v.SetDefault(KeyVariants, []string{})
	v.SetDefault(KeySchemeFile, "")
	v.SetDefault(KeyLogLevel, "info")
}
