package config

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	workDir  = "/work/repo/sub"
	userPath = "/home/user/.config/slimy/config.yaml"
)

func newFs(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll(workDir, 0o755))
	for path, content := range files {
		require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0o644))
	}
	return fs
}

func load(t *testing.T, fs afero.Fs, opts ...Option) *Settings {
	t.Helper()
	s, err := Load(append([]Option{WithFs(fs), WithWorkingDir(workDir), WithUserConfig(userPath)}, opts...)...)
	require.NoError(t, err)
	return s
}

func TestLoadDefaults(t *testing.T) {
	s := load(t, newFs(t, nil))

	assert.Equal(t, ".", s.Root)
	assert.Equal(t, "themes", s.ThemesDir)
	assert.Equal(t, "package.json", s.Manifest)
	assert.Empty(t, s.Variants)
	assert.Equal(t, "", s.SchemeFile)
	assert.Equal(t, "info", s.LogLevel)
	assert.Empty(t, s.ConfigFiles)
}

func TestProjectConfigOverridesUser(t *testing.T) {
	fs := newFs(t, map[string]string{
		userPath:            "themes-dir: user-themes\nmanifest: user.json\n",
		"/work/.slimy.yaml": "themes-dir: project-themes\nvariants:\n  - light\n",
	})

	s := load(t, fs)

	assert.Equal(t, "project-themes", s.ThemesDir)
	assert.Equal(t, "user.json", s.Manifest)
	assert.Equal(t, []string{"light"}, s.Variants)
	assert.Equal(t, []string{userPath, "/work/.slimy.yaml"}, s.ConfigFiles)
}

func TestNearestProjectConfigWins(t *testing.T) {
	fs := newFs(t, map[string]string{
		"/work/.slimy.yaml":          "manifest: outer.json\n",
		"/work/repo/.slimy.yaml":     "manifest: inner.json\n",
		"/work/repo/sub/ignored.txt": "",
	})

	s := load(t, fs)
	assert.Equal(t, "inner.json", s.Manifest)
	assert.Equal(t, []string{"/work/repo/.slimy.yaml"}, s.ConfigFiles)
}

func TestEnvironmentAndFlagsPrecedence(t *testing.T) {
	fs := newFs(t, map[string]string{
		"/work/.slimy.yaml": "themes-dir: project-themes\nmanifest: project.json\nlog-level: warn\n",
	})
	t.Setenv("SLIMY_THEMES_DIR", "env-themes")
	t.Setenv("SLIMY_MANIFEST", "env.json")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("themes-dir", "", "")
	flags.String("manifest", "", "")
	flags.String("log-level", "", "")
	flags.StringSlice("variant", nil, "")
	require.NoError(t, flags.Parse([]string{"--themes-dir=flag-themes", "--variant=light", "--variant=darkContrast"}))

	s := load(t, fs, WithFlags(flags))

	assert.Equal(t, "flag-themes", s.ThemesDir)
	assert.Equal(t, "env.json", s.Manifest)
	assert.Equal(t, "warn", s.LogLevel)
	assert.Equal(t, []string{"light", "darkContrast"}, s.Variants)
}

func TestUnsetFlagsDoNotOverride(t *testing.T) {
	fs := newFs(t, map[string]string{
		"/work/.slimy.yaml": "themes-dir: project-themes\n",
	})

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("themes-dir", "flag-default", "")
	require.NoError(t, flags.Parse(nil))

	s := load(t, fs, WithFlags(flags))
	assert.Equal(t, "project-themes", s.ThemesDir)
}

func TestExplicitConfigFile(t *testing.T) {
	fs := newFs(t, map[string]string{
		"/work/.slimy.yaml":  "manifest: discovered.json\n",
		"/etc/slimy-ci.yaml": "manifest: explicit.json\n",
	})

	s := load(t, fs, WithConfigFile("/etc/slimy-ci.yaml"))
	assert.Equal(t, "explicit.json", s.Manifest)

	_, err := Load(WithFs(fs), WithWorkingDir(workDir), WithUserConfig(userPath), WithConfigFile("/etc/missing.yaml"))
	assert.Error(t, err)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name  string
		files map[string]string
		dirs  []string
	}{
		{
			name:  "invalid yaml",
			files: map[string]string{"/work/.slimy.yaml": "variants: [dark\n"},
		},
		{
			name: "config path is a directory",
			dirs: []string{"/work/repo/.slimy.yaml"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := newFs(t, tt.files)
			for _, dir := range tt.dirs {
				require.NoError(t, fs.MkdirAll(dir, 0o755))
			}
			_, err := Load(WithFs(fs), WithWorkingDir(workDir), WithUserConfig(userPath))
			assert.Error(t, err)
		})
	}
}

func TestEmptyConfigFileIgnored(t *testing.T) {
	fs := newFs(t, map[string]string{"/work/.slimy.yaml": "  \n"})
	s := load(t, fs)
	assert.Empty(t, s.ConfigFiles)
	assert.Equal(t, "themes", s.ThemesDir)
}

func TestSettingsPaths(t *testing.T) {
	s := &Settings{Root: "/ext", ThemesDir: "themes", Manifest: "package.json", SchemeFile: "palettes.yaml"}
	assert.Equal(t, "/ext/themes", s.ThemesPath())
	assert.Equal(t, "/ext/package.json", s.ManifestPath())
	assert.Equal(t, "/ext/palettes.yaml", s.SchemePath())

	s.SchemeFile = "/abs/palettes.yaml"
	assert.Equal(t, "/abs/palettes.yaml", s.SchemePath())

	s.SchemeFile = ""
	assert.Equal(t, "", s.SchemePath())
}

func TestWriteDefault(t *testing.T) {
	fs := newFs(t, nil)
	path := "/work/repo/.slimy.yaml"

	require.NoError(t, WriteDefault(fs, path))
	assert.ErrorIs(t, WriteDefault(fs, path), ErrConfigExists)

	s := load(t, fs)
	assert.Equal(t, []string{path}, s.ConfigFiles)
	assert.Equal(t, "/work/repo", s.Root)
	assert.Empty(t, s.Variants)
	assert.Equal(t, "themes", s.ThemesDir)
	assert.Equal(t, "package.json", s.Manifest)
}

func TestSchemeFileAloneBuildsAllVariants(t *testing.T) {
	fs := newFs(t, map[string]string{
		"/work/.slimy.yaml": "scheme-file: schemes.yaml\n",
	})

	s := load(t, fs)
	assert.Equal(t, "schemes.yaml", s.SchemeFile)
	assert.Empty(t, s.Variants)
}

func TestRootRelativeToConfigFile(t *testing.T) {
	tests := []struct {
		name  string
		files map[string]string
		opts  []Option
		want  string
	}{
		{
			name:  "project root",
			files: map[string]string{"/work/.slimy.yaml": "root: ext\n"},
			want:  "/work/ext",
		},
		{
			name:  "project without root",
			files: map[string]string{"/work/.slimy.yaml": "manifest: package.json\n"},
			want:  "/work",
		},
		{
			name:  "absolute root",
			files: map[string]string{"/work/.slimy.yaml": "root: /srv/ext\n"},
			want:  "/srv/ext",
		},
		{
			name: "user root",
			files: map[string]string{
				userPath:            "root: ext\n",
				"/work/.slimy.yaml": "manifest: package.json\n",
			},
			want: "/home/user/.config/slimy/ext",
		},
		{
			name: "project root beats user root",
			files: map[string]string{
				userPath:                 "root: user\n",
				"/work/repo/.slimy.yaml": "root: ..\n",
			},
			want: "/work",
		},
		{
			name: "explicit config file",
			files: map[string]string{
				"/etc/slimy/ci.yaml": "root: ext\n",
			},
			opts: []Option{WithConfigFile("/etc/slimy/ci.yaml")},
			want: "/etc/slimy/ext",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := load(t, newFs(t, tt.files), tt.opts...)
			assert.Equal(t, tt.want, s.Root)
		})
	}
}

func TestRootOverridesStayRelativeToWorkingDir(t *testing.T) {
	files := map[string]string{"/work/.slimy.yaml": "root: ext\n"}

	t.Run("environment", func(t *testing.T) {
		t.Setenv("SLIMY_ROOT", "env-ext")
		s := load(t, newFs(t, files))
		assert.Equal(t, "env-ext", s.Root)
	})

	t.Run("flag", func(t *testing.T) {
		flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
		flags.String("root", ".", "")
		require.NoError(t, flags.Parse([]string{"--root=flag-ext"}))

		s := load(t, newFs(t, files), WithFlags(flags))
		assert.Equal(t, "flag-ext", s.Root)
	})

	t.Run("unset flag", func(t *testing.T) {
		flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
		flags.String("root", ".", "")
		require.NoError(t, flags.Parse(nil))

		s := load(t, newFs(t, files), WithFlags(flags))
		assert.Equal(t, "/work/ext", s.Root)
	})
}
