package main

import (
	"fmt"
	"os"

	"github.com/slimy-theme/slimy/internal/config"
	"github.com/slimy-theme/slimy/internal/log"
	"github.com/slimy-theme/slimy/internal/scheme"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:   "slimy",
	Short: "Slimy VS Code theme generator",
	Long: `Slimy generates the Slimy family of VS Code color themes from a small
set of named color schemes.

Every scheme is rendered with and without italics, written to the themes
directory, and listed in the extension manifest.`,
	SilenceUsage: true,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (default: nearest "+config.ProjectConfigName+")")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error")
	rootCmd.PersistentFlags().String("scheme-file", "", "YAML file with extra or replacement schemes")

	rootCmd.AddCommand(buildCmd, themeCmd, auditCmd, swatchesCmd, exportCmd, previewCmd, variantsCmd, initCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// resolveSettings resolves config for cmd and applies the log level.
func resolveSettings(cmd *cobra.Command) (*config.Settings, error) {
	opts := []config.Option{config.WithFlags(cmd.Flags())}
	if configFile != "" {
		opts = append(opts, config.WithConfigFile(configFile))
	}

	settings, err := config.Load(opts...)
	if err != nil {
		return nil, err
	}
	if err := log.SetLevel(settings.LogLevel); err != nil {
		return nil, err
	}
	for _, file := range settings.ConfigFiles {
		log.Debugf("Loaded config %s", file)
	}
	return settings, nil
}

func loadSettings(cmd *cobra.Command) *config.Settings {
	settings, err := resolveSettings(cmd)
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}
	return settings
}

// newRegistry returns the bundled schemes, overridden by the configured
// scheme file if there is one.
func newRegistry(settings *config.Settings) (*scheme.Registry, error) {
	registry := scheme.Builtin()

	path := settings.SchemePath()
	if path == "" {
		return registry, nil
	}

	custom, err := scheme.LoadFile(afero.NewOsFs(), path)
	if err != nil {
		return nil, err
	}
	registry.Merge(custom)
	log.Debugf("Loaded %d scheme(s) from %s", custom.Len(), path)
	return registry, nil
}

func loadRegistry(settings *config.Settings) *scheme.Registry {
	registry, err := newRegistry(settings)
	if err != nil {
		log.Fatalf("Error loading schemes: %v", err)
	}
	return registry
}
