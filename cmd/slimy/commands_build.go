package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/slimy-theme/slimy/internal/build"
	"github.com/slimy-theme/slimy/internal/config"
	"github.com/slimy-theme/slimy/internal/log"
	"github.com/slimy-theme/slimy/internal/theme"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Generate every theme file and update the manifest",
	Long:  "Render each variant with and without italics into the themes directory and replace contributes.themes in the extension manifest",
	Args:  cobra.NoArgs,
	Run:   runBuild,
}

func init() {
	buildCmd.Flags().String("root", "", "Extension root directory")
	buildCmd.Flags().String("themes-dir", "", "Theme output directory, relative to the root")
	buildCmd.Flags().String("manifest", "", "Extension manifest, relative to the root")
	buildCmd.Flags().StringSlice("variant", nil, "Variant to build (repeatable, default: all known)")
	buildCmd.Flags().Bool("watch", false, "Rebuild when the scheme file or config changes")
}

func runBuild(cmd *cobra.Command, args []string) {
	watch, _ := cmd.Flags().GetBool("watch")

	settings := loadSettings(cmd)
	if err := buildThemes(settings); err != nil {
		log.Fatalf("Error building themes: %v", err)
	}
	if !watch {
		return
	}

	files := settings.ConfigFiles
	if path := settings.SchemePath(); path != "" {
		files = append(files, path)
	}
	if len(files) == 0 {
		log.Fatalf("Nothing to watch: set --scheme-file or add a %s", config.ProjectConfigName)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Infof("Watching %d file(s) for changes", len(files))
	err := build.Watch(ctx, files, build.DefaultDebounce, func() error {
		settings, err := resolveSettings(cmd)
		if err != nil {
			return err
		}
		return buildThemes(settings)
	})
	if err != nil {
		log.Fatalf("Error watching files: %v", err)
	}
}

func buildThemes(settings *config.Settings) error {
	registry, err := newRegistry(settings)
	if err != nil {
		return err
	}

	report, err := build.Run(afero.NewOsFs(), build.Options{
		Registry:     registry,
		Variants:     settings.Variants,
		ThemesPath:   settings.ThemesPath(),
		ManifestPath: settings.ManifestPath(),
	})
	if err != nil {
		return err
	}

	for _, v := range registry.Variants() {
		warnMisses(v.ID, report.Misses[v.ID])
	}

	fmt.Printf("Wrote %d themes to %s\n", len(report.Outputs), settings.ThemesPath())
	return nil
}

func warnMisses(id string, misses []theme.Miss) {
	for _, m := range misses {
		log.Warn("Contrast below target",
			"variant", id,
			"role", m.Role,
			"background", m.Base.Hex(),
			"foreground", m.Chosen.Hex(),
			"best", fmt.Sprintf("%.2f", m.Best),
			"target", fmt.Sprintf("%.1f", m.Ratio),
		)
	}
}
