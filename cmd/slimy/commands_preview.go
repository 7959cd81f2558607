package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/colorprofile"
	"github.com/slimy-theme/slimy/internal/log"
	"github.com/slimy-theme/slimy/internal/preview"
	"github.com/slimy-theme/slimy/internal/theme"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview <variant> [file]",
	Short: "Syntax-highlight code with a theme",
	Long:  "Highlight a source file, or a bundled sample, in the terminal using the token colors of a variant",
	Args:  cobra.RangeArgs(1, 2),
	Run:   runPreview,
}

func init() {
	previewCmd.Flags().String("sample", "example.go", "Bundled sample to show when no file is given ("+strings.Join(preview.Samples(), ", ")+")")
	previewCmd.Flags().Bool("no-italics", false, "Use the no-italics flavor")
}

func runPreview(cmd *cobra.Command, args []string) {
	settings := loadSettings(cmd)
	registry := loadRegistry(settings)
	noItalics, _ := cmd.Flags().GetBool("no-italics")

	s, v, err := registry.Lookup(args[0])
	if err != nil {
		log.Fatalf("Error: %v", err)
	}
	doc := theme.Build(s, v, !noItalics)

	var name, source string
	if len(args) == 2 {
		data, err := os.ReadFile(args[1])
		if err != nil {
			log.Fatalf("Error reading file: %v", err)
		}
		name, source = filepath.Base(args[1]), string(data)
	} else {
		name, _ = cmd.Flags().GetString("sample")
		source, err = preview.Sample(name)
		if err != nil {
			log.Fatalf("Error: %v", err)
		}
	}

	formatter := preview.Formatter(colorprofile.Detect(os.Stdout, os.Environ()))
	if err := preview.Render(os.Stdout, doc, name, source, formatter); err != nil {
		log.Fatalf("Error rendering preview: %v", err)
	}
}
