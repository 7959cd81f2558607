package main

import (
	"fmt"

	"github.com/slimy-theme/slimy/internal/build"
	"github.com/slimy-theme/slimy/internal/log"
	"github.com/slimy-theme/slimy/internal/theme"
	"github.com/spf13/cobra"
)

var themeCmd = &cobra.Command{
	Use:   "theme <variant>",
	Short: "Print one theme document",
	Long:  "Render a single variant and print its color theme JSON to stdout",
	Args:  cobra.ExactArgs(1),
	Run:   runTheme,
}

func init() {
	themeCmd.Flags().Bool("no-italics", false, "Render the no-italics flavor")
}

func runTheme(cmd *cobra.Command, args []string) {
	settings := loadSettings(cmd)
	registry := loadRegistry(settings)
	noItalics, _ := cmd.Flags().GetBool("no-italics")

	s, v, err := registry.Lookup(args[0])
	if err != nil {
		log.Fatalf("Error: %v", err)
	}

	doc := theme.Build(s, v, !noItalics, theme.WithMissHandler(func(m theme.Miss) {
		warnMisses(v.ID, []theme.Miss{m})
	}))

	output, err := build.Encode(doc)
	if err != nil {
		log.Fatalf("Error encoding theme: %v", err)
	}
	fmt.Println(string(output))
}
