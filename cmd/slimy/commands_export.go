package main

import (
	"os"

	"github.com/slimy-theme/slimy/internal/log"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [variant...]",
	Short: "Print schemes as a scheme file",
	Long:  "Print the given schemes, or all known ones, as YAML that scheme-file accepts",
	Run:   runExport,
}

func runExport(cmd *cobra.Command, args []string) {
	settings := loadSettings(cmd)
	registry := loadRegistry(settings)

	if err := registry.Encode(os.Stdout, args...); err != nil {
		log.Fatalf("Error: %v", err)
	}
}
