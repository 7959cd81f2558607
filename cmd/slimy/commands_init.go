package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/slimy-theme/slimy/internal/config"
	"github.com/slimy-theme/slimy/internal/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Write a default project config",
	Long:  "Create a commented " + config.ProjectConfigName + " in the given directory (default: current directory)",
	Args:  cobra.MaximumNArgs(1),
	Run:   runInit,
}

func runInit(cmd *cobra.Command, args []string) {
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	} else if wd, err := os.Getwd(); err == nil {
		dir = wd
	}

	path := filepath.Join(dir, config.ProjectConfigName)
	if err := config.WriteDefault(afero.NewOsFs(), path); err != nil {
		log.Fatalf("Error: %v", err)
	}
	fmt.Printf("Wrote %s\n", path)
}
