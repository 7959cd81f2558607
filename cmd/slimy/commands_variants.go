package main

import (
	"fmt"

	"github.com/slimy-theme/slimy/internal/naming"
	"github.com/spf13/cobra"
)

var variantsCmd = &cobra.Command{
	Use:   "variants",
	Short: "List known variants",
	Long:  "List every variant with its theme type, contrast level and display name",
	Args:  cobra.NoArgs,
	Run:   runVariants,
}

func runVariants(cmd *cobra.Command, args []string) {
	settings := loadSettings(cmd)
	registry := loadRegistry(settings)

	variants := registry.Variants()

	maxIDLen := len("Variant")
	for _, v := range variants {
		if len(v.ID) > maxIDLen {
			maxIDLen = len(v.ID)
		}
	}
	idPad := maxIDLen + 2

	fmt.Printf("%-*s  %-6s  %-8s  %s\n", idPad, "Variant", "Type", "Contrast", "Name")
	for _, v := range variants {
		contrast := "normal"
		if v.HighContrast {
			contrast = "high"
		}
		fmt.Printf("%-*s  %-6s  %-8s  %s\n", idPad, v.ID, v.Type, contrast, naming.DisplayName(v, true))
	}
}
