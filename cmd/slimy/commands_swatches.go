package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/slimy-theme/slimy/internal/color"
	"github.com/slimy-theme/slimy/internal/log"
	"github.com/spf13/cobra"
)

var swatchesCmd = &cobra.Command{
	Use:   "swatches <variant>",
	Short: "Preview a scheme in the terminal",
	Long:  "Print every color slot of a scheme as a colored swatch",
	Args:  cobra.ExactArgs(1),
	Run:   runSwatches,
}

var (
	swatchPathStyle  = lipgloss.NewStyle().Width(28)
	swatchUnsetStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true)
)

func runSwatches(cmd *cobra.Command, args []string) {
	settings := loadSettings(cmd)
	registry := loadRegistry(settings)

	s, v, err := registry.Lookup(args[0])
	if err != nil {
		log.Fatalf("Error: %v", err)
	}

	fmt.Printf("%s (%s)\n\n", v.ID, v.Type)

	for _, slot := range s.Slots() {
		if !slot.Set {
			fmt.Println("      " + swatchPathStyle.Render(slot.Path) + swatchUnsetStyle.Render("unset"))
			continue
		}

		hex := slot.Color.Hex()
		fmt.Println(swatch(slot.Color) + "  " + swatchPathStyle.Render(slot.Path) + hex)
	}
}

// swatch renders c as a block labelled "Aa" in whichever of black or white
// reads better on it. Terminals have no alpha; the opaque color is shown.
func swatch(c color.Color) string {
	fg := color.White
	if c.IsLight() {
		fg = color.Black
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(c.Hex()[:7])).
		Foreground(lipgloss.Color(fg.Hex()[:7])).
		Render(" Aa ")
}
