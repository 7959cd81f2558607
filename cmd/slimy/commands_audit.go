package main

import (
	"fmt"

	"github.com/slimy-theme/slimy/internal/log"
	"github.com/slimy-theme/slimy/internal/scheme"
	"github.com/slimy-theme/slimy/internal/theme"
	"github.com/spf13/cobra"
)

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Report unreadable color pairs",
	Long:  "Build every variant and list the roles where no candidate color reached the contrast target",
	Args:  cobra.NoArgs,
	Run:   runAudit,
}

func init() {
	auditCmd.Flags().StringSlice("variant", nil, "Variant to audit (repeatable, default: all known)")
}

func runAudit(cmd *cobra.Command, args []string) {
	settings := loadSettings(cmd)
	registry := loadRegistry(settings)

	misses, err := theme.Audit(registry)
	if err != nil {
		log.Fatalf("Error auditing schemes: %v", err)
	}

	ids, _ := cmd.Flags().GetStringSlice("variant")
	if len(ids) == 0 {
		for _, v := range registry.Variants() {
			ids = append(ids, v.ID)
		}
	}

	total := 0
	for _, id := range ids {
		found, ok := misses[id]
		if !ok {
			log.Fatalf("Error: %v: %q", scheme.ErrUnknownVariant, id)
		}
		total += len(found)

		if len(found) == 0 {
			fmt.Printf("%s: ok\n", id)
			continue
		}

		fmt.Printf("%s: %d miss(es)\n", id, len(found))
		for _, m := range found {
			fmt.Printf("  %-36s %s on %s  %5.2f < %.1f\n", m.Role, m.Chosen.Hex(), m.Base.Hex(), m.Best, m.Ratio)
		}
	}

	if total > 0 {
		log.Warnf("%d role(s) fell back to an unreadable color", total)
	}
}
