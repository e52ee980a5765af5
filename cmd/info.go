package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/meowyx/gaia-toolkit/internal/catalog"
	"github.com/meowyx/gaia-toolkit/internal/config"
	"github.com/meowyx/gaia-toolkit/internal/gate"
	"github.com/meowyx/gaia-toolkit/internal/sysinfo"
	"github.com/meowyx/gaia-toolkit/internal/ui"
	"github.com/spf13/cobra"
)

func infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <model>",
		Short: "Show details and compatibility for a model",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			entries := loadCatalog(config.Load())
			entry := catalog.Find(entries, args[0])
			if entry == nil {
				ui.Bad.Printf("gaiat: unknown model %q\n", args[0])
				fmt.Println("  Run `gaiat list` to see available models")
				os.Exit(1)
			}

			ui.Banner("model info")
			printModelInfo(*entry, sysinfo.Detect())
		},
	}
}

func printModelInfo(entry catalog.Entry, profile sysinfo.Profile) {
	fmt.Printf("  %s %s\n\n", ui.Brand.Sprint(entry.DisplayName), ui.Subtle.Sprintf("(%s)", entry.ID))
	fmt.Printf("  Tier:       %s (%s parameters)\n", entry.Tier, entry.Tier.ParamRange())
	fmt.Printf("  Min RAM:    %d GB\n", entry.MinRAMGB)
	fmt.Printf("  Use cases:  %s\n", strings.Join(entry.UseCases, ", "))
	fmt.Printf("  Config:     %s\n\n", entry.ConfigURL)

	switch gate.Check(entry, profile) {
	case gate.Compatible:
		fmt.Printf("  %s Compatible with this system (%s)\n", ui.StatusIcon(true), profile)
	default:
		short := gate.Shortfall(entry, profile)
		fmt.Printf("  %s Not compatible: %s, %.1f GB short\n", ui.StatusIcon(false), profile, short)
		fmt.Println("  A blocked model can still be forced with `gaiat run --force`")
	}
}
