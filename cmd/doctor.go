package cmd

import (
	"fmt"
	"os"

	"github.com/meowyx/gaia-toolkit/internal/config"
	"github.com/meowyx/gaia-toolkit/internal/node"
	"github.com/meowyx/gaia-toolkit/internal/sysinfo"
	"github.com/meowyx/gaia-toolkit/internal/ui"
	"github.com/spf13/cobra"
)

func doctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check this system's readiness for running a node",
		Run: func(cmd *cobra.Command, args []string) {
			cfg := config.Load()
			ui.Banner("doctor")

			n := node.New(cfg.Node.Binary, cfg.Node.InstallScript)
			fmt.Printf("  %s Node runtime (%s) on PATH\n", ui.StatusIcon(n.Installed()), cfg.Node.Binary)
			if !n.Installed() {
				ui.Subtle.Println("    `gaiat run <model>` installs it for you")
			}

			profile := sysinfo.Detect()
			fmt.Printf("  %s Memory: %s\n", ui.StatusIcon(profile.TotalRAMGB >= 8), profile)

			gpus := sysinfo.DetectGPUs()
			if len(gpus) == 0 {
				fmt.Printf("  %s No GPU detected — CPU inference only\n", ui.WarnIcon())
			}
			for _, g := range gpus {
				label := g.Model
				if g.VRAM != "" {
					label += " (" + g.VRAM + ")"
				}
				fmt.Printf("  %s GPU: %s\n", ui.StatusIcon(true), label)
			}

			if _, err := os.Stat(config.ConfigDir()); err == nil {
				fmt.Printf("  %s Config: %s\n", ui.StatusIcon(true), config.ConfigDir())
			} else {
				fmt.Printf("  %s Config: defaults (nothing saved yet)\n", ui.WarnIcon())
			}
		},
	}
}
