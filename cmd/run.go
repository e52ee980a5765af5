package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/meowyx/gaia-toolkit/internal/activity"
	"github.com/meowyx/gaia-toolkit/internal/catalog"
	"github.com/meowyx/gaia-toolkit/internal/config"
	"github.com/meowyx/gaia-toolkit/internal/gate"
	"github.com/meowyx/gaia-toolkit/internal/node"
	"github.com/meowyx/gaia-toolkit/internal/sysinfo"
	"github.com/meowyx/gaia-toolkit/internal/ui"
	"github.com/spf13/cobra"
)

func runCmd() *cobra.Command {
	var skipInstall, force bool

	cmd := &cobra.Command{
		Use:   "run <model>",
		Short: "Deploy a model to the local Gaia node and start it",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			cfg := config.Load()
			entries := loadCatalog(cfg)
			entry := catalog.Find(entries, args[0])
			if entry == nil {
				ui.Bad.Printf("gaiat: unknown model %q\n", args[0])
				fmt.Println("  Run `gaiat list` to see available models")
				os.Exit(1)
			}

			ui.Banner("deploy " + entry.DisplayName)
			if err := deploy(cfg, *entry, sysinfo.Detect(), skipInstall, force, os.Stdin, os.Stdout); err != nil {
				ui.Bad.Printf("gaiat: %v\n", err)
				os.Exit(1)
			}
		},
	}

	cmd.Flags().BoolVar(&skipInstall, "skip-install", false, "Assume the node runtime is already installed")
	cmd.Flags().BoolVar(&force, "force", false, "Request the override ritual if the model is blocked")

	return cmd
}

// newNode and newRitual are swapped out in tests to avoid real subprocesses
// and real multi-second waits.
var (
	newNode   = node.New
	newRitual = gate.NewRitual
)

// checkBlocked reports whether the direct-run gate blocks this model.
func checkBlocked(entry catalog.Entry, profile sysinfo.Profile) bool {
	return gate.Check(entry, profile) == gate.Incompatible
}

// deploy gates a model against the host and, if allowed, walks the runtime
// through install, init and start. A blocked model only proceeds when --force
// was given and the override ritual completes.
func deploy(cfg *config.Config, entry catalog.Entry, profile sysinfo.Profile, skipInstall, force bool, in io.Reader, out io.Writer) error {
	if gate.Check(entry, profile) == gate.Incompatible {
		short := gate.Shortfall(entry, profile)
		if !force {
			return fmt.Errorf("%s needs %d GB RAM but this system has %.1f GB (%.1f GB short); re-run with --force to override",
				entry.DisplayName, entry.MinRAMGB, profile.TotalRAMGB, short)
		}
		if !newRitual(in, out).Request(entry, profile) {
			return fmt.Errorf("override not granted; %s stays blocked (%.1f GB short)", entry.DisplayName, short)
		}
	}

	n := newNode(cfg.Node.Binary, cfg.Node.InstallScript)

	if !skipInstall {
		fmt.Fprintln(out, "  Installing node runtime...")
	}
	fmt.Fprintf(out, "  Deploying %s\n", ui.Brand.Sprint(entry.ID))
	if err := n.Deploy(entry.ConfigURL, skipInstall); err != nil {
		return err
	}

	_ = activity.Log("deploy", entry.ID, entry.ConfigURL)
	fmt.Fprintf(out, "\n  %s Node is up with %s\n", ui.StatusIcon(true), entry.DisplayName)
	return nil
}
