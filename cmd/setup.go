package cmd

import (
	"bufio"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/meowyx/gaia-toolkit/internal/activity"
	"github.com/meowyx/gaia-toolkit/internal/catalog"
	"github.com/meowyx/gaia-toolkit/internal/config"
	"github.com/meowyx/gaia-toolkit/internal/gate"
	"github.com/meowyx/gaia-toolkit/internal/nav"
	"github.com/meowyx/gaia-toolkit/internal/sysinfo"
	"github.com/meowyx/gaia-toolkit/internal/ui"
	"github.com/spf13/cobra"
)

func setupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "setup",
		Short: "Guided setup — pick a model that fits this system",
		Run: func(cmd *cobra.Command, args []string) {
			cfg := config.Load()
			in := bufio.NewReader(os.Stdin)
			trapInterrupt()

			runSetup(cfg, loadCatalog(cfg), sysinfo.Detect(), in)

			if promptReturnToMenu(in) {
				runInteractive(nav.ScreenMenu)
			}
		},
	}
}

// runSetup walks the user from a use-case category to a running node. Unlike
// the direct run path it never blocks on RAM: low headroom gets a graduated
// warning and the choice stays with the user.
func runSetup(cfg *config.Config, entries []catalog.Entry, profile sysinfo.Profile, in *bufio.Reader) {
	ui.Banner("guided setup")
	fmt.Printf("  Detected system: %s\n", profile)

	for {
		category := pickCategory(entries, in)
		if category == "" {
			fmt.Println("  Setup cancelled.")
			return
		}

		entry := pickModelInCategory(entries, category, profile, in)
		if entry == nil {
			// Let the user try a different category instead of giving up.
			if !confirmIn(in, "Try a different category?") {
				fmt.Println("  Setup cancelled.")
				return
			}
			continue
		}

		warnAdvice(*entry, profile)
		if !confirmIn(in, fmt.Sprintf("Deploy %s now?", entry.DisplayName)) {
			fmt.Println("  Setup cancelled.")
			return
		}

		n := newNode(cfg.Node.Binary, cfg.Node.InstallScript)
		if err := n.Deploy(entry.ConfigURL, n.Installed()); err != nil {
			ui.Bad.Printf("gaiat: %v\n", err)
			return
		}

		cfg.Setup.Complete = true
		cfg.Setup.Model = entry.ID
		_ = config.Save(cfg)
		_ = activity.Log("setup", entry.ID, category)

		fmt.Printf("\n  %s Setup complete — %s is serving on your node.\n", ui.StatusIcon(true), entry.DisplayName)
		return
	}
}

// pickCategory lists the distinct primary use-case labels in the catalog.
func pickCategory(entries []catalog.Entry, in *bufio.Reader) string {
	var categories []string
	for _, e := range entries {
		if len(e.UseCases) > 0 && !slices.Contains(categories, e.UseCases[0]) {
			categories = append(categories, e.UseCases[0])
		}
	}

	fmt.Println("\n  What will you use the node for?")
	for i, c := range categories {
		fmt.Printf("  %d. %s\n", i+1, c)
	}
	fmt.Printf("\n  Pick a category (1-%d, empty to cancel): ", len(categories))

	line, err := in.ReadString('\n')
	if err != nil {
		return ""
	}
	line = strings.TrimSpace(line)
	i, err := strconv.Atoi(line)
	if err != nil || i < 1 || i > len(categories) {
		return ""
	}
	return categories[i-1]
}

// pickModelInCategory shows the category's models with a fitness marker and
// lets the user choose one.
func pickModelInCategory(entries []catalog.Entry, category string, profile sysinfo.Profile, in *bufio.Reader) *catalog.Entry {
	var candidates []catalog.Entry
	for _, e := range entries {
		if slices.Contains(e.UseCases, category) {
			candidates = append(candidates, e)
		}
	}
	if len(candidates) == 0 {
		fmt.Println("  No models in this category.")
		return nil
	}

	fmt.Printf("\n  Models for %s:\n", ui.Brand.Sprint(category))
	for i, e := range candidates {
		fmt.Printf("  %d. %s %s — %s tier, needs %d GB\n", i+1, adviceIcon(e, profile), e.DisplayName, e.Tier, e.MinRAMGB)
	}
	fmt.Printf("\n  Pick a model (1-%d, empty to go back): ", len(candidates))

	line, err := in.ReadString('\n')
	if err != nil {
		return nil
	}
	i, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || i < 1 || i > len(candidates) {
		return nil
	}
	return &candidates[i-1]
}

func adviceIcon(entry catalog.Entry, profile sysinfo.Profile) string {
	switch gate.Advise(entry, profile) {
	case gate.Compatible:
		return ui.StatusIcon(true)
	case gate.Marginal:
		return ui.WarnIcon()
	default:
		return ui.StatusIcon(false)
	}
}

func warnAdvice(entry catalog.Entry, profile sysinfo.Profile) {
	switch gate.Advise(entry, profile) {
	case gate.Marginal:
		ui.Warn.Printf("\n  %s This model is close to your RAM limit; expect heavy swapping.\n", ui.WarnIcon())
	case gate.Incompatible:
		ui.Warn.Printf("\n  %s This model wants %d GB but you have %.1f GB. It will likely be unusable.\n",
			ui.WarnIcon(), entry.MinRAMGB, profile.TotalRAMGB)
	}
}

func confirmIn(in *bufio.Reader, prompt string) bool {
	fmt.Printf("  %s [y/N] ", prompt)
	line, err := in.ReadString('\n')
	if err != nil {
		return false
	}
	line = strings.ToLower(strings.TrimSpace(line))
	return line == "y" || line == "yes"
}
