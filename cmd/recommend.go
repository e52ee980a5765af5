package cmd

import (
	"bufio"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/meowyx/gaia-toolkit/internal/catalog"
	"github.com/meowyx/gaia-toolkit/internal/config"
	"github.com/meowyx/gaia-toolkit/internal/gate"
	"github.com/meowyx/gaia-toolkit/internal/sysinfo"
	"github.com/meowyx/gaia-toolkit/internal/ui"
	"github.com/spf13/cobra"
)

func recommendCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "recommend",
		Short: "Suggest models that fit your hardware and purpose",
		Run: func(cmd *cobra.Command, args []string) {
			cfg := config.Load()
			trapInterrupt()
			runRecommend(loadCatalog(cfg), sysinfo.Detect(), bufio.NewReader(os.Stdin))
		},
	}
}

// purposes maps a menu choice to the labels that satisfy it. An empty label
// list matches everything.
var purposes = []struct {
	name   string
	labels []string
}{
	{"Writing code", []string{"coding", "code-generation"}},
	{"Chat and assistance", []string{"chat", "conversation", "instruction-following", "assistant"}},
	{"Small and fast", []string{"lightweight", "edge-device"}},
	{"Math and reasoning", []string{"math", "reasoning"}},
	{"Anything", nil},
}

func runRecommend(entries []catalog.Entry, profile sysinfo.Profile, in *bufio.Reader) {
	ui.Banner("recommendations")
	fmt.Printf("  Detected system: %s\n\n", profile)

	fmt.Println("  What matters most to you?")
	for i, p := range purposes {
		fmt.Printf("  %d. %s\n", i+1, p.name)
	}
	fmt.Printf("\n  Pick one (1-%d): ", len(purposes))

	line, err := in.ReadString('\n')
	if err != nil {
		return
	}
	choice, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || choice < 1 || choice > len(purposes) {
		ui.Warn.Println("  Invalid choice.")
		return
	}

	matches := matchPurpose(entries, purposes[choice-1].labels)
	if len(matches) == 0 {
		fmt.Println("\n  Nothing in the catalog fits that purpose.")
		return
	}

	best := bestPick(matches, profile)
	fmt.Println()
	rows := make([][]string, 0, len(matches))
	for _, e := range matches {
		rows = append(rows, []string{
			adviceIcon(e, profile),
			e.ID,
			e.Tier.String(),
			fmt.Sprintf("%d GB", e.MinRAMGB),
		})
	}
	ui.Table([]string{"", "MODEL", "TIER", "MIN RAM"}, rows)

	if best != nil {
		fmt.Printf("\n  Best fit: %s — `gaiat run %s`\n", ui.Brand.Sprint(best.DisplayName), best.ID)
	} else {
		fmt.Println("\n  Nothing fits comfortably; the smallest option is your safest bet.")
	}
}

// matchPurpose keeps entries carrying at least one wanted label.
func matchPurpose(entries []catalog.Entry, labels []string) []catalog.Entry {
	if len(labels) == 0 {
		return entries
	}
	var out []catalog.Entry
	for _, e := range entries {
		for _, l := range labels {
			if slices.Contains(e.UseCases, l) {
				out = append(out, e)
				break
			}
		}
	}
	return out
}

// bestPick is the largest tier that is still compatible with the host.
func bestPick(entries []catalog.Entry, profile sysinfo.Profile) *catalog.Entry {
	var best *catalog.Entry
	for i := range entries {
		if gate.Check(entries[i], profile) != gate.Compatible {
			continue
		}
		if best == nil || tierAbove(entries[i].Tier, best.Tier) {
			best = &entries[i]
		}
	}
	return best
}

// tierAbove orders tiers for picking, with unknown below everything.
func tierAbove(a, b catalog.Tier) bool {
	if a == catalog.TierUnknown {
		return false
	}
	if b == catalog.TierUnknown {
		return true
	}
	return a > b
}
