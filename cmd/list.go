package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/meowyx/gaia-toolkit/internal/catalog"
	"github.com/meowyx/gaia-toolkit/internal/config"
	"github.com/meowyx/gaia-toolkit/internal/ui"
	"github.com/spf13/cobra"
)

func listCmd() *cobra.Command {
	var sizeFlag, useCaseFlag, formatFlag string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List available model configurations",
		Run: func(cmd *cobra.Command, args []string) {
			entries := loadCatalog(config.Load())
			entries = filterEntries(entries, sizeFlag, useCaseFlag)

			if formatFlag == "json" {
				printListJSON(entries)
				return
			}

			ui.Banner("model catalog")
			printListTable(entries)
		},
	}

	cmd.Flags().StringVar(&sizeFlag, "size", "", "Filter by tier (small, standard, medium, heavy, big, max)")
	cmd.Flags().StringVar(&useCaseFlag, "use-case", "", "Filter by use-case label (e.g. coding, chat)")
	cmd.Flags().StringVar(&formatFlag, "format", "table", "Output format: table or json")

	return cmd
}

// filterEntries applies the list filters; empty filters pass everything.
func filterEntries(entries []catalog.Entry, size, useCase string) []catalog.Entry {
	var out []catalog.Entry
	for _, e := range entries {
		if size != "" {
			tier, ok := catalog.ParseTier(size)
			if !ok || e.Tier != tier {
				continue
			}
		}
		if useCase != "" && !slices.Contains(e.UseCases, strings.ToLower(useCase)) {
			continue
		}
		out = append(out, e)
	}
	return out
}

func printListTable(entries []catalog.Entry) {
	if len(entries) == 0 {
		fmt.Println("  No models match these filters.")
		return
	}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			e.ID,
			e.Tier.String(),
			fmt.Sprintf("%d GB", e.MinRAMGB),
			strings.Join(e.UseCases, ", "),
		})
	}
	ui.Table([]string{"MODEL", "TIER", "MIN RAM", "USE CASES"}, rows)
	fmt.Printf("\n  %d model(s). Run `gaiat info <model>` for details.\n", len(entries))
}

func printListJSON(entries []catalog.Entry) {
	type jsonEntry struct {
		ID       string   `json:"id"`
		Name     string   `json:"name"`
		Tier     string   `json:"tier"`
		MinRAMGB int      `json:"min_ram_gb"`
		UseCases []string `json:"use_cases"`
		Config   string   `json:"config_url"`
	}

	out := make([]jsonEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, jsonEntry{
			ID:       e.ID,
			Name:     e.DisplayName,
			Tier:     e.Tier.String(),
			MinRAMGB: e.MinRAMGB,
			UseCases: e.UseCases,
			Config:   e.ConfigURL,
		})
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(out)
}
