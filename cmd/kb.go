package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/meowyx/gaia-toolkit/internal/activity"
	"github.com/meowyx/gaia-toolkit/internal/config"
	"github.com/meowyx/gaia-toolkit/internal/nav"
	"github.com/meowyx/gaia-toolkit/internal/ui"
	"github.com/spf13/cobra"
)

// knowledgeBase is a curated node configuration bundling a model with a
// vector snapshot. Deploying one uses the same install/init/start sequence
// as a plain model.
type knowledgeBase struct {
	ID          string
	Description string
}

var knowledgeBases = []knowledgeBase{
	{"llama-3-8b-instruct_paris", "Paris travel guide on Llama 3 8B"},
	{"llama-3-8b-instruct_rustlang", "Rust programming assistant on Llama 3 8B"},
	{"phi-3-mini-instruct-4k_gaia-docs", "Gaia node documentation helper on Phi 3 Mini"},
}

func kbCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "kb",
		Aliases: []string{"knowledge-base"},
		Short:   "Browse and deploy curated knowledge bases",
		Run: func(cmd *cobra.Command, args []string) {
			cfg := config.Load()
			in := bufio.NewReader(os.Stdin)
			trapInterrupt()

			runKnowledgeBases(cfg, in)

			if promptReturnToMenu(in) {
				runInteractive(nav.ScreenMenu)
			}
		},
	}
}

func runKnowledgeBases(cfg *config.Config, in *bufio.Reader) {
	ui.Banner("knowledge bases")
	for i, kb := range knowledgeBases {
		fmt.Printf("  %d. %s\n     %s\n\n", i+1, ui.Brand.Sprint(kb.ID), kb.Description)
	}

	fmt.Printf("  Pick one to deploy (1-%d, empty to go back): ", len(knowledgeBases))
	line, err := in.ReadString('\n')
	if err != nil {
		return
	}
	i, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || i < 1 || i > len(knowledgeBases) {
		return
	}
	kb := knowledgeBases[i-1]
	configURL := fmt.Sprintf(cfg.Catalog.ConfigTemplate, kb.ID)

	fmt.Printf("\n  Config: %s\n", ui.Subtle.Sprint(configURL))
	if !confirmIn(in, fmt.Sprintf("Deploy %s now?", kb.ID)) {
		return
	}

	n := newNode(cfg.Node.Binary, cfg.Node.InstallScript)
	if err := n.Deploy(configURL, n.Installed()); err != nil {
		ui.Bad.Printf("gaiat: %v\n", err)
		return
	}
	_ = activity.Log("deploy", kb.ID, configURL)
	fmt.Printf("\n  %s Knowledge base %s is live.\n", ui.StatusIcon(true), kb.ID)
}
