package cmd

import (
	"github.com/meowyx/gaia-toolkit/internal/catalog"
	"github.com/meowyx/gaia-toolkit/internal/config"
	"github.com/meowyx/gaia-toolkit/internal/nav"
	"github.com/meowyx/gaia-toolkit/internal/ui"
	"github.com/spf13/cobra"
)

var version = "0.3.0"

var offlineMode bool

var rootCmd = &cobra.Command{
	Use:   "gaiat",
	Short: "gaiat — deploy LLMs on your Gaia node",
	Long: ui.Brand.Sprint(ui.Globe+" gaiat") + " — discover, check, and deploy LLM configurations\n" +
		ui.Subtle.Sprint("Pick a model that fits your hardware and bring a Gaia node up with it"),
	Version: version + " " + ui.Globe,
	Run: func(cmd *cobra.Command, args []string) {
		// No subcommand opens the interactive menu.
		runInteractive(nav.ScreenMenu)
	},
}

func init() {
	rootCmd.SetVersionTemplate("gaiat {{ .Version }}\n")
	rootCmd.PersistentFlags().BoolVar(&offlineMode, "offline", false, "Skip the remote catalog and use the built-in model list")

	rootCmd.AddCommand(
		listCmd(),
		infoCmd(),
		runCmd(),
		setupCmd(),
		recommendCmd(),
		chatCmd(),
		kbCmd(),
		doctorCmd(),
	)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadCatalog resolves the model catalog with the configured endpoints.
func loadCatalog(cfg *config.Config) []catalog.Entry {
	r := catalog.NewResolver(cfg.Catalog.ListingURL, cfg.Catalog.ConfigTemplate)
	r.Offline = offlineMode
	r.Logf = func(format string, args ...any) {
		ui.Subtle.Printf("  "+format+"\n", args...)
	}
	return r.Resolve()
}
