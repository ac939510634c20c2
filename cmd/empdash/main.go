package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ludo-technologies/empdash/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "empdash",
	Short: "Employee performance and recruitment risk dashboard",
	Long: `empdash serves an HTML dashboard of employee and team events.

Each report shows the entity's name, cumulative positive and negative
event trends, the predicted recruitment risk and the manager notes.

Commands:
  • serve the interactive dashboard over HTTP
  • render or export static report documents
  • list selectable employees and teams
  • print predicted recruitment risk`,
	Version:       version.Short(),
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	// Global flags
	registerGlobalFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(NewServeCmd())
	rootCmd.AddCommand(NewRenderCmd())
	rootCmd.AddCommand(NewExportCmd())
	rootCmd.AddCommand(NewOptionsCmd())
	rootCmd.AddCommand(NewRiskCmd())
	rootCmd.AddCommand(NewInitCmd())
	rootCmd.AddCommand(NewVersionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
