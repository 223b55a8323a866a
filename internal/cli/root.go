package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "evq",
	Short: "Event-management back office on a local persistent state store",
	Long: `evq manages events, clients, services, RFQs, and suppliers on a
single versioned state store. Stored data is migrated across schema
versions and reconciled against the shipped defaults on every load.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("state", "", "Path to state file or database (overrides EVQ_STATE_PATH)")
	rootCmd.PersistentFlags().String("backend", "", "Storage backend: file or sqlite (overrides EVQ_BACKEND)")
	rootCmd.PersistentFlags().String("output", "", "Output format: table, json, yaml, tsv (overrides EVQ_OUTPUT)")
}
