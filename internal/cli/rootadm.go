package cli

import (
	"github.com/spf13/cobra"
)

var admRootCmd = &cobra.Command{
	Use:           "evqadm",
	Short:         "Administrative tooling for evq state stores",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	admRootCmd.PersistentFlags().String("state", "", "Path to the state file or database")
	admRootCmd.PersistentFlags().String("backend", "", "Storage backend (file, sqlite)")
	admRootCmd.PersistentFlags().String("output", "", "Output format (table, json, yaml, tsv)")
}

// ExecuteAdmin runs the admin CLI.
func ExecuteAdmin() error {
	return admRootCmd.Execute()
}
