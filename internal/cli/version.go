package cli

import (
	"fmt"

	"github.com/kmorrow/evq/internal/defaults"
	"github.com/spf13/cobra"
)

// Version is set at build time via -ldflags.
var Version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("evq %s (schema v%d)\n", Version, defaults.DataVersion)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
