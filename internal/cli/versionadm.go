package cli

import (
	"fmt"

	"github.com/kmorrow/evq/internal/defaults"
	"github.com/spf13/cobra"
)

var admVersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("evqadm %s (schema v%d)\n", Version, defaults.DataVersion)
	},
}

func init() {
	admRootCmd.AddCommand(admVersionCmd)
}
