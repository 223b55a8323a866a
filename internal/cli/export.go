package cli

import (
	"fmt"

	"github.com/kmorrow/evq/internal/snapshot"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export <path>",
	Short: "Export the current state as a snapshot file",
	Args:  cobra.ExactArgs(1),
	RunE:  withApp(runExport),
}

var exportCanonical bool

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().BoolVar(&exportCanonical, "canonical", false, "Write compact canonical JSON instead of indented output")
}

func runExport(app *App, cmd *cobra.Command, args []string) error {
	result, err := snapshot.Export(app.Store.Get(), args[0], exportCanonical)
	if err != nil {
		return err
	}
	fmt.Printf("Exported snapshot to %s (%d bytes)\n", result.OutputPath, result.Bytes)
	fmt.Printf("Revision: %s\n", result.SnapshotRev)
	return nil
}
