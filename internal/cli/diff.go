package cli

import (
	"fmt"

	"github.com/kmorrow/evq/internal/snapshot"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/spf13/cobra"
)

var diffCmd = &cobra.Command{
	Use:   "diff <snapshot> [snapshot]",
	Short: "Diff a snapshot against the current state, or two snapshots",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  withApp(runDiff),
}

func init() {
	rootCmd.AddCommand(diffCmd)
}

func runDiff(app *App, cmd *cobra.Command, args []string) error {
	fromSnap, err := snapshot.Read(args[0])
	if err != nil {
		return err
	}
	fromText, err := snapshot.PrettyJSON(fromSnap.State)
	if err != nil {
		return err
	}
	fromLabel := args[0]

	var toText []byte
	var toLabel string
	if len(args) == 2 {
		toSnap, err := snapshot.Read(args[1])
		if err != nil {
			return err
		}
		toText, err = snapshot.PrettyJSON(toSnap.State)
		if err != nil {
			return err
		}
		toLabel = args[1]
	} else {
		current, err := snapshot.Build(app.Store.Get())
		if err != nil {
			return err
		}
		toText, err = snapshot.PrettyJSON(current.State)
		if err != nil {
			return err
		}
		toLabel = "current"
	}

	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(fromText) + "\n"),
		B:        difflib.SplitLines(string(toText) + "\n"),
		FromFile: fromLabel,
		ToFile:   toLabel,
		Context:  3,
	}
	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return fmt.Errorf("failed to compute diff: %w", err)
	}
	if text == "" {
		fmt.Println("No differences")
		return nil
	}
	fmt.Print(text)
	return nil
}
