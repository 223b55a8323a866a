package cli

import (
	"fmt"
	"sort"

	"github.com/kmorrow/evq/internal/defaults"
	"github.com/kmorrow/evq/internal/migrate"
	"github.com/kmorrow/evq/internal/state"
	"github.com/spf13/cobra"
)

var admMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Inspect and run schema migrations",
}

var admMigrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the stored schema version and pending migration steps",
	Args:  cobra.NoArgs,
	RunE:  withAppNoStore(runAdmMigrateStatus),
}

var admMigrateRunCmd = &cobra.Command{
	Use:   "run",
	Short: "Migrate the stored state to the current schema version",
	Args:  cobra.NoArgs,
	RunE:  withAppNoStore(runAdmMigrateRun),
}

func init() {
	admRootCmd.AddCommand(admMigrateCmd)
	admMigrateCmd.AddCommand(admMigrateStatusCmd, admMigrateRunCmd)
}

func runAdmMigrateStatus(app *App, cmd *cobra.Command, args []string) error {
	raw, ok, err := app.Blob.Read()
	if err != nil {
		return err
	}
	if !ok {
		fmt.Printf("No stored state at %s\n", app.Config.StatePath)
		fmt.Printf("A fresh store starts at schema v%d\n", defaults.DataVersion)
		return nil
	}

	info, err := state.Inspect(raw)
	if err != nil {
		return err
	}

	fmt.Printf("Path:    %s\n", app.Config.StatePath)
	fmt.Printf("Shape:   %s\n", info.Shape)
	fmt.Printf("Stored:  v%d\n", info.Version)
	fmt.Printf("Current: v%d\n", defaults.DataVersion)

	if info.Version >= defaults.DataVersion {
		fmt.Println("Up to date")
		return nil
	}

	pending := make([]int, 0, defaults.DataVersion-info.Version)
	for v := range migrate.Steps {
		if v > info.Version && v <= defaults.DataVersion {
			pending = append(pending, v)
		}
	}
	sort.Ints(pending)
	fmt.Printf("Pending steps: %v\n", pending)
	return nil
}

func runAdmMigrateRun(app *App, cmd *cobra.Command, args []string) error {
	raw, ok, err := app.Blob.Read()
	if err != nil {
		return err
	}
	var before int
	if ok {
		info, err := state.Inspect(raw)
		if err != nil {
			return err
		}
		before = info.Version
	}

	// Opening the store runs migration, defaults reconciliation, and
	// persists the upgraded envelope.
	if _, err := state.Open(app.Blob); err != nil {
		return err
	}
	fmt.Printf("Migrated v%d -> v%d\n", before, defaults.DataVersion)
	return nil
}
