package cli

import (
	"encoding/json"
	"fmt"

	"github.com/kmorrow/evq/internal/defaults"
	"github.com/kmorrow/evq/internal/state"
	"github.com/spf13/cobra"
)

var admDoctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the stored state for problems without modifying it",
	Args:  cobra.NoArgs,
	RunE:  withAppNoStore(runAdmDoctor),
}

func init() {
	admRootCmd.AddCommand(admDoctorCmd)
}

func runAdmDoctor(app *App, cmd *cobra.Command, args []string) error {
	raw, ok, err := app.Blob.Read()
	if err != nil {
		return err
	}
	if !ok {
		fmt.Printf("OK: no stored state at %s (a fresh store will seed defaults)\n", app.Config.StatePath)
		return nil
	}

	var problems []string

	info, err := state.Inspect(raw)
	if err != nil {
		problems = append(problems, fmt.Sprintf("unreadable payload: %v", err))
	} else {
		fmt.Printf("Path:    %s\n", app.Config.StatePath)
		fmt.Printf("Shape:   %s (%d bytes)\n", info.Shape, info.Bytes)
		fmt.Printf("Stored:  v%d\n", info.Version)

		if info.Version > defaults.DataVersion {
			problems = append(problems, fmt.Sprintf("stored version v%d is newer than this build supports (v%d)", info.Version, defaults.DataVersion))
		}
		if info.Version < defaults.DataVersion {
			fmt.Printf("Note: state is behind current schema v%d and will migrate on next load\n", defaults.DataVersion)
		}

		problems = append(problems, checkCollections(raw)...)
	}

	if len(problems) == 0 {
		fmt.Println("OK: no problems found")
		return nil
	}
	for _, p := range problems {
		fmt.Printf("PROBLEM: %s\n", p)
	}
	return fmt.Errorf("found %d problem(s)", len(problems))
}

// checkCollections verifies that the well-known collection fields, when
// present, have the expected JSON types. Wrong types would make the load
// pipeline treat the blob as corrupt and reset to defaults.
func checkCollections(raw []byte) []string {
	var obj map[string]any
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil
	}
	if data, ok := obj["data"].(map[string]any); ok {
		obj = data
	}

	var problems []string
	lists := []string{"users", "events", "services", "clients", "rfqs", "quotationTemplates", "proposalTemplates", "customThemes", "notifications", "suppliers", "procurementDocuments"}
	for _, field := range lists {
		value, present := obj[field]
		if !present || value == nil {
			continue
		}
		if _, ok := value.([]any); !ok {
			problems = append(problems, fmt.Sprintf("field %q is %T, expected array", field, value))
		}
	}
	objects := []string{"roles", "settings"}
	for _, field := range objects {
		value, present := obj[field]
		if !present || value == nil {
			continue
		}
		if _, ok := value.(map[string]any); !ok {
			problems = append(problems, fmt.Sprintf("field %q is %T, expected object", field, value))
		}
	}
	return problems
}
