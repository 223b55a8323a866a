package cli

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/kmorrow/evq/internal/domain"
	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Inspect and edit settings",
}

var settingsGetCmd = &cobra.Command{
	Use:   "get [path]",
	Short: "Print settings, optionally at a dotted path (e.g. finance.currency)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  withApp(runSettingsGet),
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <path> <value>",
	Short: "Set a settings leaf by dotted path",
	Args:  cobra.ExactArgs(2),
	RunE:  withApp(runSettingsSet),
}

func init() {
	rootCmd.AddCommand(settingsCmd)
	settingsCmd.AddCommand(settingsGetCmd, settingsSetCmd)
}

func runSettingsGet(app *App, cmd *cobra.Command, args []string) error {
	st := app.Store.Get()

	tree, err := settingsToMap(st.Settings)
	if err != nil {
		return err
	}

	var value any = tree
	if len(args) == 1 {
		value, err = lookupPath(tree, args[0])
		if err != nil {
			return err
		}
	}
	return app.Renderer().RenderYAML(value)
}

func runSettingsSet(app *App, cmd *cobra.Command, args []string) error {
	path, raw := args[0], args[1]

	return app.Store.Update(func(state *domain.AppState) error {
		tree, err := settingsToMap(state.Settings)
		if err != nil {
			return err
		}
		if err := setPath(tree, path, parseScalar(raw)); err != nil {
			return err
		}

		encoded, err := json.Marshal(tree)
		if err != nil {
			return fmt.Errorf("failed to encode settings: %w", err)
		}
		var next domain.Settings
		if err := json.Unmarshal(encoded, &next); err != nil {
			return fmt.Errorf("invalid value for %s: %w", path, err)
		}
		state.Settings = next
		return nil
	})
}

func settingsToMap(settings domain.Settings) (map[string]any, error) {
	raw, err := json.Marshal(settings)
	if err != nil {
		return nil, fmt.Errorf("failed to encode settings: %w", err)
	}
	var tree map[string]any
	if err := json.Unmarshal(raw, &tree); err != nil {
		return nil, fmt.Errorf("failed to decode settings: %w", err)
	}
	return tree, nil
}

func lookupPath(tree map[string]any, path string) (any, error) {
	var value any = tree
	for _, segment := range strings.Split(path, ".") {
		obj, ok := value.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("settings path not found: %s", path)
		}
		value, ok = obj[segment]
		if !ok {
			return nil, fmt.Errorf("settings path not found: %s", path)
		}
	}
	return value, nil
}

// setPath replaces an existing leaf. Unknown paths are rejected rather than
// created so typos cannot plant dead keys in the settings tree.
func setPath(tree map[string]any, path string, value any) error {
	segments := strings.Split(path, ".")
	current := tree
	for _, segment := range segments[:len(segments)-1] {
		next, ok := current[segment].(map[string]any)
		if !ok {
			return fmt.Errorf("settings path not found: %s", path)
		}
		current = next
	}

	leaf := segments[len(segments)-1]
	if _, ok := current[leaf]; !ok {
		return fmt.Errorf("settings path not found: %s", path)
	}
	current[leaf] = value
	return nil
}

func parseScalar(raw string) any {
	if b, err := strconv.ParseBool(raw); err == nil {
		return b
	}
	if n, err := strconv.ParseFloat(raw, 64); err == nil {
		return n
	}
	return raw
}
