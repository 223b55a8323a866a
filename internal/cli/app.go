package cli

import (
	"fmt"
	"os"

	"github.com/kmorrow/evq/internal/config"
	"github.com/kmorrow/evq/internal/defaults"
	"github.com/kmorrow/evq/internal/render"
	"github.com/kmorrow/evq/internal/state"
	"github.com/kmorrow/evq/internal/storage"
	"github.com/spf13/cobra"
)

// App holds the shared application context for commands.
type App struct {
	Config *config.Config
	Store  *state.Store
	Blob   storage.Blob

	closer func() error
}

// Close releases resources held by the App. Safe to call multiple times.
func (a *App) Close() {
	if a.closer != nil {
		a.closer()
		a.closer = nil
	}
}

// Renderer builds a renderer on stdout using the configured output format.
func (a *App) Renderer() *render.Renderer {
	return render.NewRenderer(os.Stdout, render.ParseFormat(a.Config.Output))
}

// RunFunc is the signature for command run functions.
type RunFunc func(app *App, cmd *cobra.Command, args []string) error

// withApp wraps a command's run function with shared bootstrap logic:
// config loading, flag overrides, blob selection, and store opening.
func withApp(fn RunFunc) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		app, err := bootstrap(cmd, true)
		if err != nil {
			return err
		}
		defer app.Close()
		return fn(app, cmd, args)
	}
}

// withAppNoStore is withApp without opening the store, for commands that
// operate on the raw blob (import, doctor).
func withAppNoStore(fn RunFunc) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		app, err := bootstrap(cmd, false)
		if err != nil {
			return err
		}
		defer app.Close()
		return fn(app, cmd, args)
	}
}

func bootstrap(cmd *cobra.Command, openStore bool) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if statePath := flagValue(cmd, "state"); statePath != "" {
		cfg.StatePath = statePath
	}
	if backend := flagValue(cmd, "backend"); backend != "" {
		cfg.Backend = backend
	}
	if output := flagValue(cmd, "output"); output != "" {
		cfg.Output = output
	}

	app := &App{Config: cfg}
	switch cfg.Backend {
	case "sqlite":
		blob, err := storage.OpenSQLite(cfg.StatePath, defaults.StorageKey)
		if err != nil {
			return nil, err
		}
		app.Blob = blob
		app.closer = blob.Close
	case "file":
		app.Blob = storage.NewFile(cfg.StatePath)
	default:
		return nil, fmt.Errorf("invalid backend %q: must be file or sqlite", cfg.Backend)
	}

	if openStore {
		store, err := state.Open(app.Blob)
		if err != nil {
			app.Close()
			return nil, err
		}
		app.Store = store
	}
	return app, nil
}

// flagValue reads a persistent flag that may be defined on either root
// command, returning "" when absent.
func flagValue(cmd *cobra.Command, name string) string {
	flag := cmd.Flag(name)
	if flag == nil {
		return ""
	}
	return flag.Value.String()
}
