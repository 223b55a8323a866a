package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kmorrow/evq/internal/domain"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the state file and print changes as they happen",
	Long: `Watch the state file and print changes as they happen.

Only available with the file backend. Each external write to the state
file reloads the store and prints the new notification entries.`,
	Args: cobra.NoArgs,
	RunE: withApp(runWatch),
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(app *App, cmd *cobra.Command, args []string) error {
	if app.Config.Backend != "file" {
		return fmt.Errorf("watch requires the file backend, got %q", app.Config.Backend)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	seen := len(app.Store.Get().Notifications)
	unsubscribe := app.Store.Subscribe(func(st domain.AppState) {
		for _, note := range st.Notifications[min(seen, len(st.Notifications)):] {
			fmt.Printf("%s  %-16s %s\n", note.CreatedAt.Format(time.RFC3339), note.Kind, note.Message)
		}
		seen = len(st.Notifications)
	})
	defer unsubscribe()

	fmt.Fprintf(os.Stderr, "Watching %s (Ctrl-C to stop)\n", app.Config.StatePath)
	return app.Store.Watch(ctx, app.Config.StatePath)
}
