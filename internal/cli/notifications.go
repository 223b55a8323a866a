package cli

import (
	"strconv"
	"time"

	"github.com/spf13/cobra"
)

var notificationsCmd = &cobra.Command{
	Use:     "notifications",
	Aliases: []string{"log"},
	Short:   "Show the activity feed",
}

var notificationsLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List notifications",
	Args:  cobra.NoArgs,
	RunE:  withApp(runNotificationsLs),
}

var notificationsReadCmd = &cobra.Command{
	Use:   "read",
	Short: "Mark all notifications as read",
	Args:  cobra.NoArgs,
	RunE:  withApp(runNotificationsRead),
}

var notificationsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all notifications",
	Args:  cobra.NoArgs,
	RunE:  withApp(runNotificationsClear),
}

var notificationsUnread bool

func init() {
	rootCmd.AddCommand(notificationsCmd)
	notificationsCmd.AddCommand(notificationsLsCmd, notificationsReadCmd, notificationsClearCmd)

	notificationsLsCmd.Flags().BoolVar(&notificationsUnread, "unread", false, "Only show unread notifications")
}

func runNotificationsLs(app *App, cmd *cobra.Command, args []string) error {
	st := app.Store.Get()

	headers := []string{"TIME", "KIND", "MESSAGE", "READ"}
	var rows [][]string
	for _, note := range st.Notifications {
		if notificationsUnread && note.Read {
			continue
		}
		rows = append(rows, []string{
			note.CreatedAt.Format(time.RFC3339),
			string(note.Kind),
			note.Message,
			strconv.FormatBool(note.Read),
		})
	}
	return app.Renderer().RenderRows(st.Notifications, headers, rows)
}

func runNotificationsRead(app *App, cmd *cobra.Command, args []string) error {
	return app.Store.MarkNotificationsRead()
}

func runNotificationsClear(app *App, cmd *cobra.Command, args []string) error {
	return app.Store.ClearNotifications()
}
