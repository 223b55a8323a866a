package cli

import (
	"strconv"

	"github.com/kmorrow/evq/internal/defaults"
	"github.com/kmorrow/evq/internal/snapshot"
	"github.com/spf13/cobra"
)

var statCmd = &cobra.Command{
	Use:   "stat",
	Short: "Print state metadata and collection counts",
	Args:  cobra.NoArgs,
	RunE:  withApp(runStat),
}

func init() {
	rootCmd.AddCommand(statCmd)
}

func runStat(app *App, cmd *cobra.Command, args []string) error {
	st := app.Store.Get()

	snap, err := snapshot.Build(st)
	if err != nil {
		return err
	}
	canonical, err := snapshot.CanonicalJSON(snap)
	if err != nil {
		return err
	}

	type stat struct {
		Version       int    `json:"version"`
		Rev           string `json:"rev"`
		Backend       string `json:"backend"`
		Path          string `json:"path"`
		Users         int    `json:"users"`
		Events        int    `json:"events"`
		Services      int    `json:"services"`
		Clients       int    `json:"clients"`
		RFQs          int    `json:"rfqs"`
		Suppliers     int    `json:"suppliers"`
		Notifications int    `json:"notifications"`
	}
	data := stat{
		Version:       defaults.DataVersion,
		Rev:           snapshot.ComputeSnapshotRev(canonical),
		Backend:       app.Config.Backend,
		Path:          app.Config.StatePath,
		Users:         len(st.Users),
		Events:        len(st.Events),
		Services:      len(st.Services),
		Clients:       len(st.Clients),
		RFQs:          len(st.RFQs),
		Suppliers:     len(st.Suppliers),
		Notifications: len(st.Notifications),
	}

	headers := []string{"FIELD", "VALUE"}
	rows := [][]string{
		{"version", strconv.Itoa(data.Version)},
		{"rev", data.Rev},
		{"backend", data.Backend},
		{"path", data.Path},
		{"users", strconv.Itoa(data.Users)},
		{"events", strconv.Itoa(data.Events)},
		{"services", strconv.Itoa(data.Services)},
		{"clients", strconv.Itoa(data.Clients)},
		{"rfqs", strconv.Itoa(data.RFQs)},
		{"suppliers", strconv.Itoa(data.Suppliers)},
		{"notifications", strconv.Itoa(data.Notifications)},
	}
	return app.Renderer().RenderRows(data, headers, rows)
}
