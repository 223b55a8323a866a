package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/kmorrow/evq/internal/domain"
	"github.com/spf13/cobra"
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Manage events",
}

var eventsLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List events",
	Args:  cobra.NoArgs,
	RunE:  withApp(runEventsLs),
}

var eventsAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create an event",
	Args:  cobra.ExactArgs(1),
	RunE:  withApp(runEventsAdd),
}

var eventsSetCmd = &cobra.Command{
	Use:   "set <id>",
	Short: "Update an event",
	Args:  cobra.ExactArgs(1),
	RunE:  withApp(runEventsSet),
}

var eventsRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Remove an event",
	Args:  cobra.ExactArgs(1),
	RunE:  withApp(runEventsRm),
}

var (
	eventClient  string
	eventVenue   string
	eventStatus  string
	eventBudget  float64
	eventNotes   string
	eventStart   string
	eventEnd     string
	eventName    string
	eventService []string
)

func init() {
	rootCmd.AddCommand(eventsCmd)
	eventsCmd.AddCommand(eventsLsCmd, eventsAddCmd, eventsSetCmd, eventsRmCmd)

	for _, cmd := range []*cobra.Command{eventsAddCmd, eventsSetCmd} {
		cmd.Flags().StringVar(&eventClient, "client", "", "Client ID (e.g. CL-00001)")
		cmd.Flags().StringVar(&eventVenue, "venue", "", "Venue name")
		cmd.Flags().StringVar(&eventStatus, "status", "", "Status (draft, confirmed, in_progress, completed, cancelled)")
		cmd.Flags().Float64Var(&eventBudget, "budget", 0, "Budget amount")
		cmd.Flags().StringVar(&eventNotes, "notes", "", "Free-form notes")
		cmd.Flags().StringVar(&eventStart, "start", "", "Start time (RFC3339)")
		cmd.Flags().StringVar(&eventEnd, "end", "", "End time (RFC3339)")
		cmd.Flags().StringSliceVar(&eventService, "service", nil, "Attach a service by ID (repeatable)")
	}
	eventsSetCmd.Flags().StringVar(&eventName, "name", "", "Event name")
}

func runEventsLs(app *App, cmd *cobra.Command, args []string) error {
	st := app.Store.Get()

	headers := []string{"ID", "NAME", "STATUS", "CLIENT", "VENUE", "BUDGET"}
	rows := make([][]string, 0, len(st.Events))
	for _, event := range st.Events {
		rows = append(rows, []string{
			event.ID,
			event.Name,
			string(event.Status),
			event.ClientID,
			event.Venue,
			strconv.FormatFloat(event.Budget, 'f', -1, 64),
		})
	}
	return app.Renderer().RenderRows(st.Events, headers, rows)
}

func runEventsAdd(app *App, cmd *cobra.Command, args []string) error {
	event := domain.Event{
		Name:       args[0],
		ClientID:   eventClient,
		Venue:      eventVenue,
		Status:     domain.EventStatus(eventStatus),
		Budget:     eventBudget,
		Notes:      eventNotes,
		ServiceIDs: eventService,
	}

	if eventStart != "" {
		start, err := parseTimeFlag("start", eventStart)
		if err != nil {
			return err
		}
		event.StartAt = start
	}
	if eventEnd != "" {
		end, err := parseTimeFlag("end", eventEnd)
		if err != nil {
			return err
		}
		event.EndAt = end
	}

	created, err := app.Store.AddEvent(event)
	if err != nil {
		return err
	}
	fmt.Printf("%s\n", created.ID)
	return nil
}

func runEventsSet(app *App, cmd *cobra.Command, args []string) error {
	_, err := app.Store.UpdateEvent(args[0], func(event *domain.Event) error {
		if cmd.Flags().Changed("name") {
			event.Name = eventName
		}
		if cmd.Flags().Changed("client") {
			event.ClientID = eventClient
		}
		if cmd.Flags().Changed("venue") {
			event.Venue = eventVenue
		}
		if cmd.Flags().Changed("status") {
			event.Status = domain.EventStatus(eventStatus)
		}
		if cmd.Flags().Changed("budget") {
			event.Budget = eventBudget
		}
		if cmd.Flags().Changed("notes") {
			event.Notes = eventNotes
		}
		if cmd.Flags().Changed("service") {
			event.ServiceIDs = eventService
		}
		if cmd.Flags().Changed("start") {
			start, err := parseTimeFlag("start", eventStart)
			if err != nil {
				return err
			}
			event.StartAt = start
		}
		if cmd.Flags().Changed("end") {
			end, err := parseTimeFlag("end", eventEnd)
			if err != nil {
				return err
			}
			event.EndAt = end
		}
		return nil
	})
	return err
}

func runEventsRm(app *App, cmd *cobra.Command, args []string) error {
	return app.Store.RemoveEvent(args[0])
}

func parseTimeFlag(name, value string) (*time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil, fmt.Errorf("invalid --%s: %w", name, err)
	}
	return &t, nil
}
