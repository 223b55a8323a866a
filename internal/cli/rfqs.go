package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kmorrow/evq/internal/domain"
	"github.com/spf13/cobra"
)

var rfqsCmd = &cobra.Command{
	Use:   "rfqs",
	Short: "Manage requests for quotation",
}

var rfqsLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List RFQs",
	Args:  cobra.NoArgs,
	RunE:  withApp(runRFQsLs),
}

var rfqsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Open an RFQ",
	Args:  cobra.NoArgs,
	RunE:  withApp(runRFQsAdd),
}

var rfqsSetStatusCmd = &cobra.Command{
	Use:   "set-status <id> <status>",
	Short: "Transition an RFQ (open, quoted, accepted, declined)",
	Args:  cobra.ExactArgs(2),
	RunE:  withApp(runRFQsSetStatus),
}

var (
	rfqClient string
	rfqEvent  string
	rfqItems  []string
)

func init() {
	rootCmd.AddCommand(rfqsCmd)
	rfqsCmd.AddCommand(rfqsLsCmd, rfqsAddCmd, rfqsSetStatusCmd)

	rfqsAddCmd.Flags().StringVar(&rfqClient, "client", "", "Client ID")
	rfqsAddCmd.Flags().StringVar(&rfqEvent, "event", "", "Event ID")
	rfqsAddCmd.Flags().StringSliceVar(&rfqItems, "item", nil, "Line item as <serviceID>:<quantity> (repeatable)")
}

func runRFQsLs(app *App, cmd *cobra.Command, args []string) error {
	st := app.Store.Get()

	headers := []string{"ID", "STATUS", "CLIENT", "EVENT", "ITEMS"}
	rows := make([][]string, 0, len(st.RFQs))
	for _, rfq := range st.RFQs {
		rows = append(rows, []string{
			rfq.ID,
			string(rfq.Status),
			rfq.ClientID,
			rfq.EventID,
			strconv.Itoa(len(rfq.Items)),
		})
	}
	return app.Renderer().RenderRows(st.RFQs, headers, rows)
}

func runRFQsAdd(app *App, cmd *cobra.Command, args []string) error {
	items := make([]domain.RFQItem, 0, len(rfqItems))
	for _, raw := range rfqItems {
		item, err := parseRFQItem(raw)
		if err != nil {
			return err
		}
		items = append(items, item)
	}

	created, err := app.Store.AddRFQ(domain.RFQ{
		ClientID: rfqClient,
		EventID:  rfqEvent,
		Items:    items,
	})
	if err != nil {
		return err
	}
	fmt.Printf("%s\n", created.ID)
	return nil
}

func runRFQsSetStatus(app *App, cmd *cobra.Command, args []string) error {
	_, err := app.Store.SetRFQStatus(args[0], domain.RFQStatus(args[1]))
	return err
}

func parseRFQItem(raw string) (domain.RFQItem, error) {
	parts := strings.SplitN(raw, ":", 2)
	item := domain.RFQItem{ServiceID: parts[0], Quantity: 1}
	if item.ServiceID == "" {
		return domain.RFQItem{}, fmt.Errorf("invalid --item %q: missing service ID", raw)
	}
	if len(parts) == 2 {
		quantity, err := strconv.Atoi(parts[1])
		if err != nil || quantity < 1 {
			return domain.RFQItem{}, fmt.Errorf("invalid --item %q: quantity must be a positive integer", raw)
		}
		item.Quantity = quantity
	}
	return item, nil
}
