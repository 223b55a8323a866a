package cli

import (
	"fmt"

	"github.com/kmorrow/evq/internal/domain"
	"github.com/spf13/cobra"
)

var clientsCmd = &cobra.Command{
	Use:   "clients",
	Short: "Manage clients",
}

var clientsLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List clients",
	Args:  cobra.NoArgs,
	RunE:  withApp(runClientsLs),
}

var clientsAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a client",
	Args:  cobra.ExactArgs(1),
	RunE:  withApp(runClientsAdd),
}

var clientsSetCmd = &cobra.Command{
	Use:   "set <id>",
	Short: "Update a client",
	Args:  cobra.ExactArgs(1),
	RunE:  withApp(runClientsSet),
}

var clientsRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Remove a client",
	Args:  cobra.ExactArgs(1),
	RunE:  withApp(runClientsRm),
}

var (
	clientCompany string
	clientEmail   string
	clientPhone   string
	clientNotes   string
	clientName    string
)

func init() {
	rootCmd.AddCommand(clientsCmd)
	clientsCmd.AddCommand(clientsLsCmd, clientsAddCmd, clientsSetCmd, clientsRmCmd)

	for _, cmd := range []*cobra.Command{clientsAddCmd, clientsSetCmd} {
		cmd.Flags().StringVar(&clientCompany, "company", "", "Company name")
		cmd.Flags().StringVar(&clientEmail, "email", "", "Email address")
		cmd.Flags().StringVar(&clientPhone, "phone", "", "Phone number")
		cmd.Flags().StringVar(&clientNotes, "notes", "", "Free-form notes")
	}
	clientsSetCmd.Flags().StringVar(&clientName, "name", "", "Client name")
}

func runClientsLs(app *App, cmd *cobra.Command, args []string) error {
	st := app.Store.Get()

	headers := []string{"ID", "NAME", "COMPANY", "EMAIL", "PHONE"}
	rows := make([][]string, 0, len(st.Clients))
	for _, client := range st.Clients {
		rows = append(rows, []string{client.ID, client.Name, client.Company, client.Email, client.Phone})
	}
	return app.Renderer().RenderRows(st.Clients, headers, rows)
}

func runClientsAdd(app *App, cmd *cobra.Command, args []string) error {
	created, err := app.Store.AddClient(domain.Client{
		Name:    args[0],
		Company: clientCompany,
		Email:   clientEmail,
		Phone:   clientPhone,
		Notes:   clientNotes,
	})
	if err != nil {
		return err
	}
	fmt.Printf("%s\n", created.ID)
	return nil
}

func runClientsSet(app *App, cmd *cobra.Command, args []string) error {
	_, err := app.Store.UpdateClient(args[0], func(client *domain.Client) error {
		if cmd.Flags().Changed("name") {
			client.Name = clientName
		}
		if cmd.Flags().Changed("company") {
			client.Company = clientCompany
		}
		if cmd.Flags().Changed("email") {
			client.Email = clientEmail
		}
		if cmd.Flags().Changed("phone") {
			client.Phone = clientPhone
		}
		if cmd.Flags().Changed("notes") {
			client.Notes = clientNotes
		}
		return nil
	})
	return err
}

func runClientsRm(app *App, cmd *cobra.Command, args []string) error {
	return app.Store.RemoveClient(args[0])
}
