package cli

import (
	"fmt"
	"strconv"

	"github.com/kmorrow/evq/internal/domain"
	"github.com/spf13/cobra"
)

var servicesCmd = &cobra.Command{
	Use:   "services",
	Short: "Manage the service catalog",
}

var servicesLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List catalog services",
	Args:  cobra.NoArgs,
	RunE:  withApp(runServicesLs),
}

var servicesAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a service to the catalog",
	Args:  cobra.ExactArgs(1),
	RunE:  withApp(runServicesAdd),
}

var servicesRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Remove a service from the catalog",
	Args:  cobra.ExactArgs(1),
	RunE:  withApp(runServicesRm),
}

var (
	serviceCategory string
	serviceUnit     string
	servicePrice    float64
	serviceDesc     string
)

func init() {
	rootCmd.AddCommand(servicesCmd)
	servicesCmd.AddCommand(servicesLsCmd, servicesAddCmd, servicesRmCmd)

	servicesAddCmd.Flags().StringVar(&serviceCategory, "category", "general", "Service category")
	servicesAddCmd.Flags().StringVar(&serviceUnit, "unit", "unit", "Pricing unit")
	servicesAddCmd.Flags().Float64Var(&servicePrice, "price", 0, "Unit price")
	servicesAddCmd.Flags().StringVar(&serviceDesc, "description", "", "Description")
}

func runServicesLs(app *App, cmd *cobra.Command, args []string) error {
	st := app.Store.Get()

	headers := []string{"ID", "NAME", "CATEGORY", "UNIT", "PRICE"}
	rows := make([][]string, 0, len(st.Services))
	for _, service := range st.Services {
		rows = append(rows, []string{
			service.ID,
			service.Name,
			service.Category,
			service.Unit,
			strconv.FormatFloat(service.UnitPrice, 'f', -1, 64),
		})
	}
	return app.Renderer().RenderRows(st.Services, headers, rows)
}

func runServicesAdd(app *App, cmd *cobra.Command, args []string) error {
	created, err := app.Store.AddService(domain.Service{
		Name:        args[0],
		Category:    serviceCategory,
		Unit:        serviceUnit,
		UnitPrice:   servicePrice,
		Description: serviceDesc,
	})
	if err != nil {
		return err
	}
	fmt.Printf("%s\n", created.ID)
	return nil
}

func runServicesRm(app *App, cmd *cobra.Command, args []string) error {
	return app.Store.RemoveService(args[0])
}
