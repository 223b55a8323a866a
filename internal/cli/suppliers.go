package cli

import (
	"fmt"
	"strconv"

	"github.com/kmorrow/evq/internal/domain"
	"github.com/spf13/cobra"
)

var suppliersCmd = &cobra.Command{
	Use:   "suppliers",
	Short: "Manage suppliers and procurement",
}

var suppliersLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List suppliers",
	Args:  cobra.NoArgs,
	RunE:  withApp(runSuppliersLs),
}

var suppliersAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a supplier",
	Args:  cobra.ExactArgs(1),
	RunE:  withApp(runSuppliersAdd),
}

var suppliersRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Remove a supplier",
	Args:  cobra.ExactArgs(1),
	RunE:  withApp(runSuppliersRm),
}

var suppliersDocCmd = &cobra.Command{
	Use:   "doc <kind>",
	Short: "Record a procurement document (purchase_order, invoice)",
	Args:  cobra.ExactArgs(1),
	RunE:  withApp(runSuppliersDoc),
}

var (
	supplierContact string
	supplierEmail   string
	supplierPhone   string
	supplierRating  int
	docSupplier     string
	docEvent        string
	docAmount       float64
	docStatus       string
)

func init() {
	rootCmd.AddCommand(suppliersCmd)
	suppliersCmd.AddCommand(suppliersLsCmd, suppliersAddCmd, suppliersRmCmd, suppliersDocCmd)

	suppliersAddCmd.Flags().StringVar(&supplierContact, "contact", "", "Contact person")
	suppliersAddCmd.Flags().StringVar(&supplierEmail, "email", "", "Email address")
	suppliersAddCmd.Flags().StringVar(&supplierPhone, "phone", "", "Phone number")
	suppliersAddCmd.Flags().IntVar(&supplierRating, "rating", 0, "Rating 0-5")

	suppliersDocCmd.Flags().StringVar(&docSupplier, "supplier", "", "Supplier ID")
	suppliersDocCmd.Flags().StringVar(&docEvent, "event", "", "Event ID")
	suppliersDocCmd.Flags().Float64Var(&docAmount, "amount", 0, "Document amount")
	suppliersDocCmd.Flags().StringVar(&docStatus, "status", "draft", "Document status")
}

func runSuppliersLs(app *App, cmd *cobra.Command, args []string) error {
	st := app.Store.Get()

	headers := []string{"ID", "NAME", "CONTACT", "EMAIL", "RATING"}
	rows := make([][]string, 0, len(st.Suppliers))
	for _, supplier := range st.Suppliers {
		rows = append(rows, []string{
			supplier.ID,
			supplier.Name,
			supplier.Contact,
			supplier.Email,
			strconv.Itoa(supplier.Rating),
		})
	}
	return app.Renderer().RenderRows(st.Suppliers, headers, rows)
}

func runSuppliersAdd(app *App, cmd *cobra.Command, args []string) error {
	created, err := app.Store.AddSupplier(domain.Supplier{
		Name:    args[0],
		Contact: supplierContact,
		Email:   supplierEmail,
		Phone:   supplierPhone,
		Rating:  supplierRating,
	})
	if err != nil {
		return err
	}
	fmt.Printf("%s\n", created.ID)
	return nil
}

func runSuppliersRm(app *App, cmd *cobra.Command, args []string) error {
	return app.Store.RemoveSupplier(args[0])
}

func runSuppliersDoc(app *App, cmd *cobra.Command, args []string) error {
	created, err := app.Store.AddProcurementDocument(domain.ProcurementDocument{
		Kind:       domain.ProcurementKind(args[0]),
		SupplierID: docSupplier,
		EventID:    docEvent,
		Amount:     docAmount,
		Status:     docStatus,
	})
	if err != nil {
		return err
	}
	fmt.Printf("%s\n", created.ID)
	return nil
}
