package cli

import (
	"strconv"

	"github.com/spf13/cobra"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List document templates",
}

var templatesLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List proposal and quotation templates",
	Args:  cobra.NoArgs,
	RunE:  withApp(runTemplatesLs),
}

func init() {
	rootCmd.AddCommand(templatesCmd)
	templatesCmd.AddCommand(templatesLsCmd)
}

func runTemplatesLs(app *App, cmd *cobra.Command, args []string) error {
	st := app.Store.Get()

	headers := []string{"ID", "NAME", "KIND", "SYSTEM"}
	var rows [][]string
	for _, tpl := range st.ProposalTemplates {
		rows = append(rows, []string{tpl.TemplateID, tpl.Name, "proposal", strconv.FormatBool(tpl.IsSystemDefault)})
	}
	for _, tpl := range st.QuotationTemplates {
		rows = append(rows, []string{tpl.TemplateID, tpl.Name, "quotation", strconv.FormatBool(tpl.IsSystemDefault)})
	}

	data := map[string]any{
		"proposalTemplates":  st.ProposalTemplates,
		"quotationTemplates": st.QuotationTemplates,
	}
	return app.Renderer().RenderRows(data, headers, rows)
}
