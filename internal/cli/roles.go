package cli

import (
	"sort"
	"strconv"

	"github.com/spf13/cobra"
)

var rolesCmd = &cobra.Command{
	Use:   "roles",
	Short: "Manage roles and permissions",
}

var rolesLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List roles and their permissions",
	Args:  cobra.NoArgs,
	RunE:  withApp(runRolesLs),
}

var rolesGrantCmd = &cobra.Command{
	Use:   "grant <role> <permission>",
	Short: "Grant a permission to a role",
	Args:  cobra.ExactArgs(2),
	RunE:  withApp(runRolesGrant),
}

var rolesRevokeCmd = &cobra.Command{
	Use:   "revoke <role> <permission>",
	Short: "Revoke a permission from a role",
	Args:  cobra.ExactArgs(2),
	RunE:  withApp(runRolesRevoke),
}

func init() {
	rootCmd.AddCommand(rolesCmd)
	rolesCmd.AddCommand(rolesLsCmd, rolesGrantCmd, rolesRevokeCmd)
}

func runRolesLs(app *App, cmd *cobra.Command, args []string) error {
	st := app.Store.Get()

	roleNames := make([]string, 0, len(st.Roles))
	for name := range st.Roles {
		roleNames = append(roleNames, name)
	}
	sort.Strings(roleNames)

	headers := []string{"ROLE", "PERMISSION", "GRANTED"}
	var rows [][]string
	for _, name := range roleNames {
		perms := st.Roles[name]
		permNames := make([]string, 0, len(perms))
		for perm := range perms {
			permNames = append(permNames, perm)
		}
		sort.Strings(permNames)
		for _, perm := range permNames {
			rows = append(rows, []string{name, perm, strconv.FormatBool(perms[perm])})
		}
	}
	return app.Renderer().RenderRows(st.Roles, headers, rows)
}

func runRolesGrant(app *App, cmd *cobra.Command, args []string) error {
	return app.Store.SetPermission(args[0], args[1], true)
}

func runRolesRevoke(app *App, cmd *cobra.Command, args []string) error {
	return app.Store.SetPermission(args[0], args[1], false)
}
