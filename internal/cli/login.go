package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var loginCmd = &cobra.Command{
	Use:   "login <user-id>",
	Short: "Sign in as a user",
	Args:  cobra.ExactArgs(1),
	RunE:  withApp(runLogin),
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out the current user",
	Args:  cobra.NoArgs,
	RunE:  withApp(runLogout),
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in user",
	Args:  cobra.NoArgs,
	RunE:  withApp(runWhoami),
}

func init() {
	rootCmd.AddCommand(loginCmd, logoutCmd, whoamiCmd)
}

func runLogin(app *App, cmd *cobra.Command, args []string) error {
	return app.Store.Login(args[0])
}

func runLogout(app *App, cmd *cobra.Command, args []string) error {
	return app.Store.Logout()
}

func runWhoami(app *App, cmd *cobra.Command, args []string) error {
	st := app.Store.Get()
	if !st.IsLoggedIn || st.CurrentUserID == "" {
		fmt.Println("not logged in")
		return nil
	}
	for _, user := range st.Users {
		if user.ID == st.CurrentUserID {
			fmt.Printf("%s  %s  %s\n", user.ID, user.Name, user.Role)
			return nil
		}
	}
	fmt.Println(st.CurrentUserID)
	return nil
}
