package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var admResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the stored state so the next load seeds defaults",
	Args:  cobra.NoArgs,
	RunE:  withAppNoStore(runAdmReset),
}

var resetForce bool

func init() {
	admRootCmd.AddCommand(admResetCmd)
	admResetCmd.Flags().BoolVarP(&resetForce, "force", "f", false, "Skip the confirmation prompt")
}

func runAdmReset(app *App, cmd *cobra.Command, args []string) error {
	_, ok, err := app.Blob.Read()
	if err != nil {
		return err
	}
	if !ok {
		fmt.Printf("No stored state at %s\n", app.Config.StatePath)
		return nil
	}

	if !resetForce {
		fmt.Printf("This deletes all stored state at %s. Continue? [y/N] ", app.Config.StatePath)
		reader := bufio.NewReader(os.Stdin)
		answer, _ := reader.ReadString('\n')
		if strings.ToLower(strings.TrimSpace(answer)) != "y" {
			fmt.Println("Aborted")
			return nil
		}
	}

	if err := app.Blob.Delete(); err != nil {
		return fmt.Errorf("failed to delete stored state: %w", err)
	}
	fmt.Println("Stored state deleted")
	return nil
}
