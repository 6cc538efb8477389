package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/cadence/internal/tracking/application/commands"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <activity-id>",
	Short: "Delete a logged activity",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil || app.DeleteActivityHandler == nil {
			fmt.Println("Deleting requires an initialized database.")
			return nil
		}

		activityID, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid activity ID %q", args[0])
		}

		if err := app.DeleteActivityHandler.Handle(cmd.Context(), commands.DeleteActivityCommand{
			ActivityID: activityID,
		}); err != nil {
			return fmt.Errorf("failed to delete activity: %w", err)
		}

		fmt.Println("Activity deleted.")
		return nil
	},
}

var clearForce bool

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete the entire activity log",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil || app.ClearActivitiesHandler == nil {
			fmt.Println("Clearing requires an initialized database.")
			return nil
		}

		if !clearForce {
			fmt.Print("This deletes ALL logged activities. Continue? [y/N] ")
			reader := bufio.NewReader(os.Stdin)
			answer, _ := reader.ReadString('\n')
			if strings.ToLower(strings.TrimSpace(answer)) != "y" {
				fmt.Println("Aborted.")
				return nil
			}
		}

		result, err := app.ClearActivitiesHandler.Handle(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to clear activities: %w", err)
		}

		fmt.Printf("Deleted %d activities.\n", result.Deleted)
		return nil
	},
}

func init() {
	clearCmd.Flags().BoolVarP(&clearForce, "force", "f", false, "skip confirmation")
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(clearCmd)
}
