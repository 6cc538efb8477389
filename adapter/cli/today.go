package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's activity log",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil || app.ListTodayHandler == nil {
			fmt.Println("Listing requires an initialized database.")
			return nil
		}

		activities, err := app.ListTodayHandler.Handle(cmd.Context(), time.Now())
		if err != nil {
			return fmt.Errorf("failed to list today's activities: %w", err)
		}

		fmt.Printf("\n  Today (%s)\n", time.Now().Format("Mon, Jan 2"))
		fmt.Println(strings.Repeat("=", 60))

		if len(activities) == 0 {
			fmt.Println("  Nothing logged yet.")
			fmt.Println()
			return nil
		}

		total := 0
		for _, activity := range activities {
			total += activity.DurationMinutes
			line := fmt.Sprintf("  %s  %-10s %8s",
				activity.LoggedAt.Format("15:04"),
				activity.Type,
				formatMinutes(activity.DurationMinutes),
			)
			if activity.Note != "" {
				line += "  " + activity.Note
			}
			fmt.Println(line)
		}

		fmt.Println(strings.Repeat("-", 60))
		fmt.Printf("  %d activities, %s total\n\n", len(activities), formatMinutes(total))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(todayCmd)
}
