package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var dashboardCmd = &cobra.Command{
	Use:     "dashboard",
	Short:   "Show today's totals, focus score, streak, and goals",
	Aliases: []string{"dash"},
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil || app.DashboardHandler == nil {
			fmt.Println("Dashboard requires an initialized database.")
			return nil
		}

		result, err := app.DashboardHandler.Handle(cmd.Context(), time.Now())
		if err != nil {
			return fmt.Errorf("failed to build dashboard: %w", err)
		}

		fmt.Printf("\n  Dashboard (%s)\n", time.Now().Format("Mon, Jan 2"))
		fmt.Println(strings.Repeat("=", 60))

		fmt.Println("\n  TODAY")
		fmt.Println(strings.Repeat("-", 60))
		fmt.Printf("    Activities: %d (%s)\n",
			result.TodayStats.TotalActivities, formatMinutes(result.TodayStats.TotalMinutes))
		fmt.Printf("    Coding: %s | Learning: %s | Meetings: %s\n",
			formatMinutes(result.TodayStats.CodingMinutes),
			formatMinutes(result.TodayStats.LearningMinutes),
			formatMinutes(result.TodayStats.MeetingMinutes))
		fmt.Printf("    Focus Score: %d/100\n", result.TodayFocusScore)
		fmt.Printf("    Streak: %d day(s)\n", result.CurrentStreak)

		fmt.Println("\n  GOALS")
		fmt.Println(strings.Repeat("-", 60))
		for _, goal := range result.Goals {
			fmt.Printf("    %-10s %8s / %-8s %3d%%  %s\n",
				goal.Type,
				formatMinutes(goal.LoggedMinutes),
				formatMinutes(goal.TargetMinutes),
				goal.ProgressPercent,
				progressBar(goal.ProgressPercent))
		}

		fmt.Println("\n  LAST 7 DAYS")
		fmt.Println(strings.Repeat("-", 60))
		for _, bucket := range result.WeeklyBuckets {
			fmt.Printf("    %s  %s\n", bucket.Date, formatMinutes(bucket.TotalMinutes))
		}

		fmt.Println()
		return nil
	},
}

// progressBar renders a ten-segment bar for a 0-100 percentage.
func progressBar(percent int) string {
	filled := percent / 10
	return "[" + strings.Repeat("#", filled) + strings.Repeat(".", 10-filled) + "]"
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}
