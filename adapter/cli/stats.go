package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:     "stats",
	Short:   "Show weekly activity statistics",
	Aliases: []string{"weekly"},
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil || app.WeeklyHandler == nil {
			fmt.Println("Stats require an initialized database.")
			return nil
		}

		result, err := app.WeeklyHandler.Handle(cmd.Context(), time.Now())
		if err != nil {
			return fmt.Errorf("failed to build weekly stats: %w", err)
		}

		fmt.Println("\n  Weekly Stats")
		fmt.Println(strings.Repeat("=", 60))

		fmt.Println("\n  TOTALS")
		fmt.Println(strings.Repeat("-", 60))
		fmt.Printf("    Activities: %d (%s)\n",
			result.Stats.TotalActivities, formatMinutes(result.Stats.TotalMinutes))
		fmt.Printf("    Coding: %s | Learning: %s | Meetings: %s\n",
			formatMinutes(result.Stats.CodingMinutes),
			formatMinutes(result.Stats.LearningMinutes),
			formatMinutes(result.Stats.MeetingMinutes))
		fmt.Printf("    Breaks: %s | Browsing: %s\n",
			formatMinutes(result.Stats.BreakMinutes),
			formatMinutes(result.Stats.BrowsingMinutes))
		fmt.Printf("    Productivity Score: %d/100\n", result.ProductivityScore)
		fmt.Printf("    Streak: %d day(s)\n", result.CurrentStreak)

		fmt.Println("\n  BY DAY")
		fmt.Println(strings.Repeat("-", 60))
		for _, bucket := range result.Buckets {
			fmt.Printf("    %s  %-8s coding %s, learning %s\n",
				bucket.Date,
				formatMinutes(bucket.TotalMinutes),
				formatMinutes(bucket.Totals["coding"]),
				formatMinutes(bucket.Totals["learning"]))
		}

		fmt.Println()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
