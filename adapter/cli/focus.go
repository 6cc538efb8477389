package cli

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var focusCmd = &cobra.Command{
	Use:   "focus",
	Short: "Show focus scores and distraction breakdown",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil || app.FocusReportHandler == nil {
			fmt.Println("Focus report requires an initialized database.")
			return nil
		}

		result, err := app.FocusReportHandler.Handle(cmd.Context(), time.Now())
		if err != nil {
			return fmt.Errorf("failed to build focus report: %w", err)
		}

		fmt.Println("\n  Focus Report")
		fmt.Println(strings.Repeat("=", 60))
		fmt.Printf("    Today: %d/100 (focused %s, distracted %s)\n",
			result.TodayScore,
			formatMinutes(result.FocusedToday),
			formatMinutes(result.DistractedToday))
		fmt.Printf("    Weekly Average: %d/100\n", result.WeeklyAverage)

		fmt.Println("\n  BY DAY")
		fmt.Println(strings.Repeat("-", 60))
		for _, day := range result.WeeklySeries {
			fmt.Printf("    %s  %3d/100  %s\n", day.Date, day.FocusScore, progressBar(day.FocusScore))
		}

		fmt.Println("\n  TODAY BY BLOCK")
		fmt.Println(strings.Repeat("-", 60))
		for _, block := range result.TodayBlocks {
			if block.Activities == 0 {
				continue
			}
			fmt.Printf("    %-6s %3d/100  (%d activities)\n", block.Label, block.FocusScore, block.Activities)
		}

		if result.DistractedToday > 0 {
			fmt.Println("\n  DISTRACTIONS")
			fmt.Println(strings.Repeat("-", 60))
			sources := make([]string, 0, len(result.DistractionBreakdown))
			for source := range result.DistractionBreakdown {
				sources = append(sources, source)
			}
			sort.Strings(sources)
			for _, source := range sources {
				if minutes := result.DistractionBreakdown[source]; minutes > 0 {
					fmt.Printf("    %-10s %s\n", source, formatMinutes(minutes))
				}
			}
		}

		fmt.Println()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(focusCmd)
}
