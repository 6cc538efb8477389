package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var rewardsCmd = &cobra.Command{
	Use:   "rewards",
	Short: "Show points, level, and badges",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil || app.RewardsHandler == nil {
			fmt.Println("Rewards require an initialized database.")
			return nil
		}

		result, err := app.RewardsHandler.Handle(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to build rewards: %w", err)
		}

		fmt.Println("\n  Rewards")
		fmt.Println(strings.Repeat("=", 60))
		fmt.Printf("    %s %s (level %d) - %d points\n",
			result.Level.Icon, result.Level.Name, result.Level.Level, result.Points)
		if result.NextLevel != nil {
			fmt.Printf("    Next: %s %s at %d points  %s %.0f%%\n",
				result.NextLevel.Icon, result.NextLevel.Name, result.NextLevel.MinPoints,
				progressBar(int(result.ProgressPercent)), result.ProgressPercent)
		} else {
			fmt.Println("    Top level reached!")
		}
		fmt.Printf("    Productivity Score: %d/100\n", result.ProductivityScore)

		fmt.Println("\n  BADGES")
		fmt.Println(strings.Repeat("-", 60))
		for _, badge := range result.EarnedBadges {
			fmt.Printf("    %s %-20s %s\n", badge.Icon, badge.Name, badge.Description)
		}
		for _, badge := range result.LockedBadges {
			fmt.Printf("    🔒 %-20s %s\n", badge.Name, badge.Description)
		}

		fmt.Println()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(rewardsCmd)
}
