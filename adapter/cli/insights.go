package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Show generated productivity insights",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil || app.InsightsHandler == nil {
			fmt.Println("Insights require an initialized database.")
			return nil
		}

		insights, err := app.InsightsHandler.Handle(cmd.Context(), time.Now())
		if err != nil {
			return fmt.Errorf("failed to generate insights: %w", err)
		}

		fmt.Println("\n  Insights")
		fmt.Println(strings.Repeat("=", 60))

		if len(insights) == 0 {
			fmt.Println("  Not enough data yet. Keep logging!")
			fmt.Println()
			return nil
		}

		for _, insight := range insights {
			fmt.Printf("\n  %s %s [%s, %d%% confidence]\n",
				insight.Icon, insight.Title, insight.Priority, insight.Confidence)
			fmt.Printf("    %s\n", insight.Message)
			if insight.Recommendation != "" {
				fmt.Printf("    -> %s\n", insight.Recommendation)
			}
		}

		fmt.Println()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(insightsCmd)
}
