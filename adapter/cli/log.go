package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/cadence/internal/tracking/application/commands"
)

var logAt string

var logCmd = &cobra.Command{
	Use:   "log <type> <duration> [note...]",
	Short: "Log an activity",
	Long: `Log an activity with its duration.

Duration is in minutes, or any Go duration like 1h30m. Any words after
the duration become the note. Common types are coding, learning, meeting,
break, youtube, instagram, reddit, and browsing, but anything goes.

Examples:
  cadence log coding 90
  cadence log coding 1h30m "refactoring the parser"
  cadence log youtube 25 guilty pleasure
  cadence log meeting 45 --at 2026-03-14T10:00:00Z`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil || app.LogActivityHandler == nil {
			fmt.Println("Logging requires an initialized database.")
			return nil
		}

		minutes, err := parseDurationMinutes(args[1])
		if err != nil {
			return err
		}

		var loggedAt time.Time
		if logAt != "" {
			loggedAt, err = time.Parse(time.RFC3339, logAt)
			if err != nil {
				return fmt.Errorf("invalid --at value %q, expected RFC3339", logAt)
			}
		}

		result, err := app.LogActivityHandler.Handle(cmd.Context(), commands.LogActivityCommand{
			Type:            args[0],
			DurationMinutes: minutes,
			Note:            strings.Join(args[2:], " "),
			LoggedAt:        loggedAt,
		})
		if err != nil {
			return fmt.Errorf("failed to log activity: %w", err)
		}

		fmt.Println("Activity logged!")
		fmt.Printf("  Type: %s\n", strings.ToLower(strings.TrimSpace(args[0])))
		fmt.Printf("  Duration: %s\n", formatMinutes(minutes))
		fmt.Printf("  ID: %s\n", result.ActivityID.String()[:8])
		return nil
	},
}

// parseDurationMinutes accepts a bare minute count or a Go duration string.
func parseDurationMinutes(input string) (int, error) {
	if minutes, err := strconv.Atoi(input); err == nil {
		return minutes, nil
	}
	if d, err := time.ParseDuration(input); err == nil {
		return int(d.Minutes()), nil
	}
	return 0, fmt.Errorf("invalid duration %q, use minutes or a duration like 1h30m", input)
}

// formatMinutes renders a minute count as "2h 15m" or "45m".
func formatMinutes(minutes int) string {
	if minutes >= 60 {
		if minutes%60 == 0 {
			return fmt.Sprintf("%dh", minutes/60)
		}
		return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
	}
	return fmt.Sprintf("%dm", minutes)
}

func init() {
	logCmd.Flags().StringVar(&logAt, "at", "", "timestamp of the activity (RFC3339, defaults to now)")
	rootCmd.AddCommand(logCmd)
}
