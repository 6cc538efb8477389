package cli

import (
	insightsQueries "github.com/felixgeelhaar/cadence/internal/insights/application/queries"
	"github.com/felixgeelhaar/cadence/internal/tracking/application/commands"
	"github.com/felixgeelhaar/cadence/internal/tracking/application/queries"
	"github.com/felixgeelhaar/cadence/pkg/config"
)

// App holds the CLI application dependencies.
type App struct {
	Config *config.Config

	// Tracking command handlers
	LogActivityHandler     *commands.LogActivityHandler
	DeleteActivityHandler  *commands.DeleteActivityHandler
	ClearActivitiesHandler *commands.ClearActivitiesHandler

	// Tracking query handlers
	ListActivitiesHandler  *queries.ListActivitiesHandler
	ListTodayHandler       *queries.ListTodayHandler
	ListByDateRangeHandler *queries.ListByDateRangeHandler
	WeeklyTotalsHandler    *queries.GetWeeklyTotalsHandler

	// Insights query handlers
	DashboardHandler   *insightsQueries.GetDashboardHandler
	WeeklyHandler      *insightsQueries.GetWeeklyHandler
	FocusReportHandler *insightsQueries.GetFocusReportHandler
	RewardsHandler     *insightsQueries.GetRewardsHandler
	InsightsHandler    *insightsQueries.GetInsightsHandler
}

// app is the global CLI application instance
var app *App

// SetApp sets the global CLI application instance.
func SetApp(a *App) {
	app = a
}

// GetApp returns the global CLI application instance.
func GetApp() *App {
	return app
}
