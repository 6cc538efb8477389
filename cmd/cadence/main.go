package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/felixgeelhaar/cadence/adapter/cli"
	"github.com/felixgeelhaar/cadence/internal/app"
	"github.com/felixgeelhaar/cadence/pkg/config"
	"github.com/felixgeelhaar/cadence/pkg/observability"
)

func main() {
	// Setup logger
	logger := observability.NewLogger(observability.DefaultLogConfig())

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		cancel()
	}()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Warn("failed to load config, using development mode", "error", err)
		cfg = &config.Config{AppEnv: "development"}
	}

	// Update logger based on config
	logCfg := observability.DefaultLogConfig()
	if cfg.IsProduction() {
		logCfg = observability.ProductionLogConfig()
	}
	logCfg.Level = cfg.LogLevel
	logger = observability.NewLogger(logCfg)
	cli.SetLogger(logger)

	var cliApp *cli.App
	container, err := app.NewContainer(ctx, cfg, logger)
	if err != nil {
		if cfg.IsDevelopment() {
			logger.Warn("failed to initialize container, running in limited mode", "error", err)
			cliApp = nil
		} else {
			logger.Error("failed to initialize container", "error", err)
			os.Exit(1)
		}
	} else {
		defer container.Close()

		cliApp = &cli.App{
			Config:                 cfg,
			LogActivityHandler:     container.LogActivityHandler,
			DeleteActivityHandler:  container.DeleteActivityHandler,
			ClearActivitiesHandler: container.ClearActivitiesHandler,
			ListActivitiesHandler:  container.ListActivitiesHandler,
			ListTodayHandler:       container.ListTodayHandler,
			ListByDateRangeHandler: container.ListByDateRangeHandler,
			WeeklyTotalsHandler:    container.WeeklyTotalsHandler,
			DashboardHandler:       container.DashboardHandler,
			WeeklyHandler:          container.WeeklyHandler,
			FocusReportHandler:     container.FocusReportHandler,
			RewardsHandler:         container.RewardsHandler,
			InsightsHandler:        container.InsightsHandler,
		}
	}

	// Set the CLI app
	cli.SetApp(cliApp)

	// Execute CLI
	cli.Execute()
}
