package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/cadence/adapter/api"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil {
			fmt.Println("Serving requires an initialized database.")
			return nil
		}

		activity := api.NewActivityHandler(api.ActivityHandlerConfig{
			LogActivity:     app.LogActivityHandler,
			DeleteActivity:  app.DeleteActivityHandler,
			ClearActivities: app.ClearActivitiesHandler,
			ListActivities:  app.ListActivitiesHandler,
			ListToday:       app.ListTodayHandler,
			ListByRange:     app.ListByDateRangeHandler,
			WeeklyTotals:    app.WeeklyTotalsHandler,
			Logger:          logger,
		})

		insights := api.NewInsightsHandler(api.InsightsHandlerConfig{
			Dashboard:   app.DashboardHandler,
			Weekly:      app.WeeklyHandler,
			FocusReport: app.FocusReportHandler,
			Rewards:     app.RewardsHandler,
			Insights:    app.InsightsHandler,
			Logger:      logger,
		})

		serverCfg := api.ServerConfig{
			Addr:         app.Config.HTTPAddr,
			ReadTimeout:  app.Config.HTTPReadTimeout,
			WriteTimeout: app.Config.HTTPWriteTimeout,
			IdleTimeout:  app.Config.HTTPIdleTimeout,
		}
		if serveAddr != "" {
			serverCfg.Addr = serveAddr
		}

		server := api.NewServer(serverCfg, activity, insights, logger)

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
		}()

		select {
		case err := <-errCh:
			return fmt.Errorf("server failed: %w", err)
		case <-ctx.Done():
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides config)")
	rootCmd.AddCommand(serveCmd)
}
