package app

import (
	"context"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/cadence/internal/tracking/application/commands"
	"github.com/felixgeelhaar/cadence/pkg/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		AppEnv:            "development",
		DBDriver:          "sqlite",
		SQLitePath:        filepath.Join(t.TempDir(), "cadence.db"),
		ActivityListLimit: 100,
	}
}

func TestNewContainer_SQLite(t *testing.T) {
	cfg := testConfig(t)
	logger := slog.New(slog.DiscardHandler)

	container, err := NewContainer(context.Background(), cfg, logger)
	require.NoError(t, err)
	defer container.Close()

	assert.NotNil(t, container.SQLiteDB)
	assert.Nil(t, container.PgPool)
	assert.NotNil(t, container.ActivityRepo)
	assert.NotNil(t, container.EventPublisher)
	assert.NotNil(t, container.LogActivityHandler)
	assert.NotNil(t, container.DashboardHandler)
	assert.NotNil(t, container.InsightsHandler)
}

func TestNewContainer_EndToEnd(t *testing.T) {
	cfg := testConfig(t)
	logger := slog.New(slog.DiscardHandler)

	container, err := NewContainer(context.Background(), cfg, logger)
	require.NoError(t, err)
	defer container.Close()

	ctx := context.Background()
	_, err = container.LogActivityHandler.Handle(ctx, commands.LogActivityCommand{
		Type:            "coding",
		DurationMinutes: 90,
	})
	require.NoError(t, err)

	dashboard, err := container.DashboardHandler.Handle(ctx, time.Now())
	require.NoError(t, err)
	assert.Equal(t, 1, dashboard.TodayStats.TotalActivities)
	assert.Equal(t, 90, dashboard.TodayStats.CodingMinutes)
}

func TestNewContainer_InvalidDriver(t *testing.T) {
	cfg := testConfig(t)
	cfg.DBDriver = "oracle"
	cfg.DatabaseURL = "oracle://nope"

	_, err := NewContainer(context.Background(), cfg, slog.New(slog.DiscardHandler))
	assert.Error(t, err)
}
