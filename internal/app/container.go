// Package app wires the application dependencies.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	insightsQueries "github.com/felixgeelhaar/cadence/internal/insights/application/queries"
	"github.com/felixgeelhaar/cadence/internal/insights/application/services"
	insightsDomain "github.com/felixgeelhaar/cadence/internal/insights/domain"
	insightsPersistence "github.com/felixgeelhaar/cadence/internal/insights/infrastructure/persistence"
	"github.com/felixgeelhaar/cadence/internal/shared/infrastructure/database"
	"github.com/felixgeelhaar/cadence/internal/shared/infrastructure/eventbus"
	"github.com/felixgeelhaar/cadence/internal/shared/infrastructure/migrations"
	"github.com/felixgeelhaar/cadence/internal/tracking/application/commands"
	"github.com/felixgeelhaar/cadence/internal/tracking/application/consumers"
	"github.com/felixgeelhaar/cadence/internal/tracking/application/queries"
	trackingDomain "github.com/felixgeelhaar/cadence/internal/tracking/domain"
	"github.com/felixgeelhaar/cadence/internal/tracking/infrastructure/persistence"
	"github.com/felixgeelhaar/cadence/pkg/config"
)

// Container holds all application dependencies.
type Container struct {
	Config *config.Config
	Logger *slog.Logger

	// Database handles, only one is set depending on the driver
	SQLiteDB *sql.DB
	PgPool   *pgxpool.Pool

	// Repositories
	ActivityRepo trackingDomain.ActivityRepository
	RecordSource insightsDomain.RecordSource

	// Events
	EventPublisher eventbus.Publisher

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

// NewContainer creates and wires all dependencies. The database driver is
// picked from the configuration: SQLite for zero-config local use, Postgres
// when a server is available.
func NewContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Container, error) {
	c := &Container{
		Config: cfg,
		Logger: logger,
	}

	if err := c.initDatabase(ctx); err != nil {
		return nil, err
	}

	c.initEventPublisher()
	c.initHandlers()

	return c, nil
}

func (c *Container) initDatabase(ctx context.Context) error {
	driver := database.Driver(c.Config.DBDriver)
	if !driver.IsValid() {
		driver = database.DetectDriver(c.Config.DatabaseURL)
	}

	switch driver {
	case database.DriverPostgres:
		pool, err := database.OpenPostgres(ctx, c.Config.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := migrations.RunPostgresMigrations(ctx, pool); err != nil {
			pool.Close()
			return fmt.Errorf("failed to run migrations: %w", err)
		}
		c.PgPool = pool
		c.ActivityRepo = persistence.NewPostgresActivityRepository(pool)
		c.Logger.Info("connected to database", "driver", driver)

	case database.DriverSQLite:
		db, err := database.OpenSQLite(ctx, c.Config.SQLitePath)
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		if err := migrations.RunSQLiteMigrations(ctx, db); err != nil {
			_ = db.Close()
			return fmt.Errorf("failed to run migrations: %w", err)
		}
		c.SQLiteDB = db
		c.ActivityRepo = persistence.NewSQLiteActivityRepository(db)
		c.Logger.Info("opened database", "driver", driver, "path", c.Config.SQLitePath)

	default:
		return fmt.Errorf("unsupported database driver %q", c.Config.DBDriver)
	}

	c.RecordSource = insightsPersistence.NewActivityDataSource(c.ActivityRepo)
	return nil
}

func (c *Container) initEventPublisher() {
	// Local mode has no broker; dispatch events in-process so consumers
	// like the audit trail still run.
	if c.SQLiteDB != nil {
		bus := eventbus.NewInProcessEventBus(c.Logger)
		bus.RegisterConsumer(consumers.NewActivityAuditConsumer(c.Logger))
		c.EventPublisher = bus
		return
	}

	publisher, err := eventbus.NewRabbitMQPublisher(c.Config.RabbitMQURL, c.Logger)
	if err != nil {
		// Fall back to noop publisher in development
		if c.Config.IsDevelopment() {
			c.Logger.Warn("RabbitMQ not available, using noop publisher")
			c.EventPublisher = eventbus.NewNoopPublisher(c.Logger)
			return
		}
		c.Logger.Error("failed to connect to RabbitMQ", "error", err)
		c.EventPublisher = eventbus.NewNoopPublisher(c.Logger)
		return
	}
	c.EventPublisher = publisher
}

func (c *Container) initHandlers() {
	c.LogActivityHandler = commands.NewLogActivityHandler(c.ActivityRepo, c.EventPublisher, c.Logger)
	c.DeleteActivityHandler = commands.NewDeleteActivityHandler(c.ActivityRepo, c.EventPublisher, c.Logger)
	c.ClearActivitiesHandler = commands.NewClearActivitiesHandler(c.ActivityRepo, c.EventPublisher, c.Logger)

	c.ListActivitiesHandler = queries.NewListActivitiesHandler(c.ActivityRepo, c.Config.ActivityListLimit)
	c.ListTodayHandler = queries.NewListTodayHandler(c.ActivityRepo)
	c.ListByDateRangeHandler = queries.NewListByDateRangeHandler(c.ActivityRepo)
	c.WeeklyTotalsHandler = queries.NewGetWeeklyTotalsHandler(c.ActivityRepo)

	goals := insightsQueries.GoalTargets{
		CodingMinutes:   c.Config.GoalCodingMinutes,
		LearningMinutes: c.Config.GoalLearningMinutes,
		BreakMinutes:    c.Config.GoalBreakMinutes,
	}
	c.DashboardHandler = insightsQueries.NewGetDashboardHandler(c.RecordSource, goals)
	c.WeeklyHandler = insightsQueries.NewGetWeeklyHandler(c.RecordSource)
	c.FocusReportHandler = insightsQueries.NewGetFocusReportHandler(c.RecordSource)
	c.RewardsHandler = insightsQueries.NewGetRewardsHandler(c.RecordSource)
	c.InsightsHandler = insightsQueries.NewGetInsightsHandler(c.RecordSource, services.NewInsightGenerator())
}

// Close cleans up all resources.
func (c *Container) Close() {
	if c.EventPublisher != nil {
		if err := c.EventPublisher.Close(); err != nil {
			c.Logger.Error("failed to close event publisher", "error", err)
		}
	}
	if c.SQLiteDB != nil {
		if err := c.SQLiteDB.Close(); err != nil {
			c.Logger.Error("failed to close database", "error", err)
		}
	}
	if c.PgPool != nil {
		c.PgPool.Close()
	}
}
