package bootstrap

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	appControllers "github.com/yigit/turmas/internal/app/controllers"
	appMigrations "github.com/yigit/turmas/internal/app/migrations"
	appRepos "github.com/yigit/turmas/internal/app/repositories"
	appRoutes "github.com/yigit/turmas/internal/app/routes"
	appServices "github.com/yigit/turmas/internal/app/services"
	"github.com/yigit/turmas/internal/config"
	"github.com/yigit/turmas/internal/db"
	appMiddleware "github.com/yigit/turmas/internal/middleware"
	"github.com/yigit/turmas/internal/pkg/filestorage"
	"github.com/yigit/turmas/internal/pkg/logger"
	"github.com/yigit/turmas/internal/pkg/metrics"
	"github.com/yigit/turmas/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Store       appRepos.SnapshotStore
	Services    *appServices.Services
	Controllers *appRoutes.Controllers
	Metrics     *metrics.Metrics
	Registry    *prometheus.Registry
	Logger      zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := config.ResolvePath()
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Str("path", configPath).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.ParseLevel(cfg.Logging.Level)
	lgr := logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: cfg.Logging.Format == "text",
	})

	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupStore opens the persistence provider selected by storage.driver and
// applies migrations for the SQL ones. The returned closer releases it.
func SetupStore(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (appRepos.SnapshotStore, func(), error) {
	storeLogger := logger.Component(lgr, "store")
	noop := func() {}

	switch cfg.Storage.Driver {
	case config.DriverMemory:
		lgr.Warn().Msg("Using in-memory storage, data is lost on exit")
		return appRepos.NewMemoryStore(), noop, nil

	case config.DriverFile:
		storage, err := filestorage.NewLocalStorage(cfg.Storage.DataDir)
		if err != nil {
			lgr.Error().Err(err).Str("path", cfg.Storage.DataDir).Msg("Failed to initialize data directory")
			return nil, nil, fmt.Errorf("failed to initialize file storage: %w", err)
		}
		lgr.Info().Str("path", cfg.Storage.DataDir).Msg("Using file storage")
		return appRepos.NewFileStore(storage, storeLogger), noop, nil

	case config.DriverSQLite:
		conn, err := db.NewSQLiteDB(ctx, cfg.Storage.SQLitePath)
		if err != nil {
			lgr.Error().Err(err).Msg("Failed to open sqlite database")
			return nil, nil, err
		}
		if err := runMigrations(ctx, appMigrations.NewSQLMigrator(conn, lgr), lgr); err != nil {
			conn.Close()
			return nil, nil, err
		}
		lgr.Info().Str("path", cfg.Storage.SQLitePath).Msg("Using sqlite storage")
		return appRepos.NewSQLiteStore(conn, storeLogger), closeSQL(conn, lgr), nil

	case config.DriverPostgres:
		lgr.Info().Msg("Establishing database connection...")
		database, err := db.NewPostgresDB(ctx, cfg)
		if err != nil {
			lgr.Error().Err(err).Msg("Failed to connect to database")
			return nil, nil, err
		}
		lgr.Info().Msg("Database connection successfully established.")
		if err := runMigrations(ctx, appMigrations.NewPostgresMigrator(database.Pool, lgr), lgr); err != nil {
			database.Close()
			return nil, nil, err
		}
		return appRepos.NewPostgresStore(database, storeLogger), database.Close, nil
	}

	return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
}

func runMigrations(ctx context.Context, migrator *appMigrations.Migrator, lgr zerolog.Logger) error {
	lgr.Info().Msg("Running database migrations...")
	if err := migrator.Migrate(ctx); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")
	return nil
}

func closeSQL(conn *sql.DB, lgr zerolog.Logger) func() {
	return func() {
		if err := conn.Close(); err != nil {
			lgr.Error().Err(err).Msg("Failed to close sqlite database")
		}
	}
}

// BuildDependencies initializes metrics, services and controllers over store.
func BuildDependencies(ctx context.Context, cfg *config.Config, store appRepos.SnapshotStore, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Store: store, Logger: lgr}

	if cfg.Metrics.Enabled {
		deps.Registry = prometheus.NewRegistry()
		deps.Registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		deps.Metrics = metrics.New(deps.Registry)
	}

	deps.Services = appServices.NewServices(store, appServices.UUIDGenerator{}, lgr, deps.Metrics)

	if cfg.Seed.Enabled {
		if err := seed.CreateDefaultData(ctx, store, deps.Services, logger.Component(lgr, "seed")); err != nil {
			// Log the error but don't fail the startup
			lgr.Error().Err(err).Msg("Failed to create demo data, proceeding anyway...")
		}
	}

	deps.Controllers = &appRoutes.Controllers{
		Data:        appControllers.NewDataController(deps.Services.View, cfg.Storage.Driver),
		Sections:    appControllers.NewSectionController(deps.Services.Sections),
		Catalog:     appControllers.NewCatalogController(deps.Services.Catalog),
		Students:    appControllers.NewStudentController(deps.Services.Students),
		Offerings:   appControllers.NewOfferingController(deps.Services.Offerings),
		Enrollments: appControllers.NewEnrollmentController(deps.Services.Enrollments),
	}

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	appMiddleware.RegisterJSONFieldNames()

	router := gin.New()
	router.Use(
		gin.Recovery(),
		appMiddleware.RequestID(),
		appMiddleware.RequestLogger(logger.Component(lgr, "http")),
	)

	opts := appRoutes.Options{StaticDir: cfg.Server.StaticDir}
	if deps.Registry != nil {
		router.Use(appMiddleware.Metrics(deps.Metrics))
		opts.MetricsPath = cfg.Metrics.Path
		opts.MetricsHandler = promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{})
	}

	appRoutes.SetupRouter(router, deps.Controllers, opts)
	return router
}
