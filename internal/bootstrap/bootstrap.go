package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appCatalog "github.com/jdrincon/acadplan/internal/app/catalog"
	appControllers "github.com/jdrincon/acadplan/internal/app/controllers"
	"github.com/jdrincon/acadplan/internal/app/curriculum"
	appMigrations "github.com/jdrincon/acadplan/internal/app/migrations"
	appRepos "github.com/jdrincon/acadplan/internal/app/repositories"
	appRoutes "github.com/jdrincon/acadplan/internal/app/routes"
	appServices "github.com/jdrincon/acadplan/internal/app/services"
	"github.com/jdrincon/acadplan/internal/config"
	"github.com/jdrincon/acadplan/internal/db"
	appMiddleware "github.com/jdrincon/acadplan/internal/middleware"
	"github.com/jdrincon/acadplan/internal/pkg/logger"
	"github.com/jdrincon/acadplan/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	CatalogSource            appServices.CatalogSource
	ProgramService           *appServices.ProgramService
	RecommendationService    *appServices.RecommendationService
	ProgramController        *appControllers.ProgramController
	RecommendationController *appControllers.RecommendationController
	Repos                    *appRepos.Repositories
	Logger                   zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds the program catalogs. Returns a nil pool when the configured catalog
// source does not need Postgres.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	if !cfg.UsesDatabase() {
		lgr.Info().Str("source", cfg.Catalog.Source).Msg("Catalog source does not use a database, skipping setup")
		return nil, nil
	}

	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		// Log the error but don't necessarily fail the startup
		lgr.Error().Err(err).Msg("Failed to seed default catalogs, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	switch cfg.Catalog.Source {
	case config.CatalogSourcePostgres:
		if dbPool == nil {
			return nil, fmt.Errorf("postgres catalog source configured without a database pool")
		}
		deps.Repos = appRepos.NewRepositories(dbPool)
		deps.CatalogSource = deps.Repos.CatalogRepository
		lgr.Info().Msg("Using Postgres-backed catalog source")
	case config.CatalogSourceEmbedded:
		deps.CatalogSource = appCatalog.NewStaticSource()
		lgr.Info().Msg("Using embedded catalog source")
	default:
		return nil, fmt.Errorf("unknown catalog source %q", cfg.Catalog.Source)
	}

	deps.ProgramService = appServices.NewProgramService(deps.CatalogSource)
	deps.RecommendationService = appServices.NewRecommendationService(deps.CatalogSource, curriculum.DefaultSelectionPolicy)

	deps.ProgramController = appControllers.NewProgramController(deps.ProgramService)
	deps.RecommendationController = appControllers.NewRecommendationController(deps.RecommendationService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger())

	// Setup Swagger
	appRoutes.SetupSwagger(router)

	// Setup API routes using the dependencies
	appRoutes.SetupRouter(router,
		deps.ProgramController,
		deps.RecommendationController,
	)

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
