package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appAuth "github.com/devika/facultyhub/internal/app/auth"
	appControllers "github.com/devika/facultyhub/internal/app/controllers"
	appMigrations "github.com/devika/facultyhub/internal/app/migrations"
	appRepos "github.com/devika/facultyhub/internal/app/repositories"
	appRoutes "github.com/devika/facultyhub/internal/app/routes"
	appServices "github.com/devika/facultyhub/internal/app/services"
	"github.com/devika/facultyhub/internal/config"
	"github.com/devika/facultyhub/internal/db"
	appMiddleware "github.com/devika/facultyhub/internal/middleware"
	pkgAuth "github.com/devika/facultyhub/internal/pkg/auth"
	"github.com/devika/facultyhub/internal/pkg/helpers"
	"github.com/devika/facultyhub/internal/pkg/logger"
	"github.com/devika/facultyhub/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	ReportService      appServices.ReportService
	ApprovalService    appServices.ApprovalService
	RecordService      appServices.RecordService
	ReportController   *appControllers.ReportController
	ApprovalController *appControllers.ApprovalController
	RecordController   *appControllers.RecordController
	AuthMiddleware     *appMiddleware.AuthMiddleware
	Repos              *appRepos.Repositories
	JWTService         *pkgAuth.JWTService
	AuthzService       *appAuth.AuthorizationService
	Logger             zerolog.Logger
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

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
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

	if err := migrator.MigrateFromDirectory(context.Background(), migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	// Seed after migrations; a seed failure is logged but not fatal
	if err := seed.CreateDefaultData(context.Background(), dbPool); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.AuthzService = appAuth.NewAuthorizationService(deps.Repos.FacultyRepository)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	stores := appServices.RecordStores{
		Conferences: deps.Repos.ConferenceRepository,
		Journals:    deps.Repos.JournalRepository,
		Patents:     deps.Repos.PatentRepository,
		Workshops:   deps.Repos.WorkshopRepository,
	}

	deps.ReportService = appServices.NewReportService(deps.AuthzService, stores)
	deps.ApprovalService = appServices.NewApprovalService(deps.AuthzService, stores)
	deps.RecordService = appServices.NewRecordService(stores)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService, deps.Repos.FacultyRepository)

	deps.ReportController = appControllers.NewReportController(deps.ReportService)
	deps.ApprovalController = appControllers.NewApprovalController(deps.ReportService, deps.ApprovalService)
	deps.RecordController = appControllers.NewRecordController(deps.RecordService)

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

	router := gin.Default()
	router.Use(appMiddleware.RequestID())

	appRoutes.SetupRouter(router,
		deps.RecordController,
		deps.ReportController,
		deps.ApprovalController,
		deps.AuthMiddleware,
	)

	return router
}
