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

	appControllers "github.com/pradana/tracerstudy/internal/app/controllers"
	appMigrations "github.com/pradana/tracerstudy/internal/app/migrations"
	appRepos "github.com/pradana/tracerstudy/internal/app/repositories"
	appRoutes "github.com/pradana/tracerstudy/internal/app/routes"
	appServices "github.com/pradana/tracerstudy/internal/app/services"
	"github.com/pradana/tracerstudy/internal/config"
	"github.com/pradana/tracerstudy/internal/db"
	appMiddleware "github.com/pradana/tracerstudy/internal/middleware"
	pkgAuth "github.com/pradana/tracerstudy/internal/pkg/auth"
	"github.com/pradana/tracerstudy/internal/pkg/filestorage"
	"github.com/pradana/tracerstudy/internal/pkg/helpers"
	"github.com/pradana/tracerstudy/internal/pkg/logger"
	"github.com/pradana/tracerstudy/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService         appServices.AuthService
	AlumniService       appServices.AlumniService
	TracerService       appServices.TracerService
	ReferenceService    appServices.ReferenceService
	StatisticService    appServices.StatisticService
	RosterService       appServices.RosterService
	AuthController      *appControllers.AuthController
	AlumniController    *appControllers.AlumniController
	TracerController    *appControllers.TracerController
	ReferenceController *appControllers.ReferenceController
	StatisticController *appControllers.StatisticController
	AuthMiddleware      *appMiddleware.AuthMiddleware
	Repos               *appRepos.Repositories
	JWTService          *pkgAuth.JWTService
	Logger              zerolog.Logger
	FileStorage         *filestorage.LocalStorage
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
// seeds the reference tables.
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

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	// The baseURL must match the static file serving endpoint.
	var err error
	fileStorageBaseURL := cfg.PublicBaseURL() + "/uploads"
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath, fileStorageBaseURL)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(deps.Repos.UserRepository, deps.JWTService)
	deps.AlumniService = appServices.NewAlumniService(deps.Repos.AlumniRepository)
	deps.TracerService = appServices.NewTracerService(
		deps.Repos.TracerRepository,
		deps.Repos.AlumniRepository,
		deps.Repos.ReferenceRepository,
		deps.FileStorage,
	)
	deps.ReferenceService = appServices.NewReferenceService(deps.Repos.ReferenceRepository)
	deps.StatisticService = appServices.NewStatisticService(deps.Repos.StatisticRepository)
	deps.RosterService = appServices.NewRosterService(deps.Repos.RosterRepository, deps.Repos.ReferenceRepository)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.AlumniController = appControllers.NewAlumniController(deps.AlumniService)
	deps.TracerController = appControllers.NewTracerController(deps.TracerService, deps.RosterService)
	deps.ReferenceController = appControllers.NewReferenceController(deps.ReferenceService)
	deps.StatisticController = appControllers.NewStatisticController(deps.StatisticService)

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
	router.Use(appMiddleware.CORS())

	if strings.ToLower(cfg.Server.Mode) != "production" {
		appRoutes.SetupSwagger(router)
	}

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.AlumniController,
		deps.TracerController,
		deps.ReferenceController,
		deps.StatisticController,
		deps.AuthMiddleware,
	)

	return router
}
