package bootstrap

import (
	"context"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	appAuth "github.com/akademik/akademik/internal/app/auth"
	appControllers "github.com/akademik/akademik/internal/app/controllers"
	"github.com/akademik/akademik/internal/app/procedures"
	appRepos "github.com/akademik/akademik/internal/app/repositories"
	appRoutes "github.com/akademik/akademik/internal/app/routes"
	appServices "github.com/akademik/akademik/internal/app/services"
	"github.com/akademik/akademik/internal/config"
	"github.com/akademik/akademik/internal/db"
	appMiddleware "github.com/akademik/akademik/internal/middleware"
	pkgAuth "github.com/akademik/akademik/internal/pkg/auth"
	"github.com/akademik/akademik/internal/pkg/helpers"
	"github.com/akademik/akademik/internal/pkg/logger"
	"github.com/akademik/akademik/internal/pkg/metrics"
)

// DefaultConfigPath is used when CONFIG_PATH is not set
const DefaultConfigPath = "configs/config.yaml"

// Dependencies holds all the application dependencies
type Dependencies struct {
	Executor             *procedures.Executor
	Repos                *appRepos.Repositories
	Services             *appServices.Services
	AuthController       *appControllers.AuthController
	StudentController    *appControllers.StudentController
	CourseController     *appControllers.CourseController
	GradingController    *appControllers.GradingController
	AttendanceController *appControllers.AttendanceController
	ReportingController  *appControllers.ReportingController
	AuthMiddleware       *appMiddleware.AuthMiddleware
	JWTService           *pkgAuth.JWTService
	AuthzService         *appAuth.AuthorizationService
	Metrics              *metrics.Metrics
	Logger               zerolog.Logger
}

// LoadConfigAndSetupLogger loads .env, the configuration file and the
// environment, then initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	config.LoadDotEnv()

	configPath := config.GetEnv("CONFIG_PATH", DefaultConfigPath)
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Str("path", configPath).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logger.ConfigureFromStrings(cfg.Logging.Level, cfg.Logging.Format)

	lgr := logger.Default()
	lgr.Info().Str("logLevel", cfg.Logging.Level).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase creates the connection pool. An unreachable database is
// logged but does not stop startup; requests then fail with the driver error.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.Database, error) {
	lgr.Info().
		Str("driver", cfg.Database.Driver).
		Str("server", cfg.Database.Server).
		Str("database", cfg.Database.Name).
		Msg("Establishing database connection...")

	database, err := db.Open(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to open database pool")
		return nil, err
	}

	if err := database.Ping(context.Background()); err != nil {
		lgr.Error().Err(err).Msg("Database connection failed")
		return database, nil
	}
	lgr.Info().Msg("Database connection successfully established.")
	return database, nil
}

// BuildDependencies initializes the executor, repositories, services and
// controllers.
func BuildDependencies(cfg *config.Config, database *db.Database, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	opts := []procedures.Option{
		procedures.WithSchema(cfg.Database.Schema),
		procedures.WithFoldedIdentifiers(cfg.Database.FoldIdentifiers),
	}
	if cfg.Metrics.Enabled {
		deps.Metrics = metrics.New()
		opts = append(opts, procedures.WithObserver(deps.Metrics.ObserveProcedure))
	}
	deps.Executor = procedures.NewExecutor(database.SQL, database.Dialect, opts...)
	lgr.Info().
		Str("dialect", string(deps.Executor.Dialect())).
		Str("schema", cfg.Database.Schema).
		Msg("Stored procedure executor ready")

	deps.Repos = appRepos.NewRepositories(deps.Executor)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenExp:    helpers.ParseDuration(cfg.JWT.Expiration, 24*time.Hour),
		TokenIssuer: cfg.JWT.Issuer,
	})
	deps.AuthzService = appAuth.NewAuthorizationService(cfg.Auth.EnforceRoles)

	deps.Services = appServices.NewServices(deps.Repos, deps.JWTService, lgr)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService, deps.AuthzService)

	deps.AuthController = appControllers.NewAuthController(deps.Services.AuthService)
	deps.StudentController = appControllers.NewStudentController(deps.Services.StudentService)
	deps.CourseController = appControllers.NewCourseController(deps.Services.CourseService)
	deps.GradingController = appControllers.NewGradingController(deps.Services.GradingService)
	deps.AttendanceController = appControllers.NewAttendanceController(deps.Services.AttendanceService)
	deps.ReportingController = appControllers.NewReportingController(deps.Services.ReportingService)

	return deps, nil
}

// VerifyProcedures logs the procedures the repositories call but the
// database does not define. Failure to check is only logged.
func VerifyProcedures(ctx context.Context, cfg *config.Config, deps *Dependencies) {
	if !cfg.Database.VerifyProcs {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	missing, err := deps.Executor.Verify(ctx, appRepos.Catalogue)
	if err != nil {
		deps.Logger.Warn().Err(err).Msg("Could not verify stored procedures")
		return
	}
	if len(missing) == 0 {
		deps.Logger.Info().Int("count", len(appRepos.Catalogue)).Msg("All stored procedures present")
		return
	}
	deps.Logger.Warn().Strs("missing", missing).Msg("Some stored procedures are missing, their routes will fail")
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else if gin.Mode() != gin.TestMode {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(
		appMiddleware.RequestID(),
		appMiddleware.Logger(),
		appMiddleware.Recovery(),
		cors.New(cors.Config{
			AllowAllOrigins: true,
			AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:    []string{"Origin", "Content-Type", "Authorization", appMiddleware.RequestIDHeader},
			ExposeHeaders:   []string{appMiddleware.RequestIDHeader},
			MaxAge:          12 * time.Hour,
		}),
	)

	if deps.Metrics != nil {
		router.Use(appMiddleware.Metrics(deps.Metrics))
		router.GET(cfg.Metrics.Path, gin.WrapH(deps.Metrics.Handler()))
	}

	appRoutes.SetupSwagger(router)

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.StudentController,
		deps.CourseController,
		deps.GradingController,
		deps.AttendanceController,
		deps.ReportingController,
		deps.AuthMiddleware,
	)

	return router
}
