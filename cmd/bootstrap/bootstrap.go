package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"benihealth/config"
	deliveryHttp "benihealth/internal/delivery/http"
	"benihealth/internal/delivery/http/handler"
	"benihealth/internal/delivery/http/middleware"
	"benihealth/internal/infrastructure/cache"
	"benihealth/internal/infrastructure/database"
	"benihealth/internal/repository"
	"benihealth/internal/service"
	"benihealth/internal/usecase"
	"benihealth/pkg/jwt"
	"benihealth/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Apply database migrations
	if err := database.RunMigrations(cfg.DB); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	// Initialize all layers
	server := initializeServer(cfg, db, redisClient)
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *http.Server {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	userRepo := repository.NewUserRepository()
	userProfileRepo := repository.NewUserProfileRepository()
	employerRepo := repository.NewEmployerProfileRepository()
	employeeRepo := repository.NewEmployeeProfileRepository()
	providerRepo := repository.NewProviderProfileRepository()
	hmoRepo := repository.NewHMOProfileRepository()
	enrolleeRepo := repository.NewEnrolleeRepository()
	sequenceRepo := repository.NewEnrolleeSequenceRepository()
	planRepo := repository.NewPlanRepository()
	auditRepo := repository.NewAuditLogRepository()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize services
	auditService := service.NewAuditService(log, auditRepo)
	provisioningService := service.NewProvisioningService(log, employerRepo, employeeRepo, providerRepo, hmoRepo, enrolleeRepo)
	linkingService := service.NewLinkingService(log, userRepo, userProfileRepo, employeeRepo)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, userProfileRepo, employerRepo, employeeRepo, providerRepo, hmoRepo, provisioningService, auditService, jwtService, redisClient)
	enrolleeUsecase := usecase.NewEnrolleeUsecase(db, log, userProfileRepo, employerRepo, enrolleeRepo, sequenceRepo, planRepo, linkingService, auditService)
	eligibilityUsecase := usecase.NewEligibilityUsecase(db, log, enrolleeRepo)
	planUsecase := usecase.NewPlanUsecase(db, log, planRepo, auditService)
	dashboardUsecase := usecase.NewDashboardUsecase(db, log, userProfileRepo, employerRepo, employeeRepo, enrolleeRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator, jwtService)
	enrolleeHandler := handler.NewEnrolleeHandler(enrolleeUsecase, customValidator)
	eligibilityHandler := handler.NewEligibilityHandler(eligibilityUsecase, customValidator)
	planHandler := handler.NewPlanHandler(planUsecase, customValidator)
	dashboardHandler := handler.NewDashboardHandler(dashboardUsecase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(authHandler, enrolleeHandler, eligibilityHandler, planHandler, dashboardHandler, authMiddleware, corsMiddleware)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
