package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"student-recommendation-platform/config"
	deliveryHttp "student-recommendation-platform/internal/delivery/http"
	"student-recommendation-platform/internal/delivery/http/handler"
	"student-recommendation-platform/internal/delivery/http/middleware"
	"student-recommendation-platform/internal/infrastructure/cache"
	"student-recommendation-platform/internal/infrastructure/database"
	"student-recommendation-platform/internal/repository"
	"student-recommendation-platform/internal/service"
	"student-recommendation-platform/internal/usecase"
	"student-recommendation-platform/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	MongoClient *mongo.Client
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

	// Initialize document store
	mongoClient, err := database.NewMongoConnection(cfg.Mongo)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	app.MongoClient = mongoClient

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient

	// Initialize all layers
	server, err := initializeServer(cfg, mongoClient, redisClient)
	if err != nil {
		return nil, err
	}
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
func initializeServer(cfg *config.Config, mongoClient *mongo.Client, redisClient *redis.Client) (*http.Server, error) {
	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repository and the unique index backing the name key
	db := mongoClient.Database(cfg.Mongo.DBName)
	studentRepo := repository.NewStudentProfileRepository(db)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := studentRepo.EnsureIndexes(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure indexes: %w", err)
	}

	// Initialize services
	advisor, err := service.NewGeminiAdvisor(cfg.Gemini, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize advisor: %w", err)
	}
	courseSource := service.NewStaticCourseSource()
	dashboardCache := service.NewDashboardCache(redisClient, cfg.Dashboard.CacheTTL, log)

	// Initialize usecases
	intakeUsecase := usecase.NewStudentIntakeUsecase(log, studentRepo, advisor, courseSource, dashboardCache)
	dashboardUsecase := usecase.NewDashboardUsecase(log, studentRepo, dashboardCache)

	// Initialize handlers
	studentHandler := handler.NewStudentHandler(intakeUsecase, customValidator)
	dashboardHandler := handler.NewDashboardHandler(dashboardUsecase)

	// Initialize middleware
	corsMiddleware := middleware.NewCORSMiddleware()
	requestLogger := middleware.NewRequestLoggerMiddleware(log)

	// Initialize router
	router := deliveryHttp.NewRouter(studentHandler, dashboardHandler, corsMiddleware, requestLogger)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}, nil
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

// Close closes all connections (document store, redis)
func (app *App) Close() {
	if app.MongoClient != nil {
		database.Disconnect(app.MongoClient)
	}

	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
