package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clinic-front-desk/config"
	deliveryHttp "clinic-front-desk/internal/delivery/http"
	"clinic-front-desk/internal/delivery/http/handler"
	"clinic-front-desk/internal/delivery/http/middleware"
	"clinic-front-desk/internal/infrastructure/cache"
	"clinic-front-desk/internal/infrastructure/database"
	"clinic-front-desk/internal/infrastructure/store"
	"clinic-front-desk/internal/repository"
	"clinic-front-desk/internal/service"
	"clinic-front-desk/internal/usecase"
	"clinic-front-desk/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	Store       *store.Store
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

	// Initialize the key-value backend
	kv, err := app.initKV(cfg)
	if err != nil {
		return nil, err
	}
	app.Store = store.NewStore(kv)
	logrus.Infof("Store initialized with %s backend", cfg.Store.Driver)

	// Initialize all layers
	server, err := initializeServer(cfg, app.Store)
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

// initKV opens the configured storage backend.
func (app *App) initKV(cfg *config.Config) (store.KV, error) {
	switch cfg.Store.Driver {
	case "memory", "":
		return store.NewMemoryKV(), nil
	case "redis":
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		app.RedisClient = redisClient
		return store.NewRedisKV(redisClient), nil
	case "postgres":
		db, err := database.NewPostgresConnection(cfg.DB)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		app.DB = db
		return store.NewPostgresKV(db)
	default:
		return nil, fmt.Errorf("unknown store driver: %s", cfg.Store.Driver)
	}
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, s *store.Store) (*http.Server, error) {
	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	patientRepo := repository.NewPatientRepository()
	professionalRepo := repository.NewProfessionalRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	queueRepo := repository.NewQueueRepository()
	feedbackRepo := repository.NewFeedbackRepository()
	eventRepo := repository.NewEventRepository()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize services
	sequenceService := service.NewSequenceService(s)
	eventService := service.NewEventService(s, log, eventRepo)

	// Initialize usecases
	patientUsecase := usecase.NewPatientUsecase(s, log, patientRepo, sequenceService, eventService)
	professionalUsecase := usecase.NewProfessionalUsecase(s, log, professionalRepo, sequenceService)
	availabilityUsecase := usecase.NewAvailabilityUsecase(s, log, professionalRepo, appointmentRepo)
	appointmentUsecase := usecase.NewAppointmentUsecase(s, log, appointmentRepo, patientRepo, professionalRepo, sequenceService, eventService)
	queueUsecase := usecase.NewQueueUsecase(s, log, queueRepo, appointmentRepo, sequenceService, eventService)
	feedbackUsecase := usecase.NewFeedbackUsecase(s, log, feedbackRepo, appointmentRepo, sequenceService, eventService)
	eventLogUsecase := usecase.NewEventLogUsecase(s, log, eventRepo)

	// Seed the roster once, when the directory is empty
	if err := professionalUsecase.EnsureRoster(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to seed professional roster: %w", err)
	}

	// Initialize handlers
	patientHandler := handler.NewPatientHandler(patientUsecase, customValidator)
	professionalHandler := handler.NewProfessionalHandler(professionalUsecase, availabilityUsecase)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, customValidator)
	queueHandler := handler.NewQueueHandler(queueUsecase, customValidator)
	feedbackHandler := handler.NewFeedbackHandler(feedbackUsecase, customValidator)
	eventHandler := handler.NewEventHandler(eventLogUsecase)
	operatorHandler := handler.NewOperatorHandler(cfg.Operator)

	// Initialize middleware
	requestIDMiddleware := middleware.NewRequestIDMiddleware(log)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(
		patientHandler,
		professionalHandler,
		appointmentHandler,
		queueHandler,
		feedbackHandler,
		eventHandler,
		operatorHandler,
		requestIDMiddleware,
		corsMiddleware,
	)
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
