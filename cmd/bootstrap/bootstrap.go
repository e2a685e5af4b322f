package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"medrep-visits/config"
	deliveryHttp "medrep-visits/internal/delivery/http"
	"medrep-visits/internal/delivery/http/handler"
	"medrep-visits/internal/delivery/http/middleware"
	"medrep-visits/internal/infrastructure/cache"
	"medrep-visits/internal/infrastructure/database"
	"medrep-visits/internal/infrastructure/storage"
	"medrep-visits/internal/repository"
	"medrep-visits/internal/usecase"
	"medrep-visits/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	Log         *logrus.Logger
	Store       storage.RecordStore
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
	rateLimiter *middleware.RateLimiter
}

// New creates a new App instance with all dependencies initialized
func New(cfg *config.Config) (*App, error) {
	app := &App{Config: cfg}

	// Setup logger
	app.Log = setupLogger(cfg.App.LogLevel)

	// Initialize record store
	if err := app.initStore(); err != nil {
		app.Close()
		return nil, err
	}
	app.Log.Infof("Record store ready (backend: %s)", cfg.Store.Backend)

	// Initialize all layers
	app.Server = app.initializeServer()

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger(level string) *logrus.Logger {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logrus.SetLevel(lvl)

	return logrus.StandardLogger()
}

// initStore connects the configured record store backend
func (app *App) initStore() error {
	cfg := app.Config

	switch cfg.Store.Backend {
	case config.BackendMemory:
		app.Store = storage.NewMemoryStore(cfg.Store.QuotaBytes)

	case config.BackendRedis:
		redisClient, err := cache.NewRedisClient(cfg.Redis, app.Log)
		if err != nil {
			return fmt.Errorf("failed to connect to Redis: %w", err)
		}
		app.RedisClient = redisClient
		app.Store = storage.NewRedisStore(redisClient, app.Log, cfg.Store.KeyPrefix, cfg.Store.QuotaBytes)

	case config.BackendPostgres:
		db, err := database.NewPostgresConnection(cfg.DB, app.Log)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		app.DB = db
		store := storage.NewPostgresStore(db, app.Log, cfg.Store.KeyPrefix, cfg.Store.QuotaBytes)
		if cfg.Store.AutoMigrate {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if err := store.Migrate(ctx); err != nil {
				return fmt.Errorf("failed to migrate record table: %w", err)
			}
		}
		app.Store = store

	case config.BackendNone:
		app.Log.Warn("No record store configured, bookings will not be persisted")
		app.Store = storage.NewUnavailableStore()

	default:
		return fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}

	return nil
}

// initializeServer creates and configures the HTTP server
func (app *App) initializeServer() *http.Server {
	cfg := app.Config
	log := app.Log

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	doctorRepo := repository.NewDoctorRepository(app.Store, log)
	appointmentRepo := repository.NewAppointmentRepository(app.Store, log)

	// Initialize usecases
	doctorUsecase := usecase.NewDoctorUsecase(log, doctorRepo)
	appointmentUsecase := usecase.NewAppointmentUsecase(log, appointmentRepo, doctorRepo, time.Now)

	// Initialize handlers
	doctorHandler := handler.NewDoctorHandler(doctorUsecase)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, customValidator)

	// Initialize middleware
	corsMiddleware := middleware.NewCORSMiddleware(cfg.App.CORSAllowedOrigin)
	loggingMiddleware := middleware.NewLoggingMiddleware(log)
	if cfg.RateLimit.RPS > 0 {
		app.rateLimiter = middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	}

	// Initialize router
	router := deliveryHttp.NewRouter(doctorHandler, appointmentHandler, corsMiddleware, loggingMiddleware, app.rateLimiter)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:              serverAddr,
		Handler:           httpRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// Seed makes sure the doctor catalog exists in the store and returns its size.
func (app *App) Seed(ctx context.Context) (int, error) {
	doctors, err := repository.NewDoctorRepository(app.Store, app.Log).FindAll(ctx)
	if err != nil {
		return 0, err
	}
	return len(doctors), nil
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		app.Log.Infof("Server starting on port %s", app.Config.App.Port)
		app.Log.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			app.Log.Fatalf("Failed to start server: %v", err)
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

	app.Log.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		app.Log.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	app.Log.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	if app.rateLimiter != nil {
		app.rateLimiter.Close()
	}

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
