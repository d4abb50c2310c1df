package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clinic-portal/config"
	deliveryHttp "clinic-portal/internal/delivery/http"
	"clinic-portal/internal/delivery/http/handler"
	"clinic-portal/internal/delivery/http/middleware"
	domainRepo "clinic-portal/internal/domain/repository"
	"clinic-portal/internal/infrastructure/cache"
	"clinic-portal/internal/infrastructure/database"
	"clinic-portal/internal/infrastructure/postgrest"
	"clinic-portal/internal/repository"
	"clinic-portal/internal/service"
	"clinic-portal/internal/usecase"
	"clinic-portal/pkg/jwt"
	"clinic-portal/pkg/monitoring"
	"clinic-portal/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	serviceName    = "clinic-portal"
	connectTimeout = 5 * time.Second
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	Log         *logrus.Logger
	Store       domainRepo.TableStore
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app, err := newBase()
	if err != nil {
		return nil, err
	}
	if err := app.Config.ValidateServe(); err != nil {
		app.Close()
		return nil, err
	}

	// Initialize Redis
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	redisClient, err := cache.NewRedisClient(ctx, app.Config.Redis, app.Log)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient

	// Initialize all layers
	app.Server = initializeServer(app)

	return app, nil
}

// NewResolver builds only what identity resolution needs: config and the store
func NewResolver() (*App, usecase.IdentityUsecase, error) {
	app, err := newBase()
	if err != nil {
		return nil, nil, err
	}

	metrics := monitoring.NewMetricsCollector(serviceName)
	directoryRepo := repository.NewDirectoryRepository(app.Store)
	patientRepo := repository.NewPatientRepository(app.Store)

	// resolving never starts a session, so no token service or session store
	identityUsecase := usecase.NewIdentityUsecase(app.Log, directoryRepo, patientRepo, nil, nil, metrics)
	return app, identityUsecase, nil
}

func newBase() (*App, error) {
	app := &App{}

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg

	// Setup logger
	app.Log = setupLogger(cfg)
	app.Log.Info("Configuration loaded successfully")

	// Initialize the remote store
	if err := app.connectStore(); err != nil {
		return nil, err
	}

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger(cfg *config.Config) *logrus.Logger {
	log := logrus.StandardLogger()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)
	log.SetLevel(logrus.InfoLevel)
	if cfg.IsDevelopment() {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}

// connectStore selects the table store named by STORE_DRIVER
func (app *App) connectStore() error {
	switch app.Config.Store.Driver {
	case config.StoreDriverPostgres:
		ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
		defer cancel()
		db, err := database.NewPostgresConnection(ctx, app.Config.DB, app.Log, app.Config.IsDevelopment())
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		app.DB = db
		app.Store = database.NewTableStore(db)
	default:
		client, err := postgrest.NewClient(app.Config.Store)
		if err != nil {
			return fmt.Errorf("failed to create store client: %w", err)
		}
		app.Store = client
		app.Log.Infof("Using REST store at %s", app.Config.Store.URL)
	}
	return nil
}

// initializeServer creates and configures the HTTP server
func initializeServer(app *App) *http.Server {
	cfg := app.Config
	log := app.Log

	// Initialize shared services
	jwtService := jwt.NewJWTService(cfg.JWT)
	customValidator := validator.NewValidator()
	metrics := monitoring.NewMetricsCollector(serviceName)
	sessionStore := service.NewRedisSessionStore(app.RedisClient, log)

	// Initialize repositories
	directoryRepo := repository.NewDirectoryRepository(app.Store)
	patientRepo := repository.NewPatientRepository(app.Store)
	appointmentRepo := repository.NewAppointmentRepository(app.Store)
	staffRepo := repository.NewStaffRepository(app.Store)
	prescriptionRepo := repository.NewPrescriptionRepository(app.Store)
	paymentRepo := repository.NewPaymentRepository(app.Store)

	// Initialize usecases
	identityUsecase := usecase.NewIdentityUsecase(log, directoryRepo, patientRepo, jwtService, sessionStore, metrics)
	appointmentUsecase := usecase.NewAppointmentUsecase(log, appointmentRepo, patientRepo, metrics, cfg.Clinic.ID)
	dashboardUsecase := usecase.NewDashboardUsecase(log, directoryRepo, patientRepo, appointmentRepo, staffRepo, prescriptionRepo, paymentRepo, metrics)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(identityUsecase, customValidator)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, customValidator)
	dashboardHandler := handler.NewDashboardHandler(dashboardUsecase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, sessionStore, log)
	corsMiddleware := middleware.NewCORSMiddleware(cfg.App.AllowedOrigins)

	// Initialize router
	router := deliveryHttp.NewRouter(authHandler, appointmentHandler, dashboardHandler, authMiddleware, corsMiddleware, metrics)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:              serverAddr,
		Handler:           httpRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// Run starts the HTTP server and blocks until it has shut down
func (app *App) Run() error {
	errCh := make(chan error, 1)
	go func() {
		app.Log.Infof("Server starting on port %s", app.Config.App.Port)
		app.Log.Infof("Environment: %s, clinic %d, store %s", app.Config.App.Env, app.Config.Clinic.ID, app.Config.Store.Driver)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	return app.waitForShutdown(errCh)
}

// waitForShutdown blocks until an interrupt signal is received or the server fails
func (app *App) waitForShutdown(errCh <-chan error) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-errCh:
		app.Close()
		return fmt.Errorf("failed to start server: %w", err)
	case <-quit:
	}

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
	return nil
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
