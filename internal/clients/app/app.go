package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpapi "github.com/iftm/clients/internal/clients/http"
	"github.com/iftm/clients/internal/clients/service"
	"github.com/iftm/clients/internal/clients/store"
	"github.com/iftm/clients/internal/clients/store/drivers/memory"
	"github.com/iftm/clients/internal/clients/store/drivers/postgres"
	"github.com/iftm/clients/internal/clients/store/drivers/sqlite"
	"github.com/iftm/clients/internal/clients/store/seed"
	"github.com/iftm/clients/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags.
	BuildVersion = "v0.1.0"
)

var ErrUnknownDriver = errors.New("unknown database driver")

// Application wires the clients service together with its store and HTTP server
type Application struct {
	cfg    Config
	logger *slog.Logger

	db            store.Store
	clientService *service.ClientService

	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "clients-service",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	ctx := context.Background()
	if err := app.initDatabase(ctx); err != nil {
		return nil, err
	}

	if cfg.Seed {
		n, err := seed.Apply(ctx, app.db)
		if err != nil {
			_ = app.db.Close()
			return nil, fmt.Errorf("failed to seed database: %w", err)
		}
		app.logger.Info("database seeded", "clients", n)
	}

	app.clientService = service.NewClientService(app.db)
	app.initHTTP()

	return app, nil
}

// Handler returns the fully wired router.
func (app *Application) Handler() http.Handler {
	return app.router
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.logger.Info("clients service starting",
		"port", app.cfg.Port,
		"version", BuildVersion,
		"driver", app.cfg.DatabaseDriver,
	)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			_ = app.db.Close()
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down clients service...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("clients service stopped")
	return nil
}

// OpenStore opens the store selected by cfg.DatabaseDriver and applies its
// migrations.
func OpenStore(ctx context.Context, cfg Config) (store.Store, error) {
	var (
		db  store.Store
		err error
	)

	switch cfg.DatabaseDriver {
	case DriverSQLite:
		db, err = sqlite.NewStore(fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", cfg.DatabaseFile))
	case DriverPostgres:
		if cfg.DatabaseURL == "" {
			return nil, errors.New("CLIENTS_DATABASE_URL is required for the postgres driver")
		}
		db, err = postgres.NewStore(ctx, cfg.DatabaseURL)
	case DriverMemory:
		db = memory.NewStore()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.DatabaseDriver)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to apply database migrations: %w", err)
	}

	return db, nil
}

func (app *Application) initDatabase(ctx context.Context) error {
	db, err := OpenStore(ctx, app.cfg)
	if err != nil {
		return err
	}
	app.db = db

	app.logger.Info("database migrations applied successfully", "driver", app.cfg.DatabaseDriver)
	return nil
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(BuildVersion, app.db, app.logger)
	router.ClientService = app.clientService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: app.cfg.ReadHeaderTimeout,
	}
}
