package internal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/lk16/reversi/internal/config"
	"github.com/lk16/reversi/internal/games"
	"github.com/lk16/reversi/internal/middleware"
	"github.com/lk16/reversi/internal/othello"
	"github.com/lk16/reversi/internal/repository"
	"github.com/lk16/reversi/internal/routes"
	"github.com/lk16/reversi/internal/services"
)

const (
	defaultConcurrency  = 256 * 1024 // Maximum number of concurrent connections
	defaultReadTimeout  = 10 * time.Second
	defaultWriteTimeout = 10 * time.Second
	defaultIdleTimeout  = 5 * time.Second
	defaultBodyLimit    = 1024 * 1024 // 1MB

	schemaTimeout = 10 * time.Second
)

// App is the web server with everything it owns.
type App struct {
	Fiber  *fiber.App
	Config *config.ServerConfig
	Games  *games.Manager

	services *services.Services
}

// BuildApp creates the web server. Stores are backed by the connections in
// services, or kept in memory when a connection is missing. Request logs go to logOutput.
func BuildApp(cfg *config.ServerConfig, svc *services.Services, logOutput io.Writer) (*App, error) {
	selector, err := othello.NewSelector(cfg.MediumDepth, cfg.HardDepth, uint64(time.Now().UnixNano()))
	if err != nil {
		return nil, err
	}

	var sessionStore games.Store
	if svc.Redis != nil {
		sessionStore = repository.NewRedisSessionRepository(svc.Redis, cfg.SessionTTL)
	} else {
		slog.Warn("No Redis configured, games are kept in memory")
		sessionStore = repository.NewMemorySessionRepository()
	}

	var preferenceStore any
	if svc.Postgres != nil {
		repo := repository.NewPostgresPreferenceRepository(svc.Postgres)

		ctx, cancel := context.WithTimeout(context.Background(), schemaTimeout)
		defer cancel()

		if err = repo.EnsureSchema(ctx); err != nil {
			return nil, fmt.Errorf("failed to prepare database: %w", err)
		}
		preferenceStore = repo
	} else {
		slog.Warn("No Postgres configured, preferences are kept in memory")
		preferenceStore = repository.NewMemoryPreferenceRepository()
	}

	manager := games.NewManager(sessionStore, selector, cfg.AIDelay)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		Concurrency:  defaultConcurrency,
		ReadTimeout:  defaultReadTimeout,
		WriteTimeout: defaultWriteTimeout,
		IdleTimeout:  defaultIdleTimeout,
		BodyLimit:    defaultBodyLimit,
	})

	// Make config and stores available to handlers
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("config", cfg)
		c.Locals("games", manager)
		c.Locals("preferences", preferenceStore)
		return c.Next()
	})

	// Add logging middleware
	app.Use(middleware.Logging(logOutput))

	// Setup all routes
	routes.SetupRoutes(app, cfg)

	return &App{
		Fiber:    app,
		Config:   cfg,
		Games:    manager,
		services: svc,
	}, nil
}

// SetupApp loads the configuration, connects to the services and builds the
// web server. It exits the process on failure.
func SetupApp() *App {
	// Load configuration
	cfg := config.LoadServerConfig()

	// Initialize services
	svc, err := services.InitServices(cfg)
	if err != nil {
		slog.Error("Failed to initialize services", "error", err)
		os.Exit(1)
	}

	app, err := BuildApp(cfg, svc, os.Stdout)
	if err != nil {
		_ = svc.Close()
		slog.Error("Failed to build app", "error", err)
		os.Exit(1)
	}

	return app
}

// Listen serves requests until the server is shut down.
func (a *App) Listen() error {
	slog.Info("Starting server", "address", a.Config.Address())
	return a.Fiber.Listen(a.Config.Address())
}

// Run serves requests until ctx is done. It returns after the shutdown has completed.
func (a *App) Run(ctx context.Context) error {
	shutdownErr := make(chan error, 1)

	go func() {
		<-ctx.Done()
		slog.Info("Shutting down")
		shutdownErr <- a.Shutdown()
	}()

	if err := a.Listen(); err != nil {
		return err
	}

	return <-shutdownErr
}

// Shutdown stops the server, pending computer moves and the service connections.
func (a *App) Shutdown() error {
	err := a.Fiber.Shutdown()
	a.Games.Close()

	return errors.Join(err, a.services.Close())
}
