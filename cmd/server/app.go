package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"github.com/phrazzld/todo-api/internal/config"
	"github.com/phrazzld/todo-api/internal/generation"
	"github.com/phrazzld/todo-api/internal/platform/gemini"
	"github.com/phrazzld/todo-api/internal/platform/groq"
	"github.com/phrazzld/todo-api/internal/platform/postgres"
	"github.com/phrazzld/todo-api/internal/service"
	"github.com/phrazzld/todo-api/internal/service/auth"
	"github.com/phrazzld/todo-api/internal/store"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	userStore store.UserStore
	taskStore store.TaskStore

	jwtService     auth.JWTService
	passwordHasher auth.PasswordHasher
	generator      generation.Generator

	authService service.AuthService
	taskService service.TaskService

	registry *prometheus.Registry
}

// newApplication creates an application with every dependency wired. The
// database connection must already be established.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config:   cfg,
		logger:   logger,
		db:       db,
		registry: prometheus.NewRegistry(),
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	app.passwordHasher = auth.NewBcryptHasher(cfg.Auth.BcryptCost)

	app.userStore = postgres.NewPostgresUserStore(db, logger)
	app.taskStore = postgres.NewPostgresTaskStore(db, logger)

	app.generator, err = newGenerator(ctx, cfg.LLM, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize LLM generator: %w", err)
	}

	app.authService, err = service.NewAuthService(db, app.userStore, app.passwordHasher, app.jwtService, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create auth service: %w", err)
	}

	taskService, err := service.NewTaskService(db, app.taskStore, app.generator, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create task service: %w", err)
	}

	if err := app.registry.Register(collectors.NewGoCollector()); err != nil {
		return nil, fmt.Errorf("failed to register go collector: %w", err)
	}
	if err := app.registry.Register(collectors.NewDBStatsCollector(db, "todo")); err != nil {
		return nil, fmt.Errorf("failed to register db stats collector: %w", err)
	}
	metrics, err := service.NewTaskMetrics(app.registry)
	if err != nil {
		return nil, fmt.Errorf("failed to register task metrics: %w", err)
	}
	app.taskService = service.NewInstrumentedTaskService(taskService, metrics)

	logger.Info("Application initialized successfully")
	return app, nil
}

// newGenerator picks the summary provider. Without an API key summaries are
// disabled rather than failing startup.
func newGenerator(ctx context.Context, cfg config.LLMConfig, logger *slog.Logger) (generation.Generator, error) {
	log := logger.With("component", "llm_generator", "provider", cfg.Provider)

	if strings.TrimSpace(cfg.APIKey) == "" {
		log.Warn("LLM API key not set, task summaries are disabled")
		return generation.Unconfigured{}, nil
	}

	var (
		gen generation.Generator
		err error
	)
	switch cfg.Provider {
	case "gemini":
		gen, err = gemini.NewGeminiGenerator(ctx, log, cfg)
	case "groq":
		gen, err = groq.NewClient(log, cfg)
	default:
		return nil, fmt.Errorf("%w: unknown provider %q", generation.ErrInvalidConfig, cfg.Provider)
	}
	if err != nil {
		return nil, err
	}

	log.Info("LLM generator initialized", "model", cfg.Model)
	return gen, nil
}

// Run serves HTTP until ctx is canceled or a shutdown signal arrives.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		closeDB(app.db, app.logger)
	}

	app.logger.Info("Application shutdown completed")
}
