// Package main implements the entry point for the todo API server, which
// serves per-user task lists and LLM summaries of completed work.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/phrazzld/todo-api/internal/config"
	"github.com/phrazzld/todo-api/internal/platform/logger"
)

func main() {
	envFile := flag.String("env-file", ".env", "Path to an optional .env file")
	migrateCmd := flag.String("migrate", "", "Run a migration command (up, down, status, version) and exit")
	flag.Parse()

	if err := run(context.Background(), *envFile, *migrateCmd); err != nil {
		slog.Error("todo-api exited with error", "error", err)
		os.Exit(1)
	}
}

// run loads configuration, then either executes a migration command or
// serves HTTP until a shutdown signal arrives.
func run(ctx context.Context, envFile, migrateCmd string) error {
	loaded, err := config.LoadEnvFile(envFile)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	log.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"env_file_loaded", loaded,
		"llm_provider", cfg.LLM.Provider)

	db, err := setupAppDatabase(ctx, cfg.Database, log)
	if err != nil {
		return err
	}

	if migrateCmd != "" {
		defer closeDB(db, log)
		return runMigrations(db, migrateCmd, log)
	}

	if cfg.Database.AutoMigrate {
		if err := runMigrations(db, "up", log); err != nil {
			closeDB(db, log)
			return err
		}
	}

	app, err := newApplication(ctx, cfg, log, db)
	if err != nil {
		closeDB(db, log)
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.Run(ctx)
}
