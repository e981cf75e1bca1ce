package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"github.com/phrazzld/todo-api/internal/platform/postgres"
)

// slogGooseLogger forwards goose output to slog.
type slogGooseLogger struct {
	logger *slog.Logger
}

// Printf implements goose.Logger.
func (l *slogGooseLogger) Printf(format string, v ...interface{}) {
	l.logger.Info(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

// Fatalf implements goose.Logger. Unlike goose's default it does not exit;
// the failing migration returns an error instead.
func (l *slogGooseLogger) Fatalf(format string, v ...interface{}) {
	l.logger.Error(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

// runMigrations executes a goose command against the embedded migrations.
func runMigrations(db *sql.DB, command string, logger *slog.Logger) error {
	log := logger.With("component", "migrations")
	log.Info("Executing migrations", "command", command)

	if err := postgres.Migrate(db, command, &slogGooseLogger{logger: log}); err != nil {
		return err
	}

	log.Info("Migrations finished", "command", command)
	return nil
}
