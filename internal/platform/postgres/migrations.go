package postgres

import (
	"database/sql"
	"embed"
	"fmt"
	"sync"

	"github.com/pressly/goose/v3"
)

// Migrations holds the goose SQL migrations for the schema used by this
// package.
//
//go:embed migrations/*.sql
var Migrations embed.FS

const (
	// MigrationsDir is the directory inside Migrations that holds the files.
	MigrationsDir = "migrations"

	// MigrationsTable is the goose version table name.
	MigrationsTable = "schema_migrations"
)

// goose keeps its configuration in package globals.
var gooseMu sync.Mutex

// Migrate runs a goose command ("up", "down", "status", "version", "reset")
// against db using the embedded migrations. A nil logger leaves goose's
// own logger in place.
func Migrate(db *sql.DB, command string, logger goose.Logger) error {
	gooseMu.Lock()
	defer gooseMu.Unlock()

	if logger != nil {
		goose.SetLogger(logger)
	}
	goose.SetBaseFS(Migrations)
	goose.SetTableName(MigrationsTable)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	var err error
	switch command {
	case "up":
		err = goose.Up(db, MigrationsDir)
	case "down":
		err = goose.Down(db, MigrationsDir)
	case "reset":
		err = goose.Reset(db, MigrationsDir)
	case "status":
		err = goose.Status(db, MigrationsDir)
	case "version":
		err = goose.Version(db, MigrationsDir)
	default:
		return fmt.Errorf("unknown migration command %q", command)
	}
	if err != nil {
		return fmt.Errorf("migration %s failed: %w", command, err)
	}
	return nil
}
