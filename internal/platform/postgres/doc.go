// Package postgres provides PostgreSQL implementations of the store
// interfaces, plus the goose SQL migrations that define their schema.
// Queries go through database/sql with the pgx stdlib driver.
package postgres
