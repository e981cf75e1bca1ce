package service

import (
	"database/sql"
	"log/slog"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/phrazzld/todo-api/internal/platform/logger"
	"github.com/stretchr/testify/require"
)

// newMockDB returns a sqlmock-backed *sql.DB so RunInTransaction can be
// exercised without a database. Tests declare Begin/Commit/Rollback
// expectations; ExpectationsWereMet is checked on cleanup.
func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})
	return db, mock
}

func newTask(t *testing.T, ownerID uuid.UUID, fields domain.TaskFields) *domain.Task {
	t.Helper()
	task, err := domain.NewTask(ownerID, fields)
	require.NoError(t, err)
	return task
}

func ptr[T any](v T) *T {
	return &v
}

func testLogger() *slog.Logger {
	l, _ := logger.NewTestLogger()
	return l
}
