package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/phrazzld/todo-api/internal/generation"
	"github.com/phrazzld/todo-api/internal/redact"
	"github.com/phrazzld/todo-api/internal/store"
)

// Fixed summary texts.
const (
	EmptySummaryText       = "You haven't completed any tasks yet today. Get to work!"
	UnavailableSummaryText = "Failed to generate summary at this time."
)

// SummaryOutcome says how a Summary was produced.
type SummaryOutcome int

const (
	// SummaryEmpty means the user has no completed tasks; no LLM call was made.
	SummaryEmpty SummaryOutcome = iota
	// SummaryGenerated means Text came from the language model.
	SummaryGenerated
	// SummaryUnavailable means the language model call failed and Text is
	// the fixed apology.
	SummaryUnavailable
)

func (o SummaryOutcome) String() string {
	switch o {
	case SummaryEmpty:
		return "empty"
	case SummaryGenerated:
		return "generated"
	case SummaryUnavailable:
		return "unavailable"
	default:
		return "unknown"
	}
}

// Summary is the result of SummarizeCompletedTasks.
type Summary struct {
	Text    string
	Outcome SummaryOutcome
}

// TaskService is the per-user task access layer.
//
// GetTask, UpdateTask and DeleteTask address a task by ID alone and do not
// check that the caller owns it.
type TaskService interface {
	CreateTask(ctx context.Context, ownerID uuid.UUID, fields domain.TaskFields) (*domain.Task, error)
	ListTasks(ctx context.Context, ownerID uuid.UUID) ([]*domain.Task, error)
	GetTask(ctx context.Context, id uuid.UUID) (*domain.Task, error)
	UpdateTask(ctx context.Context, patch domain.TaskPatch) (*domain.Task, error)
	DeleteTask(ctx context.Context, id uuid.UUID) error
	ListByCompletion(ctx context.Context, ownerID uuid.UUID, completed bool) ([]*domain.Task, error)
	ListByPriority(ctx context.Context, ownerID uuid.UUID, label string) ([]*domain.Task, error)

	// SummarizeCompletedTasks asks the generator for an encouraging summary
	// of the owner's completed tasks. Generator failures never surface as
	// errors; they yield a SummaryUnavailable result instead.
	SummarizeCompletedTasks(ctx context.Context, ownerID uuid.UUID) (*Summary, error)
}

type taskService struct {
	db        *sql.DB
	tasks     store.TaskStore
	generator generation.Generator
	logger    *slog.Logger
	timeFunc  func() time.Time
}

// NewTaskService creates a TaskService. A nil generator is replaced with
// generation.Unconfigured.
func NewTaskService(
	db *sql.DB,
	tasks store.TaskStore,
	generator generation.Generator,
	logger *slog.Logger,
) (TaskService, error) {
	if db == nil {
		return nil, errors.New("db cannot be nil")
	}
	if tasks == nil {
		return nil, errors.New("task store cannot be nil")
	}
	if generator == nil {
		generator = generation.Unconfigured{}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &taskService{
		db:        db,
		tasks:     tasks,
		generator: generator,
		logger:    logger.With("component", "task_service"),
		timeFunc:  time.Now,
	}, nil
}

// CreateTask implements TaskService.
func (s *taskService) CreateTask(
	ctx context.Context,
	ownerID uuid.UUID,
	fields domain.TaskFields,
) (*domain.Task, error) {
	if ownerID == uuid.Nil {
		return nil, ErrMissingOwner
	}

	task, err := domain.NewTask(ownerID, fields)
	if err != nil {
		return nil, err
	}

	if err := s.tasks.Create(ctx, task); err != nil {
		s.logger.ErrorContext(ctx, "failed to create task", "error", err, "user_id", ownerID)
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	s.logger.DebugContext(ctx, "task created", "task_id", task.ID, "user_id", ownerID)
	return task, nil
}

// ListTasks implements TaskService.
func (s *taskService) ListTasks(ctx context.Context, ownerID uuid.UUID) ([]*domain.Task, error) {
	return s.list(ctx, ownerID, store.TaskFilter{})
}

// GetTask implements TaskService.
func (s *taskService) GetTask(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	task, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return task, nil
}

// UpdateTask implements TaskService. Load, merge and save run in one
// transaction; updatedAt is refreshed even when the patch is empty.
func (s *taskService) UpdateTask(ctx context.Context, patch domain.TaskPatch) (*domain.Task, error) {
	var updated *domain.Task
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txTasks := s.tasks.WithTx(tx)

		task, err := txTasks.GetByID(ctx, patch.ID)
		if err != nil {
			return err
		}

		task.Apply(patch, s.timeFunc())
		if err := task.Validate(); err != nil {
			return err
		}

		if err := txTasks.Update(ctx, task); err != nil {
			return err
		}

		updated = task
		return nil
	})
	if err != nil {
		if !store.IsNotFoundError(err) && !errors.Is(err, domain.ErrValidation) {
			s.logger.ErrorContext(ctx, "failed to update task", "error", err, "task_id", patch.ID)
		}
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return updated, nil
}

// DeleteTask implements TaskService.
func (s *taskService) DeleteTask(ctx context.Context, id uuid.UUID) error {
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txTasks := s.tasks.WithTx(tx)

		exists, err := txTasks.Exists(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return store.ErrTaskNotFound
		}

		return txTasks.Delete(ctx, id)
	})
	if err != nil {
		if !store.IsNotFoundError(err) {
			s.logger.ErrorContext(ctx, "failed to delete task", "error", err, "task_id", id)
		}
		return fmt.Errorf("failed to delete task: %w", err)
	}

	s.logger.DebugContext(ctx, "task deleted", "task_id", id)
	return nil
}

// ListByCompletion implements TaskService.
func (s *taskService) ListByCompletion(
	ctx context.Context,
	ownerID uuid.UUID,
	completed bool,
) ([]*domain.Task, error) {
	return s.list(ctx, ownerID, store.TaskFilter{Completed: &completed})
}

// ListByPriority implements TaskService. The label is matched case-insensitively.
func (s *taskService) ListByPriority(
	ctx context.Context,
	ownerID uuid.UUID,
	label string,
) ([]*domain.Task, error) {
	priority, err := domain.ParsePriority(label)
	if err != nil {
		return nil, err
	}
	return s.list(ctx, ownerID, store.TaskFilter{Priority: &priority})
}

// SummarizeCompletedTasks implements TaskService.
func (s *taskService) SummarizeCompletedTasks(ctx context.Context, ownerID uuid.UUID) (*Summary, error) {
	completed, err := s.ListByCompletion(ctx, ownerID, true)
	if err != nil {
		return nil, err
	}

	if len(completed) == 0 {
		return &Summary{Text: EmptySummaryText, Outcome: SummaryEmpty}, nil
	}

	prompt, err := generation.BuildSummaryPrompt(completed)
	if err != nil {
		return nil, err
	}

	text, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		s.logger.WarnContext(ctx, "summary generation failed",
			"error", redact.Error(err),
			"user_id", ownerID,
			"task_count", len(completed))
		return &Summary{Text: UnavailableSummaryText, Outcome: SummaryUnavailable}, nil
	}

	return &Summary{Text: text, Outcome: SummaryGenerated}, nil
}

func (s *taskService) list(ctx context.Context, ownerID uuid.UUID, filter store.TaskFilter) ([]*domain.Task, error) {
	if ownerID == uuid.Nil {
		return nil, ErrMissingOwner
	}

	tasks, err := s.tasks.List(ctx, ownerID, filter)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list tasks", "error", err, "user_id", ownerID)
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}
