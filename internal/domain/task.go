package domain

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// MaxTitleLength bounds the title column, in characters.
const MaxTitleLength = 255

// Task is a single to-do item owned by exactly one user.
//
// IDs are UUIDv7, so ordering by ID descending lists the most recently
// created tasks first.
type Task struct {
	ID          uuid.UUID  `json:"id"`
	OwnerID     uuid.UUID  `json:"-"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	Completed   bool       `json:"completed"`
	Priority    *Priority  `json:"priority"`
	DueDate     *time.Time `json:"dueDate"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// TaskFields carries the caller-supplied attributes of a new task.
type TaskFields struct {
	Title       string
	Description *string
	Completed   bool
	Priority    *Priority
	DueDate     *time.Time
}

// NewTask builds a task for ownerID. CreatedAt and UpdatedAt are both set
// to the current time.
func NewTask(ownerID uuid.UUID, fields TaskFields) (*Task, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	task := &Task{
		ID:          id,
		OwnerID:     ownerID,
		Title:       fields.Title,
		Description: fields.Description,
		Completed:   fields.Completed,
		Priority:    fields.Priority,
		DueDate:     fields.DueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
func (t *Task) Validate() error {
	if t.ID == uuid.Nil {
		return NewValidationError("id", "cannot be empty", ErrInvalidID)
	}

	if t.OwnerID == uuid.Nil {
		return NewValidationError("ownerId", "cannot be empty", ErrInvalidID)
	}

	if strings.TrimSpace(t.Title) == "" {
		return NewValidationError("title", "cannot be empty", nil)
	}

	if utf8.RuneCountInString(t.Title) > MaxTitleLength {
		return NewValidationError("title", "is too long", nil)
	}

	if t.Priority != nil && !t.Priority.IsValid() {
		return NewValidationError("priority", "is not recognized", ErrInvalidPriority)
	}

	return nil
}

// TaskPatch is a partial update. Nil fields leave the stored value alone;
// there is no way to clear an optional field back to null.
type TaskPatch struct {
	ID          uuid.UUID
	Title       *string
	Description *string
	Completed   *bool
	Priority    *Priority
	DueDate     *time.Time
}

// Apply merges the supplied fields of p into t and stamps UpdatedAt with now,
// even when the patch is empty.
func (t *Task) Apply(p TaskPatch, now time.Time) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = p.Description
	}
	if p.Completed != nil {
		t.Completed = *p.Completed
	}
	if p.Priority != nil {
		t.Priority = p.Priority
	}
	if p.DueDate != nil {
		t.DueDate = p.DueDate
	}
	t.UpdatedAt = now.UTC()
}
