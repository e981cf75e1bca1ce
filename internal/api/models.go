package api

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/todo-api/internal/domain"
)

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,max=64"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// dueDateLayouts lists the accepted dueDate formats, most specific first.
// The last two are what HTML datetime-local and date inputs produce.
var dueDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// TaskRequest is the body of POST and PUT /api/tasks. Absent or null fields
// are nil. An empty priority or dueDate string counts as absent, which is
// what the web client sends for an untouched select or date input.
type TaskRequest struct {
	ID          *string `json:"id"`
	Title       *string `json:"title" validate:"omitempty,max=255"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
	Priority    *string `json:"priority"`
	DueDate     *string `json:"dueDate"`
}

// ToFields converts a create request into domain.TaskFields.
func (req TaskRequest) ToFields() (domain.TaskFields, error) {
	if req.Title == nil || strings.TrimSpace(*req.Title) == "" {
		return domain.TaskFields{}, domain.NewValidationError("title", "cannot be empty", nil)
	}

	priority, err := parseOptionalPriority(req.Priority)
	if err != nil {
		return domain.TaskFields{}, err
	}

	dueDate, err := parseOptionalDueDate(req.DueDate)
	if err != nil {
		return domain.TaskFields{}, err
	}

	fields := domain.TaskFields{
		Title:       *req.Title,
		Description: req.Description,
		Priority:    priority,
		DueDate:     dueDate,
	}
	if req.Completed != nil {
		fields.Completed = *req.Completed
	}
	return fields, nil
}

// ToPatch converts an update request into a domain.TaskPatch. The id is
// required.
func (req TaskRequest) ToPatch() (domain.TaskPatch, error) {
	if req.ID == nil || strings.TrimSpace(*req.ID) == "" {
		return domain.TaskPatch{}, domain.NewValidationError("id", "is required", nil)
	}

	id, err := uuid.Parse(strings.TrimSpace(*req.ID))
	if err != nil {
		return domain.TaskPatch{}, domain.NewValidationError("id", "has invalid format", domain.ErrInvalidID)
	}

	priority, err := parseOptionalPriority(req.Priority)
	if err != nil {
		return domain.TaskPatch{}, err
	}

	dueDate, err := parseOptionalDueDate(req.DueDate)
	if err != nil {
		return domain.TaskPatch{}, err
	}

	return domain.TaskPatch{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
		Priority:    priority,
		DueDate:     dueDate,
	}, nil
}

func parseOptionalPriority(label *string) (*domain.Priority, error) {
	if label == nil || strings.TrimSpace(*label) == "" {
		return nil, nil
	}

	p, err := domain.ParsePriority(*label)
	if err != nil {
		return nil, domain.NewValidationError("priority", "must be one of LOW, MEDIUM, HIGH", domain.ErrInvalidPriority)
	}
	return &p, nil
}

func parseOptionalDueDate(value *string) (*time.Time, error) {
	if value == nil || strings.TrimSpace(*value) == "" {
		return nil, nil
	}

	s := strings.TrimSpace(*value)
	for _, layout := range dueDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			t = t.UTC()
			return &t, nil
		}
	}
	return nil, domain.NewValidationError("dueDate", "has invalid format", nil)
}
