package api

import (
	"net/http"
	"strconv"

	"github.com/phrazzld/todo-api/internal/api/shared"
	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/phrazzld/todo-api/internal/service"
)

// Summary response messages.
const (
	SummaryGeneratedMessage   = "AI Summary Generated"
	SummaryEmptyMessage       = "No completed tasks to summarize."
	SummaryUnavailableMessage = "Error contacting AI Service"
)

// TaskHandler handles the /api/tasks endpoints. Every handler expects the
// auth middleware to have run.
type TaskHandler struct {
	taskService service.TaskService
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskService service.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// CreateTask handles POST /api/tasks.
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	user, ok := handleUser(w, r)
	if !ok {
		return
	}

	var req TaskRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	fields, err := req.ToFields()
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	task, err := h.taskService.CreateTask(r.Context(), user.ID, fields)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create task")
		return
	}

	shared.Respond(w, r, http.StatusOK, "Task Created Successfully", task)
}

// UpdateTask handles PUT /api/tasks. The task is addressed by the id in the
// body and is not checked against the caller.
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	if _, ok := handleUser(w, r); !ok {
		return
	}

	var req TaskRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	patch, err := req.ToPatch()
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	task, err := h.taskService.UpdateTask(r.Context(), patch)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update task")
		return
	}

	shared.Respond(w, r, http.StatusOK, "Task updated successfully", task)
}

// ListTasks handles GET /api/tasks.
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	user, ok := handleUser(w, r)
	if !ok {
		return
	}

	tasks, err := h.taskService.ListTasks(r.Context(), user.ID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to retrieve tasks")
		return
	}

	shared.Respond(w, r, http.StatusOK, "Tasks retrieved successfully", nonNil(tasks))
}

// GetTask handles GET /api/tasks/{id}.
func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	if _, ok := handleUser(w, r); !ok {
		return
	}
	id, ok := handlePathUUID(w, r, "id")
	if !ok {
		return
	}

	task, err := h.taskService.GetTask(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to retrieve task")
		return
	}

	shared.Respond(w, r, http.StatusOK, "Task retrieved successfully", task)
}

// DeleteTask handles DELETE /api/tasks/{id}.
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	if _, ok := handleUser(w, r); !ok {
		return
	}
	id, ok := handlePathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.taskService.DeleteTask(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "Failed to delete task")
		return
	}

	shared.Respond(w, r, http.StatusOK, "task deleted successfully", nil)
}

// ListByCompletion handles GET /api/tasks/status?completed=bool.
func (h *TaskHandler) ListByCompletion(w http.ResponseWriter, r *http.Request) {
	user, ok := handleUser(w, r)
	if !ok {
		return
	}

	completed, err := strconv.ParseBool(r.URL.Query().Get("completed"))
	if err != nil {
		HandleAPIError(w, r, domain.NewValidationError("completed", "must be true or false", nil), "")
		return
	}

	tasks, err := h.taskService.ListByCompletion(r.Context(), user.ID, completed)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to retrieve tasks")
		return
	}

	shared.Respond(w, r, http.StatusOK, "Tasks filtered by completion status for user", nonNil(tasks))
}

// ListByPriority handles GET /api/tasks/priority?priority=label.
func (h *TaskHandler) ListByPriority(w http.ResponseWriter, r *http.Request) {
	user, ok := handleUser(w, r)
	if !ok {
		return
	}

	tasks, err := h.taskService.ListByPriority(r.Context(), user.ID, r.URL.Query().Get("priority"))
	if err != nil {
		HandleAPIError(w, r, err, "Failed to retrieve tasks")
		return
	}

	shared.Respond(w, r, http.StatusOK, "Tasks filtered by priority for user", nonNil(tasks))
}

// Summary handles GET /api/tasks/summary. A failed generation is still a
// transport 200; the envelope carries statusCode 500 and the apology text.
func (h *TaskHandler) Summary(w http.ResponseWriter, r *http.Request) {
	user, ok := handleUser(w, r)
	if !ok {
		return
	}

	summary, err := h.taskService.SummarizeCompletedTasks(r.Context(), user.ID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to summarize tasks")
		return
	}

	env := shared.Envelope{StatusCode: http.StatusOK, Data: summary.Text}
	switch summary.Outcome {
	case service.SummaryEmpty:
		env.Message = SummaryEmptyMessage
	case service.SummaryUnavailable:
		env.StatusCode = http.StatusInternalServerError
		env.Message = SummaryUnavailableMessage
	default:
		env.Message = SummaryGeneratedMessage
	}

	shared.RespondWithEnvelope(w, r, http.StatusOK, env)
}

// nonNil makes an empty result encode as [] rather than null.
func nonNil(tasks []*domain.Task) []*domain.Task {
	if tasks == nil {
		return []*domain.Task{}
	}
	return tasks
}
