package api_test

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/phrazzld/todo-api/internal/api"
	"github.com/phrazzld/todo-api/internal/api/shared"
	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/phrazzld/todo-api/internal/service"
)

type fakeAuthService struct {
	RegisterFn func(ctx context.Context, username, password string) (*domain.User, error)
	LoginFn    func(ctx context.Context, username, password string) (string, error)
}

func (f *fakeAuthService) Register(ctx context.Context, username, password string) (*domain.User, error) {
	return f.RegisterFn(ctx, username, password)
}

func (f *fakeAuthService) Login(ctx context.Context, username, password string) (string, error) {
	return f.LoginFn(ctx, username, password)
}

func (f *fakeAuthService) ResolveCurrentUser(context.Context, string) (*domain.User, error) {
	panic("not used by handlers")
}

type fakeTaskService struct {
	CreateTaskFn       func(ctx context.Context, ownerID uuid.UUID, fields domain.TaskFields) (*domain.Task, error)
	ListTasksFn        func(ctx context.Context, ownerID uuid.UUID) ([]*domain.Task, error)
	GetTaskFn          func(ctx context.Context, id uuid.UUID) (*domain.Task, error)
	UpdateTaskFn       func(ctx context.Context, patch domain.TaskPatch) (*domain.Task, error)
	DeleteTaskFn       func(ctx context.Context, id uuid.UUID) error
	ListByCompletionFn func(ctx context.Context, ownerID uuid.UUID, completed bool) ([]*domain.Task, error)
	ListByPriorityFn   func(ctx context.Context, ownerID uuid.UUID, label string) ([]*domain.Task, error)
	SummarizeFn        func(ctx context.Context, ownerID uuid.UUID) (*service.Summary, error)
}

var _ service.TaskService = (*fakeTaskService)(nil)

func (f *fakeTaskService) CreateTask(ctx context.Context, ownerID uuid.UUID, fields domain.TaskFields) (*domain.Task, error) {
	return f.CreateTaskFn(ctx, ownerID, fields)
}

func (f *fakeTaskService) ListTasks(ctx context.Context, ownerID uuid.UUID) ([]*domain.Task, error) {
	return f.ListTasksFn(ctx, ownerID)
}

func (f *fakeTaskService) GetTask(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	return f.GetTaskFn(ctx, id)
}

func (f *fakeTaskService) UpdateTask(ctx context.Context, patch domain.TaskPatch) (*domain.Task, error) {
	return f.UpdateTaskFn(ctx, patch)
}

func (f *fakeTaskService) DeleteTask(ctx context.Context, id uuid.UUID) error {
	return f.DeleteTaskFn(ctx, id)
}

func (f *fakeTaskService) ListByCompletion(ctx context.Context, ownerID uuid.UUID, completed bool) ([]*domain.Task, error) {
	return f.ListByCompletionFn(ctx, ownerID, completed)
}

func (f *fakeTaskService) ListByPriority(ctx context.Context, ownerID uuid.UUID, label string) ([]*domain.Task, error) {
	return f.ListByPriorityFn(ctx, ownerID, label)
}

func (f *fakeTaskService) SummarizeCompletedTasks(ctx context.Context, ownerID uuid.UUID) (*service.Summary, error) {
	return f.SummarizeFn(ctx, ownerID)
}

// withUser stands in for the auth middleware.
func withUser(user *domain.User) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if user != nil {
				r = r.WithContext(shared.SetUser(r.Context(), user))
			}
			next.ServeHTTP(w, r)
		})
	}
}

func newTaskRouter(h *api.TaskHandler, user *domain.User) http.Handler {
	r := chi.NewRouter()
	r.Use(withUser(user))
	r.Route("/api/tasks", func(r chi.Router) {
		r.Post("/", h.CreateTask)
		r.Put("/", h.UpdateTask)
		r.Get("/", h.ListTasks)
		r.Get("/status", h.ListByCompletion)
		r.Get("/priority", h.ListByPriority)
		r.Get("/summary", h.Summary)
		r.Get("/{id}", h.GetTask)
		r.Delete("/{id}", h.DeleteTask)
	})
	return r
}
