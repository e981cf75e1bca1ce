package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// TaskMetrics holds the collectors recorded by the instrumented task service.
type TaskMetrics struct {
	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
}

// NewTaskMetrics creates the task service collectors and registers them
// with reg.
func NewTaskMetrics(reg prometheus.Registerer) (*TaskMetrics, error) {
	m := &TaskMetrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "todo",
			Subsystem: "task_service",
			Name:      "requests_total",
			Help:      "Number of task service calls by method and outcome.",
		}, []string{"method", "outcome"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "todo",
			Subsystem: "task_service",
			Name:      "request_duration_seconds",
			Help:      "Duration of task service calls in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method"}),
	}

	for _, c := range []prometheus.Collector{m.requests, m.latency} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *TaskMetrics) observe(method string, begin time.Time, err error) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	m.record(method, outcome, begin)
}

func (m *TaskMetrics) record(method, outcome string, begin time.Time) {
	m.requests.WithLabelValues(method, outcome).Inc()
	m.latency.WithLabelValues(method).Observe(time.Since(begin).Seconds())
}

type instrumentedTaskService struct {
	metrics *TaskMetrics
	next    TaskService
}

// NewInstrumentedTaskService decorates next with request counts and latency.
func NewInstrumentedTaskService(next TaskService, metrics *TaskMetrics) TaskService {
	return instrumentedTaskService{metrics: metrics, next: next}
}

func (mw instrumentedTaskService) CreateTask(
	ctx context.Context,
	ownerID uuid.UUID,
	fields domain.TaskFields,
) (t *domain.Task, err error) {
	defer func(begin time.Time) { mw.metrics.observe("create_task", begin, err) }(time.Now())
	return mw.next.CreateTask(ctx, ownerID, fields)
}

func (mw instrumentedTaskService) ListTasks(ctx context.Context, ownerID uuid.UUID) (ts []*domain.Task, err error) {
	defer func(begin time.Time) { mw.metrics.observe("list_tasks", begin, err) }(time.Now())
	return mw.next.ListTasks(ctx, ownerID)
}

func (mw instrumentedTaskService) GetTask(ctx context.Context, id uuid.UUID) (t *domain.Task, err error) {
	defer func(begin time.Time) { mw.metrics.observe("get_task", begin, err) }(time.Now())
	return mw.next.GetTask(ctx, id)
}

func (mw instrumentedTaskService) UpdateTask(ctx context.Context, patch domain.TaskPatch) (t *domain.Task, err error) {
	defer func(begin time.Time) { mw.metrics.observe("update_task", begin, err) }(time.Now())
	return mw.next.UpdateTask(ctx, patch)
}

func (mw instrumentedTaskService) DeleteTask(ctx context.Context, id uuid.UUID) (err error) {
	defer func(begin time.Time) { mw.metrics.observe("delete_task", begin, err) }(time.Now())
	return mw.next.DeleteTask(ctx, id)
}

func (mw instrumentedTaskService) ListByCompletion(
	ctx context.Context,
	ownerID uuid.UUID,
	completed bool,
) (ts []*domain.Task, err error) {
	defer func(begin time.Time) { mw.metrics.observe("list_by_completion", begin, err) }(time.Now())
	return mw.next.ListByCompletion(ctx, ownerID, completed)
}

func (mw instrumentedTaskService) ListByPriority(
	ctx context.Context,
	ownerID uuid.UUID,
	label string,
) (ts []*domain.Task, err error) {
	defer func(begin time.Time) { mw.metrics.observe("list_by_priority", begin, err) }(time.Now())
	return mw.next.ListByPriority(ctx, ownerID, label)
}

func (mw instrumentedTaskService) SummarizeCompletedTasks(
	ctx context.Context,
	ownerID uuid.UUID,
) (s *Summary, err error) {
	defer func(begin time.Time) {
		// A swallowed generator failure is not a success.
		if err == nil && s != nil && s.Outcome == SummaryUnavailable {
			mw.metrics.record("summarize_completed_tasks", SummaryUnavailable.String(), begin)
			return
		}
		mw.metrics.observe("summarize_completed_tasks", begin, err)
	}(time.Now())
	return mw.next.SummarizeCompletedTasks(ctx, ownerID)
}
