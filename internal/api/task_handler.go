package api

import (
	"log/slog"
	"net/http"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/platops/devops-services/internal/api/shared"
	"github.com/platops/devops-services/internal/domain"
	"github.com/platops/devops-services/internal/platform/metrics"
	"github.com/platops/devops-services/internal/store"
)

// CreateTaskRequest represents the request body for creating a new task.
type CreateTaskRequest struct {
	Name    string         `json:"name"    validate:"required,min=1"`
	Payload map[string]any `json:"payload"`
}

// StatusResponse aggregates task counts by status over the full store.
type StatusResponse struct {
	TotalTasks int `json:"total_tasks"`
	Pending    int `json:"pending"`
	Completed  int `json:"completed"`
}

// TaskHandler handles task-related HTTP requests for the worker service.
type TaskHandler struct {
	store   *store.Store[domain.Task]
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics *metrics.Recorder
}

// NewTaskHandler creates a TaskHandler with its injected dependencies.
func NewTaskHandler(
	s *store.Store[domain.Task],
	tracer trace.Tracer,
	logger *slog.Logger,
	recorder *metrics.Recorder,
) *TaskHandler {
	return &TaskHandler{
		store:   s,
		tracer:  tracer,
		logger:  logger,
		metrics: recorder,
	}
}

// List handles GET /tasks requests. It returns a snapshot of all current
// tasks and has no side effects.
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	_, span := h.tracer.Start(r.Context(), "get_tasks")
	defer span.End()

	shared.RespondWithJSON(w, r, http.StatusOK, h.store.All())
}

// Create handles POST /tasks requests. New tasks start in the pending
// status with a server-assigned identifier and creation timestamp.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	_, span := h.tracer.Start(r.Context(), "create_task")
	defer span.End()

	var req CreateTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: name is required")
		return
	}

	task, err := domain.NewTask(req.Name, req.Payload)
	if err != nil {
		shared.RespondWithError(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err))
		return
	}

	h.store.Put(task.ID, *task)
	h.metrics.IncActiveTasks()
	span.SetAttributes(attribute.String("task.id", task.ID))

	h.logger.Info("Task created",
		slog.String("task_id", task.ID),
		slog.String("name", task.Name))

	shared.RespondWithJSON(w, r, http.StatusCreated, task)
}

// Status handles GET /status requests. Counts are recomputed from the
// current store snapshot in a single pass on every call, never cached.
func (h *TaskHandler) Status(w http.ResponseWriter, r *http.Request) {
	_, span := h.tracer.Start(r.Context(), "get_status")
	defer span.End()

	tasks := h.store.All()

	var pending, completed int
	for _, task := range tasks {
		switch task.Status {
		case domain.TaskStatusPending:
			pending++
		case domain.TaskStatusCompleted:
			completed++
		}
	}

	shared.RespondWithJSON(w, r, http.StatusOK, StatusResponse{
		TotalTasks: len(tasks),
		Pending:    pending,
		Completed:  completed,
	})
}
