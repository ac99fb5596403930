package main

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/otel/trace"

	"github.com/platops/devops-services/internal/api"
	apimiddleware "github.com/platops/devops-services/internal/api/middleware"
	"github.com/platops/devops-services/internal/domain"
	"github.com/platops/devops-services/internal/platform/metrics"
	"github.com/platops/devops-services/internal/store"
)

// newRouter wires the worker service routes. The instrumentation middleware
// sits above Recoverer so that recovered panics are still measured and
// logged as 500 responses.
func newRouter(
	serviceName string,
	log *slog.Logger,
	tracer trace.Tracer,
	recorder *metrics.Recorder,
	tasks *store.Store[domain.Task],
) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(apimiddleware.Instrument(recorder, log))
	r.Use(chimiddleware.Recoverer)

	taskHandler := api.NewTaskHandler(tasks, tracer, log, recorder)

	r.Get("/health", api.HealthHandler(serviceName))
	r.Get("/tasks", taskHandler.List)
	r.Post("/tasks", taskHandler.Create)
	r.Get("/status", taskHandler.Status)
	r.Method(http.MethodGet, "/metrics", recorder.Handler())

	return r
}
