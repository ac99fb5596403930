// The worker binary serves the background task service: task creation,
// listing and status aggregation with request metrics, structured logging
// and distributed tracing on every endpoint. Tasks are registered but not
// yet processed; the processing loop is future work.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/platops/devops-services/internal/config"
	"github.com/platops/devops-services/internal/domain"
	"github.com/platops/devops-services/internal/platform/logger"
	"github.com/platops/devops-services/internal/platform/metrics"
	"github.com/platops/devops-services/internal/platform/tracing"
	"github.com/platops/devops-services/internal/server"
	"github.com/platops/devops-services/internal/store"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Worker service failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	cfg, err := config.Load("WORKER", config.Defaults{ServiceName: "worker", Port: 8001})
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log := logger.New(cfg.Server, os.Stdout)

	tracer, shutdownTracing, err := tracing.Setup(ctx, tracing.Config{
		ServiceName:  cfg.Server.ServiceName,
		Enabled:      cfg.Telemetry.Enabled,
		OTLPEndpoint: cfg.Telemetry.OTLPEndpoint,
		Insecure:     cfg.Telemetry.Insecure,
	})
	if err != nil {
		return fmt.Errorf("failed to set up tracing: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(shutdownCtx); err != nil {
			log.Error("Tracing shutdown failed", "error", err)
		}
	}()

	recorder := metrics.NewRecorder("worker")
	recorder.EnableTaskMetrics("worker")
	tasks := store.New[domain.Task]()

	router := newRouter(cfg.Server.ServiceName, log, tracer, recorder, tasks)

	log.Info("Worker service starting up")
	defer log.Info("Worker service shutting down")

	return server.Run(ctx, log, cfg.Server.Port, router)
}
