// The api binary serves the item management service: CRUD-less item
// creation and listing with request metrics, structured logging and
// distributed tracing on every endpoint.
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
		slog.Error("API service failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	cfg, err := config.Load("API", config.Defaults{ServiceName: "api", Port: 8000})
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

	recorder := metrics.NewRecorder("api")
	items := store.New[domain.Item]()

	router := newRouter(cfg.Server.ServiceName, log, tracer, recorder, items)

	log.Info("API service starting up")
	defer log.Info("API service shutting down")

	return server.Run(ctx, log, cfg.Server.Port, router)
}
