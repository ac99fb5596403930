// Package logger provides structured logging functionality for the services.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/platops/devops-services/internal/config"
)

// New builds the service's structured JSON logger writing to out, with the
// log level taken from configuration. Every record carries the service name.
// An unrecognized level falls back to info with a warning, rather than
// failing startup.
func New(cfg config.ServerConfig, out io.Writer) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cfg.LogLevel) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
		slog.New(slog.NewTextHandler(os.Stderr, nil)).Warn(
			"invalid log level configured, using default level",
			"configured_level", cfg.LogLevel,
			"default_level", "info")
	}

	handler := slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level})

	return slog.New(handler).With(slog.String("service", cfg.ServiceName))
}
