// Package middleware contains the request instrumentation pipeline shared
// by both services.
package middleware

import (
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/platops/devops-services/internal/platform/metrics"
)

// Instrument returns a middleware that wraps every handler with metrics
// collection and a structured request log line. It is an explicit decorator
// over http.Handler, so any route mounted behind it is measured identically.
//
// The recorded latency always covers the full handler execution, including
// store and tracing work performed inside it. Panics recovered further down
// the chain still surface here as a 500 response and are recorded.
func Instrument(recorder *metrics.Recorder, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			latency := time.Since(start).Seconds()
			status := ww.Status()
			if status == 0 {
				// Handler returned without writing a header.
				status = http.StatusOK
			}

			recorder.RecordRequest(r.Method, r.URL.Path, strconv.Itoa(status), latency)

			logger.Info("Request processed",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", status),
				slog.Float64("latency", math.Round(latency*10000)/10000))
		})
	}
}
