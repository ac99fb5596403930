// Package api contains the HTTP handlers for both services: items on the
// API service, tasks and status on the worker service, and the shared
// health endpoint.
package api

import (
	"net/http"

	"github.com/platops/devops-services/internal/api/shared"
)

// HealthResponse is the liveness check response body.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// HealthHandler returns the GET /health handler for the named service.
// It reports healthy regardless of store state.
func HealthHandler(service string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithJSON(w, r, http.StatusOK, HealthResponse{
			Status:  "healthy",
			Service: service,
		})
	}
}
