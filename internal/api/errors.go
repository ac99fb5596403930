package api

import (
	"errors"
	"net/http"

	"github.com/platops/devops-services/internal/domain"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrNameRequired):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message based
// on the error type.
func GetSafeErrorMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrNameRequired):
		return "Validation error: name is required"
	default:
		return "An unexpected error occurred"
	}
}
