package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/platops/devops-services/internal/domain"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, http.StatusBadRequest, MapErrorToStatusCode(domain.ErrNameRequired))
	assert.Equal(t, http.StatusBadRequest,
		MapErrorToStatusCode(fmt.Errorf("creating item: %w", domain.ErrNameRequired)))
	assert.Equal(t, http.StatusInternalServerError, MapErrorToStatusCode(errors.New("boom")))
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Validation error: name is required", GetSafeErrorMessage(domain.ErrNameRequired))
	assert.Equal(t, "An unexpected error occurred", GetSafeErrorMessage(errors.New("pq: internal detail")))
}
