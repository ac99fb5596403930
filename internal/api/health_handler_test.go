package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthHandler(t *testing.T) {
	t.Parallel()

	for _, service := range []string{"api", "worker"} {
		service := service
		t.Run(service, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			HealthHandler(service)(rec, httptest.NewRequest("GET", "/health", nil))

			require.Equal(t, http.StatusOK, rec.Code)
			assert.JSONEq(t, `{"status":"healthy","service":"`+service+`"}`, rec.Body.String())
		})
	}
}
