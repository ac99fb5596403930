package shared

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondWithJSON(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/items", nil)

	RespondWithJSON(rec, req, http.StatusCreated, map[string]string{"id": "abc"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "abc", body["id"])
}

func TestRespondWithError(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/items", nil)
	ctx := context.WithValue(req.Context(), chimiddleware.RequestIDKey, "req-42")

	RespondWithError(rec, req.WithContext(ctx), http.StatusBadRequest, "Validation error")

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Validation error", body.Error)
	assert.Equal(t, "req-42", body.RequestID)
}

func TestValidateRequest(t *testing.T) {
	t.Parallel()

	type payload struct {
		Name string `validate:"required,min=1"`
	}

	assert.NoError(t, ValidateRequest(payload{Name: "ok"}))
	assert.Error(t, ValidateRequest(payload{}))
}
