package api

import (
	"log/slog"
	"net/http"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/platops/devops-services/internal/api/shared"
	"github.com/platops/devops-services/internal/domain"
	"github.com/platops/devops-services/internal/store"
)

// CreateItemRequest represents the request body for creating a new item.
type CreateItemRequest struct {
	Name        string  `json:"name"        validate:"required,min=1"`
	Description *string `json:"description"`
}

// ItemHandler handles item-related HTTP requests for the API service.
type ItemHandler struct {
	store  *store.Store[domain.Item]
	tracer trace.Tracer
	logger *slog.Logger
}

// NewItemHandler creates an ItemHandler with its injected dependencies.
func NewItemHandler(s *store.Store[domain.Item], tracer trace.Tracer, logger *slog.Logger) *ItemHandler {
	return &ItemHandler{
		store:  s,
		tracer: tracer,
		logger: logger,
	}
}

// List handles GET /items requests. It returns a snapshot of all current
// items and has no side effects.
func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	_, span := h.tracer.Start(r.Context(), "get_items")
	defer span.End()

	shared.RespondWithJSON(w, r, http.StatusOK, h.store.All())
}

// Create handles POST /items requests. Validation failures are rejected
// before any store mutation; a successful create is a single atomic insert.
func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	_, span := h.tracer.Start(r.Context(), "create_item")
	defer span.End()

	var req CreateItemRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: name is required")
		return
	}

	item, err := domain.NewItem(req.Name, req.Description)
	if err != nil {
		shared.RespondWithError(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err))
		return
	}

	h.store.Put(item.ID, *item)
	span.SetAttributes(attribute.String("item.id", item.ID))

	h.logger.Info("Item created",
		slog.String("item_id", item.ID),
		slog.String("item_name", item.Name))

	shared.RespondWithJSON(w, r, http.StatusCreated, item)
}
