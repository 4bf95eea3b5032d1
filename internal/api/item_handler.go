package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/tradepost/market-api/internal/api/shared"
	"github.com/tradepost/market-api/internal/domain"
	"github.com/tradepost/market-api/internal/platform/logger"
)

// ItemService is the item business-rule surface the handlers depend on.
type ItemService interface {
	List(ctx context.Context) ([]domain.Item, error)
	GetByID(ctx context.Context, id int64) (*domain.Item, error)
	Create(ctx context.Context, name string, typeID int64) (*domain.Item, error)
	Update(ctx context.Context, id int64, update domain.ItemUpdate) (*domain.Item, error)
	Delete(ctx context.Context, id int64) error
	ListWithLatestPrice(ctx context.Context, typeID *int64) ([]domain.ItemWithPrice, error)
	GetWithPrices(ctx context.Context, id int64) (*domain.ItemPriceHistory, error)
}

// CreateItemRequest represents the request body for creating an item.
// No required tag on the type: a missing and a zero type both violate gt=0
// and report "must be a positive integer".
type CreateItemRequest struct {
	Name string `json:"name" validate:"required,min=1"`
	Type int64  `json:"type" validate:"gt=0"`
}

// UpdateItemRequest represents the partial request body for updating an
// item. At least one field must be present.
type UpdateItemRequest struct {
	Name *string `json:"name"`
	Type *int64  `json:"type"`
}

// Validate implements the cross-field rules tag validation cannot express.
// It reports every violation, not just the first.
func (req *UpdateItemRequest) Validate() error {
	var violations []shared.FieldViolation

	if req.Name == nil && req.Type == nil {
		violations = append(violations, shared.FieldViolation{
			Field:   "body",
			Message: "at least one of name or type must be provided",
		})
	}
	if req.Name != nil && *req.Name == "" {
		violations = append(violations, shared.FieldViolation{
			Field:   "name",
			Message: "must not be empty",
		})
	}
	if req.Type != nil && *req.Type <= 0 {
		violations = append(violations, shared.FieldViolation{
			Field:   "type",
			Message: "must be a positive integer",
		})
	}

	if len(violations) > 0 {
		return &shared.FieldValidationError{Violations: violations}
	}
	return nil
}

// ItemHandler handles item-related HTTP requests.
type ItemHandler struct {
	itemService   ItemService
	logger        *slog.Logger
	includeDetail bool
}

// NewItemHandler creates a new ItemHandler. includeDetail controls whether
// internal errors expose diagnostic detail (development mode only).
func NewItemHandler(itemService ItemService, logger *slog.Logger, includeDetail bool) *ItemHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for ItemHandler")
	}

	return &ItemHandler{
		itemService:   itemService,
		logger:        logger.With(slog.String("component", "item_handler")),
		includeDetail: includeDetail,
	}
}

// ListItems handles GET /items requests.
func (h *ItemHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.itemService.List(r.Context())
	if err != nil {
		HandleError(w, r, err, h.includeDetail)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, itemsToResponse(items))
}

// GetItem handles GET /items/{id} requests.
func (h *ItemHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := getPathID(r, "id")
	if err != nil {
		log.Warn("invalid item id in path")
		HandleError(w, r, err, h.includeDetail)
		return
	}

	item, err := h.itemService.GetByID(r.Context(), id)
	if err != nil {
		HandleError(w, r, err, h.includeDetail)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, itemToResponse(item))
}

// CreateItem handles POST /items requests.
func (h *ItemHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateItemRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		HandleError(w, r, err, h.includeDetail)
		return
	}
	if err := shared.ValidateRequest(&req); err != nil {
		log.Debug("item create validation failed", slog.String("error", err.Error()))
		HandleError(w, r, err, h.includeDetail)
		return
	}

	item, err := h.itemService.Create(r.Context(), req.Name, req.Type)
	if err != nil {
		HandleError(w, r, err, h.includeDetail)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, itemToResponse(item))
}

// UpdateItem handles PUT /items/{id} requests.
func (h *ItemHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := getPathID(r, "id")
	if err != nil {
		HandleError(w, r, err, h.includeDetail)
		return
	}

	var req UpdateItemRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		HandleError(w, r, err, h.includeDetail)
		return
	}
	if err := shared.ValidateRequest(&req); err != nil {
		log.Debug("item update validation failed",
			slog.Int64("item_id", id),
			slog.String("error", err.Error()))
		HandleError(w, r, err, h.includeDetail)
		return
	}

	item, err := h.itemService.Update(r.Context(), id, domain.ItemUpdate{
		Name:   req.Name,
		TypeID: req.Type,
	})
	if err != nil {
		HandleError(w, r, err, h.includeDetail)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, itemToResponse(item))
}

// DeleteItem handles DELETE /items/{id} requests.
func (h *ItemHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleError(w, r, err, h.includeDetail)
		return
	}

	if err := h.itemService.Delete(r.Context(), id); err != nil {
		HandleError(w, r, err, h.includeDetail)
		return
	}

	shared.RespondWithNoContent(w, r)
}

// ListItemsWithPrice handles GET /items/prices requests, optionally
// filtered with ?type=<id>.
func (h *ItemHandler) ListItemsWithPrice(w http.ResponseWriter, r *http.Request) {
	typeID, err := getQueryID(r, "type")
	if err != nil {
		HandleError(w, r, err, h.includeDetail)
		return
	}

	items, err := h.itemService.ListWithLatestPrice(r.Context(), typeID)
	if err != nil {
		HandleError(w, r, err, h.includeDetail)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, itemsWithPriceToResponse(items))
}

// GetItemPrices handles GET /items/{id}/prices requests.
func (h *ItemHandler) GetItemPrices(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleError(w, r, err, h.includeDetail)
		return
	}

	history, err := h.itemService.GetWithPrices(r.Context(), id)
	if err != nil {
		HandleError(w, r, err, h.includeDetail)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, priceHistoryToResponse(history))
}
