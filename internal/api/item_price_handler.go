package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/tradepost/market-api/internal/api/shared"
	"github.com/tradepost/market-api/internal/domain"
	"github.com/tradepost/market-api/internal/platform/logger"
)

// ItemPriceService is the price business-rule surface the handlers depend on.
type ItemPriceService interface {
	GetByID(ctx context.Context, id int64) (*domain.ItemPrice, error)
	Create(ctx context.Context, itemID, price int64, date time.Time) (*domain.ItemPrice, error)
	Update(ctx context.Context, id int64, update domain.ItemPriceUpdate) (*domain.ItemPrice, error)
	Delete(ctx context.Context, id int64) error
}

// CreateItemPriceRequest represents the request body for recording a price
// observation. The date accepts RFC 3339 or a bare calendar date. Integer
// fields carry gt=0 alone; missing and zero values report the same
// "must be a positive integer" violation.
type CreateItemPriceRequest struct {
	ItemID int64  `json:"itemId" validate:"gt=0"`
	Price  int64  `json:"price"  validate:"gt=0"`
	Date   string `json:"date"   validate:"required"`
}

// UpdateItemPriceRequest represents the partial request body for updating a
// price observation. At least one field must be present.
type UpdateItemPriceRequest struct {
	ItemID *int64  `json:"itemId"`
	Price  *int64  `json:"price"`
	Date   *string `json:"date"`
}

// Validate implements the cross-field rules tag validation cannot express.
// It reports every violation, not just the first.
func (req *UpdateItemPriceRequest) Validate() error {
	var violations []shared.FieldViolation

	if req.ItemID == nil && req.Price == nil && req.Date == nil {
		violations = append(violations, shared.FieldViolation{
			Field:   "body",
			Message: "at least one of itemId, price or date must be provided",
		})
	}
	if req.ItemID != nil && *req.ItemID <= 0 {
		violations = append(violations, shared.FieldViolation{
			Field:   "itemId",
			Message: "must be a positive integer",
		})
	}
	if req.Price != nil && *req.Price <= 0 {
		violations = append(violations, shared.FieldViolation{
			Field:   "price",
			Message: "must be a positive integer",
		})
	}
	if req.Date != nil {
		if _, err := parseDate(*req.Date); err != nil {
			violations = append(violations, shared.FieldViolation{
				Field:   "date",
				Message: "must be a valid date",
			})
		}
	}

	if len(violations) > 0 {
		return &shared.FieldValidationError{Violations: violations}
	}
	return nil
}

// ItemPriceHandler handles price-observation HTTP requests.
type ItemPriceHandler struct {
	priceService  ItemPriceService
	logger        *slog.Logger
	includeDetail bool
}

// NewItemPriceHandler creates a new ItemPriceHandler.
func NewItemPriceHandler(priceService ItemPriceService, logger *slog.Logger, includeDetail bool) *ItemPriceHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for ItemPriceHandler")
	}

	return &ItemPriceHandler{
		priceService:  priceService,
		logger:        logger.With(slog.String("component", "item_price_handler")),
		includeDetail: includeDetail,
	}
}

// GetItemPrice handles GET /items/prices/{id} requests.
func (h *ItemPriceHandler) GetItemPrice(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleError(w, r, err, h.includeDetail)
		return
	}

	price, err := h.priceService.GetByID(r.Context(), id)
	if err != nil {
		HandleError(w, r, err, h.includeDetail)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, itemPriceToResponse(price))
}

// CreateItemPrice handles POST /items/prices requests.
func (h *ItemPriceHandler) CreateItemPrice(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateItemPriceRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		HandleError(w, r, err, h.includeDetail)
		return
	}
	if err := shared.ValidateRequest(&req); err != nil {
		log.Debug("price create validation failed", slog.String("error", err.Error()))
		HandleError(w, r, err, h.includeDetail)
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		HandleError(w, r, err, h.includeDetail)
		return
	}

	price, err := h.priceService.Create(r.Context(), req.ItemID, req.Price, date)
	if err != nil {
		HandleError(w, r, err, h.includeDetail)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, itemPriceToResponse(price))
}

// UpdateItemPrice handles PUT /items/prices/{id} requests.
func (h *ItemPriceHandler) UpdateItemPrice(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := getPathID(r, "id")
	if err != nil {
		HandleError(w, r, err, h.includeDetail)
		return
	}

	var req UpdateItemPriceRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		HandleError(w, r, err, h.includeDetail)
		return
	}
	if err := shared.ValidateRequest(&req); err != nil {
		log.Debug("price update validation failed",
			slog.Int64("price_id", id),
			slog.String("error", err.Error()))
		HandleError(w, r, err, h.includeDetail)
		return
	}

	update := domain.ItemPriceUpdate{
		ItemID: req.ItemID,
		Price:  req.Price,
	}
	if req.Date != nil {
		// Validate already checked the format.
		date, _ := parseDate(*req.Date)
		update.Date = &date
	}

	price, err := h.priceService.Update(r.Context(), id, update)
	if err != nil {
		HandleError(w, r, err, h.includeDetail)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, itemPriceToResponse(price))
}

// DeleteItemPrice handles DELETE /items/prices/{id} requests.
func (h *ItemPriceHandler) DeleteItemPrice(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleError(w, r, err, h.includeDetail)
		return
	}

	if err := h.priceService.Delete(r.Context(), id); err != nil {
		HandleError(w, r, err, h.includeDetail)
		return
	}

	shared.RespondWithNoContent(w, r)
}
