package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/tradepost/market-api/internal/api/shared"
	"github.com/tradepost/market-api/internal/domain"
)

// ItemTypeService is the item type surface the handlers depend on. Types
// are read-only over HTTP.
type ItemTypeService interface {
	List(ctx context.Context) ([]domain.ItemType, error)
}

// ItemTypeHandler handles item-type HTTP requests.
type ItemTypeHandler struct {
	typeService   ItemTypeService
	logger        *slog.Logger
	includeDetail bool
}

// NewItemTypeHandler creates a new ItemTypeHandler.
func NewItemTypeHandler(typeService ItemTypeService, logger *slog.Logger, includeDetail bool) *ItemTypeHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for ItemTypeHandler")
	}

	return &ItemTypeHandler{
		typeService:   typeService,
		logger:        logger.With(slog.String("component", "item_type_handler")),
		includeDetail: includeDetail,
	}
}

// ListItemTypes handles GET /items/types requests.
func (h *ItemTypeHandler) ListItemTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.typeService.List(r.Context())
	if err != nil {
		HandleError(w, r, err, h.includeDetail)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, itemTypesToResponse(types))
}
