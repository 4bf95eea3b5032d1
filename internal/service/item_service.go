package service

import (
	"context"
	"log/slog"

	"github.com/tradepost/market-api/internal/domain"
	"github.com/tradepost/market-api/internal/platform/logger"
	"github.com/tradepost/market-api/internal/store"
)

// ItemService implements the business rules for catalog items. Type IDs
// accepted on create and update are checked against the live item type set,
// fetched per request so newly seeded types become valid immediately.
type ItemService struct {
	items  store.ItemStore
	types  store.ItemTypeStore
	logger *slog.Logger
}

// NewItemService creates a new ItemService.
// If logger is nil, a default logger will be used.
func NewItemService(items store.ItemStore, types store.ItemTypeStore, logger *slog.Logger) *ItemService {
	if items == nil || types == nil {
		panic("item and item type stores cannot be nil for ItemService")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &ItemService{
		items:  items,
		types:  types,
		logger: logger.With(slog.String("component", "item_service")),
	}
}

// List returns all catalog items.
func (s *ItemService) List(ctx context.Context) ([]domain.Item, error) {
	items, err := s.items.List(ctx)
	if err != nil {
		return nil, wrap("item", "list", err)
	}
	return items, nil
}

// GetByID returns one item. The error wraps store.ErrItemNotFound when the
// item does not exist.
func (s *ItemService) GetByID(ctx context.Context, id int64) (*domain.Item, error) {
	item, err := s.items.GetByID(ctx, id)
	if err != nil {
		return nil, wrap("item", "get", err)
	}
	return item, nil
}

// Create validates the type ID against the live type set and stores a new
// item. Returns an InvalidTypeIDError when the type ID is not currently valid.
func (s *ItemService) Create(ctx context.Context, name string, typeID int64) (*domain.Item, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.checkTypeID(ctx, typeID); err != nil {
		log.Warn("item create rejected",
			slog.Int64("type_id", typeID),
			slog.String("error", err.Error()))
		return nil, err
	}

	item, err := domain.NewItem(name, typeID)
	if err != nil {
		return nil, wrap("item", "create", err)
	}

	if err := s.items.Create(ctx, item); err != nil {
		return nil, wrap("item", "create", err)
	}

	return item, nil
}

// Update applies a partial patch to an item. The patch must carry at least
// one field; a patched type ID is checked against the live type set.
func (s *ItemService) Update(ctx context.Context, id int64, update domain.ItemUpdate) (*domain.Item, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if update.IsEmpty() {
		return nil, wrap("item", "update", ErrEmptyUpdate)
	}

	if update.TypeID != nil {
		if err := s.checkTypeID(ctx, *update.TypeID); err != nil {
			log.Warn("item update rejected",
				slog.Int64("item_id", id),
				slog.Int64("type_id", *update.TypeID),
				slog.String("error", err.Error()))
			return nil, err
		}
	}

	item, err := s.items.Update(ctx, id, update)
	if err != nil {
		return nil, wrap("item", "update", err)
	}

	return item, nil
}

// Delete removes an item and, through the schema cascade, its price history.
func (s *ItemService) Delete(ctx context.Context, id int64) error {
	if err := s.items.Delete(ctx, id); err != nil {
		return wrap("item", "delete", err)
	}
	return nil
}

// ListWithLatestPrice returns every item with its most recent price
// observation, optionally restricted to one type. Items without
// observations report a price of 0.
func (s *ItemService) ListWithLatestPrice(ctx context.Context, typeID *int64) ([]domain.ItemWithPrice, error) {
	items, err := s.items.ListWithLatestPrice(ctx, typeID)
	if err != nil {
		return nil, wrap("item", "list_with_latest_price", err)
	}
	return items, nil
}

// GetWithPrices returns one item with its full price history, newest first.
func (s *ItemService) GetWithPrices(ctx context.Context, id int64) (*domain.ItemPriceHistory, error) {
	history, err := s.items.ListPrices(ctx, id)
	if err != nil {
		return nil, wrap("item", "get_with_prices", err)
	}
	return history, nil
}

// checkTypeID verifies the type ID against the item type set as it exists
// right now. The set is fetched per call, never cached, so seeding or
// removing a type takes effect on the next request.
func (s *ItemService) checkTypeID(ctx context.Context, typeID int64) error {
	types, err := s.types.List(ctx)
	if err != nil {
		return wrap("item_type", "list", err)
	}

	allowed := make([]int64, len(types))
	for i, t := range types {
		allowed[i] = t.ID
		if t.ID == typeID {
			return nil
		}
	}

	return &InvalidTypeIDError{TypeID: typeID, Allowed: allowed}
}
