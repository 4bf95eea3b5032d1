package service

import (
	"context"
	"log/slog"

	"github.com/tradepost/market-api/internal/domain"
	"github.com/tradepost/market-api/internal/store"
)

// ItemTypeService exposes the item type catalog. The public API only reads
// types; Create and Delete back the seeding path and tests.
type ItemTypeService struct {
	types  store.ItemTypeStore
	logger *slog.Logger
}

// NewItemTypeService creates a new ItemTypeService.
func NewItemTypeService(types store.ItemTypeStore, logger *slog.Logger) *ItemTypeService {
	if types == nil {
		panic("item type store cannot be nil for ItemTypeService")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &ItemTypeService{
		types:  types,
		logger: logger.With(slog.String("component", "item_type_service")),
	}
}

// List returns all item types.
func (s *ItemTypeService) List(ctx context.Context) ([]domain.ItemType, error) {
	types, err := s.types.List(ctx)
	if err != nil {
		return nil, wrap("item_type", "list", err)
	}
	return types, nil
}

// GetByID returns one item type.
func (s *ItemTypeService) GetByID(ctx context.Context, id int64) (*domain.ItemType, error) {
	itemType, err := s.types.GetByID(ctx, id)
	if err != nil {
		return nil, wrap("item_type", "get", err)
	}
	return itemType, nil
}

// Create stores a new item type.
func (s *ItemTypeService) Create(ctx context.Context, name string) (*domain.ItemType, error) {
	itemType := &domain.ItemType{Name: name}
	if err := s.types.Create(ctx, itemType); err != nil {
		return nil, wrap("item_type", "create", err)
	}
	return itemType, nil
}

// Delete removes an item type. Items referencing it block the delete with
// an invalid-reference failure from the store.
func (s *ItemTypeService) Delete(ctx context.Context, id int64) error {
	if err := s.types.Delete(ctx, id); err != nil {
		return wrap("item_type", "delete", err)
	}
	return nil
}
