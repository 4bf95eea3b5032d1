package store

import (
	"context"

	"github.com/tradepost/market-api/internal/domain"
)

// ItemTypeStore defines the interface for item type data persistence.
// Types are seeded by migration; Create and Delete exist for seeding and
// tests and are not reachable from the public API.
type ItemTypeStore interface {
	// List retrieves all item types.
	List(ctx context.Context) ([]domain.ItemType, error)

	// GetByID retrieves an item type by its unique ID.
	// Returns ErrItemTypeNotFound if the type does not exist.
	GetByID(ctx context.Context, id int64) (*domain.ItemType, error)

	// Create saves a new item type and fills in its store-assigned ID.
	// Returns ErrDuplicate if the name is already taken.
	Create(ctx context.Context, itemType *domain.ItemType) error

	// Delete removes an item type by its ID.
	// Returns ErrItemTypeNotFound if the type does not exist.
	Delete(ctx context.Context, id int64) error
}
