package store

import (
	"context"

	"github.com/tradepost/market-api/internal/domain"
)

// ItemStore defines the interface for item data persistence.
type ItemStore interface {
	// List retrieves all items. Returns an empty slice if the catalog is empty.
	List(ctx context.Context) ([]domain.Item, error)

	// GetByID retrieves an item by its unique ID.
	// Returns ErrItemNotFound if the item does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Item, error)

	// Create saves a new item and fills in its store-assigned ID.
	// Returns ErrInvalidReference if the item's type ID does not exist.
	Create(ctx context.Context, item *domain.Item) error

	// Update applies a partial patch to an existing item and returns the
	// updated row. Returns ErrItemNotFound if the item does not exist and
	// ErrInvalidReference if the patch names an unknown type ID.
	Update(ctx context.Context, id int64, update domain.ItemUpdate) (*domain.Item, error)

	// Delete removes an item by its ID. The schema cascades the delete to the
	// item's price history. Returns ErrItemNotFound if the item does not exist.
	Delete(ctx context.Context, id int64) error

	// ListWithLatestPrice retrieves all items joined with their most recent
	// price observation, 0 for items with no observations. A non-nil typeID
	// restricts the result to items of that type.
	ListWithLatestPrice(ctx context.Context, typeID *int64) ([]domain.ItemWithPrice, error)

	// ListPrices retrieves all price observations for one item, newest first.
	// Returns ErrItemNotFound if the item does not exist.
	ListPrices(ctx context.Context, id int64) (*domain.ItemPriceHistory, error)
}
