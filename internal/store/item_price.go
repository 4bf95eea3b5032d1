package store

import (
	"context"

	"github.com/tradepost/market-api/internal/domain"
)

// ItemPriceStore defines the interface for item price data persistence.
type ItemPriceStore interface {
	// GetByID retrieves a price observation by its unique ID.
	// Returns ErrItemPriceNotFound if it does not exist.
	GetByID(ctx context.Context, id int64) (*domain.ItemPrice, error)

	// Create saves a new price observation and fills in its store-assigned
	// ID and creation timestamp. Returns ErrInvalidReference if the item ID
	// does not exist.
	Create(ctx context.Context, price *domain.ItemPrice) error

	// Update applies a partial patch to an existing price observation and
	// returns the updated row. Returns ErrItemPriceNotFound if it does not
	// exist and ErrInvalidReference if the patch names an unknown item ID.
	Update(ctx context.Context, id int64, update domain.ItemPriceUpdate) (*domain.ItemPrice, error)

	// Delete removes a price observation by its ID.
	// Returns ErrItemPriceNotFound if it does not exist.
	Delete(ctx context.Context, id int64) error
}
