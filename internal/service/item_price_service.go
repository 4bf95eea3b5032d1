package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/tradepost/market-api/internal/domain"
	"github.com/tradepost/market-api/internal/store"
)

// ItemPriceService implements the business rules for price observations.
// Referential checks against the item catalog are delegated to the store's
// foreign keys; this layer enforces non-empty patches and field validity.
type ItemPriceService struct {
	prices store.ItemPriceStore
	logger *slog.Logger
}

// NewItemPriceService creates a new ItemPriceService.
func NewItemPriceService(prices store.ItemPriceStore, logger *slog.Logger) *ItemPriceService {
	if prices == nil {
		panic("item price store cannot be nil for ItemPriceService")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &ItemPriceService{
		prices: prices,
		logger: logger.With(slog.String("component", "item_price_service")),
	}
}

// GetByID returns one price observation.
func (s *ItemPriceService) GetByID(ctx context.Context, id int64) (*domain.ItemPrice, error) {
	price, err := s.prices.GetByID(ctx, id)
	if err != nil {
		return nil, wrap("item_price", "get", err)
	}
	return price, nil
}

// Create stores a new price observation for an item. The error wraps
// store.ErrInvalidReference when the item does not exist.
func (s *ItemPriceService) Create(ctx context.Context, itemID, priceValue int64, date time.Time) (*domain.ItemPrice, error) {
	price, err := domain.NewItemPrice(itemID, priceValue, date)
	if err != nil {
		return nil, wrap("item_price", "create", err)
	}

	if err := s.prices.Create(ctx, price); err != nil {
		return nil, wrap("item_price", "create", err)
	}

	return price, nil
}

// Update applies a partial patch to a price observation. The patch must
// carry at least one field.
func (s *ItemPriceService) Update(ctx context.Context, id int64, update domain.ItemPriceUpdate) (*domain.ItemPrice, error) {
	if update.IsEmpty() {
		return nil, wrap("item_price", "update", ErrEmptyUpdate)
	}

	price, err := s.prices.Update(ctx, id, update)
	if err != nil {
		return nil, wrap("item_price", "update", err)
	}

	return price, nil
}

// Delete removes a price observation.
func (s *ItemPriceService) Delete(ctx context.Context, id int64) error {
	if err := s.prices.Delete(ctx, id); err != nil {
		return wrap("item_price", "delete", err)
	}
	return nil
}
