package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tradepost/market-api/internal/domain"
	"github.com/tradepost/market-api/internal/store"
)

// mockItemPriceStore implements store.ItemPriceStore with function fields.
type mockItemPriceStore struct {
	getByIDFn func(ctx context.Context, id int64) (*domain.ItemPrice, error)
	createFn  func(ctx context.Context, price *domain.ItemPrice) error
	updateFn  func(ctx context.Context, id int64, update domain.ItemPriceUpdate) (*domain.ItemPrice, error)
	deleteFn  func(ctx context.Context, id int64) error
}

func (m *mockItemPriceStore) GetByID(ctx context.Context, id int64) (*domain.ItemPrice, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockItemPriceStore) Create(ctx context.Context, price *domain.ItemPrice) error {
	return m.createFn(ctx, price)
}

func (m *mockItemPriceStore) Update(ctx context.Context, id int64, update domain.ItemPriceUpdate) (*domain.ItemPrice, error) {
	return m.updateFn(ctx, id, update)
}

func (m *mockItemPriceStore) Delete(ctx context.Context, id int64) error {
	return m.deleteFn(ctx, id)
}

func TestItemPriceServiceCreate(t *testing.T) {
	t.Parallel()

	date := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)

	t.Run("creates_observation", func(t *testing.T) {
		t.Parallel()

		prices := &mockItemPriceStore{
			createFn: func(ctx context.Context, price *domain.ItemPrice) error {
				price.ID = 7
				price.CreatedAt = time.Now()
				return nil
			},
		}
		svc := NewItemPriceService(prices, nil)

		price, err := svc.Create(context.Background(), 1, 250, date)
		require.NoError(t, err)
		assert.Equal(t, int64(7), price.ID)
		assert.Equal(t, int64(250), price.Price)
		assert.Equal(t, date, price.Date)
	})

	t.Run("rejects_non_positive_price_before_store", func(t *testing.T) {
		t.Parallel()

		prices := &mockItemPriceStore{
			createFn: func(ctx context.Context, price *domain.ItemPrice) error {
				t.Fatal("store Create should not be called for an invalid price")
				return nil
			},
		}
		svc := NewItemPriceService(prices, nil)

		price, err := svc.Create(context.Background(), 1, 0, date)
		assert.Nil(t, price)
		assert.ErrorIs(t, err, domain.ErrNonPositivePrice)
	})

	t.Run("rejects_zero_date", func(t *testing.T) {
		t.Parallel()

		svc := NewItemPriceService(&mockItemPriceStore{}, nil)

		price, err := svc.Create(context.Background(), 1, 250, time.Time{})
		assert.Nil(t, price)
		assert.ErrorIs(t, err, domain.ErrZeroPriceDate)
	})

	t.Run("unknown_item_surfaces_invalid_reference", func(t *testing.T) {
		t.Parallel()

		prices := &mockItemPriceStore{
			createFn: func(ctx context.Context, price *domain.ItemPrice) error {
				return store.ErrInvalidReference
			},
		}
		svc := NewItemPriceService(prices, nil)

		price, err := svc.Create(context.Background(), 99, 250, date)
		assert.Nil(t, price)
		assert.ErrorIs(t, err, store.ErrInvalidReference)
	})
}

func TestItemPriceServiceUpdate(t *testing.T) {
	t.Parallel()

	newPrice := int64(300)

	t.Run("applies_patch", func(t *testing.T) {
		t.Parallel()

		prices := &mockItemPriceStore{
			updateFn: func(ctx context.Context, id int64, update domain.ItemPriceUpdate) (*domain.ItemPrice, error) {
				assert.Equal(t, int64(7), id)
				require.NotNil(t, update.Price)
				return &domain.ItemPrice{ID: id, ItemID: 1, Price: *update.Price}, nil
			},
		}
		svc := NewItemPriceService(prices, nil)

		price, err := svc.Update(context.Background(), 7, domain.ItemPriceUpdate{Price: &newPrice})
		require.NoError(t, err)
		assert.Equal(t, newPrice, price.Price)
	})

	t.Run("rejects_empty_patch", func(t *testing.T) {
		t.Parallel()

		svc := NewItemPriceService(&mockItemPriceStore{}, nil)

		price, err := svc.Update(context.Background(), 7, domain.ItemPriceUpdate{})
		assert.Nil(t, price)
		assert.ErrorIs(t, err, ErrEmptyUpdate)
	})

	t.Run("missing_observation_surfaces_not_found", func(t *testing.T) {
		t.Parallel()

		prices := &mockItemPriceStore{
			updateFn: func(ctx context.Context, id int64, update domain.ItemPriceUpdate) (*domain.ItemPrice, error) {
				return nil, store.ErrItemPriceNotFound
			},
		}
		svc := NewItemPriceService(prices, nil)

		price, err := svc.Update(context.Background(), 99, domain.ItemPriceUpdate{Price: &newPrice})
		assert.Nil(t, price)
		assert.ErrorIs(t, err, store.ErrItemPriceNotFound)
	})
}

func TestItemPriceServiceDelete(t *testing.T) {
	t.Parallel()

	prices := &mockItemPriceStore{
		deleteFn: func(ctx context.Context, id int64) error {
			if id == 7 {
				return nil
			}
			return store.ErrItemPriceNotFound
		},
	}
	svc := NewItemPriceService(prices, nil)

	require.NoError(t, svc.Delete(context.Background(), 7))
	assert.ErrorIs(t, svc.Delete(context.Background(), 99), store.ErrItemPriceNotFound)
}

func TestItemPriceServiceGetByID(t *testing.T) {
	t.Parallel()

	prices := &mockItemPriceStore{
		getByIDFn: func(ctx context.Context, id int64) (*domain.ItemPrice, error) {
			if id != 7 {
				return nil, store.ErrItemPriceNotFound
			}
			return &domain.ItemPrice{ID: 7, ItemID: 1, Price: 250}, nil
		},
	}
	svc := NewItemPriceService(prices, nil)

	price, err := svc.GetByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(250), price.Price)

	_, err = svc.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, store.ErrItemPriceNotFound)
}
