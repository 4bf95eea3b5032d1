package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tradepost/market-api/internal/domain"
	"github.com/tradepost/market-api/internal/store"
)

func TestItemTypeServiceList(t *testing.T) {
	t.Parallel()

	svc := NewItemTypeService(fixedTypes(1, 2, 3), nil)

	types, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, types, 3)
}

func TestItemTypeServiceCreate(t *testing.T) {
	t.Parallel()

	t.Run("creates_type", func(t *testing.T) {
		t.Parallel()

		types := &mockItemTypeStore{
			createFn: func(ctx context.Context, itemType *domain.ItemType) error {
				itemType.ID = 6
				return nil
			},
		}
		svc := NewItemTypeService(types, nil)

		itemType, err := svc.Create(context.Background(), "Alchemy")
		require.NoError(t, err)
		assert.Equal(t, int64(6), itemType.ID)
	})

	t.Run("duplicate_name_surfaces_conflict", func(t *testing.T) {
		t.Parallel()

		types := &mockItemTypeStore{
			createFn: func(ctx context.Context, itemType *domain.ItemType) error {
				return store.ErrDuplicate
			},
		}
		svc := NewItemTypeService(types, nil)

		itemType, err := svc.Create(context.Background(), "Mining")
		assert.Nil(t, itemType)
		assert.ErrorIs(t, err, store.ErrDuplicate)
	})
}

func TestItemTypeServiceDelete(t *testing.T) {
	t.Parallel()

	types := &mockItemTypeStore{
		deleteFn: func(ctx context.Context, id int64) error {
			if id == 5 {
				return store.ErrInvalidReference
			}
			return nil
		},
	}
	svc := NewItemTypeService(types, nil)

	require.NoError(t, svc.Delete(context.Background(), 6))
	assert.ErrorIs(t, svc.Delete(context.Background(), 5), store.ErrInvalidReference)
}
