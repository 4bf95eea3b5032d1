package postgres

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tradepost/market-api/internal/domain"
	"github.com/tradepost/market-api/internal/store"
)

func newMockTypeStore(t *testing.T) (*PostgresItemTypeStore, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewPostgresItemTypeStore(db, nil), mock
}

func TestItemTypeStoreList(t *testing.T) {
	s, mock := newMockTypeStore(t)

	rows := sqlmock.NewRows([]string{"id", "name"}).
		AddRow(1, "Mining").
		AddRow(2, "Gathering")
	mock.ExpectQuery("SELECT id, name").WillReturnRows(rows)

	types, err := s.List(context.Background())
	require.NoError(t, err)
	require.Len(t, types, 2)
	assert.Equal(t, domain.ItemType{ID: 1, Name: "Mining"}, types[0])
}

func TestItemTypeStoreGetByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		s, mock := newMockTypeStore(t)

		mock.ExpectQuery("SELECT id, name").
			WithArgs(int64(3)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(3, "Fishing"))

		itemType, err := s.GetByID(context.Background(), 3)
		require.NoError(t, err)
		assert.Equal(t, "Fishing", itemType.Name)
	})

	t.Run("not_found", func(t *testing.T) {
		s, mock := newMockTypeStore(t)

		mock.ExpectQuery("SELECT id, name").
			WithArgs(int64(9)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

		itemType, err := s.GetByID(context.Background(), 9)
		assert.Nil(t, itemType)
		assert.ErrorIs(t, err, store.ErrItemTypeNotFound)
	})
}

func TestItemTypeStoreCreate(t *testing.T) {
	t.Run("assigns_id", func(t *testing.T) {
		s, mock := newMockTypeStore(t)

		mock.ExpectQuery("INSERT INTO item_types").
			WithArgs("Alchemy").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(6))

		itemType := &domain.ItemType{Name: "Alchemy"}
		require.NoError(t, s.Create(context.Background(), itemType))
		assert.Equal(t, int64(6), itemType.ID)
	})

	t.Run("duplicate_name", func(t *testing.T) {
		s, mock := newMockTypeStore(t)

		mock.ExpectQuery("INSERT INTO item_types").
			WithArgs("Mining").
			WillReturnError(pgError("23505"))

		itemType := &domain.ItemType{Name: "Mining"}
		assert.ErrorIs(t, s.Create(context.Background(), itemType), store.ErrDuplicate)
	})
}

func TestItemTypeStoreDelete(t *testing.T) {
	t.Run("missing_type_is_not_found", func(t *testing.T) {
		s, mock := newMockTypeStore(t)

		mock.ExpectExec("DELETE FROM item_types").
			WithArgs(int64(9)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, s.Delete(context.Background(), 9), store.ErrItemTypeNotFound)
	})

	t.Run("referenced_type_is_invalid_reference", func(t *testing.T) {
		s, mock := newMockTypeStore(t)

		mock.ExpectExec("DELETE FROM item_types").
			WithArgs(int64(1)).
			WillReturnError(pgError("23503"))

		assert.ErrorIs(t, s.Delete(context.Background(), 1), store.ErrInvalidReference)
	})
}
