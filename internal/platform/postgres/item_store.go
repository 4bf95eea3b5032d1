package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/tradepost/market-api/internal/domain"
	"github.com/tradepost/market-api/internal/platform/logger"
	"github.com/tradepost/market-api/internal/store"
)

// PostgresItemStore implements the store.ItemStore interface
// using a PostgreSQL database as the storage backend.
type PostgresItemStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresItemStore creates a new PostgreSQL implementation of the
// ItemStore interface. It accepts a database connection or transaction that
// should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresItemStore(db store.DBTX, logger *slog.Logger) *PostgresItemStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresItemStore{
		db:     db,
		logger: logger.With(slog.String("component", "item_store")),
	}
}

// Ensure PostgresItemStore implements store.ItemStore interface
var _ store.ItemStore = (*PostgresItemStore)(nil)

// List implements store.ItemStore.List
func (s *PostgresItemStore) List(ctx context.Context) ([]domain.Item, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, name, type_id
		FROM items
		ORDER BY id
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to list items", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	items := []domain.Item{}
	for rows.Next() {
		var item domain.Item
		if err := rows.Scan(&item.ID, &item.Name, &item.TypeID); err != nil {
			log.Error("failed to scan item row", slog.String("error", err.Error()))
			return nil, MapError(err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return items, nil
}

// GetByID implements store.ItemStore.GetByID
// Returns store.ErrItemNotFound if the item does not exist.
func (s *PostgresItemStore) GetByID(ctx context.Context, id int64) (*domain.Item, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, name, type_id
		FROM items
		WHERE id = $1
	`

	var item domain.Item
	err := s.db.QueryRowContext(ctx, query, id).Scan(&item.ID, &item.Name, &item.TypeID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("item not found", slog.Int64("item_id", id))
			return nil, store.ErrItemNotFound
		}
		log.Error("failed to get item by ID",
			slog.String("error", err.Error()),
			slog.Int64("item_id", id))
		return nil, MapError(err)
	}

	return &item, nil
}

// Create implements store.ItemStore.Create
// It validates the item, inserts it, and fills in the store-assigned ID.
// Returns store.ErrInvalidReference if the type ID doesn't exist.
func (s *PostgresItemStore) Create(ctx context.Context, item *domain.Item) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := item.Validate(); err != nil {
		log.Warn("item validation failed during create", slog.String("error", err.Error()))
		return err
	}

	query := `
		INSERT INTO items (name, type_id)
		VALUES ($1, $2)
		RETURNING id
	`

	err := s.db.QueryRowContext(ctx, query, item.Name, item.TypeID).Scan(&item.ID)
	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("foreign key violation during item creation",
				slog.Int64("type_id", item.TypeID))
			return fmt.Errorf("%w: item type with ID %d not found",
				store.ErrInvalidReference, item.TypeID)
		}
		log.Error("failed to create item",
			slog.String("error", err.Error()),
			slog.String("name", item.Name))
		return MapError(err)
	}

	log.Info("item created",
		slog.Int64("item_id", item.ID),
		slog.String("name", item.Name),
		slog.Int64("type_id", item.TypeID))
	return nil
}

// Update implements store.ItemStore.Update
// Fields absent from the patch keep their current value.
// Returns store.ErrItemNotFound if the item does not exist.
func (s *PostgresItemStore) Update(
	ctx context.Context,
	id int64,
	update domain.ItemUpdate,
) (*domain.Item, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := update.Validate(); err != nil {
		log.Warn("item patch validation failed", slog.String("error", err.Error()))
		return nil, err
	}

	query := `
		UPDATE items
		SET name = COALESCE($2, name),
		    type_id = COALESCE($3, type_id)
		WHERE id = $1
		RETURNING id, name, type_id
	`

	var name sql.NullString
	if update.Name != nil {
		name = sql.NullString{String: *update.Name, Valid: true}
	}
	var typeID sql.NullInt64
	if update.TypeID != nil {
		typeID = sql.NullInt64{Int64: *update.TypeID, Valid: true}
	}

	var item domain.Item
	err := s.db.QueryRowContext(ctx, query, id, name, typeID).
		Scan(&item.ID, &item.Name, &item.TypeID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("item not found for update", slog.Int64("item_id", id))
			return nil, store.ErrItemNotFound
		}
		if IsForeignKeyViolation(err) {
			return nil, fmt.Errorf("%w: item type with ID %d not found",
				store.ErrInvalidReference, *update.TypeID)
		}
		log.Error("failed to update item",
			slog.String("error", err.Error()),
			slog.Int64("item_id", id))
		return nil, MapError(err)
	}

	log.Info("item updated", slog.Int64("item_id", item.ID))
	return &item, nil
}

// Delete implements store.ItemStore.Delete
// The schema cascades the delete to the item's price history.
// Returns store.ErrItemNotFound if the item does not exist.
func (s *PostgresItemStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `DELETE FROM items WHERE id = $1`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		log.Error("failed to delete item",
			slog.String("error", err.Error()),
			slog.Int64("item_id", id))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrItemNotFound); err != nil {
		return err
	}

	log.Info("item deleted", slog.Int64("item_id", id))
	return nil
}

// ListWithLatestPrice implements store.ItemStore.ListWithLatestPrice
// The latest observation per item is selected by creation order, newest
// first, with ties broken by the higher row ID. Items without observations
// report a price of 0.
func (s *PostgresItemStore) ListWithLatestPrice(
	ctx context.Context,
	typeID *int64,
) ([]domain.ItemWithPrice, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT i.id, i.name, i.type_id, COALESCE(p.price, 0)
		FROM items i
		LEFT JOIN (
			SELECT DISTINCT ON (item_id) item_id, price
			FROM item_prices
			ORDER BY item_id, created_at DESC, id DESC
		) p ON p.item_id = i.id
		WHERE $1::bigint IS NULL OR i.type_id = $1
		ORDER BY i.id
	`

	var filter sql.NullInt64
	if typeID != nil {
		filter = sql.NullInt64{Int64: *typeID, Valid: true}
	}

	rows, err := s.db.QueryContext(ctx, query, filter)
	if err != nil {
		log.Error("failed to list items with latest price", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	items := []domain.ItemWithPrice{}
	for rows.Next() {
		var item domain.ItemWithPrice
		if err := rows.Scan(&item.ID, &item.Name, &item.TypeID, &item.Price); err != nil {
			log.Error("failed to scan item with price", slog.String("error", err.Error()))
			return nil, MapError(err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return items, nil
}

// ListPrices implements store.ItemStore.ListPrices
// Returns the item's full price history ordered newest first.
// Returns store.ErrItemNotFound if the item does not exist.
func (s *PostgresItemStore) ListPrices(
	ctx context.Context,
	id int64,
) (*domain.ItemPriceHistory, error) {
	item, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, item_id, price, date, created_at
		FROM item_prices
		WHERE item_id = $1
		ORDER BY created_at DESC, id DESC
	`

	rows, err := s.db.QueryContext(ctx, query, id)
	if err != nil {
		log.Error("failed to list item prices",
			slog.String("error", err.Error()),
			slog.Int64("item_id", id))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	prices := []domain.ItemPrice{}
	for rows.Next() {
		var price domain.ItemPrice
		err := rows.Scan(&price.ID, &price.ItemID, &price.Price, &price.Date, &price.CreatedAt)
		if err != nil {
			log.Error("failed to scan item price row", slog.String("error", err.Error()))
			return nil, MapError(err)
		}
		prices = append(prices, price)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return &domain.ItemPriceHistory{Item: *item, Prices: prices}, nil
}
