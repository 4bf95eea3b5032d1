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

// PostgresItemPriceStore implements the store.ItemPriceStore interface
// using a PostgreSQL database as the storage backend.
type PostgresItemPriceStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresItemPriceStore creates a new PostgreSQL implementation of the
// ItemPriceStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresItemPriceStore(db store.DBTX, logger *slog.Logger) *PostgresItemPriceStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresItemPriceStore{
		db:     db,
		logger: logger.With(slog.String("component", "item_price_store")),
	}
}

// Ensure PostgresItemPriceStore implements store.ItemPriceStore interface
var _ store.ItemPriceStore = (*PostgresItemPriceStore)(nil)

// GetByID implements store.ItemPriceStore.GetByID
// Returns store.ErrItemPriceNotFound if the observation does not exist.
func (s *PostgresItemPriceStore) GetByID(ctx context.Context, id int64) (*domain.ItemPrice, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, item_id, price, date, created_at
		FROM item_prices
		WHERE id = $1
	`

	var price domain.ItemPrice
	err := s.db.QueryRowContext(ctx, query, id).
		Scan(&price.ID, &price.ItemID, &price.Price, &price.Date, &price.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("item price not found", slog.Int64("price_id", id))
			return nil, store.ErrItemPriceNotFound
		}
		log.Error("failed to get item price by ID",
			slog.String("error", err.Error()),
			slog.Int64("price_id", id))
		return nil, MapError(err)
	}

	return &price, nil
}

// Create implements store.ItemPriceStore.Create
// It validates the observation, inserts it, and fills in the store-assigned
// ID and creation timestamp.
// Returns store.ErrInvalidReference if the item ID doesn't exist.
func (s *PostgresItemPriceStore) Create(ctx context.Context, price *domain.ItemPrice) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := price.Validate(); err != nil {
		log.Warn("item price validation failed during create", slog.String("error", err.Error()))
		return err
	}

	query := `
		INSERT INTO item_prices (item_id, price, date)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query, price.ItemID, price.Price, price.Date).
		Scan(&price.ID, &price.CreatedAt)
	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("foreign key violation during price creation",
				slog.Int64("item_id", price.ItemID))
			return fmt.Errorf("%w: item with ID %d not found",
				store.ErrInvalidReference, price.ItemID)
		}
		log.Error("failed to create item price",
			slog.String("error", err.Error()),
			slog.Int64("item_id", price.ItemID))
		return MapError(err)
	}

	log.Info("item price created",
		slog.Int64("price_id", price.ID),
		slog.Int64("item_id", price.ItemID),
		slog.Int64("price", price.Price))
	return nil
}

// Update implements store.ItemPriceStore.Update
// Fields absent from the patch keep their current value.
// Returns store.ErrItemPriceNotFound if the observation does not exist.
func (s *PostgresItemPriceStore) Update(
	ctx context.Context,
	id int64,
	update domain.ItemPriceUpdate,
) (*domain.ItemPrice, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := update.Validate(); err != nil {
		log.Warn("item price patch validation failed", slog.String("error", err.Error()))
		return nil, err
	}

	query := `
		UPDATE item_prices
		SET item_id = COALESCE($2, item_id),
		    price = COALESCE($3, price),
		    date = COALESCE($4, date)
		WHERE id = $1
		RETURNING id, item_id, price, date, created_at
	`

	var itemID, priceVal sql.NullInt64
	if update.ItemID != nil {
		itemID = sql.NullInt64{Int64: *update.ItemID, Valid: true}
	}
	if update.Price != nil {
		priceVal = sql.NullInt64{Int64: *update.Price, Valid: true}
	}
	var date sql.NullTime
	if update.Date != nil {
		date = sql.NullTime{Time: *update.Date, Valid: true}
	}

	var price domain.ItemPrice
	err := s.db.QueryRowContext(ctx, query, id, itemID, priceVal, date).
		Scan(&price.ID, &price.ItemID, &price.Price, &price.Date, &price.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("item price not found for update", slog.Int64("price_id", id))
			return nil, store.ErrItemPriceNotFound
		}
		if IsForeignKeyViolation(err) {
			return nil, fmt.Errorf("%w: item with ID %d not found",
				store.ErrInvalidReference, *update.ItemID)
		}
		log.Error("failed to update item price",
			slog.String("error", err.Error()),
			slog.Int64("price_id", id))
		return nil, MapError(err)
	}

	log.Info("item price updated", slog.Int64("price_id", price.ID))
	return &price, nil
}

// Delete implements store.ItemPriceStore.Delete
// Returns store.ErrItemPriceNotFound if the observation does not exist.
func (s *PostgresItemPriceStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `DELETE FROM item_prices WHERE id = $1`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		log.Error("failed to delete item price",
			slog.String("error", err.Error()),
			slog.Int64("price_id", id))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrItemPriceNotFound); err != nil {
		return err
	}

	log.Info("item price deleted", slog.Int64("price_id", id))
	return nil
}
