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

// PostgresItemTypeStore implements the store.ItemTypeStore interface
// using a PostgreSQL database as the storage backend.
type PostgresItemTypeStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresItemTypeStore creates a new PostgreSQL implementation of the
// ItemTypeStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresItemTypeStore(db store.DBTX, logger *slog.Logger) *PostgresItemTypeStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresItemTypeStore{
		db:     db,
		logger: logger.With(slog.String("component", "item_type_store")),
	}
}

// Ensure PostgresItemTypeStore implements store.ItemTypeStore interface
var _ store.ItemTypeStore = (*PostgresItemTypeStore)(nil)

// List implements store.ItemTypeStore.List
func (s *PostgresItemTypeStore) List(ctx context.Context) ([]domain.ItemType, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, name
		FROM item_types
		ORDER BY id
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to list item types", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	types := []domain.ItemType{}
	for rows.Next() {
		var itemType domain.ItemType
		if err := rows.Scan(&itemType.ID, &itemType.Name); err != nil {
			log.Error("failed to scan item type row", slog.String("error", err.Error()))
			return nil, MapError(err)
		}
		types = append(types, itemType)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return types, nil
}

// GetByID implements store.ItemTypeStore.GetByID
// Returns store.ErrItemTypeNotFound if the type does not exist.
func (s *PostgresItemTypeStore) GetByID(ctx context.Context, id int64) (*domain.ItemType, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, name
		FROM item_types
		WHERE id = $1
	`

	var itemType domain.ItemType
	err := s.db.QueryRowContext(ctx, query, id).Scan(&itemType.ID, &itemType.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("item type not found", slog.Int64("type_id", id))
			return nil, store.ErrItemTypeNotFound
		}
		log.Error("failed to get item type by ID",
			slog.String("error", err.Error()),
			slog.Int64("type_id", id))
		return nil, MapError(err)
	}

	return &itemType, nil
}

// Create implements store.ItemTypeStore.Create
// Returns store.ErrDuplicate if the name collides with an existing type.
func (s *PostgresItemTypeStore) Create(ctx context.Context, itemType *domain.ItemType) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := itemType.Validate(); err != nil {
		log.Warn("item type validation failed during create", slog.String("error", err.Error()))
		return err
	}

	query := `
		INSERT INTO item_types (name)
		VALUES ($1)
		RETURNING id
	`

	err := s.db.QueryRowContext(ctx, query, itemType.Name).Scan(&itemType.ID)
	if err != nil {
		if IsUniqueViolation(err) {
			return fmt.Errorf("%w: item type %q", store.ErrDuplicate, itemType.Name)
		}
		log.Error("failed to create item type",
			slog.String("error", err.Error()),
			slog.String("name", itemType.Name))
		return MapError(err)
	}

	log.Info("item type created",
		slog.Int64("type_id", itemType.ID),
		slog.String("name", itemType.Name))
	return nil
}

// Delete implements store.ItemTypeStore.Delete
// Returns store.ErrItemTypeNotFound if the type does not exist and
// store.ErrInvalidReference if items still reference it.
func (s *PostgresItemTypeStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `DELETE FROM item_types WHERE id = $1`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		log.Error("failed to delete item type",
			slog.String("error", err.Error()),
			slog.Int64("type_id", id))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrItemTypeNotFound); err != nil {
		return err
	}

	log.Info("item type deleted", slog.Int64("type_id", id))
	return nil
}
