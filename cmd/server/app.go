package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/tradepost/market-api/internal/config"
	"github.com/tradepost/market-api/internal/platform/postgres"
	"github.com/tradepost/market-api/internal/service"
)

// application holds the long-lived dependencies of the server: the config,
// the root logger, the database pool, and the service layer. It is built
// once at startup and injected into handlers; there is no ambient global
// store handle.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	itemService  *service.ItemService
	typeService  *service.ItemTypeService
	priceService *service.ItemPriceService
}

// newApplication wires the application together: database pool, schema
// migrations, stores, and services.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	db, err := setupAppDatabase(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("database setup failed: %w", err)
	}

	if err := runMigrations(db, logger); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrations failed: %w", err)
	}

	itemStore := postgres.NewPostgresItemStore(db, logger)
	typeStore := postgres.NewPostgresItemTypeStore(db, logger)
	priceStore := postgres.NewPostgresItemPriceStore(db, logger)

	return &application{
		config:       cfg,
		logger:       logger,
		db:           db,
		itemService:  service.NewItemService(itemStore, typeStore, logger),
		typeService:  service.NewItemTypeService(typeStore, logger),
		priceService: service.NewItemPriceService(priceStore, logger),
	}, nil
}

// cleanup releases resources owned by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database", "error", err)
		}
	}
}
