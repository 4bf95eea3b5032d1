package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/tradepost/market-api/internal/api"
	apiMiddleware "github.com/tradepost/market-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware. Returns the configured router.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Standard middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.Trace)

	// Unknown paths and wrong methods answer with the standard envelope.
	r.NotFound(api.NotFound)
	r.MethodNotAllowed(api.MethodNotAllowed)

	includeDetail := app.config.Server.IsDevelopment()
	itemHandler := api.NewItemHandler(app.itemService, app.logger, includeDetail)
	typeHandler := api.NewItemTypeHandler(app.typeService, app.logger, includeDetail)
	priceHandler := api.NewItemPriceHandler(app.priceService, app.logger, includeDetail)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/items", func(r chi.Router) {
			r.Get("/", itemHandler.ListItems)
			r.Post("/", itemHandler.CreateItem)

			// Static segments are registered alongside {id}; the router
			// matches them first.
			r.Get("/types", typeHandler.ListItemTypes)

			r.Route("/prices", func(r chi.Router) {
				r.Get("/", itemHandler.ListItemsWithPrice)
				r.Post("/", priceHandler.CreateItemPrice)
				r.Get("/{id}", priceHandler.GetItemPrice)
				r.Put("/{id}", priceHandler.UpdateItemPrice)
				r.Delete("/{id}", priceHandler.DeleteItemPrice)
			})

			r.Get("/{id}", itemHandler.GetItem)
			r.Put("/{id}", itemHandler.UpdateItem)
			r.Delete("/{id}", itemHandler.DeleteItem)
			r.Get("/{id}/prices", itemHandler.GetItemPrices)
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
