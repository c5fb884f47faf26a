// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/product-catalog/internal/adapters/http/handlers"
)

// Handlers groups the route handlers NewRouter mounts.
type Handlers struct {
	View    *handlers.ViewHandler
	Catalog *handlers.CatalogHandler
	Filters *handlers.FilterHandler
	Health  *handlers.HealthHandler
}

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given. session wraps the routes
// that read or write the caller's filter state: the HTML views and
// /api/v1/filters.
func NewRouter(
	h Handlers,
	session func(http.Handler) http.Handler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", h.Health.Liveness)
	r.Get("/health/ready", h.Health.Readiness)

	// HTML views.
	r.Group(func(r chi.Router) {
		r.Use(session)
		r.Get("/", h.View.ProductList)
		r.Get("/product/{id}", h.View.ProductDetail)
	})

	// API v1 routes.
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/products", h.Catalog.ListProducts)
		r.Get("/products/{id}", h.Catalog.GetProduct)
		r.Get("/categories", h.Catalog.ListCategories)

		r.Group(func(r chi.Router) {
			r.Use(session)
			r.Get("/filters", h.Filters.GetFilters)
			r.Patch("/filters", h.Filters.UpdateFilters)
			r.Delete("/filters", h.Filters.ResetFilters)
		})
	})

	return r
}
