package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/product-catalog/internal/adapters/http/dto"
	"github.com/jsamuelsen11/product-catalog/internal/ports"
)

// CatalogHandler serves the catalog as JSON under /api/v1. Product records
// are returned exactly as the upstream API sent them.
type CatalogHandler struct {
	catalog ports.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler with the given service port.
func NewCatalogHandler(catalog ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// ListProducts handles GET /api/v1/products.
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	query, err := dto.ParseListProductsQuery(r.URL.Query(), h.catalog.PageSize())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	page, err := h.catalog.ListProducts(r.Context(), query.Query())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToProductListResponse(page))
}

// GetProduct handles GET /api/v1/products/{id}.
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	p, err := h.catalog.GetProduct(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToProductResponse(p))
}

// ListCategories handles GET /api/v1/categories.
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.catalog.ListCategories(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToCategoryListResponse(categories))
}
