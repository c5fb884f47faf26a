package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/product-catalog/internal/adapters/http/dto"
	"github.com/jsamuelsen11/product-catalog/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/product-catalog/internal/ports"
)

// FilterHandler exposes the caller's session filter state under
// /api/v1/filters. It must run behind middleware.Session.
type FilterHandler struct {
	store ports.FilterStore
}

// NewFilterHandler creates a new FilterHandler with the given store port.
func NewFilterHandler(store ports.FilterStore) *FilterHandler {
	return &FilterHandler{store: store}
}

// GetFilters handles GET /api/v1/filters.
func (h *FilterHandler) GetFilters(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.SessionIDFromContext(r.Context())
	writeJSON(w, http.StatusOK, dto.ToFiltersResponse(h.store.Get(sessionID)))
}

// UpdateFilters handles PATCH /api/v1/filters. Changing search or category
// without a page moves back to the first page.
func (h *FilterHandler) UpdateFilters(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateFiltersRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	sessionID := middleware.SessionIDFromContext(r.Context())
	updated := h.store.Get(sessionID).Apply(req.Change())
	h.store.Set(sessionID, updated)

	writeJSON(w, http.StatusOK, dto.ToFiltersResponse(updated))
}

// ResetFilters handles DELETE /api/v1/filters.
func (h *FilterHandler) ResetFilters(w http.ResponseWriter, r *http.Request) {
	h.store.Reset(middleware.SessionIDFromContext(r.Context()))
	w.WriteHeader(http.StatusNoContent)
}
