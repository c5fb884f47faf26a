package handlers

import (
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/jsamuelsen11/product-catalog/internal/adapters/http/dto"
	"github.com/jsamuelsen11/product-catalog/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/product-catalog/internal/adapters/http/views"
	"github.com/jsamuelsen11/product-catalog/internal/domain"
	"github.com/jsamuelsen11/product-catalog/internal/domain/filter"
	"github.com/jsamuelsen11/product-catalog/internal/platform/logging"
	"github.com/jsamuelsen11/product-catalog/internal/ports"
)

// ViewHandler serves the HTML pages. The list view reads and writes the
// session's filter state, so it must run behind middleware.Session.
type ViewHandler struct {
	catalog  ports.CatalogService
	filters  ports.FilterStore
	renderer *views.Renderer
}

// NewViewHandler creates a new ViewHandler.
func NewViewHandler(catalog ports.CatalogService, filters ports.FilterStore, renderer *views.Renderer) *ViewHandler {
	return &ViewHandler{
		catalog:  catalog,
		filters:  filters,
		renderer: renderer,
	}
}

// ProductList handles GET /. The q, category and page query parameters are
// written through to the session's filter state before the page is loaded;
// without them the stored state is shown as is.
func (h *ViewHandler) ProductList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sessionID := middleware.SessionIDFromContext(ctx)
	current := h.filters.Get(sessionID).Normalize()

	change, err := parseFilterChange(r.URL.Query())
	if err != nil {
		page := views.NewListPage(current, nil, h.catalog.PageSize())
		page.Error = views.NewErrorPanel(http.StatusBadRequest, err)
		h.render(w, r, http.StatusBadRequest, views.ListView, page)
		return
	}
	if !change.IsZero() {
		updated := current.Apply(change)
		h.filters.Set(sessionID, updated)
		current = updated
	}

	listing, err := h.catalog.LoadListing(ctx, current)
	page := views.NewListPage(current, listing, h.catalog.PageSize())
	status := http.StatusOK
	if err != nil {
		status = dto.StatusFor(err)
		page.Error = views.NewErrorPanel(status, err)
	}

	h.render(w, r, status, views.ListView, page)
}

// ProductDetail handles GET /product/{id}.
func (h *ViewHandler) ProductDetail(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		h.renderDetailError(w, r, err)
		return
	}

	p, err := h.catalog.GetProduct(r.Context(), id)
	if err != nil {
		h.renderDetailError(w, r, err)
		return
	}

	h.render(w, r, http.StatusOK, views.DetailView, views.NewDetailPage(p))
}

func (h *ViewHandler) renderDetailError(w http.ResponseWriter, r *http.Request, err error) {
	status := dto.StatusFor(err)
	h.render(w, r, status, views.DetailView, views.DetailPage{
		Title: http.StatusText(status),
		Error: views.NewErrorPanel(status, err),
	})
}

func (h *ViewHandler) render(w http.ResponseWriter, r *http.Request, status int, name string, data any) {
	if err := h.renderer.Render(w, status, name, data); err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "failed to render view",
			slog.String("view", name),
			slog.Any("error", err),
		)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// parseFilterChange reads the filter form's parameters. A parameter that is
// present, even empty, is a change; an empty q clears the search.
func parseFilterChange(values url.Values) (filter.Change, error) {
	var c filter.Change

	if values.Has("q") {
		search := strings.TrimSpace(values.Get("q"))
		c.Search = &search
	}
	if values.Has("category") {
		category := strings.TrimSpace(values.Get("category"))
		c.Category = &category
	}
	if values.Has("page") {
		page, err := strconv.Atoi(values.Get("page"))
		if err != nil {
			return filter.Change{}, &domain.ValidationError{
				Fields: map[string]string{"page": "must be a valid integer"},
			}
		}
		c.Page = &page
	}

	return c, nil
}
