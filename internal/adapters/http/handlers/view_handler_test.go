package handlers_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/product-catalog/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/product-catalog/internal/adapters/http/views"
	"github.com/jsamuelsen11/product-catalog/internal/domain"
	"github.com/jsamuelsen11/product-catalog/internal/domain/filter"
	"github.com/jsamuelsen11/product-catalog/internal/domain/product"
	"github.com/jsamuelsen11/product-catalog/mocks"
)

type viewDeps struct {
	catalog *mocks.MockCatalogService
	store   *mocks.MockFilterStore
}

func newViewHandler(t *testing.T) (*handlers.ViewHandler, viewDeps) {
	t.Helper()
	renderer, err := views.NewRenderer()
	require.NoError(t, err)

	deps := viewDeps{
		catalog: mocks.NewMockCatalogService(t),
		store:   mocks.NewMockFilterStore(t),
	}
	return handlers.NewViewHandler(deps.catalog, deps.store, renderer), deps
}

func listing() *product.Listing {
	return &product.Listing{
		Page:       &product.Page{Products: []product.Product{phone()}, Total: 1, Limit: 30},
		Categories: []string{"smartphones", "laptops"},
	}
}

// --- ProductList ---

func TestProductList_UsesStoredFilters(t *testing.T) {
	t.Parallel()
	h, d := newViewHandler(t)

	stored := filter.Filters{Search: "iphone", Category: "all", Page: 1}
	d.store.EXPECT().Get(testSessionID).Return(stored)
	d.catalog.EXPECT().LoadListing(mock.Anything, stored).Return(listing(), nil)
	d.catalog.EXPECT().PageSize().Return(30)

	rec := httptest.NewRecorder()
	h.ProductList(rec, withSession(httptest.NewRequest(http.MethodGet, "/", nil)))

	requireStatus(t, rec, http.StatusOK)
	body := rec.Body.String()
	assert.Contains(t, body, `value="iphone"`)
	assert.Contains(t, body, `<a href="/product/1">`)
	assert.Contains(t, body, `<option value="laptops">Laptops</option>`)
}

func TestProductList_FormWritesThroughAndResetsPage(t *testing.T) {
	t.Parallel()
	h, d := newViewHandler(t)

	want := filter.Filters{Search: "", Category: "laptops", Page: 1}
	d.store.EXPECT().Get(testSessionID).Return(filter.Filters{Search: "", Category: "all", Page: 5})
	d.store.EXPECT().Set(testSessionID, want).Return()
	d.catalog.EXPECT().LoadListing(mock.Anything, want).Return(listing(), nil)
	d.catalog.EXPECT().PageSize().Return(30)

	rec := httptest.NewRecorder()
	h.ProductList(rec, withSession(httptest.NewRequest(http.MethodGet, "/?q=&category=laptops", nil)))

	requireStatus(t, rec, http.StatusOK)
}

func TestProductList_PaginationLink(t *testing.T) {
	t.Parallel()
	h, d := newViewHandler(t)

	want := filter.Filters{Search: "phone", Category: "all", Page: 2}
	d.store.EXPECT().Get(testSessionID).Return(filter.Filters{Search: "phone", Category: "all", Page: 1})
	d.store.EXPECT().Set(testSessionID, want).Return()
	d.catalog.EXPECT().LoadListing(mock.Anything, want).Return(listing(), nil)
	d.catalog.EXPECT().PageSize().Return(30)

	rec := httptest.NewRecorder()
	h.ProductList(rec, withSession(httptest.NewRequest(http.MethodGet, "/?page=2", nil)))

	requireStatus(t, rec, http.StatusOK)
}

func TestProductList_PageBelowOneIsClamped(t *testing.T) {
	t.Parallel()
	h, d := newViewHandler(t)

	want := filter.Filters{Search: "", Category: "all", Page: 1}
	d.store.EXPECT().Get(testSessionID).Return(filter.Default())
	d.store.EXPECT().Set(testSessionID, want).Return()
	d.catalog.EXPECT().LoadListing(mock.Anything, want).Return(listing(), nil)
	d.catalog.EXPECT().PageSize().Return(30)

	rec := httptest.NewRecorder()
	h.ProductList(rec, withSession(httptest.NewRequest(http.MethodGet, "/?page=-4", nil)))

	requireStatus(t, rec, http.StatusOK)
}

func TestProductList_InvalidPage(t *testing.T) {
	t.Parallel()
	h, d := newViewHandler(t)

	d.store.EXPECT().Get(testSessionID).Return(filter.Default())
	d.catalog.EXPECT().PageSize().Return(30)

	rec := httptest.NewRecorder()
	h.ProductList(rec, withSession(httptest.NewRequest(http.MethodGet, "/?page=two", nil)))

	requireStatus(t, rec, http.StatusBadRequest)
	assert.Contains(t, rec.Body.String(), "400 Bad Request")
}

func TestProductList_UpstreamFailureRendersPanel(t *testing.T) {
	t.Parallel()
	h, d := newViewHandler(t)

	d.store.EXPECT().Get(testSessionID).Return(filter.Default())
	d.catalog.EXPECT().LoadListing(mock.Anything, filter.Default()).
		Return(nil, fmt.Errorf("loading listing: %w", fmt.Errorf("Error 500: Internal Server Error: %w", domain.ErrUnavailable)))
	d.catalog.EXPECT().PageSize().Return(30)

	rec := httptest.NewRecorder()
	h.ProductList(rec, withSession(httptest.NewRequest(http.MethodGet, "/", nil)))

	requireStatus(t, rec, http.StatusBadGateway)
	body := rec.Body.String()
	assert.Contains(t, body, "502 Bad Gateway")
	assert.Contains(t, body, "Error 500")
}

// --- ProductDetail ---

func TestProductDetail_Success(t *testing.T) {
	t.Parallel()
	h, d := newViewHandler(t)

	p := phone()
	d.catalog.EXPECT().GetProduct(mock.Anything, int64(1)).Return(&p, nil)

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodGet, "/product/1", nil), map[string]string{"id": "1"})
	h.ProductDetail(rec, req)

	requireStatus(t, rec, http.StatusOK)
	assert.Contains(t, rec.Body.String(), "<h2>iPhone 9</h2>")
}

func TestProductDetail_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		id         string
		err        error
		wantStatus int
	}{
		{name: "not a number", id: "abc", wantStatus: http.StatusBadRequest},
		{name: "unknown product", id: "999", err: fmt.Errorf("Error 404: Not Found: %w", domain.ErrNotFound), wantStatus: http.StatusNotFound},
		{name: "upstream down", id: "2", err: fmt.Errorf("GET /products/2: %w", domain.ErrUnavailable), wantStatus: http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, d := newViewHandler(t)

			if tt.err != nil {
				d.catalog.EXPECT().GetProduct(mock.Anything, mock.AnythingOfType("int64")).Return(nil, tt.err)
			}

			rec := httptest.NewRecorder()
			req := withChiParams(httptest.NewRequest(http.MethodGet, "/product/"+tt.id, nil), map[string]string{"id": tt.id})
			h.ProductDetail(rec, req)

			requireStatus(t, rec, tt.wantStatus)
			assert.Contains(t, rec.Body.String(), `class="error"`)
			assert.Contains(t, rec.Body.String(), http.StatusText(tt.wantStatus))
		})
	}
}
