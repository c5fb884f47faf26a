package ports

import (
	"context"

	"github.com/jsamuelsen11/product-catalog/internal/domain/filter"
	"github.com/jsamuelsen11/product-catalog/internal/domain/product"
)

// CatalogService defines the service port for browsing the product catalog.
// Implemented by the application layer; called by inbound adapters (handlers).
type CatalogService interface {
	// ListProducts returns the page of products selected by query.
	ListProducts(ctx context.Context, query product.Query) (*product.Page, error)

	// BrowseProducts returns the page of products the given filter state
	// points at, using the configured page size.
	BrowseProducts(ctx context.Context, filters filter.Filters) (*product.Page, error)

	// LoadListing fetches the page for filters and the category list
	// concurrently. It fails if either fetch fails.
	LoadListing(ctx context.Context, filters filter.Filters) (*product.Listing, error)

	// ListCategories returns the upstream category list. Within a single
	// request the list is fetched at most once.
	ListCategories(ctx context.Context) ([]string, error)

	// GetProduct returns a single product by ID.
	// Returns domain.ErrNotFound if the product does not exist.
	GetProduct(ctx context.Context, id int64) (*product.Product, error)

	// PageSize returns the number of products shown per list page.
	PageSize() int
}
