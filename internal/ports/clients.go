package ports

import (
	"context"

	"github.com/jsamuelsen11/product-catalog/internal/domain/product"
)

// CatalogClient defines the client port for the upstream product catalog API.
// Implemented by the catalog adapter; called by the application layer.
// Methods map 1:1 to upstream endpoints.
type CatalogClient interface {
	// FetchProducts returns one page of products. A non-empty Category
	// (other than "all") takes precedence over Search; with neither set the
	// plain product listing is used.
	FetchProducts(ctx context.Context, query product.Query) (*product.Page, error)

	// FetchCategoryList returns the category identifiers exposed upstream,
	// in upstream order.
	FetchCategoryList(ctx context.Context) ([]string, error)

	// FetchProduct returns a single product by ID.
	// Returns domain.ErrNotFound if the product does not exist.
	FetchProduct(ctx context.Context, id int64) (*product.Product, error)
}
