package catalog

import (
	"context"
	"log/slog"

	json "github.com/goccy/go-json"

	"github.com/jsamuelsen11/product-catalog/internal/domain/product"
	"github.com/jsamuelsen11/product-catalog/internal/platform/httpclient"
	"github.com/jsamuelsen11/product-catalog/internal/ports"
)

// ServiceName identifies the upstream in spans, metrics and health reports.
const ServiceName = "catalog-api"

// Compile-time interface checks.
var (
	_ ports.CatalogClient = (*Client)(nil)
	_ ports.HealthChecker = (*Client)(nil)
)

// Client implements [ports.CatalogClient] over the upstream REST API.
type Client struct {
	http *httpclient.Client
	req  *requester
}

// NewClient creates a Client sending requests through client, whose BaseURL
// must point at the upstream root (e.g. "https://dummyjson.com").
func NewClient(client *httpclient.Client, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Client{
		http: client,
		req:  &requester{client: client, logger: logger},
	}
}

// FetchProducts returns the page selected by query. See BuildProductsPath
// for how search and category interact.
func (c *Client) FetchProducts(ctx context.Context, query product.Query) (*product.Page, error) {
	path := BuildProductsPath(query.Skip, query.Limit, query.Search, query.Category)

	var dto productListDTO
	if err := c.req.getJSON(ctx, path, &dto); err != nil {
		return nil, err
	}
	return toDomainPage(&dto)
}

// FetchCategoryList returns the upstream category identifiers in upstream
// order.
func (c *Client) FetchCategoryList(ctx context.Context) ([]string, error) {
	var categories []string
	if err := c.req.getJSON(ctx, categoryListPath, &categories); err != nil {
		return nil, err
	}
	if categories == nil {
		categories = []string{}
	}
	return categories, nil
}

// FetchProduct returns a single product. An unknown id yields a
// *StatusError that unwraps to domain.ErrNotFound.
func (c *Client) FetchProduct(ctx context.Context, id int64) (*product.Product, error) {
	var raw json.RawMessage
	if err := c.req.getJSON(ctx, productPath(id), &raw); err != nil {
		return nil, err
	}

	p, err := toDomainProduct(raw)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
