// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"log/slog"

	appctx "github.com/jsamuelsen11/product-catalog/internal/app/context"
	"github.com/jsamuelsen11/product-catalog/internal/app/fanout"
	"github.com/jsamuelsen11/product-catalog/internal/domain"
	"github.com/jsamuelsen11/product-catalog/internal/domain/filter"
	"github.com/jsamuelsen11/product-catalog/internal/domain/product"
	"github.com/jsamuelsen11/product-catalog/internal/ports"
)

// Compile-time check that CatalogService implements ports.CatalogService.
var _ ports.CatalogService = (*CatalogService)(nil)

// MaxLimit is the largest page a caller may request.
const MaxLimit = 100

// categoriesKey is the request-scoped cache key for the category list.
const categoriesKey = "catalog:categories"

// CatalogService implements ports.CatalogService on top of the CatalogClient
// port. It validates queries, logs failures and memoizes the category list
// per request; products pass through untouched.
type CatalogService struct {
	client     ports.CatalogClient
	pageSize   int
	categories *appctx.DataProvider[[]string]
	logger     *slog.Logger
}

// NewCatalogService creates a CatalogService showing pageSize products per
// list page.
func NewCatalogService(client ports.CatalogClient, pageSize int, logger *slog.Logger) *CatalogService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &CatalogService{
		client:     client,
		pageSize:   pageSize,
		categories: appctx.NewDataProvider(categoriesKey, client.FetchCategoryList),
		logger:     logger,
	}
}

// PageSize returns the configured list page size.
func (s *CatalogService) PageSize() int {
	return s.pageSize
}

// ListProducts returns the page selected by query after checking its bounds.
func (s *CatalogService) ListProducts(ctx context.Context, query product.Query) (*product.Page, error) {
	if err := validateQuery(query); err != nil {
		return nil, err
	}

	page, err := s.client.FetchProducts(ctx, query)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list products",
			slog.String("operation", "ListProducts"),
			slog.Int("skip", query.Skip),
			slog.Int("limit", query.Limit),
			slog.String("search", query.Search),
			slog.String("category", query.Category),
			slog.Any("error", err),
		)
		return nil, err
	}

	return page, nil
}

// BrowseProducts returns the page the filter state points at.
func (s *CatalogService) BrowseProducts(ctx context.Context, filters filter.Filters) (*product.Page, error) {
	return s.ListProducts(ctx, filters.Normalize().Query(s.pageSize))
}

// LoadListing fetches the filtered page and the category list side by side.
func (s *CatalogService) LoadListing(ctx context.Context, filters filter.Filters) (*product.Listing, error) {
	var listing product.Listing

	err := fanout.All(ctx, 2,
		func(ctx context.Context) error {
			page, err := s.BrowseProducts(ctx, filters)
			listing.Page = page
			return err
		},
		func(ctx context.Context) error {
			categories, err := s.ListCategories(ctx)
			listing.Categories = categories
			return err
		},
	)
	if err != nil {
		return nil, err
	}

	return &listing, nil
}

// ListCategories returns the upstream category list, fetched at most once
// per request.
func (s *CatalogService) ListCategories(ctx context.Context) ([]string, error) {
	categories, err := s.categories.Get(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list categories",
			slog.String("operation", "ListCategories"),
			slog.Any("error", err),
		)
		return nil, err
	}

	return categories, nil
}

// GetProduct returns a single product by ID.
func (s *CatalogService) GetProduct(ctx context.Context, id int64) (*product.Product, error) {
	if id <= 0 {
		return nil, &domain.ValidationError{Fields: map[string]string{"id": "must be positive"}}
	}

	p, err := s.client.FetchProduct(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch product",
			slog.String("operation", "GetProduct"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	return p, nil
}

func validateQuery(q product.Query) error {
	fields := make(map[string]string)
	if q.Skip < 0 {
		fields["skip"] = "must be >= 0"
	}
	if q.Limit < 0 || q.Limit > MaxLimit {
		fields["limit"] = "must be between 0 and 100"
	}
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
