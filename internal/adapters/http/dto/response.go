// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	json "github.com/goccy/go-json"

	"github.com/jsamuelsen11/product-catalog/internal/domain/filter"
	"github.com/jsamuelsen11/product-catalog/internal/domain/product"
)

// ProductListResponse mirrors the upstream list envelope. Each product is the
// upstream record, unchanged.
type ProductListResponse struct {
	Products []json.RawMessage `json:"products"`
	Total    int               `json:"total"`
	Skip     int               `json:"skip"`
	Limit    int               `json:"limit"`
}

// ToProductListResponse converts a product page to an HTTP list response.
func ToProductListResponse(p *product.Page) ProductListResponse {
	items := make([]json.RawMessage, len(p.Products))
	for i := range p.Products {
		items[i] = ToProductResponse(&p.Products[i])
	}
	return ProductListResponse{
		Products: items,
		Total:    p.Total,
		Skip:     p.Skip,
		Limit:    p.Limit,
	}
}

// productFields is the typed fallback for a product without its raw record.
type productFields struct {
	ID                 int64    `json:"id"`
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	Category           string   `json:"category"`
	Brand              string   `json:"brand,omitempty"`
	Price              float64  `json:"price"`
	DiscountPercentage float64  `json:"discountPercentage"`
	Rating             float64  `json:"rating"`
	Stock              int      `json:"stock"`
	Thumbnail          string   `json:"thumbnail"`
	Images             []string `json:"images"`
}

// ToProductResponse returns the product's upstream record as received. A
// product built without one is encoded from its typed fields.
func ToProductResponse(p *product.Product) json.RawMessage {
	if len(p.Raw) > 0 {
		return p.Raw
	}

	b, err := json.Marshal(productFields{
		ID:                 p.ID,
		Title:              p.Title,
		Description:        p.Description,
		Category:           p.Category,
		Brand:              p.Brand,
		Price:              p.Price,
		DiscountPercentage: p.DiscountPercentage,
		Rating:             p.Rating,
		Stock:              p.Stock,
		Thumbnail:          p.Thumbnail,
		Images:             p.Images,
	})
	if err != nil {
		return json.RawMessage("null")
	}
	return b
}

// CategoryListResponse represents the category list in HTTP responses.
type CategoryListResponse struct {
	Categories []string `json:"categories"`
	Count      int      `json:"count"`
}

// ToCategoryListResponse converts a category list to an HTTP response DTO.
// A nil list is rendered as an empty array.
func ToCategoryListResponse(categories []string) CategoryListResponse {
	if categories == nil {
		categories = []string{}
	}
	return CategoryListResponse{
		Categories: categories,
		Count:      len(categories),
	}
}

// FiltersResponse represents the caller's filter state in HTTP responses.
type FiltersResponse struct {
	Search   string `json:"search"`
	Category string `json:"category"`
	Page     int    `json:"page"`
}

// ToFiltersResponse converts a filter state to an HTTP response DTO.
func ToFiltersResponse(f filter.Filters) FiltersResponse {
	return FiltersResponse{
		Search:   f.Search,
		Category: f.Category,
		Page:     f.Page,
	}
}
