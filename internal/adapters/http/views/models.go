package views

import (
	"net/http"

	"github.com/jsamuelsen11/product-catalog/internal/domain/filter"
	"github.com/jsamuelsen11/product-catalog/internal/domain/product"
)

// ErrorPanel is a failure shown inside a page instead of its content.
type ErrorPanel struct {
	Status  int
	Title   string
	Message string
}

// NewErrorPanel describes err under the given HTTP status.
func NewErrorPanel(status int, err error) *ErrorPanel {
	return &ErrorPanel{
		Status:  status,
		Title:   http.StatusText(status),
		Message: err.Error(),
	}
}

// ListPage is the data behind the product list.
type ListPage struct {
	Title      string
	Filters    filter.Filters
	Categories []string
	Products   []product.Product
	Total      int
	TotalPages int
	Error      *ErrorPanel
}

// NewListPage builds the list page for filters from a loaded listing.
func NewListPage(filters filter.Filters, listing *product.Listing, pageSize int) ListPage {
	p := ListPage{
		Title:      "Products",
		Filters:    filters,
		TotalPages: 1,
	}
	if listing == nil {
		return p
	}

	p.Categories = listing.Categories
	if listing.Page != nil {
		p.Products = listing.Page.Products
		p.Total = listing.Page.Total
		p.TotalPages = filter.TotalPages(listing.Page.Total, pageSize)
	}
	return p
}

// HasPrev reports whether a previous page exists.
func (p ListPage) HasPrev() bool { return p.Filters.Page > filter.FirstPage }

// HasNext reports whether a next page exists.
func (p ListPage) HasNext() bool { return p.Filters.Page < p.TotalPages }

// PrevPage is the page number behind the "Previous" link.
func (p ListPage) PrevPage() int { return p.Filters.Page - 1 }

// NextPage is the page number behind the "Next" link.
func (p ListPage) NextPage() int { return p.Filters.Page + 1 }

// DetailPage is the data behind the product detail.
type DetailPage struct {
	Title   string
	Product *product.Product
	Error   *ErrorPanel
}

// NewDetailPage builds the detail page for p.
func NewDetailPage(p *product.Product) DetailPage {
	return DetailPage{Title: p.Title, Product: p}
}
