// Package filter defines the product list filter state: the search text,
// category and page number a browser session is currently looking at.
package filter

import (
	"strings"

	"github.com/jsamuelsen11/product-catalog/internal/domain/product"
)

// Default values for a fresh filter state.
const (
	AllCategories = "all"
	FirstPage     = 1
)

// Filters is the mutable search/category/page selection behind the product
// list view.
type Filters struct {
	Search   string
	Category string
	Page     int
}

// Default returns the filter state a new session starts with.
func Default() Filters {
	return Filters{
		Search:   "",
		Category: AllCategories,
		Page:     FirstPage,
	}
}

// HasCategory reports whether a concrete category is selected.
func (f Filters) HasCategory() bool {
	return f.Category != "" && f.Category != AllCategories
}

// Normalize clamps the page to the first page and maps an empty category to
// AllCategories. The search text is kept as typed.
func (f Filters) Normalize() Filters {
	if f.Page < FirstPage {
		f.Page = FirstPage
	}
	if strings.TrimSpace(f.Category) == "" {
		f.Category = AllCategories
	}
	return f
}

// Skip returns the number of products before the current page for the given
// page size.
func (f Filters) Skip(pageSize int) int {
	page := f.Page
	if page < FirstPage {
		page = FirstPage
	}
	return (page - 1) * pageSize
}

// Query converts the filter state to a product query for the given page size.
func (f Filters) Query(pageSize int) product.Query {
	q := product.Query{
		Skip:   f.Skip(pageSize),
		Limit:  pageSize,
		Search: f.Search,
	}
	if f.HasCategory() {
		q.Category = f.Category
	}
	return q
}

// TotalPages returns how many pages of pageSize are needed to show total
// products. It is never less than one.
func TotalPages(total, pageSize int) int {
	if pageSize <= 0 || total <= 0 {
		return 1
	}
	return (total + pageSize - 1) / pageSize
}

// Change is a partial update to a filter state. Nil fields are left alone.
type Change struct {
	Search   *string
	Category *string
	Page     *int
}

// IsZero reports whether the change touches no field.
func (c Change) IsZero() bool {
	return c.Search == nil && c.Category == nil && c.Page == nil
}

// Apply returns f with c applied. When the search text or category changes
// and c does not name a page, the page goes back to the first one, since the
// old page number belongs to a different result set. The result is
// normalized.
func (f Filters) Apply(c Change) Filters {
	next := f

	if c.Search != nil {
		next.Search = *c.Search
	}
	if c.Category != nil {
		next.Category = *c.Category
	}
	next = next.Normalize()

	switch {
	case c.Page != nil:
		next.Page = *c.Page
	case next.Search != f.Search || next.Category != f.Normalize().Category:
		next.Page = FirstPage
	}

	return next.Normalize()
}

// Field names reported by Changed.
const (
	FieldSearch   = "search"
	FieldCategory = "category"
	FieldPage     = "page"
)

// Changed lists the fields that differ between old and updated, in a fixed
// order.
func Changed(old, updated Filters) []string {
	var fields []string
	if old.Search != updated.Search {
		fields = append(fields, FieldSearch)
	}
	if old.Category != updated.Category {
		fields = append(fields, FieldCategory)
	}
	if old.Page != updated.Page {
		fields = append(fields, FieldPage)
	}
	return fields
}
