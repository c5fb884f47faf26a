// Package product holds the catalog's product types. Products are owned by the
// upstream catalog API; this service reads them and never edits them.
package product

import (
	json "github.com/goccy/go-json"
)

// Product is a catalog record as returned by the upstream API.
//
// The typed fields cover what the views render. Raw keeps the record exactly
// as it arrived so it can be handed back to API callers unchanged.
type Product struct {
	ID                 int64
	Title              string
	Description        string
	Category           string
	Brand              string
	Price              float64
	DiscountPercentage float64
	Rating             float64
	Stock              int
	Thumbnail          string
	Images             []string

	Raw json.RawMessage
}

// Page is one slice of a product listing together with the upstream's
// pagination counters.
type Page struct {
	Products []Product
	Total    int
	Skip     int
	Limit    int
}

// Query selects a page of products. An empty Category (or "all") and an
// empty Search mean "no filter" for that dimension.
type Query struct {
	Skip     int
	Limit    int
	Search   string
	Category string
}

// Listing is everything the product list screen shows: the selected page
// and the categories offered for filtering.
type Listing struct {
	Page       *Page
	Categories []string
}
