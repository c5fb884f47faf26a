package catalog

import (
	json "github.com/goccy/go-json"
)

// productDTO holds the upstream product fields the service renders. Unknown
// fields are ignored here and survive in the raw record.
type productDTO struct {
	ID                 int64    `json:"id"`
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	Category           string   `json:"category"`
	Brand              string   `json:"brand"`
	Price              float64  `json:"price"`
	DiscountPercentage float64  `json:"discountPercentage"`
	Rating             float64  `json:"rating"`
	Stock              int      `json:"stock"`
	Thumbnail          string   `json:"thumbnail"`
	Images             []string `json:"images"`
}

// productListDTO matches the list, search and category responses. Products
// stay raw so each record can be kept byte for byte.
type productListDTO struct {
	Products []json.RawMessage `json:"products"`
	Total    int               `json:"total"`
	Skip     int               `json:"skip"`
	Limit    int               `json:"limit"`
}
