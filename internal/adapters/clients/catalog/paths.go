package catalog

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/jsamuelsen11/product-catalog/internal/domain/filter"
)

// Upstream endpoints.
const (
	productsPath     = "/products"
	categoryPath     = "/products/category/"
	searchPath       = "/products/search"
	categoryListPath = "/products/category-list"
)

// BuildProductsPath returns the upstream path for one page of products.
//
// A category other than "" or "all" wins over search, and search wins over
// the plain listing:
//
//	/products/category/{category}?skip=&limit=
//	/products/search?q={search}&skip=&limit=
//	/products?skip=&limit=
//
// The category is used verbatim as a path segment. The search term is
// escaped the way encodeURIComponent does it (spaces become %20).
func BuildProductsPath(skip, limit int, search, category string) string {
	page := "skip=" + strconv.Itoa(skip) + "&limit=" + strconv.Itoa(limit)

	switch {
	case category != "" && category != filter.AllCategories:
		return categoryPath + category + "?" + page
	case search != "":
		return searchPath + "?q=" + escapeComponent(search) + "&" + page
	default:
		return productsPath + "?" + page
	}
}

// productPath returns the path of a single product.
func productPath(id int64) string {
	return productsPath + "/" + strconv.FormatInt(id, 10)
}

// componentUnescaper undoes the escapes url.QueryEscape adds beyond
// encodeURIComponent's reserved set, and spells spaces as %20.
var componentUnescaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

func escapeComponent(s string) string {
	return componentUnescaper.Replace(url.QueryEscape(s))
}
