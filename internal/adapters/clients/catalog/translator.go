package catalog

import (
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/jsamuelsen11/product-catalog/internal/domain/product"
)

// toDomainProduct decodes one upstream record and keeps a copy of its bytes.
func toDomainProduct(raw json.RawMessage) (product.Product, error) {
	var dto productDTO
	if err := json.Unmarshal(raw, &dto); err != nil {
		return product.Product{}, fmt.Errorf("decoding product: %w", err)
	}

	return product.Product{
		ID:                 dto.ID,
		Title:              dto.Title,
		Description:        dto.Description,
		Category:           dto.Category,
		Brand:              dto.Brand,
		Price:              dto.Price,
		DiscountPercentage: dto.DiscountPercentage,
		Rating:             dto.Rating,
		Stock:              dto.Stock,
		Thumbnail:          dto.Thumbnail,
		Images:             dto.Images,
		Raw:                append(json.RawMessage(nil), raw...),
	}, nil
}

// toDomainPage converts a list response. A record that fails to decode fails
// the whole page.
func toDomainPage(dto *productListDTO) (*product.Page, error) {
	products := make([]product.Product, len(dto.Products))
	for i, raw := range dto.Products {
		p, err := toDomainProduct(raw)
		if err != nil {
			return nil, fmt.Errorf("product %d of page: %w", i, err)
		}
		products[i] = p
	}

	return &product.Page{
		Products: products,
		Total:    dto.Total,
		Skip:     dto.Skip,
		Limit:    dto.Limit,
	}, nil
}
