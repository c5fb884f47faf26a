package dto

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jsamuelsen11/product-catalog/internal/domain"
	"github.com/jsamuelsen11/product-catalog/internal/domain/filter"
	"github.com/jsamuelsen11/product-catalog/internal/domain/product"
)

const (
	msgInteger   = "must be a valid integer"
	msgNoChanges = "must change at least one of search, category, page"
)

// validate is safe for concurrent use and caches struct metadata, so one
// instance serves every request.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return v
}

// ListProductsQuery holds the query parameters of GET /api/v1/products.
type ListProductsQuery struct {
	Skip     int    `json:"skip" validate:"gte=0"`
	Limit    int    `json:"limit" validate:"gte=0,lte=100"`
	Search   string `json:"q" validate:"max=200"`
	Category string `json:"category" validate:"max=100"`
}

// ParseListProductsQuery reads skip, limit, q and category from values.
// A missing limit means defaultLimit. Returns a *domain.ValidationError when
// a parameter is malformed or out of range.
func ParseListProductsQuery(values url.Values, defaultLimit int) (ListProductsQuery, error) {
	q := ListProductsQuery{
		Limit:    defaultLimit,
		Search:   strings.TrimSpace(values.Get("q")),
		Category: strings.TrimSpace(values.Get("category")),
	}

	fields := make(map[string]string)
	if raw := values.Get("skip"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			fields["skip"] = msgInteger
		}
		q.Skip = n
	}
	if raw := values.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			fields["limit"] = msgInteger
		}
		q.Limit = n
	}
	if len(fields) > 0 {
		return q, &domain.ValidationError{Fields: fields}
	}

	return q, validateStruct(q)
}

// Query converts q to a product query.
func (q ListProductsQuery) Query() product.Query {
	return product.Query{
		Skip:     q.Skip,
		Limit:    q.Limit,
		Search:   q.Search,
		Category: q.Category,
	}
}

// UpdateFiltersRequest represents the JSON body of PATCH /api/v1/filters.
// All fields are optional; nil means "do not change this field.".
type UpdateFiltersRequest struct {
	Search   *string `json:"search,omitempty" validate:"omitempty,max=200"`
	Category *string `json:"category,omitempty" validate:"omitempty,max=100"`
	Page     *int    `json:"page,omitempty" validate:"omitempty,gte=1"`
}

// Validate checks field bounds and that at least one field is present.
// Returns a *domain.ValidationError if any checks fail.
func (r *UpdateFiltersRequest) Validate() error {
	if r.Change().IsZero() {
		return &domain.ValidationError{Fields: map[string]string{"body": msgNoChanges}}
	}
	return validateStruct(r)
}

// Change converts the request to a filter change.
func (r *UpdateFiltersRequest) Change() filter.Change {
	return filter.Change{
		Search:   r.Search,
		Category: r.Category,
		Page:     r.Page,
	}
}

// validateStruct runs the struct's validate tags and converts failures to a
// *domain.ValidationError keyed by JSON field name.
func validateStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validating %T: %w", v, err)
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = fieldMessage(fe)
	}
	return &domain.ValidationError{Fields: fields}
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "gte":
		return "must be >= " + fe.Param()
	case "lte":
		return "must be <= " + fe.Param()
	case "max":
		if fe.Kind() == reflect.String {
			return "must be at most " + fe.Param() + " characters"
		}
		return "must be <= " + fe.Param()
	default:
		return "failed " + fe.Tag() + " check"
	}
}
