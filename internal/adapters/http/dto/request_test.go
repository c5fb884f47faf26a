package dto_test

import (
	"errors"
	"net/url"
	"strings"
	"testing"

	"github.com/jsamuelsen11/product-catalog/internal/adapters/http/dto"
	"github.com/jsamuelsen11/product-catalog/internal/domain"
	"github.com/jsamuelsen11/product-catalog/internal/domain/product"
)

func stringPtr(s string) *string { return &s }
func intPtr(i int) *int          { return &i }

// requireValidationField asserts err wraps ErrValidation and the resulting
// ValidationError contains the expected field key.
func requireValidationField(t *testing.T, err error, field string) {
	t.Helper()

	if err == nil {
		t.Fatal("err = nil, want validation error")
	}
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("errors.Is(err, ErrValidation) = false, got %v", err)
	}

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("errors.As(err, *ValidationError) = false, got %T", err)
	}
	if _, ok := verr.Fields[field]; !ok {
		t.Errorf("ValidationError.Fields missing key %q, got %v", field, verr.Fields)
	}
}

func TestParseListProductsQuery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		query string
		want  product.Query
	}{
		{
			name:  "defaults",
			query: "",
			want:  product.Query{Skip: 0, Limit: 30},
		},
		{
			name:  "all parameters",
			query: "skip=60&limit=10&q=phone&category=laptops",
			want:  product.Query{Skip: 60, Limit: 10, Search: "phone", Category: "laptops"},
		},
		{
			name:  "search is trimmed",
			query: "q=%20%20red%20shoe%20",
			want:  product.Query{Limit: 30, Search: "red shoe"},
		},
		{
			name:  "limit zero is allowed",
			query: "limit=0",
			want:  product.Query{Limit: 0},
		},
		{
			name:  "limit at the maximum",
			query: "limit=100",
			want:  product.Query{Limit: 100},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			values, err := url.ParseQuery(tt.query)
			if err != nil {
				t.Fatalf("ParseQuery: %v", err)
			}

			got, err := dto.ParseListProductsQuery(values, 30)
			if err != nil {
				t.Fatalf("ParseListProductsQuery() error = %v", err)
			}
			if got.Query() != tt.want {
				t.Errorf("Query() = %+v, want %+v", got.Query(), tt.want)
			}
		})
	}
}

func TestParseListProductsQuery_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		query     string
		wantField string
		wantMsg   string
	}{
		{name: "non-numeric skip", query: "skip=abc", wantField: "skip", wantMsg: "must be a valid integer"},
		{name: "non-numeric limit", query: "limit=1.5", wantField: "limit", wantMsg: "must be a valid integer"},
		{name: "negative skip", query: "skip=-1", wantField: "skip", wantMsg: "must be >= 0"},
		{name: "negative limit", query: "limit=-5", wantField: "limit", wantMsg: "must be >= 0"},
		{name: "limit too large", query: "limit=101", wantField: "limit", wantMsg: "must be <= 100"},
		{name: "search too long", query: "q=" + strings.Repeat("a", 201), wantField: "q", wantMsg: "must be at most 200 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			values, _ := url.ParseQuery(tt.query)
			_, err := dto.ParseListProductsQuery(values, 30)

			requireValidationField(t, err, tt.wantField)

			var verr *domain.ValidationError
			if errors.As(err, &verr) && verr.Fields[tt.wantField] != tt.wantMsg {
				t.Errorf("message = %q, want %q", verr.Fields[tt.wantField], tt.wantMsg)
			}
		})
	}
}

func TestUpdateFiltersRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		req       dto.UpdateFiltersRequest
		wantErr   bool
		wantField string
	}{
		{
			name: "search only",
			req:  dto.UpdateFiltersRequest{Search: stringPtr("phone")},
		},
		{
			name: "empty search clears it",
			req:  dto.UpdateFiltersRequest{Search: stringPtr("")},
		},
		{
			name: "all fields",
			req: dto.UpdateFiltersRequest{
				Search:   stringPtr("phone"),
				Category: stringPtr("smartphones"),
				Page:     intPtr(3),
			},
		},
		{
			name:      "no fields",
			req:       dto.UpdateFiltersRequest{},
			wantErr:   true,
			wantField: "body",
		},
		{
			name:      "page below one",
			req:       dto.UpdateFiltersRequest{Page: intPtr(0)},
			wantErr:   true,
			wantField: "page",
		},
		{
			name:      "category too long",
			req:       dto.UpdateFiltersRequest{Category: stringPtr(strings.Repeat("c", 101))},
			wantErr:   true,
			wantField: "category",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.req.Validate()
			if !tt.wantErr {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			requireValidationField(t, err, tt.wantField)
		})
	}
}

func TestUpdateFiltersRequest_Change(t *testing.T) {
	t.Parallel()

	req := dto.UpdateFiltersRequest{Category: stringPtr("laptops")}
	c := req.Change()

	if c.Search != nil || c.Page != nil {
		t.Errorf("unset fields leaked into change: %+v", c)
	}
	if c.Category == nil || *c.Category != "laptops" {
		t.Errorf("Category = %v, want laptops", c.Category)
	}
}
