package dto_test

import (
	"bytes"
	"testing"

	json "github.com/goccy/go-json"

	"github.com/jsamuelsen11/product-catalog/internal/adapters/http/dto"
	"github.com/jsamuelsen11/product-catalog/internal/domain/filter"
	"github.com/jsamuelsen11/product-catalog/internal/domain/product"
)

const rawPhone = `{"id":1,"title":"iPhone 9","price":549,"meta":{"barcode":"0123"}}`

func TestToProductResponse_PassesRawThrough(t *testing.T) {
	t.Parallel()

	p := product.Product{ID: 1, Title: "renamed locally", Raw: json.RawMessage(rawPhone)}

	got := dto.ToProductResponse(&p)
	if string(got) != rawPhone {
		t.Errorf("ToProductResponse() = %s, want the raw record %s", got, rawPhone)
	}
}

func TestToProductResponse_FallsBackToFields(t *testing.T) {
	t.Parallel()

	p := product.Product{ID: 7, Title: "Lamp", Price: 12.5, Images: []string{"a.png"}}

	var got map[string]any
	if err := json.Unmarshal(dto.ToProductResponse(&p), &got); err != nil {
		t.Fatalf("fallback is not valid JSON: %v", err)
	}
	if got["id"] != float64(7) || got["title"] != "Lamp" || got["price"] != 12.5 {
		t.Errorf("fallback = %v", got)
	}
	if _, ok := got["brand"]; ok {
		t.Error("empty brand should be omitted")
	}
}

func TestToProductListResponse(t *testing.T) {
	t.Parallel()

	page := &product.Page{
		Products: []product.Product{
			{ID: 1, Raw: json.RawMessage(rawPhone)},
			{ID: 2, Raw: json.RawMessage(`{"id":2}`)},
		},
		Total: 194,
		Skip:  30,
		Limit: 2,
	}

	got := dto.ToProductListResponse(page)

	if got.Total != 194 || got.Skip != 30 || got.Limit != 2 {
		t.Errorf("counters = %d/%d/%d, want 194/30/2", got.Total, got.Skip, got.Limit)
	}

	body, err := json.Marshal(got)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := `{"products":[` + rawPhone + `,{"id":2}],"total":194,"skip":30,"limit":2}`
	if !bytes.Equal(body, []byte(want)) {
		t.Errorf("body = %s\nwant   %s", body, want)
	}
}

func TestToProductListResponse_Empty(t *testing.T) {
	t.Parallel()

	body, err := json.Marshal(dto.ToProductListResponse(&product.Page{}))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !bytes.Contains(body, []byte(`"products":[]`)) {
		t.Errorf("body = %s, want an empty products array", body)
	}
}

func TestToCategoryListResponse(t *testing.T) {
	t.Parallel()

	got := dto.ToCategoryListResponse([]string{"beauty", "laptops"})
	if got.Count != 2 || got.Categories[0] != "beauty" || got.Categories[1] != "laptops" {
		t.Errorf("got %+v", got)
	}

	empty := dto.ToCategoryListResponse(nil)
	if empty.Categories == nil || empty.Count != 0 {
		t.Errorf("nil list = %+v, want empty non-nil slice", empty)
	}
}

func TestToFiltersResponse(t *testing.T) {
	t.Parallel()

	got := dto.ToFiltersResponse(filter.Filters{Search: "phone", Category: "all", Page: 2})
	want := dto.FiltersResponse{Search: "phone", Category: "all", Page: 2}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}
