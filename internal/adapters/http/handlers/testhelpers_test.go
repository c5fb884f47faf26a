package handlers_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"

	"github.com/jsamuelsen11/product-catalog/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/product-catalog/internal/domain/product"
)

const testSessionID = "5f0c2b8e-8c3a-4f43-a1f5-0e7d9a6b2c11"

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// withSession attaches the test session ID the way middleware.Session does.
func withSession(r *http.Request) *http.Request {
	return r.WithContext(middleware.WithSessionID(r.Context(), testSessionID))
}

func phone() product.Product {
	return product.Product{
		ID:       1,
		Title:    "iPhone 9",
		Category: "smartphones",
		Price:    549,
		Raw:      json.RawMessage(`{"id":1,"title":"iPhone 9","price":549,"tags":["apple"]}`),
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}
