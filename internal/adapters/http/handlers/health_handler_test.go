package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/product-catalog/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/product-catalog/mocks"
)

// --- Liveness ---

func TestLiveness_AlwaysOK(t *testing.T) {
	t.Parallel()

	registry := mocks.NewMockHealthRegistry(t)
	h := handlers.NewHealthHandler(registry)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	h.Liveness(rec, req)

	requireStatus(t, rec, http.StatusOK)

	resp := decodeJSON[map[string]string](t, rec)
	if resp["status"] != "ok" {
		t.Errorf("status = %q, want %q", resp["status"], "ok")
	}
}

// --- Readiness ---

func TestReadiness_AllHealthy(t *testing.T) {
	t.Parallel()

	registry := mocks.NewMockHealthRegistry(t)
	registry.EXPECT().CheckAll(mock.Anything).Return(map[string]error{
		"catalog-api": nil,
	})

	h := handlers.NewHealthHandler(registry)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	h.Readiness(rec, req)

	requireStatus(t, rec, http.StatusOK)

	resp := decodeJSON[map[string]any](t, rec)
	if resp["status"] != "ready" {
		t.Errorf("status = %q, want %q", resp["status"], "ready")
	}
	checks, ok := resp["checks"].(map[string]any)
	if !ok {
		t.Fatal("checks field not a map")
	}
	if checks["catalog-api"] != "ok" {
		t.Errorf("catalog-api check = %v, want %q", checks["catalog-api"], "ok")
	}
}

func TestReadiness_Unhealthy(t *testing.T) {
	t.Parallel()

	registry := mocks.NewMockHealthRegistry(t)
	registry.EXPECT().CheckAll(mock.Anything).Return(map[string]error{
		"catalog-api": errors.New("catalog-api: failing (circuit breaker open)"),
		"filter-store": nil,
	})

	h := handlers.NewHealthHandler(registry)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	h.Readiness(rec, req)

	requireStatus(t, rec, http.StatusServiceUnavailable)

	resp := decodeJSON[map[string]any](t, rec)
	if resp["status"] != "not_ready" {
		t.Errorf("status = %q, want %q", resp["status"], "not_ready")
	}
	checks, ok := resp["checks"].(map[string]any)
	if !ok {
		t.Fatal("checks field not a map")
	}
	if checks["catalog-api"] != "catalog-api: failing (circuit breaker open)" {
		t.Errorf("catalog-api check = %v, want the breaker error", checks["catalog-api"])
	}
	if checks["filter-store"] != "ok" {
		t.Errorf("filter-store check = %v, want %q", checks["filter-store"], "ok")
	}
}

func TestReadiness_NoCheckers(t *testing.T) {
	t.Parallel()

	registry := mocks.NewMockHealthRegistry(t)
	registry.EXPECT().CheckAll(mock.Anything).Return(map[string]error{})

	h := handlers.NewHealthHandler(registry)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	h.Readiness(rec, req)

	requireStatus(t, rec, http.StatusOK)
}
