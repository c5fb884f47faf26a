package middleware_test

import (
	"bytes"
	"net/http"
	"strings"
	"testing"

	"github.com/jsamuelsen11/product-catalog/internal/adapters/http/middleware"
)

func panicking() http.Handler {
	return http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})
}

func TestRecovery_NoPanic(t *testing.T) {
	t.Parallel()

	h := middleware.Recovery(discardLogger())(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	}))

	if rec := serve(h, get("/")); rec.Code != http.StatusAccepted {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusAccepted)
	}
}

func TestRecovery_APIClientGetsProblemJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rec := serve(middleware.Recovery(testLogger(&buf))(panicking()), get("/api/v1/products"))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Errorf("Content-Type = %q, want application/problem+json", ct)
	}
	if strings.Contains(rec.Body.String(), "boom") {
		t.Error("panic value leaked into the response")
	}
	if !strings.Contains(buf.String(), "panic recovered") || !strings.Contains(buf.String(), "boom") {
		t.Errorf("panic not logged:\n%s", buf.String())
	}
}

func TestRecovery_BrowserGetsPlainPage(t *testing.T) {
	t.Parallel()

	req := get("/")
	req.Header.Set("Accept", "text/html,application/xhtml+xml")
	rec := serve(middleware.Recovery(discardLogger())(panicking()), req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
	if !strings.HasPrefix(rec.Header().Get("Content-Type"), "text/plain") {
		t.Errorf("Content-Type = %q, want text/plain", rec.Header().Get("Content-Type"))
	}
}

func TestRecovery_HeadersAlreadyWritten(t *testing.T) {
	t.Parallel()

	h := middleware.Recovery(discardLogger())(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		panic("late")
	}))

	rec := serve(h, get("/"))
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want the already written 200", rec.Code)
	}
}
