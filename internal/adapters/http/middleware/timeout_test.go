package middleware_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/jsamuelsen11/product-catalog/internal/adapters/http/middleware"
)

func TestTimeout_HandlerCompletesBeforeDeadline(t *testing.T) {
	t.Parallel()

	h := middleware.Timeout(time.Second)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("X-Custom", "value")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte("ok"))
	}))

	rec := serve(h, get("/"))

	if rec.Code != http.StatusCreated || rec.Body.String() != "ok" || rec.Header().Get("X-Custom") != "value" {
		t.Errorf("got %d %q X-Custom=%q, want 201 \"ok\" value", rec.Code, rec.Body.String(), rec.Header().Get("X-Custom"))
	}
}

func TestTimeout_HandlerExceedsDeadline(t *testing.T) {
	t.Parallel()

	h := middleware.Timeout(50 * time.Millisecond)(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))

	rec := serve(h, get("/slow"))

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusServiceUnavailable)
	}
	if rec.Body.String() != "request timed out" {
		t.Errorf("body = %q, want %q", rec.Body.String(), "request timed out")
	}
}

func TestTimeout_ContextCarriesDeadline(t *testing.T) {
	t.Parallel()

	var hasDeadline bool
	h := middleware.Timeout(time.Second)(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		_, hasDeadline = r.Context().Deadline()
	}))

	serve(h, get("/"))

	if !hasDeadline {
		t.Error("handler context has no deadline")
	}
}
