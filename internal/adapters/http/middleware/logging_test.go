package middleware_test

import (
	"bytes"
	"net/http"
	"strings"
	"testing"

	"github.com/jsamuelsen11/product-catalog/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/product-catalog/internal/platform/logging"
)

func TestLogging_LogsCompletion(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	h := middleware.Logging(testLogger(&buf))(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("hello"))
	}))

	serve(h, get("/?q=phone"))

	out := buf.String()
	for _, want := range []string{"request completed", "level=INFO", "path=/", "query=q=phone", "status=200", "bytes=5"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestLogging_LevelFollowsStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status int
		level  string
	}{
		{status: http.StatusOK, level: "level=INFO"},
		{status: http.StatusNotFound, level: "level=WARN"},
		{status: http.StatusBadGateway, level: "level=ERROR"},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			h := middleware.Logging(testLogger(&buf))(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
			}))

			serve(h, get("/"))

			for _, line := range strings.Split(buf.String(), "\n") {
				if strings.Contains(line, "request completed") && !strings.Contains(line, tt.level) {
					t.Errorf("completion line %q, want %s", line, tt.level)
				}
			}
		})
	}
}

func TestLogging_ChildLoggerCarriesIDs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	h := middleware.RequestID()(middleware.CorrelationID()(middleware.Logging(testLogger(&buf))(
		http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			logging.FromContext(r.Context()).InfoContext(r.Context(), "inside handler")
		}),
	)))

	req := get("/")
	req.Header.Set("X-Request-ID", "req-42")
	serve(h, req)

	for _, line := range strings.Split(buf.String(), "\n") {
		if strings.Contains(line, "inside handler") {
			if !strings.Contains(line, "request_id=req-42") || !strings.Contains(line, "correlation_id=req-42") {
				t.Errorf("handler log line %q missing IDs", line)
			}
			return
		}
	}
	t.Fatal("handler log line not found")
}

func TestLogging_RedactsCookieAtDebug(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	h := middleware.Logging(testLogger(&buf))(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	req := get("/")
	req.Header.Set("Cookie", "catalog_session=secret-session")
	req.Header.Set("Accept", "text/html")
	serve(h, req)

	out := buf.String()
	if strings.Contains(out, "secret-session") {
		t.Errorf("session cookie leaked into logs:\n%s", out)
	}
	if !strings.Contains(out, "headers.Cookie=[REDACTED]") {
		t.Errorf("expected redacted cookie header:\n%s", out)
	}
	if !strings.Contains(out, "headers.Accept=text/html") {
		t.Errorf("expected Accept header:\n%s", out)
	}
}
