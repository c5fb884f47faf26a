package middleware_test

import (
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/jsamuelsen11/product-catalog/internal/adapters/http/middleware"
)

// OTEL tests are NOT parallel because they modify the global TracerProvider.

func setupTracer(t *testing.T) *tracetest.InMemoryExporter {
	t.Helper()

	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	t.Cleanup(func() {
		_ = tp.Shutdown(t.Context())
	})

	return exporter
}

func routed(status int) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.OpenTelemetry(nil))
	r.Get("/product/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
	})
	return r
}

func attr(span sdktrace.ReadOnlySpan, key string) (attribute.Value, bool) {
	for _, kv := range span.Attributes() {
		if string(kv.Key) == key {
			return kv.Value, true
		}
	}
	return attribute.Value{}, false
}

func TestOpenTelemetry_SpanNamedAfterRoute(t *testing.T) {
	exporter := setupTracer(t)

	serve(routed(http.StatusOK), get("/product/123"))

	spans := exporter.GetSpans().Snapshots()
	if len(spans) != 1 {
		t.Fatalf("got %d spans, want 1", len(spans))
	}

	span := spans[0]
	if span.Name() != "GET /product/{id}" {
		t.Errorf("span name = %q, want %q", span.Name(), "GET /product/{id}")
	}
	if v, ok := attr(span, "http.route"); !ok || v.AsString() != "/product/{id}" {
		t.Errorf("http.route = %v, want /product/{id}", v.AsString())
	}
	if v, ok := attr(span, "http.status_code"); !ok || v.AsInt64() != 200 {
		t.Errorf("http.status_code = %v, want 200", v.AsInt64())
	}
}

func TestOpenTelemetry_UnmatchedRoute(t *testing.T) {
	exporter := setupTracer(t)

	serve(routed(http.StatusOK), get("/nowhere"))

	spans := exporter.GetSpans().Snapshots()
	if len(spans) != 1 || spans[0].Name() != "GET unmatched" {
		t.Fatalf("spans = %v, want one span named %q", spans, "GET unmatched")
	}
}

func TestOpenTelemetry_ServerErrorMarksSpan(t *testing.T) {
	exporter := setupTracer(t)

	serve(routed(http.StatusBadGateway), get("/product/1"))

	spans := exporter.GetSpans().Snapshots()
	if len(spans) != 1 {
		t.Fatalf("got %d spans, want 1", len(spans))
	}
	if spans[0].Status().Code != codes.Error {
		t.Errorf("span status = %v, want Error", spans[0].Status().Code)
	}
}

func TestOpenTelemetry_ContinuesIncomingTrace(t *testing.T) {
	exporter := setupTracer(t)

	req := get("/product/1")
	req.Header.Set("traceparent", "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01")
	serve(routed(http.StatusOK), req)

	spans := exporter.GetSpans().Snapshots()
	if len(spans) != 1 {
		t.Fatalf("got %d spans, want 1", len(spans))
	}
	if got := spans[0].SpanContext().TraceID().String(); got != "4bf92f3577b34da6a3ce929d0e0e4736" {
		t.Errorf("trace ID = %s, want the incoming one", got)
	}
}
