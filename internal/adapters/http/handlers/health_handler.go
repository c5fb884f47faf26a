package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/product-catalog/internal/ports"
)

const (
	statusOK       = "ok"
	statusReady    = "ready"
	statusNotReady = "not_ready"
)

// HealthHandler handles liveness and readiness HTTP endpoints.
type HealthHandler struct {
	registry ports.HealthRegistry
}

// NewHealthHandler creates a new HealthHandler with the given health registry.
func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// Liveness handles GET /health/live. The process answering is enough.
func (h *HealthHandler) Liveness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": statusOK})
}

// Readiness handles GET /health/ready. It reports 503 while any registered
// dependency, such as the catalog API's circuit breaker, is not healthy.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	results := h.registry.CheckAll(r.Context())

	checks := make(map[string]string, len(results))
	code := http.StatusOK
	status := statusReady
	for name, err := range results {
		if err == nil {
			checks[name] = statusOK
			continue
		}
		checks[name] = err.Error()
		code = http.StatusServiceUnavailable
		status = statusNotReady
	}

	writeJSON(w, code, map[string]any{
		"status": status,
		"checks": checks,
	})
}
