// Package health tracks the health of the service's dependencies for the
// readiness probe. Today that is the upstream catalog API, whose state comes
// from the HTTP client's circuit breaker.
package health

import (
	"context"
	"sync"
	"time"

	"github.com/jsamuelsen11/product-catalog/internal/ports"
)

// Compile-time interface check.
var _ ports.HealthRegistry = (*Registry)(nil)

// Option configures a Registry.
type Option func(*Registry)

// WithCheckTimeout bounds every individual health check. Zero means checks
// only end with the caller's context.
func WithCheckTimeout(d time.Duration) Option {
	return func(r *Registry) { r.checkTimeout = d }
}

// Registry is a thread-safe implementation of [ports.HealthRegistry].
// Checkers registered at startup run concurrently on each readiness probe.
type Registry struct {
	mu           sync.RWMutex
	checkers     []ports.HealthChecker
	checkTimeout time.Duration
}

// New creates an empty health check registry.
func New(opts ...Option) *Registry {
	r := &Registry{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds a health checker to the registry. Safe for concurrent use.
func (r *Registry) Register(checker ports.HealthChecker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkers = append(r.checkers, checker)
}

// CheckAll runs every registered check concurrently and returns results keyed
// by checker name. Nil values indicate healthy components. When two checkers
// share a name the one registered last wins.
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	checkers := make([]ports.HealthChecker, len(r.checkers))
	copy(checkers, r.checkers)
	r.mu.RUnlock()

	errs := make([]error, len(checkers))
	var wg sync.WaitGroup
	for i, c := range checkers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs[i] = r.check(ctx, c)
		}()
	}
	wg.Wait()

	results := make(map[string]error, len(checkers))
	for i, c := range checkers {
		results[c.Name()] = errs[i]
	}
	return results
}

func (r *Registry) check(ctx context.Context, c ports.HealthChecker) error {
	if r.checkTimeout <= 0 {
		return c.HealthCheck(ctx)
	}
	ctx, cancel := context.WithTimeout(ctx, r.checkTimeout)
	defer cancel()
	return c.HealthCheck(ctx)
}
