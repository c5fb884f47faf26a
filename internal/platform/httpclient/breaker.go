package httpclient

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/sony/gobreaker/v2"

	"github.com/jsamuelsen11/product-catalog/internal/platform/config"
)

// newBreaker builds the circuit breaker guarding the upstream service. It
// trips after MaxFailures consecutive failures and logs every transition.
func newBreaker(name string, cfg config.CircuitBreakerConfig, logger *slog.Logger) *gobreaker.CircuitBreaker[struct{}] {
	return gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        name,
		MaxRequests: toUint32(cfg.HalfOpenLimit),
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= cfg.MaxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})
}

// CircuitBreakerState returns the breaker state as "closed", "half-open" or
// "open".
func (c *Client) CircuitBreakerState() string {
	return c.breaker.State().String()
}

// HealthCheck reports upstream availability from the breaker state; no
// network call is made. A half-open breaker reports degraded, an open one
// failing.
func (c *Client) HealthCheck(_ context.Context) error {
	state := c.breaker.State()
	switch state {
	case gobreaker.StateClosed:
		return nil
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: degraded (circuit breaker half-open)", c.serviceName)
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: failing (circuit breaker open)", c.serviceName)
	default:
		return fmt.Errorf("%s: unknown circuit breaker state %v", c.serviceName, state)
	}
}

// toUint32 converts a non-negative int to uint32, clamping at the uint32
// maximum. Negative values become zero.
func toUint32(v int) uint32 {
	if v <= 0 {
		return 0
	}
	if v > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(v)
}
