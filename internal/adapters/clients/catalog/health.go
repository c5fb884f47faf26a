package catalog

import "context"

// Name returns the health registry key, matching ServiceName.
func (c *Client) Name() string {
	return ServiceName
}

// HealthCheck reports the upstream's availability from the circuit breaker
// state; no network call is made.
//
// This reports upstream status, not service readiness: tying readiness to
// the upstream would keep traffic away and stop the breaker from ever
// closing again.
func (c *Client) HealthCheck(ctx context.Context) error {
	return c.http.HealthCheck(ctx)
}
