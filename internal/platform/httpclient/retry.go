package httpclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand/v2"
	"net/http"
	"strconv"
	"time"

	"github.com/jsamuelsen11/product-catalog/internal/platform/logging"
)

// jitterFraction is the maximum jitter as a fraction of the delay (±25%).
const jitterFraction = 0.25

// doWithRetry runs the request up to maxAttempts times. Transport errors and
// retryable statuses are retried with exponential backoff; a Retry-After
// header on the previous response takes precedence over the computed delay.
// The result is written to resp; the caller closes its body.
func (c *Client) doWithRetry(ctx context.Context, req *http.Request, resp **http.Response) error {
	if c.retryCfg.maxAttempts <= 0 {
		return fmt.Errorf("httpclient: maxAttempts must be >= 1, got %d", c.retryCfg.maxAttempts)
	}

	body, err := bufferRequestBody(req)
	if err != nil {
		return err
	}

	var (
		lastErr error
		hint    time.Duration
	)

	for attempt := range c.retryCfg.maxAttempts {
		if attempt > 0 {
			delay := backoff(attempt, c.retryCfg)
			if hint > 0 {
				delay = hint
			}
			if err := c.waitForRetry(ctx, req, attempt, delay, lastErr); err != nil {
				return err
			}
		}

		resetRequestBody(req, body)

		r, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			hint = 0
			if !isRetryable(err) {
				return err
			}
			continue
		}

		if !isRetryableStatus(r.StatusCode) {
			*resp = r
			return nil
		}

		lastErr = fmt.Errorf("HTTP %d from %s", r.StatusCode, c.serviceName)

		if attempt == c.retryCfg.maxAttempts-1 {
			*resp = r
			return lastErr
		}

		hint = retryAfter(r, c.retryCfg.maxInterval)
		drainResponseBody(r)
	}

	return lastErr
}

// bufferRequestBody reads and closes the request body so it can be replayed.
func bufferRequestBody(req *http.Request) ([]byte, error) {
	if req.Body == nil || req.Body == http.NoBody {
		return nil, nil
	}

	b, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, fmt.Errorf("reading request body: %w", err)
	}
	_ = req.Body.Close()

	return b, nil
}

func resetRequestBody(req *http.Request, body []byte) {
	if body == nil {
		return
	}
	req.Body = io.NopCloser(bytes.NewReader(body))
	req.ContentLength = int64(len(body))
}

// drainResponseBody discards the body so the connection can be reused.
func drainResponseBody(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}

func (c *Client) waitForRetry(ctx context.Context, req *http.Request, attempt int, delay time.Duration, lastErr error) error {
	logging.FromContext(ctx).WarnContext(ctx, "retrying upstream request",
		slog.String("operation", "httpclient.Do"),
		slog.String("method", req.Method),
		slog.String("url", req.URL.String()),
		slog.String("peer_service", c.serviceName),
		slog.Int("attempt", attempt+1),
		slog.Int("max_attempts", c.retryCfg.maxAttempts),
		slog.Duration("backoff", delay),
		slog.Any("error", lastErr),
	)

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// backoff returns the delay before retry number attempt (1-indexed):
// initialInterval * multiplier^(attempt-1), capped at maxInterval, ±25% jitter.
func backoff(attempt int, cfg retryConfig) time.Duration {
	delay := float64(cfg.initialInterval) * math.Pow(cfg.multiplier, float64(attempt-1))
	if delay > float64(cfg.maxInterval) {
		delay = float64(cfg.maxInterval)
	}

	delay += delay * jitterFraction * (2*rand.Float64() - 1) //nolint:gosec // jitter, not security sensitive

	return time.Duration(max(delay, 0))
}

// retryAfter parses a Retry-After header given in seconds. It returns zero
// when the header is absent or malformed and caps the result at limit.
func retryAfter(resp *http.Response, limit time.Duration) time.Duration {
	v := resp.Header.Get("Retry-After")
	if v == "" {
		return 0
	}

	secs, err := strconv.Atoi(v)
	if err != nil || secs <= 0 {
		return 0
	}

	return min(time.Duration(secs)*time.Second, limit)
}

// isRetryable reports whether a transport error should be retried. Context
// cancellation and deadline expiry are final; everything else is retried.
func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

// isRetryableStatus reports whether a status is worth another attempt:
// 429 and any 5xx.
func isRetryableStatus(statusCode int) bool {
	return statusCode == http.StatusTooManyRequests || statusCode >= http.StatusInternalServerError
}
