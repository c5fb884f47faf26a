package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	json "github.com/goccy/go-json"

	"github.com/jsamuelsen11/product-catalog/internal/domain"
	"github.com/jsamuelsen11/product-catalog/internal/platform/httpclient"
)

// requester owns the request lifecycle for catalog calls: build the GET,
// run it through the httpclient pipeline, reject non-2xx statuses, decode
// the body and always close it.
type requester struct {
	client *httpclient.Client
	logger *slog.Logger
}

// getJSON issues GET path and decodes the response body into out. Transport
// failures wrap domain.ErrUnavailable unless the caller's context ended.
func (r *requester) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.client.BaseURL()+path, http.NoBody)
	if err != nil {
		return fmt.Errorf("creating GET request for %s: %w", path, err)
	}

	resp, err := r.client.Do(ctx, req)
	if resp != nil {
		defer r.closeBody(ctx, resp)
	}
	if err != nil && (resp == nil || isSuccess(resp.StatusCode)) {
		r.logger.ErrorContext(ctx, "catalog request failed",
			slog.String("path", path),
			slog.String("error", err.Error()),
		)
		if ctx.Err() != nil {
			return fmt.Errorf("GET %s: %w", path, err)
		}
		return fmt.Errorf("GET %s: %w: %w", path, domain.ErrUnavailable, err)
	}

	// A retryable status that exhausted its attempts arrives with both resp
	// and err set; the status is the more useful error.
	if !isSuccess(resp.StatusCode) {
		statusErr := newStatusError(resp)
		r.logger.WarnContext(ctx, "catalog returned error status",
			slog.String("path", path),
			slog.Int("status", resp.StatusCode),
			slog.String("upstream_message", statusErr.Message),
		)
		return statusErr
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response from GET %s: %w", path, err)
	}

	return nil
}

func (r *requester) closeBody(ctx context.Context, resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		r.logger.WarnContext(ctx, "failed to close response body",
			slog.String("error", err.Error()),
		)
	}
}

func isSuccess(code int) bool {
	return code >= http.StatusOK && code < http.StatusMultipleChoices
}
