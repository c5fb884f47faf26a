package catalog

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/jsamuelsen11/product-catalog/internal/domain"
)

// maxErrorBodySize limits how much of an error response body we read.
const maxErrorBodySize = 64 << 10

// StatusError is returned for any non-2xx upstream response. Its message is
// "Error {code}: {status text}" so the code is always visible to callers.
type StatusError struct {
	Code int
	Text string

	// Message is the upstream's own explanation, when the body carried one
	// (DummyJSON sends {"message": "..."}).
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("Error %d: %s", e.Code, e.Text)
}

// Unwrap maps the status code onto a domain sentinel so callers can use
// errors.Is without knowing about HTTP.
func (e *StatusError) Unwrap() error {
	switch {
	case e.Code == http.StatusNotFound:
		return domain.ErrNotFound
	case e.Code == http.StatusBadRequest || e.Code == http.StatusUnprocessableEntity:
		return domain.ErrValidation
	case e.Code == http.StatusUnauthorized || e.Code == http.StatusForbidden:
		return domain.ErrForbidden
	case e.Code == http.StatusTooManyRequests || e.Code >= http.StatusInternalServerError:
		return domain.ErrUnavailable
	default:
		return nil
	}
}

// newStatusError builds a StatusError from resp. The body is read (bounded)
// for an upstream message but not closed.
func newStatusError(resp *http.Response) *StatusError {
	return &StatusError{
		Code:    resp.StatusCode,
		Text:    statusText(resp),
		Message: upstreamMessage(resp),
	}
}

// statusText returns the reason phrase of resp, falling back to the
// canonical text for the code.
func statusText(resp *http.Response) string {
	text := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if text == "" {
		text = http.StatusText(resp.StatusCode)
	}
	return text
}

func upstreamMessage(resp *http.Response) string {
	if resp.Body == nil {
		return ""
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil || len(body) == 0 {
		return ""
	}

	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	return payload.Message
}
