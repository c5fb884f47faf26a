package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/product-catalog/internal/platform/logging"
)

const redacted = "[REDACTED]"

// RedactHeaders renders headers as a slog group with the values of
// logging.SensitiveHeaders replaced. Cookies carry the session ID, so they
// are always among them. Multi-value headers are joined with a comma.
func RedactHeaders(headers http.Header) slog.Attr {
	attrs := make([]any, 0, len(headers))
	for key, vals := range headers {
		value := strings.Join(vals, ",")
		if logging.SensitiveHeaders[strings.ToLower(key)] {
			value = redacted
		}
		attrs = append(attrs, slog.String(key, value))
	}
	return slog.Group("headers", attrs...)
}
