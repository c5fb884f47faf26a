package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// SensitiveHeaders holds the lowercase names of HTTP headers whose values
// never reach the logs. The HTTP middleware redacts them when it logs request
// headers and masq redacts attributes that carry the same names.
var SensitiveHeaders = map[string]bool{
	"authorization": true,
	"x-api-key":     true,
	"cookie":        true,
	"set-cookie":    true,
}

// sensitiveFields are attribute keys redacted wherever they appear.
var sensitiveFields = []string{"session_id", "password", "secret", "token"}

// bearerPattern matches "Bearer <token>" strings that appear as raw values.
var bearerPattern = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`)

// sessionCookiePattern matches a session cookie pair ("catalog_session=<id>")
// that ends up inside a free-form string.
var sessionCookiePattern = regexp.MustCompile(`(?i)[a-z0-9_\-]*session=[^;\s]+`)

// newRedactAttr returns a masq ReplaceAttr function for slog.HandlerOptions.
// Attributes are redacted by key (headers and sensitiveFields) and by value
// (bearerPattern, sessionCookiePattern).
func newRedactAttr() func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0, len(SensitiveHeaders)+len(sensitiveFields)+2)

	for name := range SensitiveHeaders {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, name := range sensitiveFields {
		opts = append(opts, masq.WithFieldName(name))
	}

	opts = append(opts,
		masq.WithRegex(bearerPattern),
		masq.WithRegex(sessionCookiePattern),
	)

	return masq.New(opts...)
}
