package middleware

import (
	"net/http"
	"time"
)

// timeoutMessage is the body sent when a request exceeds its deadline.
const timeoutMessage = "request timed out"

// Timeout bounds each request to d. The handler's context carries the
// deadline, so upstream calls give up with it; if the handler has not
// finished by then the client gets 503 with a short message and anything
// the handler writes afterwards is discarded.
func Timeout(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.TimeoutHandler(next, d, timeoutMessage)
	}
}
