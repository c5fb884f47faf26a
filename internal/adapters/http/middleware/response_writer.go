// Package middleware provides HTTP middleware for the inbound request pipeline.
//
// main composes the chain in this order:
//
//	Recovery → RequestID → CorrelationID → OpenTelemetry → Logging → RequestScope → Timeout → Handler
//
// Browser-facing routes add Session on top. Each middleware is a
// func(http.Handler) http.Handler.
package middleware

import "net/http"

// responseWriter records the status and size of a response for the
// recovery, telemetry and logging middleware.
type responseWriter struct {
	http.ResponseWriter
	statusCode    int
	headerWritten bool
	written       int64
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	if rw, ok := w.(*responseWriter); ok {
		return rw
	}
	return &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
}

// WriteHeader records the first status written and forwards it.
func (rw *responseWriter) WriteHeader(code int) {
	if rw.headerWritten {
		return
	}
	rw.statusCode = code
	rw.headerWritten = true
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	rw.headerWritten = true
	n, err := rw.ResponseWriter.Write(b)
	rw.written += int64(n)
	return n, err
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}
