package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/jsamuelsen11/product-catalog/internal/adapters/http/dto"
)

// errInternalServer is what clients see after a panic; the panic value and
// stack only go to the log.
var errInternalServer = errors.New("internal server error")

// Recovery turns a handler panic into a logged stack trace and a 500. Browsers
// (Accept: text/html) get a plain page, API clients an RFC 9457 body. Nothing
// is written if the handler already started the response.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := newResponseWriter(w)

			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if v == http.ErrAbortHandler {
					panic(v)
				}

				logger.ErrorContext(r.Context(), "panic recovered",
					slog.String("panic", fmt.Sprint(v)),
					slog.String("stack", string(debug.Stack())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
				)

				if rw.headerWritten {
					return
				}
				if acceptsHTML(r) {
					http.Error(rw, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
					return
				}
				dto.WriteErrorResponse(rw, r, errInternalServer)
			}()

			next.ServeHTTP(rw, r)
		})
	}
}

func acceptsHTML(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "text/html")
}
