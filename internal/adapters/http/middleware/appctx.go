package middleware

import (
	"net/http"

	appctx "github.com/jsamuelsen11/product-catalog/internal/app/context"
)

// RequestScope attaches a fresh appctx.RequestContext to every request so
// application services can memoize upstream fetches for its duration.
func RequestScope() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := appctx.WithRequestContext(r.Context(), appctx.New())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
