package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
)

type sessionIDKey struct{}

// WithSessionID returns a copy of ctx carrying the browser session ID.
func WithSessionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, sessionIDKey{}, id)
}

// SessionIDFromContext returns the session ID in ctx, or "".
func SessionIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(sessionIDKey{}).(string)
	return id
}

// Session identifies the browser behind a request by a random UUID kept in
// the named cookie. A missing or malformed cookie starts a new session. The
// cookie is reissued on every response so it expires ttl after the last
// request, in step with the filter store.
func Session(cookieName string, ttl time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := sessionFromCookie(r, cookieName)
			if id == "" {
				id = uuid.NewString()
			}

			http.SetCookie(w, &http.Cookie{
				Name:     cookieName,
				Value:    id,
				Path:     "/",
				MaxAge:   int(ttl.Seconds()),
				HttpOnly: true,
				Secure:   r.TLS != nil,
				SameSite: http.SameSiteLaxMode,
			})

			next.ServeHTTP(w, r.WithContext(WithSessionID(r.Context(), id)))
		})
	}
}

func sessionFromCookie(r *http.Request, name string) string {
	c, err := r.Cookie(name)
	if err != nil {
		return ""
	}
	id, err := uuid.Parse(c.Value)
	if err != nil {
		return ""
	}
	return id.String()
}
