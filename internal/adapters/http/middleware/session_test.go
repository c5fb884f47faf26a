package middleware_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/product-catalog/internal/adapters/http/middleware"
)

const cookieName = "catalog_session"

func sessionHandler(got *string) http.Handler {
	return middleware.Session(cookieName, 30*time.Minute)(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		*got = middleware.SessionIDFromContext(r.Context())
	}))
}

func sessionCookie(t *testing.T, resp *http.Response) *http.Cookie {
	t.Helper()
	for _, c := range resp.Cookies() {
		if c.Name == cookieName {
			return c
		}
	}
	t.Fatalf("response has no %s cookie", cookieName)
	return nil
}

func TestSession_NewSessionSetsCookie(t *testing.T) {
	t.Parallel()

	var id string
	rec := serve(sessionHandler(&id), get("/"))

	_, err := uuid.Parse(id)
	require.NoError(t, err, "session ID should be a UUID")

	c := sessionCookie(t, rec.Result())
	assert.Equal(t, id, c.Value)
	assert.True(t, c.HttpOnly)
	assert.Equal(t, "/", c.Path)
	assert.Equal(t, 1800, c.MaxAge)
	assert.Equal(t, http.SameSiteLaxMode, c.SameSite)
}

func TestSession_ExistingCookieReused(t *testing.T) {
	t.Parallel()

	existing := uuid.NewString()

	var id string
	req := get("/")
	req.AddCookie(&http.Cookie{Name: cookieName, Value: existing})
	rec := serve(sessionHandler(&id), req)

	assert.Equal(t, existing, id)
	assert.Equal(t, existing, sessionCookie(t, rec.Result()).Value, "cookie is refreshed with the same ID")
}

func TestSession_MalformedCookieReplaced(t *testing.T) {
	t.Parallel()

	var id string
	req := get("/")
	req.AddCookie(&http.Cookie{Name: cookieName, Value: "not-a-uuid"})
	serve(sessionHandler(&id), req)

	assert.NotEqual(t, "not-a-uuid", id)
	_, err := uuid.Parse(id)
	assert.NoError(t, err)
}

func TestSession_DistinctBrowsersGetDistinctIDs(t *testing.T) {
	t.Parallel()

	var a, b string
	serve(sessionHandler(&a), get("/"))
	serve(sessionHandler(&b), get("/"))

	assert.NotEqual(t, a, b)
}
