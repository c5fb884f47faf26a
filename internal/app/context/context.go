// Package appctx provides request-scoped memoization for application
// services.
//
// The HTTP layer attaches a fresh RequestContext to every request; services
// then fetch through it so one request never asks the upstream for the same
// data twice:
//
//	ctx = appctx.WithRequestContext(ctx, appctx.New())
//
//	categories, err := appctx.GetOrFetch(ctx, "categories", fetchCategories)
//
// Nothing outlives the request: the cache is dropped with the context.
package appctx

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// ErrTypeMismatch is returned by GetOrFetch when a cached value's type does
// not match the requested type T. This indicates a programming error where
// the same cache key is used with different types.
var ErrTypeMismatch = errors.New("appctx: cached value type mismatch")

// RequestContext memoizes fetch results for the lifetime of one request.
// It is safe for concurrent use; concurrent lookups of the same key share a
// single fetch.
type RequestContext struct {
	mu    sync.Mutex
	cache map[string]*cacheEntry
}

// cacheEntry stores the result of a GetOrFetch call, including any error.
// Errors are cached too, so a failing upstream is asked once per request.
type cacheEntry struct {
	once  sync.Once
	value any
	err   error
}

// New creates an empty RequestContext.
func New() *RequestContext {
	return &RequestContext{cache: make(map[string]*cacheEntry)}
}

type requestContextKey struct{}

// WithRequestContext returns a copy of ctx carrying rc.
func WithRequestContext(ctx context.Context, rc *RequestContext) context.Context {
	return context.WithValue(ctx, requestContextKey{}, rc)
}

// FromContext returns the RequestContext stored in ctx, or nil.
func FromContext(ctx context.Context) *RequestContext {
	rc, _ := ctx.Value(requestContextKey{}).(*RequestContext)
	return rc
}

// GetOrFetch returns the value cached under key in ctx's RequestContext, or
// calls fetchFn with ctx and caches its result. Without a RequestContext in
// ctx it simply calls fetchFn.
//
// The same key must always be used with the same type T; a mismatch yields
// ErrTypeMismatch. DataProvider binds key and type together to avoid that.
func GetOrFetch[T any](ctx context.Context, key string, fetchFn func(ctx context.Context) (T, error)) (T, error) {
	rc := FromContext(ctx)
	if rc == nil {
		return fetchFn(ctx)
	}

	entry := rc.entry(key)
	entry.once.Do(func() {
		entry.value, entry.err = fetchFn(ctx)
	})

	if entry.err != nil {
		var zero T
		return zero, entry.err
	}

	v, ok := entry.value.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: key %q holds %T, requested %T", ErrTypeMismatch, key, entry.value, zero)
	}
	return v, nil
}

func (rc *RequestContext) entry(key string) *cacheEntry {
	rc.mu.Lock()
	defer rc.mu.Unlock()

	e, ok := rc.cache[key]
	if !ok {
		e = &cacheEntry{}
		rc.cache[key] = e
	}
	return e
}

// DataProvider binds a cache key to a fetch function so callers cannot mix
// up keys and types.
type DataProvider[T any] struct {
	key     string
	fetchFn func(ctx context.Context) (T, error)
}

// NewDataProvider creates a DataProvider with the given cache key and fetch
// function.
func NewDataProvider[T any](key string, fetchFn func(ctx context.Context) (T, error)) *DataProvider[T] {
	return &DataProvider[T]{key: key, fetchFn: fetchFn}
}

// Get is GetOrFetch with the provider's key and fetch function.
func (p *DataProvider[T]) Get(ctx context.Context) (T, error) {
	return GetOrFetch(ctx, p.key, p.fetchFn)
}
