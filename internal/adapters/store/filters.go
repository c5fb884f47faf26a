// Package store holds the in-memory filter state of browser sessions.
package store

import (
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/jsamuelsen11/product-catalog/internal/domain/filter"
	"github.com/jsamuelsen11/product-catalog/internal/ports"
)

var _ ports.FilterStore = (*FilterStore)(nil)

// FilterStore implements [ports.FilterStore] on a go-cache with sliding
// expiry: a session's entry lives for ttl after its last read or write.
type FilterStore struct {
	cache *gocache.Cache

	// mu guards every access to cache. Get writes back to extend the TTL,
	// so readers take it too; listeners then observe changes in write order.
	mu sync.Mutex

	listenersMu sync.RWMutex
	listeners   []ports.FilterListener
}

// NewFilterStore creates a store whose sessions expire after ttl of
// inactivity. Expired entries are swept every cleanupInterval.
func NewFilterStore(ttl, cleanupInterval time.Duration) *FilterStore {
	return &FilterStore{
		cache: gocache.New(ttl, cleanupInterval),
	}
}

// Get returns the session's filters, or filter.Default() for an unknown or
// expired session. A hit extends the session's lifetime.
func (s *FilterStore) Get(sessionID string) filter.Filters {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.get(sessionID)
}

// get is Get without locking. Callers hold s.mu.
func (s *FilterStore) get(sessionID string) filter.Filters {
	v, ok := s.cache.Get(sessionID)
	if !ok {
		return filter.Default()
	}

	f, _ := v.(filter.Filters)
	s.cache.SetDefault(sessionID, f)

	return f
}

// Set stores filters for the session and notifies listeners. Writing the
// current value again is not a change and notifies nobody.
func (s *FilterStore) Set(sessionID string, filters filter.Filters) {
	s.mu.Lock()
	defer s.mu.Unlock()

	old := s.get(sessionID)
	s.cache.SetDefault(sessionID, filters)

	if old != filters {
		s.notify(ports.FilterEvent{SessionID: sessionID, Old: old, Updated: filters})
	}
}

// Reset drops the session's filters so the next Get returns defaults.
func (s *FilterStore) Reset(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	old := s.get(sessionID)
	s.cache.Delete(sessionID)

	if old != filter.Default() {
		s.notify(ports.FilterEvent{SessionID: sessionID, Old: old, Updated: filter.Default(), Reset: true})
	}
}

// Subscribe registers listener for changes on any session. Listeners run
// synchronously under the store's lock and must not call Get, Set or Reset.
func (s *FilterStore) Subscribe(listener ports.FilterListener) {
	s.listenersMu.Lock()
	defer s.listenersMu.Unlock()

	s.listeners = append(s.listeners, listener)
}

func (s *FilterStore) notify(ev ports.FilterEvent) {
	s.listenersMu.RLock()
	listeners := s.listeners
	s.listenersMu.RUnlock()

	for _, l := range listeners {
		l(ev)
	}
}
