package ports

import "github.com/jsamuelsen11/product-catalog/internal/domain/filter"

// FilterEvent describes one change of a session's filter state.
type FilterEvent struct {
	SessionID string
	Old       filter.Filters
	Updated   filter.Filters

	// Reset is true when the change came from FilterStore.Reset rather than
	// a Set that happens to write the defaults.
	Reset bool
}

// FilterListener is called after a session's filter state changes.
type FilterListener func(ev FilterEvent)

// FilterStore holds the filter state of each browser session. Values are kept
// in memory only and are discarded when a session goes idle or the process
// restarts.
type FilterStore interface {
	// Get returns the session's filter state, or filter.Default() when the
	// session has none yet.
	Get(sessionID string) filter.Filters

	// Set replaces the session's filter state and notifies listeners.
	Set(sessionID string, filters filter.Filters)

	// Reset restores the session's filter state to filter.Default().
	Reset(sessionID string)

	// Subscribe registers a listener for filter changes on every session.
	Subscribe(listener FilterListener)
}
