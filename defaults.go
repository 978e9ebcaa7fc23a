package ispncache

import "time"

// Per-attempt timeouts. Lookups are cheap and bounded tighter than cache
// creation, which the server may take a while to acknowledge.
const (
	defaultLookupTimeout = 10 * time.Second
	defaultWriteTimeout  = 10 * time.Second
	defaultCreateTimeout = 30 * time.Second
)

// coalesce returns def when v is the zero value of T - otherwise v.
func coalesce[T comparable](v, def T) T {
	var zero T
	if v == zero {
		return def
	}
	return v
}
