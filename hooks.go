package ispncache

import "time"

// Hooks lightweight callbacks for high-signal events.
// Implementations MUST be cheap and non-blocking.
// The client calls them on hot paths.
type Hooks interface {
	// A transport failure was observed and a retry is scheduled.
	RetryScheduled(op, url string, attempt int, delay time.Duration)

	// Every attempt failed; the last transport error is being surfaced.
	RetriesExhausted(op, url string, attempts int, err error)

	// An existence check failed and was reported as "absent".
	// Watch this to tell outages apart from genuinely missing caches.
	ExistsCheckFailed(cache string, err error)

	// EnsureExists could not create the cache; the write path gave up.
	ProvisionFailed(cache string, err error)

	// A value decode degraded instead of failing.
	// reason ∈ {"missing_envelope", "inner_not_decodable"}
	DecodeFallback(cache, key, reason string)

	// Schema registration returned a non-fatal failure.
	SchemaRegistrationFailed(schema string, err error)
}

// NopHooks is the default no-op
type NopHooks struct{}

func (NopHooks) RetryScheduled(string, string, int, time.Duration) {}
func (NopHooks) RetriesExhausted(string, string, int, error)       {}
func (NopHooks) ExistsCheckFailed(string, error)                   {}
func (NopHooks) ProvisionFailed(string, error)                     {}
func (NopHooks) DecodeFallback(string, string, string)             {}
func (NopHooks) SchemaRegistrationFailed(string, error)            {}
