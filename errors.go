package ispncache

import (
	"fmt"
)

// ConfigError reports a cache name that has no entry in the loaded settings.
// This is a caller bug: it is raised before any network traffic and never
// retried.
type ConfigError struct {
	Cache string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("ispncache: cache %q not found in configuration", e.Cache)
}

// OpError reports a request that reached the server but came back with an
// unexpected HTTP status. The transport succeeded, so it is never retried;
// the status and body are carried for the caller to interpret.
type OpError struct {
	Op         string
	Cache      string
	StatusCode int
	Body       string
}

func (e *OpError) Error() string {
	return fmt.Sprintf("ispncache: %s %q failed: HTTP %d - %s",
		e.Op, e.Cache, e.StatusCode, e.Body)
}

// ConnError reports a transport failure that survived every retry attempt.
// Distinguishable from OpError so callers can treat outages differently from
// bad configuration.
type ConnError struct {
	Host string
	Port int
	Err  error
}

func (e *ConnError) Error() string {
	return fmt.Sprintf("ispncache: cannot reach server at %s:%d: %v", e.Host, e.Port, e.Err)
}

func (e *ConnError) Unwrap() error { return e.Err }
