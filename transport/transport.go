// Package transport defines the HTTP sending capability used by ispncache.
//
// Implementations MUST keep the two failure modes apart: a non-nil error means
// the request never produced an HTTP response (refused connection, timeout,
// DNS failure) and is fair game for the retry layer; any response that carries
// a status code - 2xx or not - is returned with a nil error and left to the
// caller to interpret.
package transport

import (
	"context"
	"fmt"
	"time"
)

// Response is the subset of an HTTP response the client consumes.
type Response struct {
	StatusCode int
	Body       string
}

// Transport sends a single HTTP request. Must be safe for concurrent use.
// timeout bounds the whole attempt including reading the response body.
type Transport interface {
	Send(ctx context.Context, method, url string, body []byte, headers map[string]string, timeout time.Duration) (*Response, error)
}

// Error wraps a transport-level failure with the request that hit it.
type Error struct {
	Method string
	URL    string
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("transport: %s %s: %v", e.Method, e.URL, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }
