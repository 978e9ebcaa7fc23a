package ispncache

import (
	"context"
	"time"

	"github.com/Vijay2351989/ispncache/transport"
)

// RetryPolicy governs the exponential backoff applied to every network call.
// Fixed at construction and shared by all operations on a client instance.
//
// A call is attempted up to MaxRetries+1 times. Only transport-level failures
// are retried; any HTTP response, whatever its status, ends the loop. The
// delay before retry i is min(InitialDelay * BackoffMultiplier^i, MaxDelay).
type RetryPolicy struct {
	MaxRetries        int
	InitialDelay      time.Duration
	BackoffMultiplier float64
	MaxDelay          time.Duration
}

// DefaultRetryPolicy retries 3 times with delays of 1s, 5s and 25s.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxRetries:        3,
		InitialDelay:      time.Second,
		BackoffMultiplier: 5.0,
		MaxDelay:          30 * time.Second,
	}
}

func (p RetryPolicy) validate() error {
	if p.MaxRetries < 0 {
		return errPolicy("MaxRetries must be >= 0")
	}
	if p.InitialDelay <= 0 {
		return errPolicy("InitialDelay must be > 0")
	}
	if p.BackoffMultiplier < 1 {
		return errPolicy("BackoffMultiplier must be >= 1")
	}
	if p.MaxDelay < p.InitialDelay {
		return errPolicy("MaxDelay must be >= InitialDelay")
	}
	return nil
}

type errPolicy string

func (e errPolicy) Error() string { return "ispncache: invalid retry policy: " + string(e) }

// do runs send until it yields a response or the policy is exhausted. All
// backoff state is local to the call, so concurrent invocations never share a
// delay counter. The final transport error is returned as-is for the caller
// to classify.
func (c *core) do(ctx context.Context, op, url string, send func(context.Context) (*transport.Response, error)) (*transport.Response, error) {
	attempts := c.retry.MaxRetries + 1
	delay := c.retry.InitialDelay
	var lastErr error

	for attempt := 1; attempt <= attempts; attempt++ {
		resp, err := send(ctx)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		if attempt == attempts {
			break
		}
		c.log.Warn("attempt failed, retrying", Fields{
			"op":      op,
			"url":     url,
			"attempt": attempt,
			"of":      attempts,
			"delay":   delay,
			"err":     err,
		})
		c.hooks.RetryScheduled(op, url, attempt, delay)
		if err := c.sleep(ctx, delay); err != nil {
			return nil, &transport.Error{Method: op, URL: url, Err: err}
		}
		delay = nextDelay(delay, c.retry)
	}

	c.log.Error("all attempts failed", Fields{
		"op":       op,
		"url":      url,
		"attempts": attempts,
		"err":      lastErr,
	})
	c.hooks.RetriesExhausted(op, url, attempts, lastErr)
	return nil, lastErr
}

func nextDelay(d time.Duration, p RetryPolicy) time.Duration {
	next := time.Duration(float64(d) * p.BackoffMultiplier)
	if next > p.MaxDelay {
		next = p.MaxDelay
	}
	return next
}

// sleepCtx waits for d, aborting early when ctx is cancelled.
func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
