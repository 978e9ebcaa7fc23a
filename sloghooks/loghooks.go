// Package sloghooks forwards client hook events to a slog.Logger, with
// optional sampling for the retry events that can flood during an outage.
package sloghooks

import (
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/Vijay2351989/ispncache"
)

type Options struct {
	// Sampling to avoid floods during outages; 0/1 = log all.
	RetryEvery uint64
}

type Hooks struct {
	l    *slog.Logger
	opts Options

	retryCtr atomic.Uint64
}

var _ ispncache.Hooks = (*Hooks)(nil)

func New(l *slog.Logger, opts Options) *Hooks {
	return &Hooks{l: l, opts: opts}
}

func sample(n uint64, ctr *atomic.Uint64) bool {
	if n == 0 || n == 1 {
		return true
	}
	return ctr.Add(1)%n == 0
}

func (h *Hooks) RetryScheduled(op, url string, attempt int, delay time.Duration) {
	if h.l == nil || !sample(h.opts.RetryEvery, &h.retryCtr) {
		return
	}
	h.l.Warn("ispncache.retry_scheduled",
		"op", op,
		"url", url,
		"attempt", attempt,
		"delay", delay)
}

func (h *Hooks) RetriesExhausted(op, url string, attempts int, err error) {
	if h.l == nil {
		return
	}
	h.l.Error("ispncache.retries_exhausted",
		"op", op,
		"url", url,
		"attempts", attempts,
		"err", err)
}

func (h *Hooks) ExistsCheckFailed(cache string, err error) {
	if h.l == nil {
		return
	}
	h.l.Warn("ispncache.exists_check_failed",
		"cache", cache,
		"err", err)
}

func (h *Hooks) ProvisionFailed(cache string, err error) {
	if h.l == nil {
		return
	}
	h.l.Error("ispncache.provision_failed",
		"cache", cache,
		"err", err)
}

func (h *Hooks) DecodeFallback(cache, key, reason string) {
	if h.l == nil {
		return
	}
	h.l.Info("ispncache.decode_fallback",
		"cache", cache,
		"key", key,
		"reason", reason)
}

func (h *Hooks) SchemaRegistrationFailed(schema string, err error) {
	if h.l == nil {
		return
	}
	h.l.Error("ispncache.schema_registration_failed",
		"schema", schema,
		"err", err)
}
