package ispncache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/Vijay2351989/ispncache/transport"
)

// Provisioner creates server-side caches from configuration with idempotent
// check-then-create semantics. Existence is checked fresh on every call;
// nothing is memoized, so racing provisioners converge on the server's own
// idempotency.
type Provisioner struct {
	core *core
}

// Exists reports whether the named cache is present on the server.
//
// Failures are swallowed: any non-200 status and any transport error that
// survives the retries is reported as "absent", logged, and surfaced through
// Hooks.ExistsCheckFailed so outages remain visible in telemetry. Callers
// err toward attempting creation.
func (p *Provisioner) Exists(ctx context.Context, name string) bool {
	c := p.core
	url := c.cacheURL(name)
	resp, err := c.do(ctx, "cache_exists", url, func(ctx context.Context) (*transport.Response, error) {
		return c.tr.Send(ctx, http.MethodGet, url, nil, nil, defaultLookupTimeout)
	})
	if err != nil {
		c.log.Error("existence check failed, treating cache as absent", Fields{
			"cache": name, "url": url, "err": err,
		})
		c.hooks.ExistsCheckFailed(name, err)
		return false
	}
	exists := resp.StatusCode == http.StatusOK
	c.log.Debug("existence check", Fields{"cache": name, "exists": exists, "status": resp.StatusCode})
	return exists
}

// Create builds the server cache definition for a configured cache and posts
// it. Creating a cache that already exists is a no-op success.
//
// Error taxonomy: *ConfigError when the name has no configuration (caller
// bug, no network call is made); *ConnError when the server was unreachable
// after every retry; *OpError when the server answered with an unexpected
// status.
func (p *Provisioner) Create(ctx context.Context, name string) error {
	c := p.core
	settings, ok := c.cfg.Cache(name)
	if !ok {
		return &ConfigError{Cache: name}
	}

	if p.Exists(ctx, name) {
		c.log.Info("cache already exists", Fields{"cache": name})
		return nil
	}

	def := p.buildDefinition(name, settings)
	body, err := json.Marshal(def)
	if err != nil {
		return fmt.Errorf("ispncache: marshal cache definition for %q: %w", name, err)
	}

	url := c.cacheURL(name)
	c.log.Debug("creating cache", Fields{"cache": name, "url": url})
	resp, err := c.do(ctx, "create_cache", url, func(ctx context.Context) (*transport.Response, error) {
		return c.tr.Send(ctx, http.MethodPost, url, body, jsonHeaders, defaultCreateTimeout)
	})
	if err != nil {
		return &ConnError{Host: c.cfg.Host, Port: c.cfg.Port, Err: err}
	}
	if resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated {
		c.log.Debug("cache created", Fields{"cache": name})
		return nil
	}
	return &OpError{Op: "create", Cache: name, StatusCode: resp.StatusCode, Body: resp.Body}
}

// EnsureExists makes sure the cache is present, creating it when needed.
// It never returns an error: provisioning trouble is logged, reported through
// Hooks.ProvisionFailed, and reduced to false so the data-write path can fail
// soft.
func (p *Provisioner) EnsureExists(ctx context.Context, name string) bool {
	c := p.core
	if p.Exists(ctx, name) {
		c.log.Debug("cache already exists", Fields{"cache": name})
		return true
	}
	c.log.Info("cache does not exist, creating it", Fields{"cache": name})
	if err := p.Create(ctx, name); err != nil {
		c.log.Error("cache creation failed", Fields{"cache": name, "err": err})
		c.hooks.ProvisionFailed(name, err)
		return false
	}
	return true
}

// ProvisionAll creates every enabled configured cache. Disabled caches are
// skipped. Per-cache failures are collected so one bad cache does not stop
// the rest from being provisioned.
func (p *Provisioner) ProvisionAll(ctx context.Context) error {
	c := p.core
	var errs []error
	for _, name := range c.cfg.CacheNames() {
		if !c.cfg.Enabled(name) {
			c.log.Debug("skipping disabled cache", Fields{"cache": name})
			continue
		}
		if err := p.Create(ctx, name); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
