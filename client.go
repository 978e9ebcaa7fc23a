package ispncache

import (
	"context"
	"net/http"

	c "github.com/Vijay2351989/ispncache/codec"
	"github.com/Vijay2351989/ispncache/transport"
)

// Client is the data plane: put/get/delete against configured caches.
//
// Data operations are best-effort by contract: they never return errors, only
// success booleans and null sentinels, and log every swallowed failure with
// the cache, key and URL. Callers that need hard failures provision through
// Provisioner.Create, which keeps the full error taxonomy.
type Client struct {
	core  *core
	codec c.Codec[any]
	prov  *Provisioner
}

// Provisioner exposes the provisioner this client ensures caches with.
func (cl *Client) Provisioner() *Provisioner { return cl.prov }

// Put stores a value under key, creating the cache first if it is missing.
// Returns false when provisioning, encoding or the write itself failed.
func (cl *Client) Put(ctx context.Context, cacheName, key string, value any) bool {
	co := cl.core
	if !cl.prov.EnsureExists(ctx, cacheName) {
		co.log.Error("cannot ensure cache exists, write dropped", Fields{
			"cache": cacheName, "key": key,
		})
		return false
	}

	body, err := cl.encodeValue(value)
	if err != nil {
		co.log.Error("value encoding failed", Fields{"cache": cacheName, "key": key, "err": err})
		return false
	}

	url := co.entryURL(cacheName, key)
	resp, err := co.do(ctx, "put", url, func(ctx context.Context) (*transport.Response, error) {
		return co.tr.Send(ctx, http.MethodPut, url, body, jsonHeaders, defaultWriteTimeout)
	})
	if err != nil {
		co.log.Error("put failed", Fields{"cache": cacheName, "key": key, "url": url, "err": err})
		return false
	}
	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated, http.StatusNoContent:
		co.log.Debug("put ok", Fields{"cache": cacheName, "key": key, "status": resp.StatusCode})
		return true
	default:
		co.log.Error("put returned unexpected status", Fields{
			"cache": cacheName, "key": key, "url": url,
			"status": resp.StatusCode, "body": resp.Body,
		})
		return false
	}
}

// Get retrieves and decodes the value under key. ok is false when the cache
// or the key is absent, or any failure occurred; the cache is never created
// by a read.
func (cl *Client) Get(ctx context.Context, cacheName, key string) (any, bool) {
	raw, ok := cl.GetRaw(ctx, cacheName, key)
	if !ok {
		return nil, false
	}
	v, err := cl.decodeValue(cacheName, key, []byte(raw))
	if err != nil {
		cl.core.log.Error("value decoding failed", Fields{
			"cache": cacheName, "key": key, "err": err,
		})
		return nil, false
	}
	return v, true
}

// GetRaw is Get without the decoding step: it returns the wire text exactly
// as the server sent it.
func (cl *Client) GetRaw(ctx context.Context, cacheName, key string) (string, bool) {
	co := cl.core
	if !cl.prov.Exists(ctx, cacheName) {
		co.log.Warn("cache does not exist, cannot get", Fields{"cache": cacheName, "key": key})
		return "", false
	}

	url := co.entryURL(cacheName, key)
	resp, err := co.do(ctx, "get", url, func(ctx context.Context) (*transport.Response, error) {
		return co.tr.Send(ctx, http.MethodGet, url, nil, nil, defaultLookupTimeout)
	})
	if err != nil {
		co.log.Error("get failed", Fields{"cache": cacheName, "key": key, "url": url, "err": err})
		return "", false
	}
	switch resp.StatusCode {
	case http.StatusOK:
		return resp.Body, true
	case http.StatusNotFound:
		co.log.Debug("key not found", Fields{"cache": cacheName, "key": key})
		return "", false
	default:
		co.log.Error("get returned unexpected status", Fields{
			"cache": cacheName, "key": key, "url": url,
			"status": resp.StatusCode, "body": resp.Body,
		})
		return "", false
	}
}

// Delete removes the key. Deleting an absent key is a success (the end state
// holds); a missing cache or any failure is false. The cache is never created
// by a delete.
func (cl *Client) Delete(ctx context.Context, cacheName, key string) bool {
	co := cl.core
	if !cl.prov.Exists(ctx, cacheName) {
		co.log.Warn("cache does not exist, cannot delete", Fields{"cache": cacheName, "key": key})
		return false
	}

	url := co.entryURL(cacheName, key)
	resp, err := co.do(ctx, "delete", url, func(ctx context.Context) (*transport.Response, error) {
		return co.tr.Send(ctx, http.MethodDelete, url, nil, nil, defaultLookupTimeout)
	})
	if err != nil {
		co.log.Error("delete failed", Fields{"cache": cacheName, "key": key, "url": url, "err": err})
		return false
	}
	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent:
		co.log.Debug("deleted", Fields{"cache": cacheName, "key": key})
		return true
	case http.StatusNotFound:
		// already absent; the deletion's goal state holds
		co.log.Debug("key already absent", Fields{"cache": cacheName, "key": key})
		return true
	default:
		co.log.Error("delete returned unexpected status", Fields{
			"cache": cacheName, "key": key, "url": url,
			"status": resp.StatusCode, "body": resp.Body,
		})
		return false
	}
}
