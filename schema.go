package ispncache

import (
	"context"
	"net/http"

	"github.com/Vijay2351989/ispncache/transport"
)

// DefaultSchemaName is the registry entry the default schema is stored under.
const DefaultSchemaName = "cache_entry.proto"

// DefaultEntrySchema is the Protobuf schema backing the value envelope.
// Registering it is what lets the server accept `_type: cache.CacheEntry`
// JSON documents with application/x-protostream encoding.
const DefaultEntrySchema = `syntax = "proto3";

package cache;

/**
 * Generic cache entry that stores base64-encoded JSON data
 */
message CacheEntry {
    // The actual value stored as a base64-encoded JSON string
    string value = 1;

    // Optional metadata
    int64 created_at = 2;
    int64 updated_at = 3;
}
`

// SchemaManager registers Protobuf schemas with the server's schema registry.
// Registration failures are non-fatal by contract: every method reports a
// boolean and logs the cause, unlike cache creation which raises.
type SchemaManager struct {
	core *core
}

// Get fetches a registered schema's content. ok is false when the schema is
// not registered or the lookup failed.
func (m *SchemaManager) Get(ctx context.Context, name string) (string, bool) {
	c := m.core
	url := c.schemaURL(name)
	resp, err := c.do(ctx, "get_schema", url, func(ctx context.Context) (*transport.Response, error) {
		return c.tr.Send(ctx, http.MethodGet, url, nil, nil, defaultLookupTimeout)
	})
	if err != nil {
		c.log.Error("schema lookup failed", Fields{"schema": name, "url": url, "err": err})
		return "", false
	}
	switch resp.StatusCode {
	case http.StatusOK:
		return resp.Body, true
	case http.StatusNotFound:
		c.log.Debug("schema not found", Fields{"schema": name})
		return "", false
	default:
		c.log.Error("schema lookup returned unexpected status", Fields{
			"schema": name, "status": resp.StatusCode,
		})
		return "", false
	}
}

// Exists reports whether the schema is already registered.
func (m *SchemaManager) Exists(ctx context.Context, name string) bool {
	_, ok := m.Get(ctx, name)
	return ok
}

// Register uploads a schema unless it is already registered. Returns true
// when the schema ends up registered, false otherwise.
func (m *SchemaManager) Register(ctx context.Context, name, content string) bool {
	c := m.core
	if m.Exists(ctx, name) {
		c.log.Info("schema already registered", Fields{"schema": name})
		return true
	}

	url := c.schemaURL(name)
	c.log.Info("registering schema", Fields{"schema": name})
	resp, err := c.do(ctx, "register_schema", url, func(ctx context.Context) (*transport.Response, error) {
		return c.tr.Send(ctx, http.MethodPost, url, []byte(content), plainHeaders, defaultLookupTimeout)
	})
	if err != nil {
		c.log.Error("schema registration failed", Fields{"schema": name, "url": url, "err": err})
		c.hooks.SchemaRegistrationFailed(name, err)
		return false
	}
	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated, http.StatusNoContent:
		c.log.Info("schema registered", Fields{"schema": name})
		return true
	default:
		c.log.Error("schema registration returned unexpected status", Fields{
			"schema": name, "status": resp.StatusCode, "body": resp.Body,
		})
		c.hooks.SchemaRegistrationFailed(name, &OpError{
			Op: "register_schema", Cache: name, StatusCode: resp.StatusCode, Body: resp.Body,
		})
		return false
	}
}

// RegisterDefault registers the entry schema the value envelope depends on.
// Intended to run once at startup.
func (m *SchemaManager) RegisterDefault(ctx context.Context) bool {
	return m.Register(ctx, DefaultSchemaName, DefaultEntrySchema)
}
