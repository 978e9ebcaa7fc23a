// Package ispncache is a client for managing caches on an Infinispan server
// over its REST v2 API. It provisions distributed caches declaratively from
// configuration, performs put/get/delete data operations with a fixed
// ProtoStream-compatible value envelope, and registers the Protobuf schema
// the envelope relies on.
//
// Components:
//   - transport.Transport: pluggable HTTP sender (digest-authed net/http by default).
//   - codec.Codec[V]: (de)serializes the inner payload of the value envelope.
//   - Provisioner: idempotent check-then-create of server-side caches.
//   - SchemaManager: idempotent registration of the entry schema.
//   - Client: put/get/delete data plane composed from the above.
//
// Every network call runs through a shared exponential-backoff retry policy.
// Only transport-level failures (refused connections, timeouts) are retried;
// HTTP error statuses are returned to the caller for interpretation.
//
// Values travel double-wrapped: the application value is serialized by the
// inner codec (JSON by default; plain strings pass through verbatim),
// base64-encoded, and wrapped in {"_type":"cache.CacheEntry","value":...}.
//
// The library keeps no client-side state about the server: cache existence is
// checked fresh on every call, so provisioning correctness relies entirely on
// the idempotent check-then-create pattern tolerating races between
// independent client instances.
package ispncache
