package ispncache

import (
	"github.com/Vijay2351989/ispncache/internal/wire"
)

// encodeValue produces the double-wrapped wire form of a value: inner codec
// bytes (strings pass through verbatim so they are not double-encoded),
// base64, then the typed JSON envelope.
func (c *Client) encodeValue(v any) ([]byte, error) {
	var payload []byte
	switch s := v.(type) {
	case string:
		payload = []byte(s)
	default:
		var err error
		payload, err = c.codec.Encode(v)
		if err != nil {
			return nil, err
		}
	}
	return wire.Encode(payload)
}

// decodeValue reverses encodeValue. Two degradations are deliberate:
// an outer document without a "value" field (written by a foreign client) is
// returned as-is with a warning, and an inner payload the codec cannot decode
// is returned as a plain string - that is how verbatim-stored strings come
// back. Malformed outer JSON or base64 is an error.
func (c *Client) decodeValue(cacheName, key string, raw []byte) (any, error) {
	payload, outer, wrapped, err := wire.Decode(raw)
	if err != nil {
		return nil, err
	}
	if !wrapped {
		c.core.log.Warn("entry is not in envelope format, returning outer document", Fields{
			"cache": cacheName, "key": key,
		})
		c.core.hooks.DecodeFallback(cacheName, key, "missing_envelope")
		return outer, nil
	}

	v, err := c.codec.Decode(payload)
	if err != nil {
		c.core.hooks.DecodeFallback(cacheName, key, "inner_not_decodable")
		return string(payload), nil
	}
	return v, nil
}
