// Package wire implements the outer layer of the cache entry envelope:
// a JSON object tagging the registered Protobuf message type and carrying the
// base64-encoded inner payload.
//
//	{"_type": "cache.CacheEntry", "value": "<base64>"}
package wire

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
)

// EntryType is the fully qualified Protobuf message name from the registered
// entry schema (package.MessageName). The server routes the JSON document to
// the ProtoStream marshaller by this tag.
const EntryType = "cache.CacheEntry"

var ErrMalformed = errors.New("malformed cache entry")

type entry struct {
	Type  string `json:"_type"`
	Value string `json:"value"`
}

// Encode wraps payload in the envelope: base64 the bytes, tag the type,
// marshal the wrapper.
func Encode(payload []byte) ([]byte, error) {
	e := entry{
		Type:  EntryType,
		Value: base64.StdEncoding.EncodeToString(payload),
	}
	return json.Marshal(e)
}

// Decode unwraps an envelope.
//
// On the normal path it returns (payload, nil, true, nil). When the outer
// JSON parses but carries no "value" field - entries written by other clients
// - it returns (nil, outer, false, nil) and the caller decides what to do
// with the foreign document. Malformed outer JSON, a non-string value field,
// or invalid base64 are reported as errors wrapping ErrMalformed.
func Decode(b []byte) (payload []byte, outer any, wrapped bool, err error) {
	var doc any
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, nil, false, fmt.Errorf("%w: outer JSON: %v", ErrMalformed, err)
	}

	obj, ok := doc.(map[string]any)
	if !ok {
		return nil, doc, false, nil
	}
	raw, ok := obj["value"]
	if !ok {
		return nil, doc, false, nil
	}
	s, ok := raw.(string)
	if !ok {
		return nil, nil, false, fmt.Errorf("%w: value field is %T, want string", ErrMalformed, raw)
	}

	payload, err = base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, nil, false, fmt.Errorf("%w: base64: %v", ErrMalformed, err)
	}
	return payload, nil, true, nil
}
