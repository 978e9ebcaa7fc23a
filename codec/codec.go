// Package codec provides serializers for the inner payload of the cache
// entry envelope. The encoded bytes are base64-wrapped by the client before
// they go on the wire, so codecs are free to produce arbitrary binary.
//
// Plain string values never reach a codec: the client stores them verbatim so
// that strings round-trip without double encoding.
package codec

// Codec encodes/decodes values V to []byte for storage.
type Codec[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}
