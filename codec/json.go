package codec

import "encoding/json"

// JSON is the wire default: the server-side schema stores the payload as a
// JSON text, so this is the only codec whose output other Infinispan clients
// can read back.
type JSON[V any] struct{}

func (JSON[V]) Encode(v V) ([]byte, error) { return json.Marshal(v) }
func (JSON[V]) Decode(b []byte) (V, error) {
	var v V
	err := json.Unmarshal(b, &v)
	return v, err
}
