package codec

import (
	"fmt"

	"google.golang.org/protobuf/proto"
)

// Protobuf serializes proto.Message values to their protobuf wire form.
// Because the client stores values as `any`, this codec is declared over
// `any` and asserts at Encode time; non-message values are an error.
type Protobuf struct {
	new func() proto.Message // constructor for a concrete message (e.g., func() proto.Message { return &mypb.Entry{} })
}

var _ Codec[any] = Protobuf{}

func NewProtobuf(ctor func() proto.Message) Protobuf {
	return Protobuf{new: ctor}
}

func (c Protobuf) Encode(v any) ([]byte, error) {
	m, ok := v.(proto.Message)
	if !ok {
		return nil, fmt.Errorf("codec: protobuf codec given %T, want proto.Message", v)
	}
	return proto.Marshal(m)
}

func (c Protobuf) Decode(b []byte) (any, error) {
	m := c.new()
	if err := proto.Unmarshal(b, m); err != nil {
		return nil, err
	}
	return m, nil
}
