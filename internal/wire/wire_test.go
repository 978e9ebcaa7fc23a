package wire

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"testing"
)

func mustDecode(t *testing.T, b []byte) []byte {
	t.Helper()
	payload, _, wrapped, err := Decode(b)
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	if !wrapped {
		t.Fatalf("expected wrapped entry")
	}
	return payload
}

func TestRoundTrip(t *testing.T) {
	cases := [][]byte{
		nil,
		[]byte(""),
		[]byte("hello"),
		[]byte(`{"a":1}`),
		{0x00, 0xff, 0x10},
	}
	for _, payload := range cases {
		enc, err := Encode(payload)
		if err != nil {
			t.Fatalf("Encode(%q): %v", payload, err)
		}
		got := mustDecode(t, enc)
		if !bytes.Equal(got, payload) {
			t.Fatalf("payload mismatch: got %q want %q", got, payload)
		}
	}
}

func TestEncodeShape(t *testing.T) {
	enc, err := Encode([]byte("hello"))
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	var doc map[string]any
	if err := json.Unmarshal(enc, &doc); err != nil {
		t.Fatalf("envelope is not JSON: %v", err)
	}
	if doc["_type"] != EntryType {
		t.Fatalf("_type: got %v want %v", doc["_type"], EntryType)
	}
	want := base64.StdEncoding.EncodeToString([]byte("hello"))
	if doc["value"] != want {
		t.Fatalf("value: got %v want %v", doc["value"], want)
	}
}

func TestDecodeMissingValueReturnsOuter(t *testing.T) {
	payload, outer, wrapped, err := Decode([]byte(`{"_type":"other","data":7}`))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if wrapped {
		t.Fatalf("expected unwrapped compat path")
	}
	if payload != nil {
		t.Fatalf("payload: got %q want nil", payload)
	}
	obj, ok := outer.(map[string]any)
	if !ok || obj["data"] != float64(7) {
		t.Fatalf("outer not preserved: %#v", outer)
	}
}

func TestDecodeNonObjectReturnsOuter(t *testing.T) {
	_, outer, wrapped, err := Decode([]byte(`[1,2,3]`))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if wrapped {
		t.Fatalf("expected unwrapped")
	}
	if _, ok := outer.([]any); !ok {
		t.Fatalf("outer: %#v", outer)
	}
}

func TestDecodeMalformed(t *testing.T) {
	cases := []struct {
		name string
		in   []byte
	}{
		{"bad outer json", []byte(`{"value":`)},
		{"bad base64", []byte(`{"_type":"cache.CacheEntry","value":"%%%"}`)},
		{"non-string value", []byte(`{"value":42}`)},
	}
	for _, tc := range cases {
		_, _, _, err := Decode(tc.in)
		if !errors.Is(err, ErrMalformed) {
			t.Fatalf("%s: got err %v, want ErrMalformed", tc.name, err)
		}
	}
}
