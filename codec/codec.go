// Package codec converts values to and from byte payloads.
//
// Value codecs (JSON, CBOR, Msgpack, Protobuf, Bytes, String) produce opaque
// payloads. TLV frames a tlv.List, and Base64 turns any codec's output into
// printable text for transports that cannot carry raw bytes.
package codec

// Codec encodes/decodes values V to []byte.
type Codec[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}

// Named is implemented by codecs that identify themselves on the wire.
type Named interface {
	Name() string
}

// NameOf returns c's name, or "" when c does not implement Named.
func NameOf(c any) string {
	if n, ok := c.(Named); ok {
		return n.Name()
	}
	return ""
}
