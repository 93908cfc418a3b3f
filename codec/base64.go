package codec

import "github.com/unkn0wn-root/dhwire/b64"

// Base64 renders Inner's payload as standard padded Base64 text.
type Base64[V any] struct {
	Inner Codec[V]
}

func (c Base64[V]) Name() string {
	if n := NameOf(c.Inner); n != "" {
		return n + "+b64"
	}
	return "b64"
}

func (c Base64[V]) Encode(v V) ([]byte, error) {
	raw, err := c.Inner.Encode(v)
	if err != nil {
		return nil, err
	}
	return []byte(b64.Encode(raw)), nil
}

func (c Base64[V]) Decode(b []byte) (V, error) {
	raw, err := b64.Decode(string(b))
	if err != nil {
		var zero V
		return zero, err
	}
	return c.Inner.Decode(raw)
}
