// Package b64 encodes binary buffers as standard Base64 text (RFC 4648
// alphabet, '=' padding, no line breaks) and decodes them back.
//
// Decode is deliberately lenient about '=' placement: a pad character in any
// position contributes zero bits, and only '=' in the third or fourth slot of
// a quad suppresses output bytes. IsValid is weaker still and checks only
// length and alphabet. Callers that need canonical input should compare
// Encode(Decode(s)) with s.
package b64

import (
	"errors"
	"fmt"
)

const (
	alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"
	pad      = '='
	invalid  = 0xFF
)

var (
	ErrLength    = errors.New("b64: length is not a multiple of 4")
	ErrCharacter = errors.New("b64: illegal character")
)

// CorruptInputError reports the offset of the first illegal character.
type CorruptInputError struct {
	Offset int
	Char   byte
}

func (e *CorruptInputError) Error() string {
	return fmt.Sprintf("b64: illegal character %q at offset %d", e.Char, e.Offset)
}

func (e *CorruptInputError) Unwrap() error { return ErrCharacter }

var decodeMap = func() [256]byte {
	var m [256]byte
	for i := range m {
		m[i] = invalid
	}
	for i := 0; i < len(alphabet); i++ {
		m[alphabet[i]] = byte(i)
	}
	return m
}()

// EncodedLen returns the length of the Base64 text for n input bytes.
func EncodedLen(n int) int { return (n + 2) / 3 * 4 }

// DecodedLen returns the maximum number of bytes n characters decode to.
func DecodedLen(n int) int { return n / 4 * 3 }

// Encode returns the padded Base64 text of data. Empty input yields "".
func Encode(data []byte) string {
	if len(data) == 0 {
		return ""
	}
	out := make([]byte, EncodedLen(len(data)))

	di, si := 0, 0
	n := len(data) / 3 * 3
	for si < n {
		v := uint32(data[si])<<16 | uint32(data[si+1])<<8 | uint32(data[si+2])
		out[di+0] = alphabet[v>>18&0x3F]
		out[di+1] = alphabet[v>>12&0x3F]
		out[di+2] = alphabet[v>>6&0x3F]
		out[di+3] = alphabet[v&0x3F]
		si += 3
		di += 4
	}

	switch len(data) - si {
	case 1:
		v := uint32(data[si]) << 16
		out[di+0] = alphabet[v>>18&0x3F]
		out[di+1] = alphabet[v>>12&0x3F]
		out[di+2] = pad
		out[di+3] = pad
	case 2:
		v := uint32(data[si])<<16 | uint32(data[si+1])<<8
		out[di+0] = alphabet[v>>18&0x3F]
		out[di+1] = alphabet[v>>12&0x3F]
		out[di+2] = alphabet[v>>6&0x3F]
		out[di+3] = pad
	}
	return string(out)
}

// Decode returns the bytes represented by encoded. Empty input yields an
// empty, non-nil buffer and a nil error.
func Decode(encoded string) ([]byte, error) {
	if len(encoded) == 0 {
		return []byte{}, nil
	}
	if len(encoded)%4 != 0 {
		return nil, ErrLength
	}

	out := make([]byte, 0, DecodedLen(len(encoded)))
	for i := 0; i < len(encoded); i += 4 {
		var quad uint32
		for j := 0; j < 4; j++ {
			c := encoded[i+j]
			v := decodeMap[c]
			if v == invalid {
				if c != pad {
					return nil, &CorruptInputError{Offset: i + j, Char: c}
				}
				v = 0
			}
			quad = quad<<6 | uint32(v)
		}

		out = append(out, byte(quad>>16))
		if encoded[i+2] != pad {
			out = append(out, byte(quad>>8))
		}
		if encoded[i+3] != pad {
			out = append(out, byte(quad))
		}
	}
	return out, nil
}

// DecodeOrEmpty decodes encoded and returns an empty buffer on any failure,
// so empty and malformed input are indistinguishable.
func DecodeOrEmpty(encoded string) []byte {
	b, err := Decode(encoded)
	if err != nil {
		return []byte{}
	}
	return b
}

// IsValid reports whether encoded is non-empty, a multiple of 4 long and made
// only of alphabet characters and '='. Padding placement is not checked.
func IsValid(encoded string) bool {
	if len(encoded) == 0 || len(encoded)%4 != 0 {
		return false
	}
	for i := 0; i < len(encoded); i++ {
		if c := encoded[i]; decodeMap[c] == invalid && c != pad {
			return false
		}
	}
	return true
}
