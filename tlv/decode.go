package tlv

import (
	"encoding/binary"
	"fmt"
)

// Limits constrains decode memory use.
type Limits struct {
	MaxValueLen int
	MaxDataLen  int
}

// DefaultLimits returns the wire-contract limits.
func DefaultLimits() Limits {
	return Limits{
		MaxValueLen: MaxValueLen,
		MaxDataLen:  MaxDataLen,
	}
}

// Decoder decodes with configurable limits. The zero value uses
// DefaultLimits and the permissive trailing-bytes policy.
type Decoder struct {
	Limits Limits
	// RejectTrailing fails decoding when 1..HeaderLen-1 bytes are left over.
	RejectTrailing bool
}

var defaultDecoder Decoder

// Decode parses b with the default limits. Empty input yields an empty list.
// On failure the returned list is nil.
func Decode(b []byte) (List, error) {
	return defaultDecoder.Decode(b)
}

// Decode parses b. See the package-level Decode.
func (d Decoder) Decode(b []byte) (List, error) {
	maxValue := coalesce(d.Limits.MaxValueLen, MaxValueLen)
	maxData := coalesce(d.Limits.MaxDataLen, MaxDataLen)

	if len(b) == 0 {
		return List{}, nil
	}
	if len(b) > maxData {
		return nil, fmt.Errorf("%w: %d > %d", ErrDataExceeded, len(b), maxData)
	}

	items := make(List, 0, 4)
	pos := 0
	for len(b)-pos >= HeaderLen {
		typ := binary.BigEndian.Uint16(b[pos : pos+TypeLen])
		length := binary.BigEndian.Uint32(b[pos+TypeLen : pos+HeaderLen])
		pos += HeaderLen

		// overflow-safe form of pos+length > len(b)
		if uint64(length) > uint64(len(b)-pos) {
			return nil, fmt.Errorf("%w: type %d declares %d bytes, %d left", ErrInvalidLength, typ, length, len(b)-pos)
		}
		if uint64(length) > uint64(maxValue) {
			return nil, fmt.Errorf("%w: type %d declares %d > %d", ErrValueTooLarge, typ, length, maxValue)
		}

		end := pos + int(length)
		value := make([]byte, length)
		copy(value, b[pos:end])
		items = append(items, Item{Type: typ, Value: value})
		pos = end
	}

	if d.RejectTrailing && pos != len(b) {
		return nil, fmt.Errorf("%w: %d", ErrTrailingBytes, len(b)-pos)
	}
	return items, nil
}

func coalesce(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
