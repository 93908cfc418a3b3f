package tlv

import (
	"encoding/binary"
	"fmt"
)

const (
	TypeLen   = 2
	LengthLen = 4
	HeaderLen = TypeLen + LengthLen

	MaxValueLen = 64 * 1024
	MaxDataLen  = 128 * 1024
)

// Item is one record. Value is owned by the Item; decoded values never alias
// the source buffer.
type Item struct {
	Type  uint16
	Value []byte
}

// List is an ordered sequence of items. Types need not be unique.
type List []Item

// EncodedLen returns the exact number of bytes Encode writes for items.
func EncodedLen(items List) int {
	n := 0
	for _, it := range items {
		n += HeaderLen + len(it.Value)
	}
	return n
}

// AppendItem appends the wire form of it to dst.
func AppendItem(dst []byte, it Item) []byte {
	dst = binary.BigEndian.AppendUint16(dst, it.Type)
	dst = binary.BigEndian.AppendUint32(dst, uint32(len(it.Value)))
	return append(dst, it.Value...)
}

// Encode serializes items in order. An empty list encodes to nil.
func Encode(items List) []byte {
	total := EncodedLen(items)
	if total == 0 {
		return nil
	}
	buf := make([]byte, 0, total)
	for _, it := range items {
		buf = AppendItem(buf, it)
	}
	return buf
}

// EncodeSingle encodes a one-item list.
func EncodeSingle(typ uint16, value []byte) []byte {
	return Encode(List{{Type: typ, Value: value}})
}

// Find returns the value of the first item with the given type.
func Find(items List, typ uint16) ([]byte, bool) {
	for _, it := range items {
		if it.Type == typ {
			return it.Value, true
		}
	}
	return nil, false
}

// Find is the method form of the package-level Find.
func (l List) Find(typ uint16) ([]byte, bool) { return Find(l, typ) }

// EncodedLen is the method form of the package-level EncodedLen.
func (l List) EncodedLen() int { return EncodedLen(l) }

// Clear empties the list in place and keeps its capacity.
func Clear(items *List) {
	if items == nil {
		return
	}
	clear(*items)
	*items = (*items)[:0]
}

// Validate reports whether a peer using the default limits would accept the
// encoded form of l.
func (l List) Validate() error {
	for i, it := range l {
		if len(it.Value) > MaxValueLen {
			return fmt.Errorf("item %d (type %d): %w", i, it.Type, ErrValueTooLarge)
		}
	}
	if n := EncodedLen(l); n > MaxDataLen {
		return fmt.Errorf("encoded size %d: %w", n, ErrDataExceeded)
	}
	return nil
}
