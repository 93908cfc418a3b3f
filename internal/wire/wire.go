package wire

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/unkn0wn-root/dhwire/tlv"
)

const version byte = 1

// Entry body tags.
const (
	TagPayload  uint16 = 1
	TagStoredAt uint16 = 2
	TagCodec    uint16 = 3
)

// HeaderLen is magic(4) + version(1).
const HeaderLen = 4 + 1

var (
	ErrCorrupt  = errors.New("dhwire: corrupt entry")
	ErrTooLarge = errors.New("dhwire: entry too large")
	magic4      = [...]byte{'D', 'H', 'W', 'E'}
)

// Entry is one stored value.
//
//	magic(4) | ver(1) | tlv body
//
// The body holds TagPayload (required), TagStoredAt (u64 be unix nanos) and
// TagCodec (codec name, omitted when empty).
type Entry struct {
	Codec    string
	StoredAt int64
	Payload  []byte
}

func hasMagic(b []byte) bool {
	return len(b) >= 4 && bytes.Equal(b[:4], magic4[:])
}

// EncodeEntry frames e as magic, version and TLV body.
func EncodeEntry(e Entry) ([]byte, error) {
	body := tlv.List{
		{Type: TagPayload, Value: e.Payload},
		{Type: TagStoredAt, Value: binary.BigEndian.AppendUint64(nil, uint64(e.StoredAt))},
	}
	if e.Codec != "" {
		body = append(body, tlv.Item{Type: TagCodec, Value: []byte(e.Codec)})
	}
	if err := body.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTooLarge, err)
	}

	buf := make([]byte, 0, HeaderLen+body.EncodedLen())
	buf = append(buf, magic4[:]...)
	buf = append(buf, version)
	for _, it := range body {
		buf = tlv.AppendItem(buf, it)
	}
	return buf, nil
}

var strict = tlv.Decoder{RejectTrailing: true}

// DecodeEntry parses an envelope; any malformation yields ErrCorrupt.
func DecodeEntry(b []byte) (Entry, error) {
	if len(b) < HeaderLen || !hasMagic(b) || b[4] != version {
		return Entry{}, ErrCorrupt
	}
	body, err := strict.Decode(b[HeaderLen:])
	if err != nil {
		return Entry{}, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}

	var e Entry
	p, ok := body.Find(TagPayload)
	if !ok {
		return Entry{}, fmt.Errorf("%w: no payload", ErrCorrupt)
	}
	e.Payload = p

	if ts, ok := body.Find(TagStoredAt); ok {
		if len(ts) != 8 {
			return Entry{}, fmt.Errorf("%w: stored_at length %d", ErrCorrupt, len(ts))
		}
		e.StoredAt = int64(binary.BigEndian.Uint64(ts))
	}
	if name, ok := body.Find(TagCodec); ok {
		e.Codec = string(name)
	}
	return e, nil
}
