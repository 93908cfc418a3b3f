// Package descriptor defines the hardware descriptor and enable-step payloads
// that callers exchange as TLV lists.
//
// Field tags:
//
//	TagID           1  utf-8 identifier
//	TagType         2  u32 be hardware type
//	TagCustomParams 3  JSON object text, optional
//	TagStep         4  u32 be enable step (commands only)
package descriptor

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/unkn0wn-root/dhwire/tlv"
)

const (
	TagID           uint16 = 1
	TagType         uint16 = 2
	TagCustomParams uint16 = 3
	TagStep         uint16 = 4
)

// InitParamsKey is the key under which CustomParams is handed to the
// hardware layer when a source is enabled.
const InitParamsKey = "enable_init_params"

var (
	ErrMissingField = errors.New("descriptor: missing field")
	ErrBadField     = errors.New("descriptor: malformed field")
	ErrEmptyID      = errors.New("descriptor: empty id")
	ErrCustomParams = errors.New("descriptor: custom params are not a JSON object")
)

// Descriptor identifies one piece of distributed hardware.
type Descriptor struct {
	ID   string
	Type Type
	// CustomParams is an optional JSON object, e.g.
	// {"camera_resolution":"1920x1080","fps":30}.
	CustomParams string
}

// Validate checks that the ID is set and CustomParams is empty or a JSON
// object.
func (d Descriptor) Validate() error {
	if d.ID == "" {
		return ErrEmptyID
	}
	if d.CustomParams == "" {
		return nil
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal([]byte(d.CustomParams), &obj); err != nil {
		return fmt.Errorf("%w: %v", ErrCustomParams, err)
	}
	return nil
}

// Params decodes CustomParams. An empty string yields an empty map.
func (d Descriptor) Params() (map[string]any, error) {
	out := map[string]any{}
	if d.CustomParams == "" {
		return out, nil
	}
	if err := json.Unmarshal([]byte(d.CustomParams), &out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCustomParams, err)
	}
	return out, nil
}

// MarshalTLV returns the descriptor's fields as a TLV list.
func (d Descriptor) MarshalTLV() (tlv.List, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	l := tlv.List{
		{Type: TagID, Value: []byte(d.ID)},
		{Type: TagType, Value: u32(uint32(d.Type))},
	}
	if d.CustomParams != "" {
		l = append(l, tlv.Item{Type: TagCustomParams, Value: []byte(d.CustomParams)})
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return l, nil
}

// UnmarshalTLV reads a descriptor from l. Unknown tags are ignored and the
// first occurrence of a repeated tag wins.
func UnmarshalTLV(l tlv.List) (Descriptor, error) {
	var d Descriptor
	id, ok := l.Find(TagID)
	if !ok {
		return Descriptor{}, fmt.Errorf("%w: id", ErrMissingField)
	}
	d.ID = string(id)

	raw, ok := l.Find(TagType)
	if !ok {
		return Descriptor{}, fmt.Errorf("%w: type", ErrMissingField)
	}
	t, err := fromU32(raw)
	if err != nil {
		return Descriptor{}, fmt.Errorf("type: %w", err)
	}
	d.Type = Type(t)

	if p, ok := l.Find(TagCustomParams); ok {
		d.CustomParams = string(p)
	}
	if err := d.Validate(); err != nil {
		return Descriptor{}, err
	}
	return d, nil
}

// Marshal encodes d to its TLV wire form.
func Marshal(d Descriptor) ([]byte, error) {
	l, err := d.MarshalTLV()
	if err != nil {
		return nil, err
	}
	return tlv.Encode(l), nil
}

// Unmarshal decodes a descriptor from its TLV wire form.
func Unmarshal(b []byte) (Descriptor, error) {
	l, err := tlv.Decode(b)
	if err != nil {
		return Descriptor{}, err
	}
	return UnmarshalTLV(l)
}

func u32(v uint32) []byte {
	return binary.BigEndian.AppendUint32(nil, v)
}

func fromU32(b []byte) (uint32, error) {
	if len(b) != 4 {
		return 0, fmt.Errorf("%w: u32 length %d", ErrBadField, len(b))
	}
	return binary.BigEndian.Uint32(b), nil
}
