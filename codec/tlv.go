package codec

import "github.com/unkn0wn-root/dhwire/tlv"

// TLV frames a tlv.List. Encode rejects lists a default-limit peer would
// refuse; the zero value decodes with tlv.DefaultLimits.
type TLV struct {
	Decoder tlv.Decoder
}

var _ Codec[tlv.List] = TLV{}

func (TLV) Name() string { return "tlv" }

func (TLV) Encode(l tlv.List) ([]byte, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return tlv.Encode(l), nil
}

func (c TLV) Decode(b []byte) (tlv.List, error) {
	return c.Decoder.Decode(b)
}
