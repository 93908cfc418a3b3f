package descriptor

import (
	"fmt"

	"github.com/unkn0wn-root/dhwire/tlv"
)

// Command asks a peer to run one EnableStep for a descriptor.
type Command struct {
	Step       EnableStep
	Descriptor Descriptor
}

func (c Command) MarshalTLV() (tlv.List, error) {
	if !c.Step.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrBadField, c.Step)
	}
	l, err := c.Descriptor.MarshalTLV()
	if err != nil {
		return nil, err
	}
	l = append(tlv.List{{Type: TagStep, Value: u32(uint32(c.Step))}}, l...)
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return l, nil
}

func UnmarshalCommandTLV(l tlv.List) (Command, error) {
	raw, ok := l.Find(TagStep)
	if !ok {
		return Command{}, fmt.Errorf("%w: step", ErrMissingField)
	}
	s, err := fromU32(raw)
	if err != nil {
		return Command{}, fmt.Errorf("step: %w", err)
	}
	step := EnableStep(s)
	if !step.Valid() {
		return Command{}, fmt.Errorf("%w: %s", ErrBadField, step)
	}
	d, err := UnmarshalTLV(l)
	if err != nil {
		return Command{}, err
	}
	return Command{Step: step, Descriptor: d}, nil
}

// Codec implements codec.Codec[Descriptor] over the TLV wire form.
type Codec struct{}

func (Codec) Name() string                         { return "descriptor" }
func (Codec) Encode(d Descriptor) ([]byte, error) { return Marshal(d) }
func (Codec) Decode(b []byte) (Descriptor, error) { return Unmarshal(b) }

// CommandCodec implements codec.Codec[Command] over the TLV wire form.
type CommandCodec struct{}

func (CommandCodec) Name() string { return "command" }

func (CommandCodec) Encode(c Command) ([]byte, error) {
	l, err := c.MarshalTLV()
	if err != nil {
		return nil, err
	}
	return tlv.Encode(l), nil
}

func (CommandCodec) Decode(b []byte) (Command, error) {
	l, err := tlv.Decode(b)
	if err != nil {
		return Command{}, err
	}
	return UnmarshalCommandTLV(l)
}
