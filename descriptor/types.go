package descriptor

import "fmt"

// Type is the hardware-type bit value carried in TagType.
type Type uint32

const (
	TypeUnknown       Type = 0x00
	TypeCamera        Type = 0x01
	TypeAudio         Type = 0x02
	TypeScreen        Type = 0x04
	TypeVirmodemAudio Type = 0x08
	TypeInput         Type = 0x10
	TypeA2D           Type = 0x20
	TypeGPS           Type = 0x40
	TypeHFP           Type = 0x80
)

var typeNames = map[Type]string{
	TypeUnknown:       "unknown",
	TypeCamera:        "camera",
	TypeAudio:         "audio",
	TypeScreen:        "screen",
	TypeVirmodemAudio: "virmodem_audio",
	TypeInput:         "input",
	TypeA2D:           "a2d",
	TypeGPS:           "gps",
	TypeHFP:           "hfp",
}

func (t Type) String() string {
	if s, ok := typeNames[t]; ok {
		return s
	}
	return fmt.Sprintf("type(0x%x)", uint32(t))
}

// EnableStep orders the enable/disable lifecycle of a source or sink.
type EnableStep uint32

const (
	EnableSource  EnableStep = 1
	DisableSource EnableStep = 2
	EnableSink    EnableStep = 3
	DisableSink   EnableStep = 4
)

func (s EnableStep) Valid() bool { return s >= EnableSource && s <= DisableSink }

func (s EnableStep) String() string {
	switch s {
	case EnableSource:
		return "enable_source"
	case DisableSource:
		return "disable_source"
	case EnableSink:
		return "enable_sink"
	case DisableSink:
		return "disable_sink"
	default:
		return fmt.Sprintf("step(%d)", uint32(s))
	}
}
