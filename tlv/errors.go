package tlv

import "errors"

var (
	ErrInvalidLength = errors.New("tlv: value length runs past end of buffer")
	ErrValueTooLarge = errors.New("tlv: value too large")
	ErrDataExceeded  = errors.New("tlv: data exceeds maximum size")
	ErrTrailingBytes = errors.New("tlv: trailing bytes after last item")
)

// Numeric decode statuses shared with non-Go peers.
const (
	StatusOK            int32 = 0
	StatusUnknown       int32 = -1
	StatusInvalidLength int32 = -10001
	StatusValueTooLarge int32 = -10002
	StatusDataExceeded  int32 = -10003
)

// Code maps a Decode error to its numeric status. A nil error is StatusOK.
func Code(err error) int32 {
	switch {
	case err == nil:
		return StatusOK
	case errors.Is(err, ErrInvalidLength), errors.Is(err, ErrTrailingBytes):
		return StatusInvalidLength
	case errors.Is(err, ErrValueTooLarge):
		return StatusValueTooLarge
	case errors.Is(err, ErrDataExceeded):
		return StatusDataExceeded
	default:
		return StatusUnknown
	}
}
