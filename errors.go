package dhwire

import "fmt"

// EntryError reports a failure to encode, store or fetch one key.
type EntryError struct {
	Key string
	Op  string // "encode", "set", "get", "del"
	Err error
}

func (e *EntryError) Error() string {
	return fmt.Sprintf("dhwire: %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *EntryError) Unwrap() error { return e.Err }
