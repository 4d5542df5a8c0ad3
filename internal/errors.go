package internal

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrIndexOutOfRange   = errors.New("index out of range")
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrMalformedRecord   = errors.New("malformed record")
	ErrUnencodable       = errors.New("record cannot be encoded")
)

// MalformedRecordError reports the first record that could not be decoded.
// Index is zero-based in file order, or -1 when the document itself is unreadable.
type MalformedRecordError struct {
	Index int
	Err   error
}

func (e *MalformedRecordError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("malformed file: %v", e.Err)
	}
	return fmt.Sprintf("malformed record at index %d: %v", e.Index, e.Err)
}

func (e *MalformedRecordError) Unwrap() []error {
	return []error{ErrMalformedRecord, e.Err}
}

// IOError wraps a filesystem failure while loading or saving.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}
