package vector

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is reported by checked accessors when the index is not
	// inside the live range [0, Size()).
	ErrOutOfRange = errors.New("vector: index out of range")

	// ErrOutOfMemory is reported when a buffer of the requested capacity
	// cannot be obtained.
	ErrOutOfMemory = errors.New("vector: out of memory")
)

// RangeError describes a failed checked access.
type RangeError struct {
	Index int
	Size  int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("vector: index %d out of range [0:%d)", e.Index, e.Size)
}

// Unwrap returns ErrOutOfRange.
func (e *RangeError) Unwrap() error { return ErrOutOfRange }

// AllocError describes a buffer allocation that could not be satisfied.
type AllocError struct {
	Requested int     // elements requested
	ElemSize  uintptr // size of one element in bytes
	Err       error   // underlying cause, if the runtime reported one
}

func (e *AllocError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("vector: cannot allocate %d elements of %d bytes: %v", e.Requested, e.ElemSize, e.Err)
	}
	return fmt.Sprintf("vector: cannot allocate %d elements of %d bytes", e.Requested, e.ElemSize)
}

// Unwrap returns ErrOutOfMemory, plus the runtime cause when present.
func (e *AllocError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrOutOfMemory, e.Err}
	}
	return []error{ErrOutOfMemory}
}
