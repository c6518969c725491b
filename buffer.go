package vector

import (
	"math"
	"runtime"
	"unsafe"
)

// maxAllocBytes bounds a single buffer request before it reaches the runtime.
const maxAllocBytes = uintptr(math.MaxInt)

// Buffer is the exclusive owner of one contiguous block of element storage.
// The zero value is the empty owner (no storage, capacity 0).
//
// A Buffer is never shared: ownership moves wholesale with Move or Swap, and
// duplicating contents is the job of the Array that holds it.
// Do not copy a non-empty Buffer by assignment.
type Buffer[T any] struct {
	data []T // len(data) == cap(data) == capacity; nil when capacity is 0
}

// NewBuffer allocates storage for n elements, each holding the zero value of T.
// n == 0 yields the empty owner. An *AllocError wrapping ErrOutOfMemory is
// returned when the storage cannot be obtained.
func NewBuffer[T any](n int) (Buffer[T], error) {
	if n < 0 {
		panic("vector: negative buffer capacity")
	}
	data, err := allocate[T](n)
	if err != nil {
		return Buffer[T]{}, err
	}
	return Buffer[T]{data: data}, nil
}

// Get returns the whole owned block, including slots past the caller's
// logical size. It performs no bounds policy; nil for the empty owner.
func (b *Buffer[T]) Get() []T {
	return b.data
}

// Cap returns the number of slots owned.
func (b *Buffer[T]) Cap() int {
	return len(b.data)
}

// Swap exchanges ownership with other in O(1).
func (b *Buffer[T]) Swap(other *Buffer[T]) {
	b.data, other.data = other.data, b.data
}

// Move transfers ownership to the returned Buffer and leaves b empty.
func (b *Buffer[T]) Move() Buffer[T] {
	m := Buffer[T]{data: b.data}
	b.data = nil
	return m
}

// Release drops the owned block. The Buffer is left empty and reusable.
func (b *Buffer[T]) Release() {
	b.data = nil
}

// reset returns slots [lo, hi) to the zero value so they hold no references.
func (b *Buffer[T]) reset(lo, hi int) {
	if lo < hi {
		clear(b.data[lo:hi])
	}
}

// allocate obtains n zeroed elements, turning the runtime's recoverable
// allocation panics into an *AllocError. Exhausting physical memory is
// still fatal to the process, as for any Go allocation.
func allocate[T any](n int) (data []T, err error) {
	if n == 0 {
		return nil, nil
	}
	size := elemSize[T]()
	if size > 0 && uintptr(n) > maxAllocBytes/size {
		return nil, &AllocError{Requested: n, ElemSize: size}
	}
	defer func() {
		if r := recover(); r != nil {
			rerr, ok := r.(runtime.Error)
			if !ok {
				panic(r)
			}
			data, err = nil, &AllocError{Requested: n, ElemSize: size, Err: rerr}
		}
	}()
	return make([]T, n), nil
}

// elemSize returns the size in bytes of one T.
func elemSize[T any]() uintptr {
	var zero T
	return unsafe.Sizeof(zero)
}
