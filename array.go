package vector

import (
	"fmt"
	"iter"
	"math"
	"slices"
)

// ReserveRequest asks a constructor to pre-allocate capacity without
// creating any elements.
type ReserveRequest struct {
	Capacity int
}

// ReserveCapacity returns a ReserveRequest for n slots.
func ReserveCapacity(n int) ReserveRequest {
	return ReserveRequest{Capacity: n}
}

// Array is a growable, contiguous, random-access sequence backed by a single
// exclusively owned Buffer. The zero value is an empty array ready to use.
// Not goroutine-safe.
//
// An Array must not be copied by value; use Clone or CopyFrom for a deep
// copy and Move or MoveFrom to transfer the buffer.
//
// A nil *Array reads as empty: the query methods (Size, Capacity, IsEmpty,
// At, RefAt, Slice, ToSlice, the iterators, Metrics) accept it. Mutating
// methods require a non-nil receiver.
//
// Slices, pointers and indices obtained from an Array follow these rules:
// anything that replaces the buffer (Reserve, growth in PushBack or Insert,
// Resize past capacity, CopyFrom, MoveFrom) invalidates all of them, and
// Insert or Erase invalidate those at or after the modified position.
// The rules are not checked at runtime.
type Array[T any] struct {
	buf      Buffer[T]
	size     int
	reallocs int
}

// New returns an empty array with no storage.
func New[T any]() *Array[T] {
	return &Array[T]{}
}

// NewWithSize returns an array of n zero-valued elements with capacity n.
func NewWithSize[T any](n int) *Array[T] {
	return &Array[T]{buf: mustBuffer[T](n), size: n}
}

// NewFilled returns an array of n copies of v with capacity n.
func NewFilled[T any](n int, v T) *Array[T] {
	a := &Array[T]{buf: mustBuffer[T](n), size: n}
	for i := range a.buf.data {
		a.buf.data[i] = v
	}
	return a
}

// Of returns an array holding vals in order, with capacity len(vals).
func Of[T any](vals ...T) *Array[T] {
	a := &Array[T]{buf: mustBuffer[T](len(vals)), size: len(vals)}
	copy(a.buf.data, vals)
	return a
}

// NewReserved returns an empty array with req.Capacity slots pre-allocated.
func NewReserved[T any](req ReserveRequest) *Array[T] {
	return &Array[T]{buf: mustBuffer[T](req.Capacity)}
}

// Clone returns a deep copy holding the live elements. The copy carries no
// spare capacity: its capacity equals a.Size().
func (a *Array[T]) Clone() *Array[T] {
	c := &Array[T]{buf: mustBuffer[T](a.size), size: a.size}
	copy(c.buf.data, a.buf.data[:a.size])
	return c
}

// CopyFrom replaces the contents of a with a deep copy of src.
// Capacity becomes src.Size(). Copying an array onto itself is a no-op.
func (a *Array[T]) CopyFrom(src *Array[T]) {
	if a == src {
		return
	}
	nb := mustBuffer[T](src.size)
	copy(nb.data, src.buf.data[:src.size])
	a.buf.Swap(&nb)
	nb.Release()
	a.size = src.size
	a.reallocs = 0
}

// Move transfers the buffer, size and capacity to a new Array and leaves a
// empty with capacity 0.
func (a *Array[T]) Move() *Array[T] {
	m := &Array[T]{buf: a.buf.Move(), size: a.size, reallocs: a.reallocs}
	a.size, a.reallocs = 0, 0
	return m
}

// MoveFrom releases a's buffer and takes ownership of src's. src is left
// empty with capacity 0. Moving an array onto itself is a no-op.
func (a *Array[T]) MoveFrom(src *Array[T]) {
	if a == src {
		return
	}
	a.buf = src.buf.Move()
	a.size, a.reallocs = src.size, src.reallocs
	src.size, src.reallocs = 0, 0
}

// Size returns the number of live elements.
func (a *Array[T]) Size() int {
	if a == nil {
		return 0
	}
	return a.size
}

// Capacity returns the number of allocated slots.
func (a *Array[T]) Capacity() int {
	if a == nil {
		return 0
	}
	return a.buf.Cap()
}

// IsEmpty reports whether the array holds no live elements.
func (a *Array[T]) IsEmpty() bool {
	return a.Size() == 0
}

// Index returns the element at i without a bounds check against Size.
// i must be in [0, Size()); this is asserted only in vectordebug builds.
func (a *Array[T]) Index(i int) T {
	if debugChecks {
		assertf(i >= 0 && i < a.size, "index %d out of range [0:%d)", i, a.size)
	}
	return a.buf.data[i]
}

// Ref returns a pointer to the element at i, with the same contract as Index.
func (a *Array[T]) Ref(i int) *T {
	if debugChecks {
		assertf(i >= 0 && i < a.size, "index %d out of range [0:%d)", i, a.size)
	}
	return &a.buf.data[i]
}

// Set stores v at i, with the same contract as Index.
func (a *Array[T]) Set(i int, v T) {
	if debugChecks {
		assertf(i >= 0 && i < a.size, "index %d out of range [0:%d)", i, a.size)
	}
	a.buf.data[i] = v
}

// At returns the element at i, or a *RangeError wrapping ErrOutOfRange
// when i is outside [0, Size()).
func (a *Array[T]) At(i int) (T, error) {
	live := a.Slice()
	if i < 0 || i >= len(live) {
		var zero T
		return zero, &RangeError{Index: i, Size: len(live)}
	}
	return live[i], nil
}

// RefAt is the checked counterpart of Ref.
func (a *Array[T]) RefAt(i int) (*T, error) {
	live := a.Slice()
	if i < 0 || i >= len(live) {
		return nil, &RangeError{Index: i, Size: len(live)}
	}
	return &live[i], nil
}

// Front returns the first element. The array must not be empty.
func (a *Array[T]) Front() T {
	return a.Index(0)
}

// Back returns the last element. The array must not be empty.
func (a *Array[T]) Back() T {
	return a.Index(a.size - 1)
}

// Clear removes all elements. Capacity is unchanged.
func (a *Array[T]) Clear() {
	a.buf.reset(0, a.size)
	a.size = 0
}

// Resize sets the size to n. Shrinking drops the tail; growing past
// capacity reallocates to exactly n, and every new element is the zero value.
func (a *Array[T]) Resize(n int) {
	if debugChecks {
		assertf(n >= 0, "negative size %d", n)
	}
	switch {
	case n < a.size:
		a.buf.reset(n, a.size)
	case n > a.size:
		if n > a.buf.Cap() {
			a.mustRealloc(n)
		}
		a.buf.reset(a.size, n)
	}
	a.size = n
}

// Reserve ensures capacity for at least n elements. It never shrinks; when
// it grows, the new capacity is exactly n. On allocation failure it returns
// an *AllocError and leaves the array unchanged.
func (a *Array[T]) Reserve(n int) error {
	if n <= a.buf.Cap() {
		return nil
	}
	return a.realloc(n)
}

// PushBack appends v, doubling capacity first when the array is full.
func (a *Array[T]) PushBack(v T) {
	a.growIfFull()
	a.buf.data[a.size] = v
	a.size++
}

// Insert places v at pos, shifting [pos, Size()) one slot right, and returns
// the index of the inserted element. pos == Size() appends. Growth follows
// the same doubling policy as PushBack.
func (a *Array[T]) Insert(pos int, v T) int {
	if debugChecks {
		assertf(pos >= 0 && pos <= a.size, "insert position %d out of range [0:%d]", pos, a.size)
	}
	a.growIfFull()
	copy(a.buf.data[pos+1:a.size+1], a.buf.data[pos:a.size])
	a.buf.data[pos] = v
	a.size++
	return pos
}

// Erase removes the element at pos, shifting the tail one slot left, and
// returns the index of the element that now occupies pos (Size() when the
// last element was erased).
func (a *Array[T]) Erase(pos int) int {
	if debugChecks {
		assertf(pos >= 0 && pos < a.size, "erase position %d out of range [0:%d)", pos, a.size)
	}
	copy(a.buf.data[pos:a.size-1], a.buf.data[pos+1:a.size])
	a.size--
	a.buf.reset(a.size, a.size+1)
	return pos
}

// PopBack removes the last element. The array must not be empty; release
// builds ignore a PopBack on an empty array.
func (a *Array[T]) PopBack() {
	if debugChecks {
		assertf(a.size > 0, "PopBack on empty array")
	}
	if a.size == 0 {
		return
	}
	a.size--
	a.buf.reset(a.size, a.size+1)
}

// Swap exchanges buffer, size and capacity with other in O(1).
func (a *Array[T]) Swap(other *Array[T]) {
	a.buf.Swap(&other.buf)
	a.size, other.size = other.size, a.size
	a.reallocs, other.reallocs = other.reallocs, a.reallocs
}

// Slice returns a view of the live range [0, Size()). Writes through it
// modify the array; its capacity is clipped so append cannot reach spare slots.
// Empty arrays may return nil.
func (a *Array[T]) Slice() []T {
	if a == nil {
		return nil
	}
	return a.buf.data[:a.size:a.size]
}

// ToSlice returns a copy of the live elements, or nil when there are none.
func (a *Array[T]) ToSlice() []T {
	if a.Size() == 0 {
		return nil
	}
	return slices.Clone(a.Slice())
}

// All iterates over index/value pairs in order.
func (a *Array[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range a.Slice() {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Values iterates over the elements in order.
func (a *Array[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range a.Slice() {
			if !yield(v) {
				return
			}
		}
	}
}

// Backward iterates over index/value pairs from last to first.
func (a *Array[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		live := a.Slice()
		for i := len(live) - 1; i >= 0; i-- {
			if !yield(i, live[i]) {
				return
			}
		}
	}
}

func (a *Array[T]) String() string {
	return fmt.Sprint(a.Slice())
}

// growIfFull applies the doubling policy: capacity 0 becomes 1, otherwise
// capacity doubles. It only runs when size == capacity.
func (a *Array[T]) growIfFull() {
	c := a.buf.Cap()
	if a.size < c {
		return
	}
	next := 1
	if c > 0 {
		if c > math.MaxInt/2 {
			panic(&AllocError{Requested: c, ElemSize: elemSize[T]()})
		}
		next = 2 * c
	}
	a.mustRealloc(next)
}

// realloc moves the live elements into a fresh buffer of exactly n slots.
// Nothing is committed unless the allocation succeeds.
func (a *Array[T]) realloc(n int) error {
	nb, err := NewBuffer[T](n)
	if err != nil {
		return err
	}
	copy(nb.data, a.buf.data[:a.size])
	a.buf.Swap(&nb)
	nb.Release()
	a.reallocs++
	return nil
}

func (a *Array[T]) mustRealloc(n int) {
	if err := a.realloc(n); err != nil {
		panic(err)
	}
}

// mustBuffer allocates for constructors, which report failure by panicking
// with the *AllocError the way make does.
func mustBuffer[T any](n int) Buffer[T] {
	if n < 0 {
		panic("vector: negative size")
	}
	b, err := NewBuffer[T](n)
	if err != nil {
		panic(err)
	}
	return b
}
