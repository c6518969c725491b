package vector

import (
	"cmp"
	"slices"
)

// Equal reports whether a and b have the same size and equal elements at
// every index. Arrays of different sizes are never equal.
func Equal[T comparable](a, b *Array[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// NotEqual is !Equal(a, b).
func NotEqual[T comparable](a, b *Array[T]) bool {
	return !Equal(a, b)
}

// EqualFunc is Equal with a caller-supplied element equality.
func EqualFunc[T any](a, b *Array[T], eq func(x, y T) bool) bool {
	if a.Size() != b.Size() {
		return false
	}
	return slices.EqualFunc(a.Slice(), b.Slice(), eq)
}

// Less reports whether a orders lexicographically before b using the
// element type's < operator.
func Less[T cmp.Ordered](a, b *Array[T]) bool {
	return LessFunc(a, b, func(x, y T) bool { return x < y })
}

// LessOrEqual is Less(a, b) || Equal(a, b).
func LessOrEqual[T cmp.Ordered](a, b *Array[T]) bool {
	return Less(a, b) || Equal(a, b)
}

// Greater is !LessOrEqual(a, b).
func Greater[T cmp.Ordered](a, b *Array[T]) bool {
	return !LessOrEqual(a, b)
}

// GreaterOrEqual is !Less(a, b).
func GreaterOrEqual[T cmp.Ordered](a, b *Array[T]) bool {
	return !Less(a, b)
}

// LessFunc reports whether a orders lexicographically before b, where less
// is a strict weak ordering on elements. A proper prefix orders first.
func LessFunc[T any](a, b *Array[T], less func(x, y T) bool) bool {
	x, y := a.Slice(), b.Slice()
	for i := 0; i < len(x) && i < len(y); i++ {
		if less(x[i], y[i]) {
			return true
		}
		if less(y[i], x[i]) {
			return false
		}
	}
	return len(x) < len(y)
}

// Compare returns -1, 0 or +1 comparing a and b lexicographically with
// cmp.Compare semantics for elements.
func Compare[T cmp.Ordered](a, b *Array[T]) int {
	return slices.Compare(a.Slice(), b.Slice())
}

// CompareFunc is Compare with a caller-supplied three-way element comparison.
func CompareFunc[T any](a, b *Array[T], compare func(x, y T) int) int {
	return slices.CompareFunc(a.Slice(), b.Slice(), compare)
}
