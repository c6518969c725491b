package vector

// Utilization returns the ratio of live elements to capacity (0.0 to 1.0).
// Returns 0.0 if the array has no capacity.
func (a *Array[T]) Utilization() float64 {
	capacity := a.Capacity()
	if capacity == 0 {
		return 0
	}
	return float64(a.Size()) / float64(capacity)
}

// Reallocations returns how many times the buffer has been replaced by
// growth or Reserve. The count moves with the buffer on Move and Swap and
// starts over on Clone and CopyFrom.
func (a *Array[T]) Reallocations() int {
	if a == nil {
		return 0
	}
	return a.reallocs
}

// Metrics returns a snapshot of array statistics.
func (a *Array[T]) Metrics() Metrics {
	size := elemSize[T]()
	return Metrics{
		Size:          a.Size(),
		Capacity:      a.Capacity(),
		ElemSize:      size,
		BytesReserved: uint64(a.Capacity()) * uint64(size),
		Reallocations: a.Reallocations(),
		Utilization:   a.Utilization(),
	}
}

// Metrics contains statistical information about an array.
type Metrics struct {
	Size          int     // Live elements
	Capacity      int     // Allocated slots
	ElemSize      uintptr // Bytes per element
	BytesReserved uint64  // Capacity * ElemSize
	Reallocations int     // Buffer replacements so far
	Utilization   float64 // Ratio of size to capacity (0.0-1.0)
}
