package vector

import (
	"testing"
)

func TestArrayMetrics(t *testing.T) {
	a := NewReserved[int64](ReserveCapacity(4))

	// Test initial state
	if a.Size() != 0 {
		t.Errorf("Initial Size = %d, want 0", a.Size())
	}
	if a.Capacity() != 4 {
		t.Errorf("Initial Capacity = %d, want 4", a.Capacity())
	}
	if a.Utilization() != 0 {
		t.Errorf("Initial Utilization = %f, want 0", a.Utilization())
	}
	if a.Reallocations() != 0 {
		t.Errorf("Initial Reallocations = %d, want 0", a.Reallocations())
	}

	// Fill half
	a.PushBack(1)
	a.PushBack(2)
	if u := a.Utilization(); u != 0.5 {
		t.Errorf("Utilization = %f, want 0.5", u)
	}

	// Force growth
	for i := 0; i < 3; i++ {
		a.PushBack(int64(i))
	}
	if a.Capacity() != 8 {
		t.Errorf("Capacity after growth = %d, want 8", a.Capacity())
	}
	if a.Reallocations() != 1 {
		t.Errorf("Reallocations after growth = %d, want 1", a.Reallocations())
	}

	// Test metrics snapshot
	m := a.Metrics()
	if m.Size != a.Size() {
		t.Errorf("Metrics.Size = %d, want %d", m.Size, a.Size())
	}
	if m.Capacity != a.Capacity() {
		t.Errorf("Metrics.Capacity = %d, want %d", m.Capacity, a.Capacity())
	}
	if m.ElemSize != 8 {
		t.Errorf("Metrics.ElemSize = %d, want 8", m.ElemSize)
	}
	if m.BytesReserved != 64 {
		t.Errorf("Metrics.BytesReserved = %d, want 64", m.BytesReserved)
	}
	if m.Reallocations != 1 {
		t.Errorf("Metrics.Reallocations = %d, want 1", m.Reallocations)
	}
	if m.Utilization != a.Utilization() {
		t.Errorf("Metrics.Utilization = %f, want %f", m.Utilization, a.Utilization())
	}
}

func TestEmptyArrayMetrics(t *testing.T) {
	var a Array[string]
	m := a.Metrics()
	if m.Size != 0 || m.Capacity != 0 || m.BytesReserved != 0 {
		t.Errorf("empty Metrics = %+v, want zero counts", m)
	}
	if m.Utilization != 0 {
		t.Errorf("empty Utilization = %f, want 0", m.Utilization)
	}
}

func TestReallocationsFollowBuffer(t *testing.T) {
	a := New[int]()
	for i := 0; i < 5; i++ {
		a.PushBack(i) // caps 1, 2, 4, 8
	}
	if a.Reallocations() != 4 {
		t.Fatalf("Reallocations = %d, want 4", a.Reallocations())
	}

	b := New[int]()
	a.Swap(b)
	if a.Reallocations() != 0 || b.Reallocations() != 4 {
		t.Errorf("after Swap a=%d b=%d, want 0 and 4", a.Reallocations(), b.Reallocations())
	}

	c := b.Move()
	if b.Reallocations() != 0 || c.Reallocations() != 4 {
		t.Errorf("after Move b=%d c=%d, want 0 and 4", b.Reallocations(), c.Reallocations())
	}

	if d := c.Clone(); d.Reallocations() != 0 {
		t.Errorf("Clone Reallocations = %d, want 0", d.Reallocations())
	}
}
