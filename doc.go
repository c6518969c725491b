// Package vector implements a growable, contiguous, random-access sequence
// container on top of an exclusively owned memory buffer.
//
// # Overview
//
// Two types do the work:
//
//   - Buffer owns one contiguous block of element storage. Ownership is
//     never shared; it moves wholesale with Move or Swap.
//   - Array holds one Buffer plus a logical size and implements the
//     sequence operations on top of it.
//
// # Basic Usage
//
//	a := vector.Of(1, 2, 3)   // size 3, capacity 3
//	a.PushBack(4)             // size 4, capacity 6
//	i := a.Insert(1, 99)      // [1 99 2 3 4]
//	a.Erase(i)                // [1 2 3 4]
//
//	v, err := a.At(10)        // err wraps vector.ErrOutOfRange
//
//	for i, v := range a.All() {
//		fmt.Println(i, v)
//	}
//
// # Capacity Growth
//
// PushBack and Insert on a full array grow the buffer to 1 slot when the
// capacity is 0 and to twice the capacity otherwise. Reserve and Resize
// grow to exactly the requested capacity. Capacity never shrinks, except
// through CopyFrom, which like Clone keeps no spare headroom.
//
// # Copy and Move
//
// Clone and CopyFrom duplicate values into a new buffer. Move and MoveFrom
// transfer the buffer and leave the source empty with capacity 0.
//
// # Errors and Preconditions
//
//   - At and RefAt return a *RangeError wrapping ErrOutOfRange.
//   - Reserve returns an *AllocError wrapping ErrOutOfMemory; operations
//     that grow implicitly panic with that error, as make and append do.
//   - Index, Ref, Set, PopBack, Insert and Erase trust the caller. Build
//     with -tags vectordebug to assert their preconditions.
//
// # Important Notes
//
//   - Not goroutine-safe
//   - Reallocation invalidates every slice, pointer and index obtained
//     before it; Insert and Erase invalidate those at or after the position
//   - Slots leaving the live range are reset to the zero value, so removed
//     elements are not kept reachable
//
// # Metrics and Monitoring
//
//	m := a.Metrics()
//	fmt.Printf("Utilization: %.2f%%\n", m.Utilization*100)
//	fmt.Printf("Reallocations: %d\n", m.Reallocations)
//
// The promvector subpackage exports the same snapshot to Prometheus.
package vector
