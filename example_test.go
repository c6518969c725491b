package vector

import (
	"errors"
	"fmt"
)

// Example demonstrates basic array usage
func Example() {
	a := Of(1, 2, 3)
	fmt.Printf("size=%d capacity=%d\n", a.Size(), a.Capacity())

	// Appending to a full array doubles its capacity
	a.PushBack(4)
	fmt.Printf("size=%d capacity=%d\n", a.Size(), a.Capacity())

	i := a.Insert(1, 99)
	fmt.Println(a)

	a.Erase(i)
	fmt.Println(a)

	// Output:
	// size=3 capacity=3
	// size=4 capacity=6
	// [1 99 2 3 4]
	// [1 2 3 4]
}

// ExampleArray_At demonstrates checked element access
func ExampleArray_At() {
	a := Of("a", "b")

	v, err := a.At(1)
	fmt.Println(v, err)

	_, err = a.At(5)
	fmt.Println(err)
	fmt.Println(errors.Is(err, ErrOutOfRange))

	// Output:
	// b <nil>
	// vector: index 5 out of range [0:2)
	// true
}

// ExampleNewReserved demonstrates pre-allocating capacity
func ExampleNewReserved() {
	a := NewReserved[int](ReserveCapacity(100))
	for i := 0; i < 100; i++ {
		a.PushBack(i)
	}
	m := a.Metrics()
	fmt.Printf("size=%d capacity=%d reallocations=%d\n", m.Size, m.Capacity, m.Reallocations)

	// Output:
	// size=100 capacity=100 reallocations=0
}

// ExampleArray_Move demonstrates transferring ownership of the buffer
func ExampleArray_Move() {
	a := Of(1, 2, 3)
	b := a.Move()
	fmt.Println(b, b.Capacity())
	fmt.Println(a, a.Capacity())

	c := b.Clone()
	c.Set(0, 100)
	fmt.Println(b, c)

	// Output:
	// [1 2 3] 3
	// [] 0
	// [1 2 3] [100 2 3]
}

// ExampleArray_All demonstrates range-over-func iteration
func ExampleArray_All() {
	a := Of("x", "y", "z")
	for i, v := range a.All() {
		fmt.Println(i, v)
	}

	// Output:
	// 0 x
	// 1 y
	// 2 z
}

// ExampleLess demonstrates lexicographic comparison
func ExampleLess() {
	fmt.Println(Less(Of(1, 2), Of(1, 2, 3)))
	fmt.Println(Less(Of(1, 3), Of(1, 2, 3)))
	fmt.Println(Equal(Of(1, 2), Of(1, 2, 3)))

	// Output:
	// true
	// false
	// false
}
