package vector

import (
	"errors"
	"fmt"
)

// Example demonstrates basic vector usage
func Example() {
	v := New[int]()
	defer v.Release() // Always clean up

	for i := 1; i <= 3; i++ {
		_ = v.PushBack(i)
		fmt.Printf("size=%d cap=%d\n", v.Size(), v.Cap())
	}
	fmt.Println(*v.Index(0), *v.Index(1), *v.Index(2))

	// Checked access
	if _, err := v.At(3); errors.Is(err, ErrOutOfRange) {
		fmt.Println("At(3):", err)
	}

	// Replace the contents
	_ = v.Assign(3, 9)
	fmt.Println(*v.Index(0), *v.Index(1), *v.Index(2))

	// Output:
	// size=1 cap=2
	// size=2 cap=2
	// size=3 cap=4
	// 1 2 3
	// At(3): vector: index out of range: index 3, size 3
	// 9 9 9
}

// ExampleNewFilled demonstrates the fill constructor
func ExampleNewFilled() {
	v, err := NewFilled(5, "x")
	if err != nil {
		panic(err)
	}
	defer v.Release()

	fmt.Println(v.Size(), *v.Index(4))

	// Output:
	// 5 x
}

// ExampleArena demonstrates vectors sharing a typed arena
func ExampleArena() {
	a := NewArena[float64](256)
	defer a.Release()

	xs := New(WithAllocator[float64](a))
	ys := New(WithAllocator[float64](a))
	for i := 0; i < 10; i++ {
		_ = xs.PushBack(float64(i))
		_ = ys.PushBack(float64(i * i))
	}
	fmt.Printf("xs[9]=%.0f ys[9]=%.0f\n", *xs.Index(9), *ys.Index(9))
	fmt.Printf("Arena chunks: %d\n", a.NumChunks())

	// Reset for reuse once no vector holds arena memory
	xs.Release()
	ys.Release()
	a.Reset()
	fmt.Printf("After reset, slots in use: %d\n", a.SizeInUse())

	// Output:
	// xs[9]=9 ys[9]=81
	// Arena chunks: 1
	// After reset, slots in use: 0
}

// ExampleLimitedAllocator demonstrates the all-or-nothing Reserve
func ExampleLimitedAllocator() {
	v := New(WithAllocator[int](NewLimitedAllocator[int](nil, 8)))
	for i := 0; i < 4; i++ {
		_ = v.PushBack(i)
	}

	err := v.Reserve(100)
	fmt.Println(errors.Is(err, ErrAllocationFailed))
	fmt.Println(v.Size(), v.Cap(), *v.Index(3))

	// Output:
	// true
	// 4 4 3
}
