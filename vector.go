package vector

import (
	"fmt"
	"math"
)

// Vector is a contiguous, growable sequence of T. The first Size() slots of
// its block hold live elements and the remaining Cap()-Size() slots hold
// none. Not goroutine-safe; use SafeVector for concurrent access.
type Vector[T any] struct {
	data     []T // len(data) is the capacity; nil when capacity is 0
	size     int
	alloc    Allocator[T]
	released bool
}

// Option configures a Vector at construction.
type Option[T any] func(*Vector[T])

// WithAllocator makes the vector source memory and element lifecycle from a.
// A nil a keeps the default HeapAllocator.
func WithAllocator[T any](a Allocator[T]) Option[T] {
	return func(v *Vector[T]) {
		if a != nil {
			v.alloc = a
		}
	}
}

// New returns an empty, unallocated vector.
func New[T any](opts ...Option[T]) *Vector[T] {
	v := &Vector[T]{alloc: HeapAllocator[T]{}}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// NewWithCapacity returns an empty vector with room for n elements.
func NewWithCapacity[T any](n int, opts ...Option[T]) (*Vector[T], error) {
	v := New(opts...)
	if err := v.Reserve(n); err != nil {
		return nil, err
	}
	return v, nil
}

// NewFilled returns a vector holding n copies of value.
func NewFilled[T any](n int, value T, opts ...Option[T]) (*Vector[T], error) {
	v := New(opts...)
	if err := v.Assign(n, value); err != nil {
		v.Release()
		return nil, err
	}
	return v, nil
}

// Size returns the number of live elements.
func (v *Vector[T]) Size() int {
	return v.size
}

// Cap returns the number of slots in the current block.
func (v *Vector[T]) Cap() int {
	return len(v.data)
}

// Reserve grows the block to hold at least n elements. It never shrinks:
// n <= Cap() is a no-op that touches nothing.
//
// Reserve is all-or-nothing. If allocation or the copy of any element
// fails, the elements copied so far are destroyed, the new block is
// released, and the vector is exactly as before the call.
func (v *Vector[T]) Reserve(n int) error {
	v.panicIfReleased()
	if n <= 0 || n <= len(v.data) {
		return nil
	}

	block, err := v.alloc.Allocate(n)
	if err != nil {
		return err
	}
	for i := 0; i < v.size; i++ {
		if err := v.alloc.Construct(&block[i], copyOf(&v.data[i])); err != nil {
			v.destroyRange(block, i)
			v.alloc.Deallocate(block, n)
			return &ConstructionError{Op: "reserve", Index: i, Err: err}
		}
	}

	v.destroyRange(v.data, v.size)
	if v.data != nil {
		v.alloc.Deallocate(v.data, len(v.data))
	}
	v.data = block
	return nil
}

// Assign replaces the contents with n copies of value.
//
// The old contents are destroyed and their block released before the new
// block is requested, so a failure loses them. If allocation fails the
// vector is left empty with no block. If copying fails at element i, the i
// copies already made are destroyed and the vector keeps the new block with
// Size() == 0.
func (v *Vector[T]) Assign(n int, value T) error {
	v.panicIfReleased()
	v.clear()
	if n <= 0 {
		return nil
	}
	if err := v.Reserve(n); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		if err := v.alloc.Construct(&v.data[i], copyOf(&value)); err != nil {
			v.destroyRange(v.data, i)
			return &ConstructionError{Op: "assign", Index: i, Err: err}
		}
	}
	v.size = n
	return nil
}

// Index returns a pointer to element i without a bounds check against
// Size(). Callers must guarantee 0 <= i < Size(); any other index is a bug
// (indexes at or past Cap() panic).
func (v *Vector[T]) Index(i int) *T {
	return &v.data[i]
}

// At returns a pointer to element i, or an error matching ErrOutOfRange
// when i is not in [0, Size()).
func (v *Vector[T]) At(i int) (*T, error) {
	if i < 0 || i >= v.size {
		return nil, outOfRange(i, v.size)
	}
	return &v.data[i], nil
}

// PushBack appends a copy of value.
func (v *Vector[T]) PushBack(value T) error {
	return v.EmplaceBack(copyOf(&value))
}

// EmplaceBack appends an element built in place by init. A nil init
// appends the zero value.
//
// If init fails, Size() is unchanged and the slot holds no live element.
// Capacity gained to make room is kept.
func (v *Vector[T]) EmplaceBack(init func(*T) error) error {
	v.panicIfReleased()
	if err := v.grow(); err != nil {
		return err
	}
	if err := v.alloc.Construct(&v.data[v.size], init); err != nil {
		return &ConstructionError{Op: "emplace", Index: v.size, Err: err}
	}
	v.size++
	return nil
}

// Release destroys every live element, returns the block to the
// allocator and makes the vector unusable. Mutating it afterwards panics.
// Releasing twice is safe.
func (v *Vector[T]) Release() {
	if v.released {
		return
	}
	v.clear()
	v.released = true
}

// Move transfers the block, the elements and the allocator to a new
// vector and leaves v empty with no block. v stays usable and keeps
// sharing the allocator.
func (v *Vector[T]) Move() *Vector[T] {
	v.panicIfReleased()
	moved := &Vector[T]{data: v.data, size: v.size, alloc: v.alloc}
	v.data = nil
	v.size = 0
	return moved
}

// grow makes room for one more element, doubling capacity (starting at 2).
func (v *Vector[T]) grow() error {
	if v.size < len(v.data) {
		return nil
	}
	capacity := len(v.data)
	if capacity > math.MaxInt/2 {
		return fmt.Errorf("%w: capacity %d cannot double", ErrAllocationFailed, capacity)
	}
	return v.Reserve(max(2, capacity*2))
}

// clear destroys all live elements and releases the block.
func (v *Vector[T]) clear() {
	v.destroyRange(v.data, v.size)
	if v.data != nil {
		v.alloc.Deallocate(v.data, len(v.data))
	}
	v.data = nil
	v.size = 0
}

// destroyRange destroys block[0:n].
func (v *Vector[T]) destroyRange(block []T, n int) {
	for i := 0; i < n; i++ {
		v.alloc.Destroy(&block[i])
	}
}

// panicIfReleased panics if the vector has been released.
func (v *Vector[T]) panicIfReleased() {
	if v.released {
		panic("vector: use after Release()")
	}
}
