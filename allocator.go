package vector

import (
	"fmt"
	"unsafe"
)

// maxAllocBytes bounds a single request so that an impossible size fails
// with ErrAllocationFailed instead of aborting the runtime.
const maxAllocBytes uintptr = 1 << (31 + 16*(^uintptr(0)>>63))

// Allocator supplies raw storage and element lifecycle to a Vector.
// A Vector never touches memory except through its Allocator, so an
// alternate memory source (arena, off-heap, pool) substitutes without
// changing the growth logic.
type Allocator[T any] interface {
	// Allocate returns a block of n slots with len == cap == n holding no
	// live objects. Allocate(0) returns nil, nil.
	Allocate(n int) ([]T, error)
	// Deallocate releases a block returned by Allocate. Releasing the same
	// block twice is not detected.
	Deallocate(block []T, n int)
	// Construct initialises the object at slot by running init against it.
	// If init fails the slot is left holding no live object.
	Construct(slot *T, init func(*T) error) error
	// Destroy ends the life of the live object at slot.
	Destroy(slot *T)
}

// Copier is implemented by *T for element types whose copy can fail.
// Elements without it are copied by assignment.
type Copier[T any] interface {
	CopyFrom(src *T) error
}

// Destroyer is implemented by *T for element types that need to run
// cleanup when they leave a container.
type Destroyer interface {
	Destroy()
}

// ConstructInPlace runs init against slot. A nil init leaves the zero
// value. On failure the slot is reset to the zero value and init's error
// is returned unchanged.
func ConstructInPlace[T any](slot *T, init func(*T) error) error {
	if init == nil {
		var zero T
		*slot = zero
		return nil
	}
	if err := init(slot); err != nil {
		var zero T
		*slot = zero
		return err
	}
	return nil
}

// DestroyInPlace runs the element destructor, if any, and clears the slot
// so the backing storage keeps no references alive.
func DestroyInPlace[T any](slot *T) {
	if d, ok := any(slot).(Destroyer); ok {
		d.Destroy()
	}
	var zero T
	*slot = zero
}

// copyOf returns a constructor that copy-constructs from src.
func copyOf[T any](src *T) func(*T) error {
	return func(dst *T) error {
		if c, ok := any(dst).(Copier[T]); ok {
			return c.CopyFrom(src)
		}
		*dst = *src
		return nil
	}
}

// checkSlots validates an allocation request of n slots of T.
func checkSlots[T any](n int) error {
	if n < 0 {
		return fmt.Errorf("%w: negative slot count %d", ErrAllocationFailed, n)
	}
	var zero T
	size := unsafe.Sizeof(zero)
	if size > 0 && uintptr(n) > maxAllocBytes/size {
		return fmt.Errorf("%w: %d slots of %d bytes exceeds %d bytes",
			ErrAllocationFailed, n, size, maxAllocBytes)
	}
	return nil
}

// HeapAllocator takes storage from the Go heap. It is stateless and its
// zero value is ready to use.
type HeapAllocator[T any] struct{}

// Allocate returns n zeroed slots from the Go heap.
func (HeapAllocator[T]) Allocate(n int) ([]T, error) {
	if err := checkSlots[T](n); err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	return make([]T, n), nil
}

// Deallocate is a no-op; the garbage collector reclaims the block once the
// vector drops it.
func (HeapAllocator[T]) Deallocate([]T, int) {}

func (HeapAllocator[T]) Construct(slot *T, init func(*T) error) error {
	return ConstructInPlace(slot, init)
}

func (HeapAllocator[T]) Destroy(slot *T) {
	DestroyInPlace(slot)
}

var _ Allocator[int] = HeapAllocator[int]{}
