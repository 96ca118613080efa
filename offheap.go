package vector

import (
	"errors"
	"fmt"
	"reflect"
	"unsafe"

	"modernc.org/memory"
)

// ErrPointerElem is returned when an off-heap allocator is requested for an
// element type the garbage collector would need to scan.
var ErrPointerElem = errors.New("vector: element type holds pointers")

// OffHeapAllocator takes storage from mmap'd pages outside the Go heap, so
// large vectors add nothing to garbage collector work. Blocks must be
// released explicitly; Close returns every page at once.
//
// Only pointer-free element types are accepted: memory outside the heap is
// invisible to the collector. Not goroutine-safe.
type OffHeapAllocator[T any] struct {
	mem      memory.Allocator
	elemSize int
}

// NewOffHeapAllocator returns an allocator for T, or ErrPointerElem if T
// contains pointers, strings, slices, maps, channels, funcs or interfaces.
func NewOffHeapAllocator[T any]() (*OffHeapAllocator[T], error) {
	var zero T
	typ := reflect.TypeOf(&zero).Elem()
	if hasPointers(typ) {
		return nil, fmt.Errorf("%w: %s", ErrPointerElem, typ)
	}
	return &OffHeapAllocator[T]{elemSize: int(unsafe.Sizeof(zero))}, nil
}

// Allocate returns n zeroed slots from off-heap pages.
func (a *OffHeapAllocator[T]) Allocate(n int) ([]T, error) {
	if err := checkSlots[T](n); err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	if a.elemSize == 0 {
		return make([]T, n), nil
	}
	b, err := a.mem.Calloc(n * a.elemSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAllocationFailed, err)
	}
	return unsafe.Slice((*T)(unsafe.Pointer(&b[0])), n), nil
}

// Deallocate returns block's pages. It panics if the memory source rejects
// the block, which only happens for blocks it never handed out.
func (a *OffHeapAllocator[T]) Deallocate(block []T, _ int) {
	if len(block) == 0 || a.elemSize == 0 {
		return
	}
	b := unsafe.Slice((*byte)(unsafe.Pointer(&block[0])), len(block)*a.elemSize)
	if err := a.mem.Free(b); err != nil {
		panic(fmt.Errorf("vector: failed to release off-heap block: %w", err))
	}
}

func (a *OffHeapAllocator[T]) Construct(slot *T, init func(*T) error) error {
	return ConstructInPlace(slot, init)
}

func (a *OffHeapAllocator[T]) Destroy(slot *T) {
	DestroyInPlace(slot)
}

// Close releases every block at once. Blocks handed out earlier, and any
// vector still holding one, must no longer be used.
func (a *OffHeapAllocator[T]) Close() error {
	return a.mem.Close()
}

// hasPointers reports whether values of t contain anything the garbage
// collector has to trace.
func hasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.UnsafePointer, reflect.Map, reflect.Slice,
		reflect.String, reflect.Chan, reflect.Func, reflect.Interface:
		return true
	case reflect.Array:
		return t.Len() > 0 && hasPointers(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if hasPointers(t.Field(i).Type) {
				return true
			}
		}
	}
	return false
}

var _ Allocator[int] = (*OffHeapAllocator[int])(nil)
