package vector

import (
	"errors"
	"fmt"
)

var (
	// ErrAllocationFailed is matched by every error caused by a memory
	// source that could not provide a requested block.
	ErrAllocationFailed = errors.New("vector: allocation failed")

	// ErrOutOfRange is returned by checked access with an index outside [0, Size()).
	ErrOutOfRange = errors.New("vector: index out of range")
)

// ConstructionError reports an element constructor that failed inside a
// vector operation. Err is the constructor's own error.
type ConstructionError struct {
	Op    string // operation that was constructing: "reserve", "assign", "emplace"
	Index int    // slot whose construction failed
	Err   error
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("vector: %s: constructing element %d: %v", e.Op, e.Index, e.Err)
}

func (e *ConstructionError) Unwrap() error {
	return e.Err
}

// AllocError is returned when an allocation would exceed a slot budget.
type AllocError struct {
	Limit     int // budget in slots
	Allocated int // slots outstanding at the time of the request
	Wanted    int // slots requested
}

func (e *AllocError) Error() string {
	return fmt.Sprintf("vector: allocation limit reached: limit %d, allocated: %d, wanted: %d",
		e.Limit, e.Allocated, e.Wanted)
}

// Is makes AllocError match ErrAllocationFailed.
func (e *AllocError) Is(target error) bool {
	return target == ErrAllocationFailed
}

func outOfRange(index, size int) error {
	return fmt.Errorf("%w: index %d, size %d", ErrOutOfRange, index, size)
}
