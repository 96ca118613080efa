package vector

// LimitedAllocator caps the number of slots outstanding from an inner
// allocator. Requests that would exceed the budget fail with *AllocError
// and never reach inner. Not goroutine-safe.
type LimitedAllocator[T any] struct {
	inner     Allocator[T]
	limit     int
	allocated int
}

// NewLimitedAllocator budgets limit slots of inner. A nil inner budgets a
// HeapAllocator.
func NewLimitedAllocator[T any](inner Allocator[T], limit int) *LimitedAllocator[T] {
	if inner == nil {
		inner = HeapAllocator[T]{}
	}
	return &LimitedAllocator[T]{inner: inner, limit: limit}
}

func (a *LimitedAllocator[T]) Allocate(n int) ([]T, error) {
	if n > 0 && a.allocated+n > a.limit {
		return nil, &AllocError{Limit: a.limit, Allocated: a.allocated, Wanted: n}
	}
	block, err := a.inner.Allocate(n)
	if err != nil {
		return nil, err
	}
	a.allocated += len(block)
	return block, nil
}

func (a *LimitedAllocator[T]) Deallocate(block []T, n int) {
	a.allocated -= len(block)
	a.inner.Deallocate(block, n)
}

func (a *LimitedAllocator[T]) Construct(slot *T, init func(*T) error) error {
	return a.inner.Construct(slot, init)
}

func (a *LimitedAllocator[T]) Destroy(slot *T) {
	a.inner.Destroy(slot)
}

// Allocated returns the slots currently outstanding.
func (a *LimitedAllocator[T]) Allocated() int {
	return a.allocated
}

// Limit returns the slot budget.
func (a *LimitedAllocator[T]) Limit() int {
	return a.limit
}

// SetLimit changes the budget. Blocks already handed out are unaffected.
func (a *LimitedAllocator[T]) SetLimit(limit int) {
	a.limit = limit
}

var _ Allocator[int] = (*LimitedAllocator[int])(nil)
