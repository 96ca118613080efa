package vector

import "sync"

// SafeVector is a mutex-protected wrapper around Vector for concurrent access.
// All operations are thread-safe but come with the overhead of mutex locking.
// Element reads return copies because a pointer into the block would
// outlive the lock.
type SafeVector[T any] struct {
	mu sync.Mutex
	v  *Vector[T]
}

// NewSafeVector creates a new thread-safe, empty vector.
func NewSafeVector[T any](opts ...Option[T]) *SafeVector[T] {
	return &SafeVector[T]{v: New(opts...)}
}

// Reserve thread-safely grows the block to hold at least n elements.
func (s *SafeVector[T]) Reserve(n int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.Reserve(n)
}

// Assign thread-safely replaces the contents with n copies of value.
func (s *SafeVector[T]) Assign(n int, value T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.Assign(n, value)
}

// PushBack thread-safely appends a copy of value.
func (s *SafeVector[T]) PushBack(value T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.PushBack(value)
}

// EmplaceBack thread-safely appends an element built in place by init.
// init runs with the lock held and must not call back into s.
func (s *SafeVector[T]) EmplaceBack(init func(*T) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.EmplaceBack(init)
}

// Index thread-safely returns a copy of element i. i must be in [0, Size()).
func (s *SafeVector[T]) Index(i int) T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.v.Index(i)
}

// At thread-safely returns a copy of element i, or an error matching
// ErrOutOfRange.
func (s *SafeVector[T]) At(i int) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, err := s.v.At(i)
	if err != nil {
		var zero T
		return zero, err
	}
	return *p, nil
}

// Size thread-safely returns the number of live elements.
func (s *SafeVector[T]) Size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.Size()
}

// Cap thread-safely returns the capacity.
func (s *SafeVector[T]) Cap() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.Cap()
}

// Metrics thread-safely returns a snapshot of vector statistics.
func (s *SafeVector[T]) Metrics() VectorMetrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.Metrics()
}

// Release thread-safely destroys the contents and makes the vector unusable.
func (s *SafeVector[T]) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.v.Release()
}
