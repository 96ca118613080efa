package vector

import "sync/atomic"

// StatsAllocator wraps an Allocator and counts every operation passing
// through it. Counters are atomic so a metrics scrape may read them while
// the owning vector is in use.
type StatsAllocator[T any] struct {
	inner Allocator[T]

	allocations       atomic.Int64
	failedAllocations atomic.Int64
	deallocations     atomic.Int64
	slotsInUse        atomic.Int64
	constructs        atomic.Int64
	constructFailures atomic.Int64
	destroys          atomic.Int64
}

// NewStatsAllocator counts the traffic sent to inner. A nil inner counts
// a HeapAllocator.
func NewStatsAllocator[T any](inner Allocator[T]) *StatsAllocator[T] {
	if inner == nil {
		inner = HeapAllocator[T]{}
	}
	return &StatsAllocator[T]{inner: inner}
}

func (s *StatsAllocator[T]) Allocate(n int) ([]T, error) {
	block, err := s.inner.Allocate(n)
	if err != nil {
		s.failedAllocations.Add(1)
		return nil, err
	}
	if block != nil {
		s.allocations.Add(1)
		s.slotsInUse.Add(int64(len(block)))
	}
	return block, nil
}

func (s *StatsAllocator[T]) Deallocate(block []T, n int) {
	s.deallocations.Add(1)
	s.slotsInUse.Add(-int64(len(block)))
	s.inner.Deallocate(block, n)
}

func (s *StatsAllocator[T]) Construct(slot *T, init func(*T) error) error {
	if err := s.inner.Construct(slot, init); err != nil {
		s.constructFailures.Add(1)
		return err
	}
	s.constructs.Add(1)
	return nil
}

func (s *StatsAllocator[T]) Destroy(slot *T) {
	s.destroys.Add(1)
	s.inner.Destroy(slot)
}

// Metrics returns a snapshot of the counters.
func (s *StatsAllocator[T]) Metrics() AllocatorMetrics {
	constructs := s.constructs.Load()
	destroys := s.destroys.Load()
	return AllocatorMetrics{
		Allocations:       s.allocations.Load(),
		FailedAllocations: s.failedAllocations.Load(),
		Deallocations:     s.deallocations.Load(),
		SlotsInUse:        s.slotsInUse.Load(),
		Constructs:        constructs,
		ConstructFailures: s.constructFailures.Load(),
		Destroys:          destroys,
		LiveObjects:       constructs - destroys,
	}
}

var _ Allocator[int] = (*StatsAllocator[int])(nil)
