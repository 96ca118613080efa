// Package vector implements a contiguous, growable sequence container with
// a pluggable allocation strategy.
//
// # Overview
//
// A Vector owns a single block of element slots. The first Size() slots
// hold live elements; the remaining Cap()-Size() slots hold none. All
// memory and element lifecycle work goes through an Allocator, so the
// growth policy is written once and any memory source can sit behind it:
//
//   - HeapAllocator: the Go heap (default)
//   - Arena: a chunked bump allocator with bulk Reset
//   - OffHeapAllocator: mmap'd pages outside the garbage collector
//   - LimitedAllocator, StatsAllocator, LoggingAllocator: decorators
//
// # Basic Usage
//
//	v := vector.New[int]()
//	defer v.Release()
//
//	_ = v.PushBack(1)
//	_ = v.PushBack(2)
//	_ = v.PushBack(3) // grows from 2 to 4 slots
//
//	x := *v.Index(0)     // unchecked access
//	p, err := v.At(7)    // checked access, err matches ErrOutOfRange
//
//	_ = v.Assign(5, 9)   // five nines
//
// # Growth
//
// Appending to a full vector reserves max(2, 2*Cap()) slots, so a run of
// appends costs amortized O(1) copies per element. Capacity never shrinks.
//
// # Element Lifecycle
//
// Elements are copied into the block by their copy constructor and taken
// out by their destructor. In Go these are optional methods on *T:
//
//	func (r *Resource) CopyFrom(src *Resource) error // Copier[Resource]
//	func (r *Resource) Destroy()                     // Destroyer
//
// Types without CopyFrom are copied by assignment, which cannot fail.
// Destroy runs exactly once for every element that was successfully
// constructed.
//
// # Failure Guarantees
//
// Operations report failures through their error result:
//
//   - Reserve is all-or-nothing: on any failure the vector is unchanged.
//   - PushBack and EmplaceBack keep Size() unchanged on failure but keep any
//     capacity gained.
//   - Assign discards the old contents before allocating. On failure the
//     vector is left empty; nothing leaks and nothing is destroyed twice.
//
// Allocation failures match ErrAllocationFailed, constructor failures are
// reported as *ConstructionError wrapping the constructor's error, and
// checked access past the end matches ErrOutOfRange.
//
// # Thread Safety
//
// Vector is not thread-safe. For concurrent access, use SafeVector:
//
//	sv := vector.NewSafeVector[string]()
//	defer sv.Release()
//
//	// All operations are thread-safe
//	_ = sv.PushBack("a")
//	s, err := sv.At(0)
//
// # Metrics and Monitoring
//
// Vector, Arena and StatsAllocator expose snapshots, and StatsCollector
// exports a StatsAllocator to Prometheus:
//
//	stats := vector.NewStatsAllocator[int](nil)
//	v := vector.New(vector.WithAllocator[int](stats))
//	prometheus.MustRegister(vector.NewStatsCollector("ints", stats, nil))
package vector
