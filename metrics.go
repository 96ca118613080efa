package vector

// VectorMetrics contains statistical information about a vector.
type VectorMetrics struct {
	Size        int     // Live elements
	Capacity    int     // Slots in the current block
	Utilization float64 // Ratio of size to capacity (0.0-1.0)
}

// Utilization returns the ratio of live elements to capacity (0.0 to 1.0).
// Returns 0.0 if the vector has no block.
func (v *Vector[T]) Utilization() float64 {
	if len(v.data) == 0 {
		return 0
	}
	return float64(v.size) / float64(len(v.data))
}

// Metrics returns a snapshot of vector statistics.
func (v *Vector[T]) Metrics() VectorMetrics {
	return VectorMetrics{
		Size:        v.Size(),
		Capacity:    v.Cap(),
		Utilization: v.Utilization(),
	}
}

// SizeInUse returns the number of slots currently handed out by the arena.
func (a *Arena[T]) SizeInUse() int {
	sum := 0
	for _, c := range a.chunks {
		sum += c.offset
	}
	return sum
}

// NumChunks returns the number of chunks currently allocated by the arena.
func (a *Arena[T]) NumChunks() int {
	return len(a.chunks)
}

// Capacity returns the total capacity (in slots) of all chunks in the arena.
func (a *Arena[T]) Capacity() int {
	sum := 0
	for _, c := range a.chunks {
		sum += len(c.buf)
	}
	return sum
}

// Utilization returns the ratio of slots in use to total capacity (0.0 to 1.0).
// Returns 0.0 if the arena has no capacity.
func (a *Arena[T]) Utilization() float64 {
	capacity := a.Capacity()
	if capacity == 0 {
		return 0
	}
	return float64(a.SizeInUse()) / float64(capacity)
}

// ChunkSize returns the default chunk size used by this arena.
func (a *Arena[T]) ChunkSize() int {
	return a.chunkSize
}

// Metrics returns a snapshot of arena statistics.
func (a *Arena[T]) Metrics() ArenaMetrics {
	return ArenaMetrics{
		SizeInUse:   a.SizeInUse(),
		Capacity:    a.Capacity(),
		NumChunks:   a.NumChunks(),
		ChunkSize:   a.ChunkSize(),
		Utilization: a.Utilization(),
	}
}

// ArenaMetrics contains statistical information about an arena.
type ArenaMetrics struct {
	SizeInUse   int     // Slots currently handed out
	Capacity    int     // Total capacity in slots
	NumChunks   int     // Number of chunks
	ChunkSize   int     // Default chunk size
	Utilization float64 // Ratio of used to total capacity (0.0-1.0)
}

// AllocatorMetrics contains the counters kept by a StatsAllocator.
type AllocatorMetrics struct {
	Allocations       int64 // Successful Allocate calls returning a block
	FailedAllocations int64 // Allocate calls that returned an error
	Deallocations     int64 // Deallocate calls
	SlotsInUse        int64 // Slots allocated and not yet deallocated
	Constructs        int64 // Successful constructions
	ConstructFailures int64 // Constructions whose init failed
	Destroys          int64 // Destroy calls
	LiveObjects       int64 // Constructs minus Destroys
}

// Balanced reports whether every constructed object was destroyed and
// every allocated slot released.
func (m AllocatorMetrics) Balanced() bool {
	return m.LiveObjects == 0 && m.SlotsInUse == 0
}
