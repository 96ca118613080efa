package vector

// DefaultChunkSize is the default number of slots per arena chunk.
const DefaultChunkSize = 1 << 10

// chunk represents a single typed chunk within an arena.
type chunk[T any] struct {
	buf    []T // backing slots
	offset int // allocation offset within buf
}

// Arena is a chunked bump allocator of T slots. Blocks are carved
// sequentially out of large chunks; individual deallocation only reclaims
// the most recently allocated block, everything else is reclaimed in bulk
// by Reset or Release. A Reserve that fails after allocating therefore
// hands its block straight back. Not goroutine-safe.
type Arena[T any] struct {
	chunks    []chunk[T]
	chunkSize int
	current   int // index of the chunk serving allocations
}

// NewArena creates a new Arena with the specified chunk size in slots.
// If chunkSize <= 0, DefaultChunkSize is used.
func NewArena[T any](chunkSize int) *Arena[T] {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	a := &Arena[T]{chunkSize: chunkSize}
	a.grow(chunkSize)
	return a
}

// Allocate returns n slots carved from the current chunk, adding a chunk
// when it does not fit. The returned block has cap == n so appends made
// outside the vector cannot spill into neighbouring blocks.
func (a *Arena[T]) Allocate(n int) ([]T, error) {
	a.panicIfReleased()
	if err := checkSlots[T](n); err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}

	// Fast path: current chunk has room
	c := &a.chunks[a.current]
	if c.offset+n <= len(c.buf) {
		start := c.offset
		c.offset += n
		return c.buf[start : start+n : start+n], nil
	}

	return a.allocateSlow(n), nil
}

// allocateSlow handles allocation when the current chunk is full.
func (a *Arena[T]) allocateSlow(n int) []T {
	// Reuse a later chunk kept by Reset before growing.
	for i := a.current + 1; i < len(a.chunks); i++ {
		if len(a.chunks[i].buf) >= n {
			a.current = i
			c := &a.chunks[i]
			c.offset = n
			return c.buf[0:n:n]
		}
	}
	a.grow(n)
	c := &a.chunks[a.current]
	c.offset = n
	return c.buf[0:n:n]
}

// Deallocate reclaims block if it is the most recent allocation of the
// current chunk. Other blocks stay in place until Reset.
func (a *Arena[T]) Deallocate(block []T, n int) {
	if a.chunks == nil || len(block) == 0 {
		return
	}
	c := &a.chunks[a.current]
	start := c.offset - len(block)
	if start < 0 || &c.buf[start] != &block[0] {
		return
	}
	clear(c.buf[start:c.offset])
	c.offset = start
}

func (a *Arena[T]) Construct(slot *T, init func(*T) error) error {
	return ConstructInPlace(slot, init)
}

func (a *Arena[T]) Destroy(slot *T) {
	DestroyInPlace(slot)
}

// EnsureCapacity ensures the current chunk has at least n free slots.
// If not, it grows the arena with a new chunk.
func (a *Arena[T]) EnsureCapacity(n int) {
	a.panicIfReleased()
	c := &a.chunks[a.current]
	if c.offset+n > len(c.buf) {
		a.grow(n)
	}
}

// Reset rewinds every chunk for reuse. Blocks handed out earlier must no
// longer be in use, in particular by a vector that still holds them.
func (a *Arena[T]) Reset() {
	a.panicIfReleased()
	for i := range a.chunks {
		clear(a.chunks[i].buf[:a.chunks[i].offset])
		a.chunks[i].offset = 0
	}
	a.current = 0
}

// Release drops all chunks and makes the arena unusable.
// Any subsequent allocation will panic.
func (a *Arena[T]) Release() {
	a.chunks = nil
	a.current = 0
}

// grow appends a new chunk of at least min slots and makes it current.
func (a *Arena[T]) grow(min int) {
	size := a.chunkSize
	if min > size {
		size = min
	}
	a.chunks = append(a.chunks, chunk[T]{buf: make([]T, size)})
	a.current = len(a.chunks) - 1
}

// panicIfReleased panics if the arena has been released.
func (a *Arena[T]) panicIfReleased() {
	if a.chunks == nil {
		panic("vector: arena used after Release()")
	}
}

var _ Allocator[int] = (*Arena[int])(nil)
