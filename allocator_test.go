package vector

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeapAllocatorAllocate(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		wantLen int
		wantErr error
	}{
		{"zero", 0, 0, nil},
		{"small", 5, 5, nil},
		{"negative", -1, 0, ErrAllocationFailed},
		{"too large", math.MaxInt, 0, ErrAllocationFailed},
	}

	var a HeapAllocator[int64]
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			block, err := a.Allocate(tt.n)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, block)
				return
			}
			require.NoError(t, err)
			assert.Len(t, block, tt.wantLen)
			assert.Equal(t, tt.wantLen, cap(block))
		})
	}
}

func TestCheckSlotsZeroSizedElements(t *testing.T) {
	assert.NoError(t, checkSlots[struct{}](math.MaxInt))
	assert.ErrorIs(t, checkSlots[struct{}](-1), ErrAllocationFailed)
	assert.ErrorIs(t, checkSlots[[1 << 20]byte](math.MaxInt/2), ErrAllocationFailed)
}

func TestConstructInPlace(t *testing.T) {
	slot := 17
	require.NoError(t, ConstructInPlace(&slot, nil))
	assert.Equal(t, 0, slot, "nil init constructs the zero value")

	require.NoError(t, ConstructInPlace(&slot, func(p *int) error {
		*p = 3
		return nil
	}))
	assert.Equal(t, 3, slot)

	errInit := errors.New("init failed")
	err := ConstructInPlace(&slot, func(p *int) error {
		*p = 99
		return errInit
	})
	assert.Equal(t, errInit, err)
	assert.Equal(t, 0, slot, "failed construction must leave no object behind")
}

func TestDestroyInPlace(t *testing.T) {
	p := &probe{}
	slot := item{val: 4, p: p}
	DestroyInPlace(&slot)
	assert.Equal(t, 1, p.destroys)
	assert.Equal(t, item{}, slot)

	n := 5
	DestroyInPlace(&n)
	assert.Equal(t, 0, n)
}

func TestCopyOf(t *testing.T) {
	p := &probe{}
	src := item{val: 8, p: p}
	var dst item
	require.NoError(t, copyOf(&src)(&dst))
	assert.Equal(t, src, dst)
	assert.Equal(t, 1, p.copies, "CopyFrom must be used when *T implements Copier")

	s := "plain"
	var d string
	require.NoError(t, copyOf(&s)(&d))
	assert.Equal(t, "plain", d)
}

func TestAllocatorsImplementInterface(t *testing.T) {
	offHeap, err := NewOffHeapAllocator[int]()
	require.NoError(t, err)
	defer offHeap.Close()

	allocators := map[string]Allocator[int]{
		"heap":    HeapAllocator[int]{},
		"arena":   NewArena[int](16),
		"offheap": offHeap,
		"limited": NewLimitedAllocator[int](nil, 100),
		"stats":   NewStatsAllocator[int](nil),
		"logging": NewLoggingAllocator[int](nil, nil),
	}
	for name, a := range allocators {
		t.Run(name, func(t *testing.T) {
			v := New(WithAllocator(a))
			for i := 0; i < 20; i++ {
				require.NoError(t, v.PushBack(i))
			}
			require.NoError(t, v.Assign(7, 3))
			for i := 0; i < 7; i++ {
				assert.Equal(t, 3, *v.Index(i))
			}
			v.Release()
		})
	}
}
