package vector

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLimitedAllocator(t *testing.T) {
	a := NewLimitedAllocator[int](nil, 10)
	assert.Equal(t, 10, a.Limit())

	b1, err := a.Allocate(6)
	require.NoError(t, err)
	assert.Equal(t, 6, a.Allocated())

	_, err = a.Allocate(5)
	require.ErrorIs(t, err, ErrAllocationFailed)
	var ae *AllocError
	require.True(t, errors.As(err, &ae))
	assert.Equal(t, AllocError{Limit: 10, Allocated: 6, Wanted: 5}, *ae)
	assert.Equal(t, "vector: allocation limit reached: limit 10, allocated: 6, wanted: 5", err.Error())
	assert.Equal(t, 6, a.Allocated(), "a failed request must not be charged")

	b2, err := a.Allocate(4)
	require.NoError(t, err)
	assert.Equal(t, 10, a.Allocated())

	a.Deallocate(b1, 6)
	a.Deallocate(b2, 4)
	assert.Equal(t, 0, a.Allocated())

	a.SetLimit(0)
	_, err = a.Allocate(1)
	assert.ErrorIs(t, err, ErrAllocationFailed)
	block, err := a.Allocate(0)
	require.NoError(t, err)
	assert.Nil(t, block)
}

func TestLimitedAllocatorPassesInnerErrors(t *testing.T) {
	a := NewLimitedAllocator[int](NewArena[int](8), 100)
	_, err := a.Allocate(-2)
	assert.ErrorIs(t, err, ErrAllocationFailed)
	assert.Equal(t, 0, a.Allocated())
}
