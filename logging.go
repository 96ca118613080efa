package vector

import (
	"unsafe"

	"github.com/sirupsen/logrus"
)

// LoggingAllocator traces the traffic sent to an inner allocator.
// Block operations and construction failures are logged at debug level,
// allocation failures at warn level.
type LoggingAllocator[T any] struct {
	inner  Allocator[T]
	logger *logrus.Entry
}

// NewLoggingAllocator logs through logger, or the logrus standard logger
// when logger is nil. A nil inner traces a HeapAllocator.
func NewLoggingAllocator[T any](inner Allocator[T], logger *logrus.Logger) *LoggingAllocator[T] {
	if inner == nil {
		inner = HeapAllocator[T]{}
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &LoggingAllocator[T]{
		inner:  inner,
		logger: logger.WithField("prefix", "vector"),
	}
}

// Logger returns the entry every message is logged through.
func (a *LoggingAllocator[T]) Logger() *logrus.Entry {
	return a.logger
}

func (a *LoggingAllocator[T]) Allocate(n int) ([]T, error) {
	block, err := a.inner.Allocate(n)
	if err != nil {
		a.logger.WithError(err).WithField("slots", n).Warn("allocation failed")
		return nil, err
	}
	a.logger.WithFields(logrus.Fields{
		"slots": n,
		"bytes": blockBytes(block),
	}).Debug("allocated block")
	return block, nil
}

func (a *LoggingAllocator[T]) Deallocate(block []T, n int) {
	a.logger.WithFields(logrus.Fields{
		"slots": n,
		"bytes": blockBytes(block),
	}).Debug("released block")
	a.inner.Deallocate(block, n)
}

func (a *LoggingAllocator[T]) Construct(slot *T, init func(*T) error) error {
	if err := a.inner.Construct(slot, init); err != nil {
		a.logger.WithError(err).Debug("construction failed")
		return err
	}
	return nil
}

func (a *LoggingAllocator[T]) Destroy(slot *T) {
	a.inner.Destroy(slot)
}

func blockBytes[T any](block []T) int {
	var zero T
	return len(block) * int(unsafe.Sizeof(zero))
}

var _ Allocator[int] = (*LoggingAllocator[int])(nil)
