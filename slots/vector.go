package slots

import (
	"fmt"
	"log/slog"

	"github.com/joshuapare/vectorkit/internal/buf"
	"github.com/joshuapare/vectorkit/internal/logger"
	"github.com/joshuapare/vectorkit/slots/arena"
)

const (
	// NotFound is returned by Search when no element matches.
	NotFound = -1

	// DefaultAllocation replaces a non-positive initial allocation hint.
	DefaultAllocation = 1
)

// FreeFunc releases whatever an element owns. It receives a view of the slot.
type FreeFunc func(elem []byte)

// CompareFunc orders two slots, returning a negative, zero or positive value.
// Search calls it as cmp(key, elem).
type CompareFunc func(a, b []byte) int

// MapFunc visits one slot. It may modify the slot in place.
type MapFunc func(elem []byte, aux any)

// Vector is a growable array of fixed-size byte slots.
type Vector struct {
	data     []byte // len == capacity*elemSize, from arena
	elemSize int
	count    int
	capacity int
	growBy   int
	free     FreeFunc

	arena    arena.Arena
	log      *slog.Logger
	maxSlots int
	disposed bool
}

// New creates a vector of elemSize-byte elements with room for
// initialAllocation elements. The same number of slots is added each time
// the vector grows. A non-positive initialAllocation is replaced by
// DefaultAllocation. free may be nil.
//
// opts may be nil for heap storage and the package logger.
func New(elemSize int, free FreeFunc, initialAllocation int, opts *Options) (*Vector, error) {
	if elemSize <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrElemSize, elemSize)
	}
	if initialAllocation <= 0 {
		initialAllocation = DefaultAllocation
	}
	o := opts.resolve()

	if o.MaxSlots > 0 && initialAllocation > o.MaxSlots {
		return nil, fmt.Errorf("%w: initial allocation %d exceeds MaxSlots %d",
			ErrAllocFail, initialAllocation, o.MaxSlots)
	}

	n, err := buf.SlotBytes(initialAllocation, elemSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAllocFail, err)
	}
	data, err := o.Arena.Alloc(n)
	if err != nil {
		logger.Or(o.Logger).Warn("slots: initial allocation failed",
			"arena", o.Arena.Name(), "bytes", n, "error", err)
		return nil, fmt.Errorf("%w: %w", ErrAllocFail, err)
	}

	return &Vector{
		data:     data,
		elemSize: elemSize,
		capacity: initialAllocation,
		growBy:   initialAllocation,
		free:     free,
		arena:    o.Arena,
		log:      o.Logger,
		maxSlots: o.MaxSlots,
	}, nil
}

// Dispose calls the FreeFunc on every live element in index order and
// releases the buffer to the arena. The vector must not be used afterwards.
func (v *Vector) Dispose() error {
	v.checkLive()

	destroyed := 0
	if v.free != nil {
		for i := 0; i < v.count; i++ {
			v.free(v.slot(i))
		}
		destroyed = v.count
	}

	err := v.arena.Free(v.data)
	v.data = nil
	v.count = 0
	v.capacity = 0
	v.disposed = true

	v.logger().Debug("slots: dispose", "arena", v.arena.Name(), "destroyed", destroyed)
	if err != nil {
		return fmt.Errorf("slots: release buffer: %w", err)
	}
	return nil
}

// Len returns the number of live elements.
func (v *Vector) Len() int {
	return v.count
}

// Cap returns the number of allocated slots.
func (v *Vector) Cap() int {
	return v.capacity
}

// GrowBy returns the number of slots added per growth.
func (v *Vector) GrowBy() int {
	return v.growBy
}

// ElemSize returns the size of one element in bytes.
func (v *Vector) ElemSize() int {
	return v.elemSize
}

// At returns a view of the element at position.
// The view aliases the buffer and is invalidated by the next mutation.
func (v *Vector) At(position int) []byte {
	v.checkLive()
	v.checkPos(position, "at")
	return v.slot(position)
}

// Bytes returns a view of all live elements, back to back.
// The view aliases the buffer and is invalidated by the next mutation.
func (v *Vector) Bytes() []byte {
	v.checkLive()
	end := v.count * v.elemSize
	return v.data[:end:end]
}

// slot returns the view of slot i without checking the live range.
func (v *Vector) slot(i int) []byte {
	s, ok := buf.Slice(v.data, i*v.elemSize, v.elemSize)
	if !ok {
		panic(fmt.Errorf("%w: slot %d beyond capacity %d", ErrOutOfRange, i, v.capacity))
	}
	return s
}

func (v *Vector) logger() *slog.Logger {
	return logger.Or(v.log)
}

func (v *Vector) checkLive() {
	if v.disposed {
		panic(ErrDisposed)
	}
}

func (v *Vector) checkPos(position int, op string) {
	if position < 0 || position >= v.count {
		panic(fmt.Errorf("%w: %s position %d, length %d", ErrOutOfRange, op, position, v.count))
	}
}

func (v *Vector) checkElem(elem []byte) {
	if len(elem) != v.elemSize {
		panic(fmt.Errorf("%w: got %d bytes, want %d", ErrElemSize, len(elem), v.elemSize))
	}
}
