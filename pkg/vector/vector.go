package vector

import (
	"fmt"
	"iter"
	"log/slog"

	"github.com/joshuapare/vectorkit/internal/logger"
)

const (
	// NotFound is returned by Search when no element matches.
	NotFound = -1

	// DefaultAllocation replaces a non-positive initial allocation hint.
	DefaultAllocation = 1
)

// Destructor releases whatever an element owns.
type Destructor[T any] func(elem *T)

// Compare orders two elements, returning a negative, zero or positive value.
// Search calls it as cmp(&key, elem).
type Compare[T any] func(a, b *T) int

// Visitor is called by Map for each element. It may modify *elem.
type Visitor[T any] func(elem *T, aux any)

// Vector is a growable array of T with a fixed growth increment.
type Vector[T any] struct {
	elems   []T // len == allocated capacity
	count   int
	growBy  int
	destroy Destructor[T]

	log      *slog.Logger
	maxLen   int
	disposed bool
}

// New creates a vector with room for initialAllocation elements. The same
// number of slots is added each time the vector grows. A non-positive
// initialAllocation is replaced by DefaultAllocation. destroy may be nil.
func New[T any](destroy Destructor[T], initialAllocation int, opts *Options) *Vector[T] {
	if initialAllocation <= 0 {
		initialAllocation = DefaultAllocation
	}
	o := opts.resolve()

	capacity := initialAllocation
	if o.MaxLen > 0 && capacity > o.MaxLen {
		capacity = o.MaxLen
	}

	return &Vector[T]{
		elems:   make([]T, capacity),
		growBy:  initialAllocation,
		destroy: destroy,
		log:     o.Logger,
		maxLen:  o.MaxLen,
	}
}

// Dispose runs the Destructor on every live element in index order and drops
// the backing array. The vector must not be used afterwards.
func (v *Vector[T]) Dispose() {
	v.checkLive()

	destroyed := 0
	if v.destroy != nil {
		for i := 0; i < v.count; i++ {
			v.destroy(&v.elems[i])
		}
		destroyed = v.count
	}

	v.elems = nil
	v.count = 0
	v.disposed = true
	v.logger().Debug("vector: dispose", "destroyed", destroyed)
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int {
	return v.count
}

// Cap returns the number of allocated slots.
func (v *Vector[T]) Cap() int {
	return len(v.elems)
}

// GrowBy returns the number of slots added per growth.
func (v *Vector[T]) GrowBy() int {
	return v.growBy
}

// At returns a pointer to the element at position. The pointer is invalidated
// by the next mutating call.
func (v *Vector[T]) At(position int) *T {
	v.checkLive()
	v.checkPos(position, "at")
	return &v.elems[position]
}

// Get returns a copy of the element at position.
func (v *Vector[T]) Get(position int) T {
	return *v.At(position)
}

// Values returns a copy of the live elements.
func (v *Vector[T]) Values() []T {
	v.checkLive()
	out := make([]T, v.count)
	copy(out, v.elems[:v.count])
	return out
}

// All yields index/value pairs in order. The vector must not be mutated
// while iterating.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	v.checkLive()
	return func(yield func(int, T) bool) {
		for i := 0; i < v.count; i++ {
			if !yield(i, v.elems[i]) {
				return
			}
		}
	}
}

func (v *Vector[T]) logger() *slog.Logger {
	return logger.Or(v.log)
}

func (v *Vector[T]) checkLive() {
	if v.disposed {
		panic(ErrDisposed)
	}
}

func (v *Vector[T]) checkPos(position int, op string) {
	if position < 0 || position >= v.count {
		panic(fmt.Errorf("%w: %s position %d, length %d", ErrOutOfRange, op, position, v.count))
	}
}
