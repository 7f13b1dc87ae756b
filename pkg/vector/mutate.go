package vector

import (
	"fmt"

	"github.com/joshuapare/vectorkit/internal/buf"
)

// Replace runs the Destructor on the element at position and stores elem there.
func (v *Vector[T]) Replace(elem T, position int) {
	v.checkLive()
	v.checkPos(position, "replace")

	if v.destroy != nil {
		v.destroy(&v.elems[position])
	}
	v.elems[position] = elem
}

// Append stores elem after the last element, growing when full.
func (v *Vector[T]) Append(elem T) {
	v.checkLive()
	v.reserve()
	v.elems[v.count] = elem
	v.count++
}

// Insert stores elem at position, shifting the elements at and after it up
// by one. position == Len() appends. Shifted elements are not destroyed.
func (v *Vector[T]) Insert(elem T, position int) {
	v.checkLive()
	if position == v.count {
		v.Append(elem)
		return
	}
	v.checkPos(position, "insert")

	v.reserve()
	copy(v.elems[position+1:v.count+1], v.elems[position:v.count])
	v.elems[position] = elem
	v.count++
}

// Delete runs the Destructor on the element at position and shifts the
// elements after it down by one. Capacity is unchanged.
func (v *Vector[T]) Delete(position int) {
	v.checkLive()
	v.checkPos(position, "delete")

	if v.destroy != nil {
		v.destroy(&v.elems[position])
	}
	copy(v.elems[position:v.count-1], v.elems[position+1:v.count])
	v.count--

	var zero T
	v.elems[v.count] = zero
}

// reserve ensures there is a free slot at index count. It panics with
// ErrGrowFail, leaving the vector untouched, when MaxLen forbids growth.
func (v *Vector[T]) reserve() {
	if v.count < len(v.elems) {
		return
	}

	newCap, ok := buf.AddOverflowSafe(len(v.elems), v.growBy)
	if !ok {
		panic(fmt.Errorf("%w: capacity overflow at %d", ErrGrowFail, len(v.elems)))
	}
	if v.maxLen > 0 && newCap > v.maxLen {
		if len(v.elems) >= v.maxLen {
			panic(fmt.Errorf("%w: MaxLen %d reached", ErrGrowFail, v.maxLen))
		}
		newCap = v.maxLen
	}

	elems := make([]T, newCap)
	copy(elems, v.elems[:v.count])
	v.logger().Debug("vector: grow", "from", len(v.elems), "to", newCap)
	v.elems = elems
}
