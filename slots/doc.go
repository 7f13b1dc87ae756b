// Package slots implements a type-erased growable vector of fixed-size byte slots.
//
// # Overview
//
// A Vector stores elements of elemSize bytes each in one contiguous buffer
// obtained from an arena.Arena. Elements are copied in and out byte for byte;
// the vector never interprets them. Callbacks (destructor, comparator,
// visitor) receive []byte views of individual slots.
//
// Capacity grows by a fixed increment, equal to the initial allocation hint,
// whenever an Append or Insert finds the buffer full. Growth allocates a new
// block, copies the live bytes and releases the old block. Capacity never
// shrinks.
//
// # Element Lifecycle
//
// The optional FreeFunc is called on an element at exactly three points:
//
//   - Replace: on the old element, before it is overwritten
//   - Delete: on the removed element, before the tail is shifted down
//   - Dispose: on every live element, in ascending index order
//
// Elements that merely move (the tail shifted by Insert or Delete, or
// elements relocated by growth or Sort) are never passed to FreeFunc.
//
// # Usage Example
//
//	v, err := slots.New(4, nil, 2, nil)
//	if err != nil {
//	    return err
//	}
//	defer v.Dispose()
//
//	rec := make([]byte, 4)
//	for _, n := range []uint32{1, 2, 3} {
//	    binary.LittleEndian.PutUint32(rec, n)
//	    if err := v.Append(rec); err != nil {
//	        return err
//	    }
//	}
//
//	binary.LittleEndian.PutUint32(rec, 2)
//	idx := v.Search(rec, compare.U32LE, 0, false) // 1
//
// # Slot References
//
// At, Bytes and the views handed to callbacks alias the vector's buffer.
// They are invalidated by any mutating call: growth may move the buffer to a
// new block (and an mmap arena unmaps the old one), and Insert/Delete/Sort
// shift bytes between slots.
//
// # Contract Violations
//
// Out-of-range positions, nil callbacks, element slices of the wrong length
// and use after Dispose are programming errors. They panic with an error
// wrapping ErrOutOfRange, ErrNilFunc, ErrElemSize or ErrDisposed, before any
// state is modified. Allocation failures are returned as errors wrapping
// ErrAllocFail or ErrGrowFail and leave the vector unchanged.
//
// # Thread Safety
//
// Vector instances are not thread-safe. Callers must synchronize access
// externally.
package slots
