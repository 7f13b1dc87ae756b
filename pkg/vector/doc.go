/*
Package vector provides a generic growable array with explicit capacity
growth and element lifecycle hooks.

# Quick Start

	v := vector.New[int](nil, 2, nil)
	defer v.Dispose()

	v.Append(1)
	v.Append(2)
	v.Append(3)       // grows from 2 to 4 slots
	v.Insert(99, 1)   // [1 99 2 3]
	v.Delete(0)       // [99 2 3]

	idx := v.Search(2, compare.Ordered[int](), 0, false) // 1

# Growth

A Vector starts with room for the initial allocation hint and grows by that
same number of slots every time it is full. It never shrinks. Growth moves
the elements to a new backing array, so pointers returned by At (or passed to
a Visitor) must not be kept across a mutating call.

# Destructors

The optional Destructor runs on an element right before its storage is
overwritten by Replace, removed by Delete, or torn down by Dispose (in index
order). Elements shifted by Insert or Delete, or reordered by Sort, are
moved, not destroyed.

# Searching

Search scans linearly and returns the lowest matching index, or, when told
the range is sorted, runs a binary search and returns any matching index.
Sortedness is the caller's promise and is not checked.

# Error Handling

Out-of-range positions, nil callbacks and use after Dispose are programming
errors and panic with an error wrapping ErrOutOfRange, ErrNilFunc or
ErrDisposed. Exceeding Options.MaxLen panics with ErrGrowFail. In every case
the vector is left as it was before the call.

For fixed-size records that should live outside the Go heap (for example in
an mmap arena), use the type-erased slots package instead.
*/
package vector
