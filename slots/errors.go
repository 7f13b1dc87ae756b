package slots

import "errors"

var (
	// ErrElemSize indicates a non-positive element size at construction, or an
	// element slice whose length differs from the vector's element size.
	ErrElemSize = errors.New("slots: bad element size")

	// ErrOutOfRange indicates a position outside the live elements.
	ErrOutOfRange = errors.New("slots: position out of range")

	// ErrNilFunc indicates a required callback was nil.
	ErrNilFunc = errors.New("slots: nil callback")

	// ErrDisposed indicates use of a vector after Dispose.
	ErrDisposed = errors.New("slots: vector disposed")

	// ErrAllocFail indicates the initial buffer could not be allocated.
	ErrAllocFail = errors.New("slots: allocation failed")

	// ErrGrowFail indicates the buffer could not be grown.
	ErrGrowFail = errors.New("slots: grow failed")
)
