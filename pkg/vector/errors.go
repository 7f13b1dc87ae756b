package vector

import "errors"

var (
	// ErrOutOfRange indicates a position outside the live elements.
	ErrOutOfRange = errors.New("vector: position out of range")

	// ErrNilFunc indicates a required callback was nil.
	ErrNilFunc = errors.New("vector: nil callback")

	// ErrDisposed indicates use of a vector after Dispose.
	ErrDisposed = errors.New("vector: vector disposed")

	// ErrGrowFail indicates the vector could not grow within its limits.
	ErrGrowFail = errors.New("vector: grow failed")
)
