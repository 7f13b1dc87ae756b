package arena

import "fmt"

// Heap allocates blocks from the Go heap.
type Heap struct{}

// Alloc returns make([]byte, n).
func (Heap) Alloc(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeSize, n)
	}
	return make([]byte, n), nil
}

// Free is a no-op; the garbage collector owns heap blocks.
func (Heap) Free([]byte) error { return nil }

// Name returns "heap".
func (Heap) Name() string { return "heap" }
