package arena

import "fmt"

// Arena hands out and reclaims raw byte blocks for slot storage.
//
// Implementations:
//   - Heap: Go heap allocation, Free is a no-op
//   - Mmap: anonymous page-aligned mappings (unix), Heap elsewhere
//   - Tracking: accounting wrapper around another Arena
type Arena interface {
	// Alloc returns a zeroed block of exactly n bytes.
	// n == 0 yields an empty, non-nil slice. n < 0 is ErrNegativeSize.
	Alloc(n int) ([]byte, error)

	// Free releases a block previously returned by Alloc on the same arena.
	// The block must not be used afterwards. Freeing an empty block is a no-op.
	Free(b []byte) error

	// Name identifies the arena in logs and reports.
	Name() string
}

// ByName returns a fresh arena for a short name: "heap" or "mmap".
func ByName(name string) (Arena, error) {
	switch name {
	case "", "heap":
		return Heap{}, nil
	case "mmap":
		return NewMmap(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownArena, name)
	}
}
