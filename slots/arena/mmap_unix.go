//go:build unix

package arena

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"

	"github.com/joshuapare/vectorkit/internal/buf"
)

// Mmap allocates blocks as anonymous private mappings.
// Each block is rounded up to a whole number of pages; the slice returned by
// Alloc has the requested length and the full mapping as its capacity.
type Mmap struct {
	pageSize int
}

// NewMmap returns an mmap-backed arena.
func NewMmap() Arena {
	return &Mmap{pageSize: unix.Getpagesize()}
}

// Alloc maps a fresh zero-filled region of at least n bytes.
func (m *Mmap) Alloc(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeSize, n)
	}
	if n == 0 {
		return []byte{}, nil
	}

	size, ok := buf.AddOverflowSafe(n, m.pageSize-1)
	if !ok {
		return nil, fmt.Errorf("arena: mmap size overflow for %d bytes", n)
	}
	size &^= m.pageSize - 1

	data, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("arena: mmap %d bytes: %w", size, err)
	}
	return data[:n], nil
}

// Free unmaps the region backing b.
func (m *Mmap) Free(b []byte) error {
	if cap(b) == 0 {
		return nil
	}
	err := unix.Munmap(b[:cap(b)])
	if errors.Is(err, unix.EINVAL) {
		// Treat double-unmap as no-op for callers.
		return nil
	}
	return err
}

// Name returns "mmap".
func (m *Mmap) Name() string { return "mmap" }
