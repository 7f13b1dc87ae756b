package arena

import "fmt"

// Stats reports what a Tracking arena has seen.
type Stats struct {
	Allocs    int   // successful Alloc calls
	Frees     int   // successful Free calls of non-empty blocks
	LiveBytes int64 // bytes allocated and not yet freed
	PeakBytes int64 // high-water mark of LiveBytes
}

// Tracking wraps an Arena and accounts for every block it hands out.
// It is not safe for concurrent use.
type Tracking struct {
	inner Arena
	live  map[*byte]int
	stats Stats
}

// NewTracking wraps inner.
func NewTracking(inner Arena) *Tracking {
	return &Tracking{
		inner: inner,
		live:  make(map[*byte]int),
	}
}

// Alloc delegates to the wrapped arena and records the block.
func (t *Tracking) Alloc(n int) ([]byte, error) {
	b, err := t.inner.Alloc(n)
	if err != nil {
		return nil, err
	}
	t.stats.Allocs++
	if n > 0 {
		t.live[&b[0]] = n
		t.stats.LiveBytes += int64(n)
		if t.stats.LiveBytes > t.stats.PeakBytes {
			t.stats.PeakBytes = t.stats.LiveBytes
		}
	}
	return b, nil
}

// Free releases a block previously returned by Alloc.
// Unknown or already freed blocks are rejected with ErrForeignBlock.
func (t *Tracking) Free(b []byte) error {
	if cap(b) == 0 {
		return nil
	}
	key := &b[:1][0]
	n, ok := t.live[key]
	if !ok {
		return fmt.Errorf("%w: %p", ErrForeignBlock, key)
	}
	if err := t.inner.Free(b); err != nil {
		return err
	}
	delete(t.live, key)
	t.stats.Frees++
	t.stats.LiveBytes -= int64(n)
	return nil
}

// Name returns "tracking(<inner>)".
func (t *Tracking) Name() string { return "tracking(" + t.inner.Name() + ")" }

// Stats returns a snapshot of the counters.
func (t *Tracking) Stats() Stats { return t.stats }

// LiveBlocks returns the number of blocks allocated and not yet freed.
func (t *Tracking) LiveBlocks() int { return len(t.live) }
