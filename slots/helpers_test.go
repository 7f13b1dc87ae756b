package slots

import (
	"errors"

	"github.com/joshuapare/vectorkit/slots/arena"
)

var errArenaExhausted = errors.New("test arena exhausted")

// failingArena serves `left` allocations from the heap, then fails.
type failingArena struct {
	arena.Heap
	left  int
	frees int
}

func (f *failingArena) Alloc(n int) ([]byte, error) {
	if f.left <= 0 {
		return nil, errArenaExhausted
	}
	f.left--
	return f.Heap.Alloc(n)
}

func (f *failingArena) Free(b []byte) error {
	f.frees++
	return nil
}

func (f *failingArena) Name() string { return "failing" }
