package slots

import (
	"log/slog"

	"github.com/joshuapare/vectorkit/slots/arena"
)

// Options controls where a vector gets its memory and how it reports.
type Options struct {
	// Arena supplies the slot buffer. If nil, arena.Heap is used.
	Arena arena.Arena

	// Logger receives debug events (growth, disposal) and warnings.
	// If nil, the package-wide logger from internal/logger is used.
	Logger *slog.Logger

	// MaxSlots caps the allocated capacity. Growth that would exceed it is
	// clamped to MaxSlots, and fails with ErrGrowFail once the cap is reached.
	// Zero means unlimited.
	MaxSlots int
}

// DefaultOptions returns the options used when New is given nil.
func DefaultOptions() Options {
	return Options{Arena: arena.Heap{}}
}

func (o *Options) resolve() Options {
	if o == nil {
		return DefaultOptions()
	}
	r := *o
	if r.Arena == nil {
		r.Arena = arena.Heap{}
	}
	if r.MaxSlots < 0 {
		r.MaxSlots = 0
	}
	return r
}
