package vector

import "log/slog"

// Options controls vector limits and logging.
type Options struct {
	// Logger receives debug events (growth, disposal).
	// If nil, the package-wide logger from internal/logger is used.
	Logger *slog.Logger

	// MaxLen caps the allocated capacity. Growth is clamped to MaxLen and
	// panics with ErrGrowFail once the cap is reached. An initial allocation
	// above MaxLen is reduced to MaxLen. Zero means unlimited.
	MaxLen int
}

// DefaultOptions returns the options used when New is given nil.
func DefaultOptions() Options {
	return Options{}
}

func (o *Options) resolve() Options {
	if o == nil {
		return DefaultOptions()
	}
	r := *o
	if r.MaxLen < 0 {
		r.MaxLen = 0
	}
	return r
}
