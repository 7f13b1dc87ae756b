package arena

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Instrumented wraps an Arena and exports its activity as Prometheus
// metrics labelled with the wrapped arena's name. It is safe for concurrent
// use when the wrapped arena is.
//
// Free must be given blocks exactly as Alloc returned them; live_bytes is
// decremented by len(b).
type Instrumented struct {
	inner Arena

	allocs     prometheus.Counter
	frees      prometheus.Counter
	failures   prometheus.Counter
	allocBytes prometheus.Counter
	liveBytes  prometheus.Gauge
}

// NewInstrumented wraps inner and registers its collectors with reg.
// A nil reg leaves the collectors unregistered.
func NewInstrumented(inner Arena, reg prometheus.Registerer) (*Instrumented, error) {
	labels := prometheus.Labels{"arena": inner.Name()}
	counter := func(name, help string) prometheus.Counter {
		return prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "vectorkit",
			Subsystem:   "arena",
			Name:        name,
			Help:        help,
			ConstLabels: labels,
		})
	}

	a := &Instrumented{
		inner:      inner,
		allocs:     counter("allocs_total", "Blocks handed out by Alloc."),
		frees:      counter("frees_total", "Blocks released by Free."),
		failures:   counter("alloc_failures_total", "Alloc calls that returned an error."),
		allocBytes: counter("allocated_bytes_total", "Bytes handed out by Alloc."),
		liveBytes: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "vectorkit",
			Subsystem:   "arena",
			Name:        "live_bytes",
			Help:        "Bytes allocated and not yet freed.",
			ConstLabels: labels,
		}),
	}

	if reg != nil {
		for _, c := range a.collectors() {
			if err := reg.Register(c); err != nil {
				return nil, fmt.Errorf("arena: register %s metrics: %w", inner.Name(), err)
			}
		}
	}
	return a, nil
}

func (a *Instrumented) collectors() []prometheus.Collector {
	return []prometheus.Collector{a.allocs, a.frees, a.failures, a.allocBytes, a.liveBytes}
}

// Alloc delegates to the wrapped arena and records the outcome.
func (a *Instrumented) Alloc(n int) ([]byte, error) {
	b, err := a.inner.Alloc(n)
	if err != nil {
		a.failures.Inc()
		return nil, err
	}
	a.allocs.Inc()
	a.allocBytes.Add(float64(n))
	a.liveBytes.Add(float64(n))
	return b, nil
}

// Free delegates to the wrapped arena. Empty blocks are not counted.
func (a *Instrumented) Free(b []byte) error {
	if err := a.inner.Free(b); err != nil {
		return err
	}
	if cap(b) > 0 {
		a.frees.Inc()
		a.liveBytes.Sub(float64(len(b)))
	}
	return nil
}

// Name returns the wrapped arena's name.
func (a *Instrumented) Name() string { return a.inner.Name() }
