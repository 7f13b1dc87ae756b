package main

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/joshuapare/vectorkit/internal/buf"
	"github.com/joshuapare/vectorkit/slots"
	"github.com/joshuapare/vectorkit/slots/arena"
	"github.com/prometheus/client_golang/prometheus"
)

const recordSize = 4

var errBadCount = errors.New("count must be positive")

// Result is one workload run. It is printed as text or, with --json, as is.
type Result struct {
	Op        string        `json:"op"`
	Arena     string        `json:"arena"`
	N         int           `json:"n"`
	GrowBy    int           `json:"grow_by"`
	Elapsed   time.Duration `json:"elapsed_ns"`
	NsPerOp   float64       `json:"ns_per_op"`
	Len       int           `json:"len"`
	Cap       int           `json:"cap"`
	Allocs    int           `json:"allocs"`
	Frees     int           `json:"frees"`
	PeakBytes int64         `json:"peak_bytes"`
	Hits      int           `json:"hits,omitempty"`

	Metrics map[string]float64 `json:"metrics,omitempty"`
}

// harness owns one vector and the tracking arena behind it. With --metrics
// the arena is also instrumented into a private registry.
type harness struct {
	vec   *slots.Vector
	arena *arena.Tracking
	reg   *prometheus.Registry
}

func newHarness() (*harness, error) {
	if count <= 0 {
		return nil, fmt.Errorf("%w: %d", errBadCount, count)
	}
	inner, err := arena.ByName(arenaName)
	if err != nil {
		return nil, err
	}

	h := &harness{}
	if withMetrics {
		h.reg = prometheus.NewRegistry()
		if inner, err = arena.NewInstrumented(inner, h.reg); err != nil {
			return nil, err
		}
	}
	h.arena = arena.NewTracking(inner)

	h.vec, err = slots.New(recordSize, nil, growBy, &slots.Options{Arena: h.arena})
	if err != nil {
		return nil, fmt.Errorf("create vector: %w", err)
	}
	return h, nil
}

// fill appends recs without timing.
func (h *harness) fill(recs [][]byte) error {
	for _, r := range recs {
		if err := h.vec.Append(r); err != nil {
			return fmt.Errorf("fill: %w", err)
		}
	}
	return nil
}

// abort disposes the vector after a failed run.
func (h *harness) abort(err error) error {
	return errors.Join(err, h.vec.Dispose())
}

// finish disposes the vector, checks the arena is empty and reports.
func (h *harness) finish(op string, elapsed time.Duration, ops, hits int) error {
	res := Result{
		Op:      op,
		Arena:   arenaName,
		N:       ops,
		GrowBy:  h.vec.GrowBy(),
		Elapsed: elapsed,
		Len:     h.vec.Len(),
		Cap:     h.vec.Cap(),
		Hits:    hits,
	}
	if ops > 0 {
		res.NsPerOp = float64(elapsed.Nanoseconds()) / float64(ops)
	}

	if err := h.vec.Dispose(); err != nil {
		return fmt.Errorf("dispose: %w", err)
	}
	st := h.arena.Stats()
	if st.LiveBytes != 0 {
		return fmt.Errorf("arena still holds %d bytes in %d blocks", st.LiveBytes, h.arena.LiveBlocks())
	}
	res.Allocs = st.Allocs
	res.Frees = st.Frees
	res.PeakBytes = st.PeakBytes

	if h.reg != nil {
		m, err := gatherMetrics(h.reg)
		if err != nil {
			return fmt.Errorf("gather metrics: %w", err)
		}
		res.Metrics = m
	}

	return printResult(res)
}

// gatherMetrics flattens counters and gauges into name -> value.
func gatherMetrics(g prometheus.Gatherer) (map[string]float64, error) {
	families, err := g.Gather()
	if err != nil {
		return nil, err
	}
	out := make(map[string]float64, len(families))
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			switch {
			case m.GetCounter() != nil:
				out[mf.GetName()] += m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				out[mf.GetName()] += m.GetGauge().GetValue()
			}
		}
	}
	return out, nil
}

func printResult(res Result) error {
	if jsonOut {
		return printJSON(res)
	}
	printInfo("%s  arena=%s n=%d grow=%d\n", res.Op, res.Arena, res.N, res.GrowBy)
	printInfo("  elapsed: %s (%.1f ns/op)\n", res.Elapsed, res.NsPerOp)
	printInfo("  len/cap: %d/%d\n", res.Len, res.Cap)
	printInfo("  arena:   %d allocs, %d frees, peak %s\n",
		res.Allocs, res.Frees, humanize.IBytes(uint64(res.PeakBytes)))
	if res.Hits > 0 {
		printInfo("  hits:    %s\n", humanize.Comma(int64(res.Hits)))
	}

	names := make([]string, 0, len(res.Metrics))
	for name := range res.Metrics {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		printInfo("  metric:  %s %g\n", name, res.Metrics[name])
	}
	return nil
}

// randomRecords returns n little-endian int32 records drawn from [0, limit).
func randomRecords(n int, limit int32) [][]byte {
	rng := rand.New(rand.NewSource(seed))
	flat := make([]byte, n*recordSize)
	out := make([][]byte, n)
	for i := range out {
		r := flat[i*recordSize : (i+1)*recordSize : (i+1)*recordSize]
		buf.PutI32LE(r, rng.Int31n(limit))
		out[i] = r
	}
	return out
}
