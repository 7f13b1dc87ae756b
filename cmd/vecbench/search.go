package main

import (
	"math/rand"
	"time"

	"github.com/joshuapare/vectorkit/internal/buf"
	"github.com/joshuapare/vectorkit/pkg/compare"
	"github.com/joshuapare/vectorkit/slots"
	"github.com/spf13/cobra"
)

var searchLinear bool

func init() {
	cmd := newSearchCmd()
	cmd.Flags().BoolVar(&searchLinear, "linear", false, "Scan linearly instead of binary search")
	rootCmd.AddCommand(cmd)
}

func newSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search",
		Short: "Look up keys in a sorted vector",
		Long: `The search command stores the even numbers 0, 2, ... 2(n-1), sorts them,
then times --count lookups of random keys in [0, 2n). About half the keys hit.

Example:
  vecbench search -n 100000
  vecbench search -n 5000 --linear`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch()
		},
	}
}

func runSearch() error {
	h, err := newHarness()
	if err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(seed))
	rec := make([]byte, recordSize)
	for _, i := range rng.Perm(count) {
		buf.PutI32LE(rec, int32(2*i))
		if err := h.vec.Append(rec); err != nil {
			return h.abort(err)
		}
	}
	h.vec.Sort(compare.I32LE)

	keys := randomRecords(count, int32(2*count))
	hits := 0

	start := time.Now()
	for _, k := range keys {
		if h.vec.Search(k, compare.I32LE, 0, !searchLinear) != slots.NotFound {
			hits++
		}
	}
	elapsed := time.Since(start)

	op := "search-binary"
	if searchLinear {
		op = "search-linear"
	}
	return h.finish(op, elapsed, count, hits)
}
