package main

import (
	"fmt"
	"math"
	"time"

	"github.com/joshuapare/vectorkit/pkg/compare"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newSortCmd())
}

func newSortCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sort",
		Short: "Sort random records in place",
		Long: `The sort command fills a vector with --count random records and times
a single in-place sort. The result is checked before reporting.

Example:
  vecbench sort -n 1000000 --arena mmap`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSort()
		},
	}
}

func runSort() error {
	h, err := newHarness()
	if err != nil {
		return err
	}
	if err := h.fill(randomRecords(count, math.MaxInt32)); err != nil {
		return h.abort(err)
	}

	start := time.Now()
	h.vec.Sort(compare.I32LE)
	elapsed := time.Since(start)

	for i := 1; i < h.vec.Len(); i++ {
		if compare.I32LE(h.vec.At(i-1), h.vec.At(i)) > 0 {
			return h.abort(fmt.Errorf("sort: records %d and %d out of order", i-1, i))
		}
	}
	return h.finish("sort", elapsed, count, 0)
}
