package main

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/spf13/cobra"
)

var insertAt string

func init() {
	cmd := newInsertCmd()
	cmd.Flags().StringVar(&insertAt, "at", "front", "Insert position: front, middle, back or random")
	rootCmd.AddCommand(cmd)
}

func newInsertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "insert",
		Short: "Insert records at a chosen position",
		Long: `The insert command inserts --count random records one at a time.
Inserting at the front shifts every live record and is the worst case.

Example:
  vecbench insert -n 20000 --at front
  vecbench insert --at random --arena mmap`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInsert()
		},
	}
}

func insertPosition(rng *rand.Rand, n int) (int, error) {
	switch insertAt {
	case "front":
		return 0, nil
	case "middle":
		return n / 2, nil
	case "back":
		return n, nil
	case "random":
		return rng.Intn(n + 1), nil
	default:
		return 0, fmt.Errorf("unknown --at %q", insertAt)
	}
}

func runInsert() error {
	h, err := newHarness()
	if err != nil {
		return err
	}
	recs := randomRecords(count, math.MaxInt32)
	rng := rand.New(rand.NewSource(seed + 1))

	start := time.Now()
	for _, r := range recs {
		pos, err := insertPosition(rng, h.vec.Len())
		if err != nil {
			return h.abort(err)
		}
		if err := h.vec.Insert(r, pos); err != nil {
			return h.abort(fmt.Errorf("insert at %d: %w", pos, err))
		}
	}
	return h.finish("insert-"+insertAt, time.Since(start), count, 0)
}
