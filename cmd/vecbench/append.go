package main

import (
	"fmt"
	"math"
	"time"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newAppendCmd())
}

func newAppendCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "append",
		Short: "Append records to an empty vector",
		Long: `The append command appends --count random records to an empty vector,
growing it by --grow slots at a time.

Example:
  vecbench append -n 100000 --grow 1024
  vecbench append --arena mmap --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAppend()
		},
	}
}

func runAppend() error {
	h, err := newHarness()
	if err != nil {
		return err
	}
	recs := randomRecords(count, math.MaxInt32)

	start := time.Now()
	for _, r := range recs {
		if err := h.vec.Append(r); err != nil {
			return h.abort(fmt.Errorf("append: %w", err))
		}
	}
	return h.finish("append", time.Since(start), count, 0)
}
