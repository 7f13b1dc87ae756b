package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/joshuapare/vectorkit/internal/logger"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
	quiet   bool
	jsonOut bool

	// Workload flags shared by every subcommand
	arenaName string
	growBy    int
	count     int
	seed      int64

	withMetrics bool
)

var rootCmd = &cobra.Command{
	Use:   "vecbench",
	Short: "Time slot vector operations",
	Long: `vecbench drives a slot vector through append, insert, sort and search
workloads of fixed-size records and reports timing together with the arena's
allocation counters. Use --arena to compare heap and mmap backed storage.`,
	Version: "0.1.0",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initLogging()
	},
	SilenceUsage: true,
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log vector growth to stderr")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")

	rootCmd.PersistentFlags().StringVar(&arenaName, "arena", "heap", "Slot storage: heap or mmap")
	rootCmd.PersistentFlags().IntVar(&growBy, "grow", 64, "Initial allocation and growth increment")
	rootCmd.PersistentFlags().IntVarP(&count, "count", "n", 10_000, "Number of records per run")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 1, "Seed for generated records")
	rootCmd.PersistentFlags().
		BoolVar(&withMetrics, "metrics", false, "Report Prometheus arena metrics with the result")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func initLogging() error {
	format := "text"
	if jsonOut {
		format = "json"
	}
	return logger.Init(logger.Options{
		Enabled: verbose,
		Level:   slog.LevelDebug,
		Format:  format,
		Output:  os.Stderr,
	})
}

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
