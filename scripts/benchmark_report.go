package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

// BenchmarkResult represents a parsed benchmark result.
type BenchmarkResult struct {
	Package     string
	Name        string
	Operation   string
	Variant     string // arena name ("heap", "mmap") or another sub-benchmark
	Iterations  int
	NsPerOp     float64
	BytesPerOp  int64
	AllocsPerOp int64
}

// ArenaComparison pairs the heap and mmap runs of one benchmark.
type ArenaComparison struct {
	Package    string
	Operation  string
	Heap       BenchmarkResult
	Mmap       BenchmarkResult
	MmapFactor float64 // mmap ns/op divided by heap ns/op
}

var (
	inputFile = flag.String(
		"input",
		"",
		"Input file with benchmark output (stdin if not specified)",
	)
	outputFile = flag.String("output", "", "Output markdown file (stdout if not specified)")
	quiet      = flag.Bool("quiet", false, "Suppress progress output")
)

var (
	benchmarkRegex = regexp.MustCompile(
		`^(Benchmark\S+)\s+(\d+)\s+([\d.]+)\s+ns/op(?:\s+(\d+)\s+B/op)?(?:\s+(\d+)\s+allocs/op)?`,
	)
	procsSuffix = regexp.MustCompile(`-\d+$`)
)

func main() {
	flag.Parse()

	var in io.Reader = os.Stdin
	if *inputFile != "" {
		f, err := os.Open(*inputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening input file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		in = f
	}

	results := parseBenchmarks(bufio.NewScanner(in))
	if !*quiet {
		fmt.Fprintf(os.Stderr, "Parsed %d benchmark results\n", len(results))
	}

	comparisons, rest := pairArenas(results)
	if !*quiet {
		fmt.Fprintf(os.Stderr, "Paired %d heap/mmap comparisons\n", len(comparisons))
	}

	report := generateMarkdownReport(comparisons, rest)

	if *outputFile == "" {
		fmt.Fprint(os.Stdout, report)
		return
	}
	if err := os.WriteFile(*outputFile, []byte(report), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
		os.Exit(1)
	}
	if !*quiet {
		fmt.Fprintf(os.Stderr, "Report written to %s\n", *outputFile)
	}
}

// parseBenchmarks reads plain `go test -bench` output or `go test -json` events.
func parseBenchmarks(scanner *bufio.Scanner) []BenchmarkResult {
	var results []BenchmarkResult
	pkg := ""

	for scanner.Scan() {
		line := scanner.Text()

		var event struct {
			Package string
			Output  string
		}
		if err := json.Unmarshal([]byte(line), &event); err == nil && event.Output != "" {
			line = event.Output
			if event.Package != "" {
				pkg = event.Package
			}
		}
		line = strings.TrimSpace(line)

		if p, ok := strings.CutPrefix(line, "pkg: "); ok {
			pkg = p
			continue
		}

		m := benchmarkRegex.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		r := BenchmarkResult{Package: pkg, Name: m[1]}
		r.Iterations, _ = strconv.Atoi(m[2])
		r.NsPerOp, _ = strconv.ParseFloat(m[3], 64)
		if m[4] != "" {
			r.BytesPerOp, _ = strconv.ParseInt(m[4], 10, 64)
		}
		if m[5] != "" {
			r.AllocsPerOp, _ = strconv.ParseInt(m[5], 10, 64)
		}

		// Benchmark<Operation>[/<variant>]-<procs>
		name := procsSuffix.ReplaceAllString(m[1], "")
		op, variant, _ := strings.Cut(strings.TrimPrefix(name, "Benchmark"), "/")
		r.Operation = op
		r.Variant = variant

		results = append(results, r)
	}

	return results
}

// pairArenas matches heap and mmap runs of the same operation. Results
// without a partner are returned separately.
func pairArenas(results []BenchmarkResult) ([]ArenaComparison, []BenchmarkResult) {
	type key struct{ pkg, op string }
	byArena := make(map[key]map[string]BenchmarkResult)
	for _, r := range results {
		if r.Variant != "heap" && r.Variant != "mmap" {
			continue
		}
		k := key{r.Package, r.Operation}
		if byArena[k] == nil {
			byArena[k] = make(map[string]BenchmarkResult)
		}
		byArena[k][r.Variant] = r
	}

	var comparisons []ArenaComparison
	paired := make(map[key]bool)
	for k, arenas := range byArena {
		heap, okHeap := arenas["heap"]
		mmap, okMmap := arenas["mmap"]
		if !okHeap || !okMmap {
			continue
		}
		c := ArenaComparison{Package: k.pkg, Operation: k.op, Heap: heap, Mmap: mmap}
		if heap.NsPerOp > 0 {
			c.MmapFactor = mmap.NsPerOp / heap.NsPerOp
		}
		comparisons = append(comparisons, c)
		paired[k] = true
	}

	var rest []BenchmarkResult
	for _, r := range results {
		if !paired[key{r.Package, r.Operation}] {
			rest = append(rest, r)
		}
	}

	sort.Slice(comparisons, func(i, j int) bool {
		if comparisons[i].Package != comparisons[j].Package {
			return comparisons[i].Package < comparisons[j].Package
		}
		return comparisons[i].Operation < comparisons[j].Operation
	})
	sort.SliceStable(rest, func(i, j int) bool {
		if rest[i].Package != rest[j].Package {
			return rest[i].Package < rest[j].Package
		}
		return rest[i].Name < rest[j].Name
	})
	return comparisons, rest
}

func generateMarkdownReport(comparisons []ArenaComparison, rest []BenchmarkResult) string {
	var sb strings.Builder

	sb.WriteString("# Benchmark Report\n\n")
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", time.Now().Format("2006-01-02 15:04:05")))

	heapFaster, mmapFaster := 0, 0
	for _, c := range comparisons {
		switch {
		case c.MmapFactor > 1:
			heapFaster++
		case c.MmapFactor < 1:
			mmapFaster++
		}
	}

	sb.WriteString("## Summary\n\n")
	sb.WriteString(fmt.Sprintf("- **Heap/mmap pairs**: %d\n", len(comparisons)))
	sb.WriteString(fmt.Sprintf("  - heap faster: %d\n", heapFaster))
	sb.WriteString(fmt.Sprintf("  - mmap faster: %d\n", mmapFaster))
	sb.WriteString(fmt.Sprintf("- **Other benchmarks**: %d\n\n", len(rest)))

	if len(comparisons) > 0 {
		sb.WriteString("## Heap vs mmap\n\n")
		sb.WriteString("| Package | Operation | heap (ns/op) | mmap (ns/op) | mmap/heap | heap B/op | mmap B/op | Allocs |\n")
		sb.WriteString("|---------|-----------|--------------|--------------|-----------|-----------|-----------|--------|\n")
		for _, c := range comparisons {
			sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s | %.2fx | %s | %s | %d vs %d |\n",
				shortPackage(c.Package),
				c.Operation,
				formatNumber(c.Heap.NsPerOp),
				formatNumber(c.Mmap.NsPerOp),
				c.MmapFactor,
				formatBytes(c.Heap.BytesPerOp),
				formatBytes(c.Mmap.BytesPerOp),
				c.Heap.AllocsPerOp,
				c.Mmap.AllocsPerOp,
			))
		}
		sb.WriteString("\n")
	}

	if len(rest) > 0 {
		sb.WriteString("## Other Benchmarks\n\n")
		sb.WriteString("| Package | Benchmark | ns/op | B/op | Allocs |\n")
		sb.WriteString("|---------|-----------|-------|------|--------|\n")
		for _, r := range rest {
			sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s | %d |\n",
				shortPackage(r.Package),
				r.Name,
				formatNumber(r.NsPerOp),
				formatBytes(r.BytesPerOp),
				r.AllocsPerOp,
			))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func shortPackage(pkg string) string {
	if pkg == "" {
		return "-"
	}
	return strings.TrimPrefix(pkg, "github.com/joshuapare/vectorkit/")
}

func formatNumber(n float64) string {
	switch {
	case n >= 1e9:
		return fmt.Sprintf("%.2fs", n/1e9)
	case n >= 1e6:
		return fmt.Sprintf("%.2fms", n/1e6)
	case n >= 1e3:
		return fmt.Sprintf("%.2fµs", n/1e3)
	default:
		return fmt.Sprintf("%.0fns", n)
	}
}

func formatBytes(b int64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := int64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(b)/float64(div), "KMGTPE"[exp])
}
