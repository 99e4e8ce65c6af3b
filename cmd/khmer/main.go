package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/khmer-syllable/pkg/khmer"
	"github.com/npillmayer/schuko/tracing"
)

func tracer() tracing.Trace {
	return tracing.Select("khmer")
}

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

// execute runs the command and returns its exit status. Progress goes to
// stdout unless the results do; errors always go to stderr.
func execute(args []string, stdout, stderr *os.File) int {
	cfg, err := loadConfig(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if errors.Is(err, errNoInput) {
		fmt.Fprintln(stderr, "Usage: khmer --input <file> [--output <file>] [options]")
		fmt.Fprintln(stderr, "       khmer --generate <n> [--output <file>] [--seed <n>]")
		fmt.Fprintln(stderr, "Options:")
		fmt.Fprintln(stderr, "  --output, -o <path>  Output JSONL file (optional, skip to benchmark only)")
		fmt.Fprintln(stderr, "  --mode, -m <mode>    merge, segment or words")
		fmt.Fprintln(stderr, "  --limit, -l <n>      Limit number of lines")
		fmt.Fprintln(stderr, "  --threads, -t <n>    Number of worker threads")
		fmt.Fprintln(stderr, "  --clean, --nfc       Clean and normalize input lines")
		return 1
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	if cfg.Verbose {
		tracer().SetTraceLevel(tracing.LevelDebug)
	} else {
		tracer().SetTraceLevel(tracing.LevelInfo)
	}

	status := stdout
	if cfg.Output == pipeName {
		status = stderr
	}

	if err := run(cfg, newReporter(status)); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func newSorter(cfg config) *khmer.Sorter {
	orphans := khmer.OrphanDrop
	if cfg.PassOrphans {
		orphans = khmer.OrphanPassThrough
	}
	return khmer.NewSorter(
		khmer.WithOrphanMarks(orphans),
		khmer.WithModifierSlots(cfg.ModifierSlots),
	)
}

func run(cfg config, rep *reporter) error {
	if cfg.Generate > 0 {
		return runGenerate(cfg, rep)
	}

	rep.printf(statusMessage, "Initializing Khmer sorter (mode %s)...", cfg.Mode)
	rep.printf(defaultMessage, "Reading source: %s", cfg.Input)

	input, err := openInput(cfg.Input)
	if err != nil {
		return err
	}
	lines, err := readLines(input, cfg.Limit, lineFilter{clean: cfg.Clean, nfc: cfg.NFC})
	input.Close()
	if err != nil {
		return err
	}

	numLines := len(lines)
	numWorkers := cfg.Threads
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	rep.printf(defaultMessage, "Processing %d lines with %d worker goroutines...", numLines, numWorkers)

	startProcess := time.Now()
	results := processLines(newSorter(cfg), cfg.Mode, lines, numWorkers)

	if cfg.Output != "" {
		out, err := createOutput(cfg.Output)
		if err != nil {
			return err
		}
		if err := writeLines(out, results); err != nil {
			out.Close()
			return fmt.Errorf("could not write output: %w", err)
		}
		if err := out.Close(); err != nil {
			return err
		}
		rep.printf(successMessage, "Done. Saved to %s", cfg.Output)
	}

	duration := time.Since(startProcess)
	rep.printf(defaultMessage, "Time taken: %s", formatTime(duration))
	if duration > 0 {
		rep.printf(defaultMessage, "Speed: %.2f lines/sec", float64(numLines)/duration.Seconds())
	}
	return nil
}

// sortLine produces the record for one line in the given mode.
func sortLine(s *khmer.Sorter, mode string, id int, line string) record {
	rec := record{ID: id, Input: line}
	switch mode {
	case modeMerge:
		rec.Text = s.Sort(line)
	case modeSegment:
		rec.Units = s.Segment(line)
		rec.Text = strings.Join(rec.Units, "")
	case modeWords:
		rec.Units = s.SegmentMany(strings.Fields(line))
		rec.Text = strings.Join(rec.Units, "")
	}
	return rec
}

// processLines sorts every line on a pool of workers and returns one JSON
// object per line, in input order.
func processLines(s *khmer.Sorter, mode string, lines []string, numWorkers int) []string {
	results := make([]string, len(lines))

	var wg sync.WaitGroup
	jobs := make(chan int, len(lines))

	// The sorter is immutable, so all workers share it.
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			sb := getBuilder()
			defer putBuilder(sb)

			tracer().Debugf("worker %d started", worker)
			n := 0
			for i := range jobs {
				rec := sortLine(s, mode, i, lines[i])
				tracer().Debugf("line %d: %d runes, %d units", i, len(lines[i]), len(rec.Units))
				buildJSON(sb, rec)
				results[i] = sb.String()
				n++
			}
			tracer().Debugf("worker %d sorted %d lines", worker, n)
		}(w)
	}

	for i := range lines {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// runGenerate writes cfg.Generate random canonical units, one per line.
func runGenerate(cfg config, rep *reporter) error {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	tracer().Infof("generating %d units with seed %d", cfg.Generate, seed)

	var w io.WriteCloser = nopWriteCloser{io.Discard}
	if cfg.Output != "" {
		out, err := createOutput(cfg.Output)
		if err != nil {
			return err
		}
		w = out
	}

	units := generateUnits(khmer.NewGenerator(rand.New(rand.NewSource(seed))), cfg.Generate)
	if err := writeLines(w, units); err != nil {
		w.Close()
		return fmt.Errorf("could not write output: %w", err)
	}
	if err := w.Close(); err != nil {
		return err
	}
	rep.printf(successMessage, "Generated %d units", len(units))
	return nil
}

func generateUnits(g *khmer.Generator, n int) []string {
	units := make([]string, n)
	for i := range units {
		units[i] = g.Next()
	}
	return units
}
