// Package report runs every configuration through the harness and prints
// per-trial timings and their average.
package report

import (
	"fmt"
	"io"
	"slices"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"layoutbench/bench"
	"layoutbench/seqs"
)

var (
	ErrNoRepeats = fmt.Errorf("repeats must be positive")
)

// Run benchmarks configs in order with the same n and repeats and writes the
// results to w. It stops at the first error, so later configurations are not
// reported.
func Run(w io.Writer, n, repeats int, configs []bench.Config) error {
	if repeats <= 0 {
		return fmt.Errorf("report: %w (got %d)", ErrNoRepeats, repeats)
	}

	p := message.NewPrinter(language.English)
	if _, err := p.Fprintf(w, "Benchmarking with N = %d elements, %d repeats\n\n", n, repeats); err != nil {
		return fmt.Errorf("report: write header: %w", err)
	}

	for _, c := range configs {
		times := c.Run(n, repeats)
		if err := writeResult(w, c.Name, times); err != nil {
			return fmt.Errorf("report: %s: %w", c.Name, err)
		}
	}
	return nil
}

// writeResult prints the samples with %v, so they appear space separated as
// [t1 t2 ...], followed by their mean to six decimals.
func writeResult(w io.Writer, name string, times []float64) error {
	avg, ok := seqs.Mean(slices.Values(times))
	if !ok {
		return ErrNoRepeats
	}
	if _, err := fmt.Fprintf(w, "%-13s times: %v\n", name, times); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%-13s average: %.6f seconds\n\n", name, avg)
	return err
}
