package filter

import (
	"fmt"
	"io"
)

// Stats accumulates per-filter rejection counts across both passes.
// Counters are pre-seeded in cascade order so every filter shows up in the
// report even with zero rejections, and iteration order stays deterministic.
type Stats struct {
	names      []string
	rejections map[string]int

	TotalLines int
	TotalFinal int
}

// NewStats creates a Stats with one zeroed counter per filter name, in the
// order given.
func NewStats(names []string) *Stats {
	s := &Stats{
		names:      append([]string(nil), names...),
		rejections: make(map[string]int, len(names)),
	}
	for _, name := range names {
		s.rejections[name] = 0
	}
	return s
}

// Reject charges one rejection to the named filter.
func (s *Stats) Reject(name string) {
	s.rejections[name]++
}

// Rejections returns the count for the named filter.
func (s *Stats) Rejections(name string) int {
	return s.rejections[name]
}

// Report writes the human-readable end-of-run summary: totals, per-filter
// rejection counts in cascade order, and where the output went.
func (s *Stats) Report(w io.Writer, outputDir string, chunks int) {
	fmt.Fprintf(w, "\n===== Filtering Statistics =====\n")
	fmt.Fprintf(w, "Total lines processed: %d\n", s.TotalLines)
	for _, name := range s.names {
		fmt.Fprintf(w, "Filtered out by %s: %d\n", name, s.rejections[name])
	}
	fmt.Fprintf(w, "Final lines passed: %d\n", s.TotalFinal)
	fmt.Fprintf(w, "Output split into %d file(s) under '%s'.\n", chunks, outputDir)
}
