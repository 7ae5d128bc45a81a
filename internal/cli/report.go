package cli

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/roach88/sievebench/internal/bench"
)

// Tag is the descriptor appended to the machine-parsable record,
// identifying the algorithm variant, faithfulness, and storage width.
const Tag = "algorithm=base,faithful=yes,bits=1"

// FormatRecord renders the single-line machine-parsable result:
// label;passes;seconds;threads;tag. Plain fmt, never grouped: this line
// is for parsers, not people.
func FormatRecord(label string, r *bench.Result) string {
	return fmt.Sprintf("%s;%d;%.6f;%d;%s", label, r.Passes, r.Duration.Seconds(), r.Threads, Tag)
}

// ReportData is the JSON payload for a benchmark run.
type ReportData struct {
	RunID           string  `json:"run_id"`
	Label           string  `json:"label"`
	Limit           uint64  `json:"limit"`
	Passes          uint64  `json:"passes"`
	DurationSeconds float64 `json:"duration_seconds"`
	Threads         int     `json:"threads"`
	CountedPrimes   uint64  `json:"counted_primes"`
	Valid           bool    `json:"valid"`
	Known           bool    `json:"known"`
	Tag             string  `json:"tag"`
}

// NewReportData converts a bench result to its JSON payload.
func NewReportData(label string, r *bench.Result) ReportData {
	return ReportData{
		RunID:           r.RunID,
		Label:           label,
		Limit:           r.Limit,
		Passes:          r.Passes,
		DurationSeconds: r.Duration.Seconds(),
		Threads:         r.Threads,
		CountedPrimes:   r.CountedPrimes,
		Valid:           r.Valid,
		Known:           r.Known,
		Tag:             Tag,
	}
}

// WriteVerboseReport writes the human-readable report: the first
// maxShow primes from the final pass and the pass timing statistics.
// Numbers use locale-aware grouping for readability.
func WriteVerboseReport(w io.Writer, r *bench.Result, maxShow int) {
	p := message.NewPrinter(language.English)

	primes := r.Primes(maxShow)
	if len(primes) > 0 {
		p.Fprintf(w, "Primes below %d (first %d):\n", r.Limit, len(primes))
		parts := make([]string, len(primes))
		for i, prime := range primes {
			parts[i] = p.Sprintf("%d", prime)
		}
		p.Fprintf(w, "  %s\n", strings.Join(parts, " "))
	}

	passesPerSecond := 0.0
	if secs := r.Duration.Seconds(); secs > 0 {
		passesPerSecond = float64(r.Passes) / secs
	}
	p.Fprintf(w, "Passes: %d in %.6f s (%.3f passes/s)\n", r.Passes, r.Duration.Seconds(), passesPerSecond)
	if r.Stats != nil && r.Stats.Count() > 0 {
		p.Fprintf(w, "Pass time: min %v, max %v, mean %v, ewma %v\n",
			r.Stats.Min(), r.Stats.Max(), r.Stats.Mean(), r.Stats.EWMA())
	}
	p.Fprintf(w, "Counted: %d primes, valid: %t\n", r.CountedPrimes, r.Valid)
}
