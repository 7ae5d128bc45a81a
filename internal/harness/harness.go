package harness

import (
	"bytes"
	"fmt"
	"slices"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/sievebench/internal/sieve"
)

// CaseResult records the outcome of one scenario case.
type CaseResult struct {
	SieveSize uint64
	GotCount  uint64
	Pass      bool
	Failures  []string
}

// Result aggregates a scenario run.
type Result struct {
	Scenario *Scenario
	Cases    []CaseResult
	Pass     bool
}

// Run executes every case of a scenario, one full sieve pass each.
func Run(s *Scenario) *Result {
	result := &Result{Scenario: s, Pass: true}

	for _, c := range s.Cases {
		e := sieve.New(c.SieveSize)
		e.Run()

		// Same +1 adjustment as the benchmark validator: CountPrimes
		// excludes the never-stored 2.
		var total uint64
		if c.SieveSize >= 2 {
			total = 1 + e.CountPrimes()
		}

		cr := CaseResult{SieveSize: c.SieveSize, GotCount: total, Pass: true}
		if total != c.ExpectCount {
			cr.Pass = false
			cr.Failures = append(cr.Failures,
				fmt.Sprintf("count: got %d, want %d", total, c.ExpectCount))
		}
		if len(c.ExpectPrimes) > 0 {
			got := e.Primes(len(c.ExpectPrimes))
			if !slices.Equal(got, c.ExpectPrimes) {
				cr.Pass = false
				cr.Failures = append(cr.Failures,
					fmt.Sprintf("primes: got %v, want %v", got, c.ExpectPrimes))
			}
		}

		if !cr.Pass {
			result.Pass = false
		}
		result.Cases = append(result.Cases, cr)
	}
	return result
}

// Summary renders a deterministic plain-text account of the run, one
// line per case.
func (r *Result) Summary() []byte {
	buf := &bytes.Buffer{}
	fmt.Fprintf(buf, "scenario: %s\n", r.Scenario.Name)
	for _, c := range r.Cases {
		status := "ok"
		if !c.Pass {
			status = "FAIL"
		}
		fmt.Fprintf(buf, "%-4s sieve_size=%d count=%d\n", status, c.SieveSize, c.GotCount)
		for _, f := range c.Failures {
			fmt.Fprintf(buf, "     %s\n", f)
		}
	}
	return buf.Bytes()
}

// RunWithGolden executes a scenario and compares its summary against the
// golden file testdata/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
func RunWithGolden(t *testing.T, s *Scenario) *Result {
	t.Helper()

	result := Run(s)
	g := goldie.New(t)
	g.Assert(t, s.Name, result.Summary())
	return result
}
