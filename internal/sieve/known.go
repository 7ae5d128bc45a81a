package sieve

import (
	"fmt"
	"slices"
)

// knownCounts maps a sieve limit to the historically verified number of
// primes below it. Package-level and immutable: initialized once at
// startup, never mutated, safe to read from any goroutine without
// synchronization.
var knownCounts = map[uint64]uint64{
	10:          4,
	100:         25,
	1_000:       168,
	10_000:      1_229,
	100_000:     9_592,
	1_000_000:   78_498,
	10_000_000:  664_579,
	100_000_000: 5_761_455,
}

// KnownLimits returns the tabled limits in ascending order.
func KnownLimits() []uint64 {
	limits := make([]uint64, 0, len(knownCounts))
	for limit := range knownCounts {
		limits = append(limits, limit)
	}
	slices.Sort(limits)
	return limits
}

// KnownCount returns the verified prime count for limit, if the limit is
// one of the tabled values.
func KnownCount(limit uint64) (uint64, bool) {
	count, ok := knownCounts[limit]
	return count, ok
}

// MismatchError reports a sieve result that disagrees with the known
// table. It is a correctness failure layered on top of a completed run:
// the benchmark timing remains meaningful, so callers report it without
// aborting.
type MismatchError struct {
	Limit uint64
	Got   uint64 // total count including the number 2
	Want  uint64
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("prime count mismatch for limit %d: got %d, want %d", e.Limit, e.Got, e.Want)
}

// Validate checks a completed engine against the known table.
//
// CountPrimes excludes the number 2 by construction, so the comparison
// adds 1 before matching the table. Returns (true, nil) on a match,
// (false, *MismatchError) on a mismatch, and (false, nil) when the limit
// is not tabled — the caller should warn and skip validation in that
// case rather than fail.
func Validate(e *Engine) (bool, error) {
	want, ok := KnownCount(e.Limit())
	if !ok {
		return false, nil
	}
	got := 1 + e.CountPrimes()
	if got != want {
		return false, &MismatchError{Limit: e.Limit(), Got: got, Want: want}
	}
	return true, nil
}
