package sieve

import "math"

// Engine sieves primes below a fixed limit using odd-only bit storage.
//
// State machine: Unrun -> Run, one-way. A fresh Engine holds every bit
// false; Run marks composites; CountPrimes and Primes then read the
// store without mutating it. Calling Run again is a no-op (bits once
// true stay true, so re-sieving could never change the result).
//
// INVARIANTS:
//   - oddSpan == limit >> 1, fixed at construction
//   - bit index k represents the odd integer 2k+1
//   - index 0 (the integer 1) is never a factor and never counted
type Engine struct {
	limit   uint64
	oddSpan uint64
	bits    *BitStore
	sieved  bool
}

// New constructs an Engine for the given limit. Limits of 0 and 1 are
// degenerate but valid: the store has no usable odd candidates and every
// query returns empty results.
func New(limit uint64) *Engine {
	oddSpan := limit >> 1
	return &Engine{
		limit:   limit,
		oddSpan: oddSpan,
		bits:    NewBitStore(oddSpan),
	}
}

// Limit returns the configured sieve limit.
func (e *Engine) Limit() uint64 { return e.limit }

// Run executes the sieving pass, marking every odd composite below the
// limit. Valid exactly once per Engine; later calls return immediately.
//
// For each surviving factor f up to sqrt(oddSpan), the odd prime
// p = 2f+1 has its composite multiples struck starting at bit index
// 2f²+2f, which is p² expressed in odd-index space. Consecutive stored
// multiples of p are p bit-positions apart, since only odd multiples
// exist in the store. sqrt is used only as a loop bound, so float
// rounding cannot affect correctness.
func (e *Engine) Run() {
	if e.sieved {
		return
	}
	q := uint64(math.Sqrt(float64(e.oddSpan)))
	for factor := uint64(1); factor <= q; factor++ {
		if !e.bits.TestFalse(factor) {
			continue
		}
		step := 2*factor + 1
		for multiple := 2*factor*factor + 2*factor; multiple < e.oddSpan; multiple += step {
			e.bits.SetTrue(multiple)
		}
	}
	e.sieved = true
}

// CountPrimes returns the number of odd primes found, which excludes the
// number 2 (never stored). Callers needing the total prime count below
// the limit must add 1 for 2 themselves. Meaningful only after Run.
func (e *Engine) CountPrimes() uint64 {
	var count uint64
	for k := uint64(1); k < e.oddSpan; k++ {
		if e.bits.TestFalse(k) {
			count++
		}
	}
	return count
}

// Primes returns up to maxCount primes in ascending order, always
// beginning with the literal 2, then every surviving odd candidate.
// The result is a materialized slice of length
// min(maxCount, 1+CountPrimes()). Meaningful only after Run.
func (e *Engine) Primes(maxCount int) []uint64 {
	if maxCount <= 0 {
		return nil
	}
	primes := make([]uint64, 0, maxCount)
	if e.limit >= 2 {
		primes = append(primes, 2)
	}
	for k := uint64(1); k < e.oddSpan && len(primes) < maxCount; k++ {
		if e.bits.TestFalse(k) {
			primes = append(primes, 2*k+1)
		}
	}
	return primes
}
