package bench

import (
	"time"

	"github.com/google/uuid"

	"github.com/roach88/sievebench/internal/sieve"
)

// Result captures one completed benchmark run.
type Result struct {
	// RunID is a UUIDv7 identifying this run in reports and logs.
	RunID string

	// Limit is the sieve size the run was configured with.
	Limit uint64

	// Passes is the number of construct-sieve cycles completed before
	// the deadline.
	Passes uint64

	// Duration is the elapsed time across all passes.
	Duration time.Duration

	// CountedPrimes is the total prime count below Limit from the final
	// pass, including the number 2 when Limit >= 2. Zero when no pass
	// completed.
	CountedPrimes uint64

	// Valid reports whether CountedPrimes matched the known table.
	// False both on a mismatch and when the limit is untabled; Known
	// distinguishes the two.
	Valid bool

	// Known reports whether the limit has a known-table entry.
	Known bool

	// Threads is the worker count. The reference runner is strictly
	// sequential, so this is always 1.
	Threads int

	// Stats holds per-pass duration statistics.
	Stats *PassStats

	final *sieve.Engine
}

// Primes returns up to maxCount primes from the final pass, or nil when
// no pass completed.
func (r *Result) Primes(maxCount int) []uint64 {
	if r.final == nil {
		return nil
	}
	return r.final.Primes(maxCount)
}

// Runner repeats sieve passes against a wall-clock budget.
//
// Thread-safety: a Runner holds no mutable state across runs; Run may be
// called from any single goroutine at a time.
type Runner struct {
	clock Clock
}

// Option configures a Runner.
type Option func(*Runner)

// WithClock overrides the runner's clock. Tests use this with
// testutil.ManualClock for a deterministic deadline loop.
func WithClock(c Clock) Option {
	return func(r *Runner) { r.clock = c }
}

// NewRunner creates a Runner reading the system clock unless overridden.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{clock: WallClock{}}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run repeats construct-sieve passes until the budget is exhausted, then
// validates the final pass against the known table.
//
// The deadline is computed once from a single clock reading and
// re-checked before each pass; a pass in flight is never interrupted.
// On a validation mismatch the Result is returned alongside the
// *sieve.MismatchError: the timing is still meaningful, so callers
// report the error without discarding the run. An untabled limit yields
// Known=false and a nil error; callers warn and skip validation.
func (r *Runner) Run(limit uint64, budget time.Duration) (*Result, error) {
	result := &Result{
		RunID:   uuid.Must(uuid.NewV7()).String(),
		Limit:   limit,
		Threads: 1,
		Stats:   NewPassStats(),
	}

	start := r.clock.Now()
	deadline := start.Add(budget)

	var final *sieve.Engine
	for {
		passStart := r.clock.Now()
		if !passStart.Before(deadline) {
			break
		}
		e := sieve.New(limit)
		e.Run()
		final = e
		result.Passes++
		result.Stats.Observe(r.clock.Now().Sub(passStart))
	}
	result.Duration = r.clock.Now().Sub(start)
	result.final = final

	if final == nil {
		return result, nil
	}
	if limit >= 2 {
		result.CountedPrimes = 1 + final.CountPrimes()
	}

	_, result.Known = sieve.KnownCount(limit)
	valid, err := sieve.Validate(final)
	result.Valid = valid
	if err != nil {
		return result, err
	}
	return result, nil
}
