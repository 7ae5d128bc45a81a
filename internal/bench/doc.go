// Package bench drives timed sieve benchmark runs.
//
// A run is a fixed-budget repetition, not a retry loop: the runner reads
// a monotonic clock once to compute a deadline, then repeats
// construct-sieve passes, re-checking the clock before each pass. A pass,
// once started, always runs to completion; nothing cancels a sieve
// mid-flight. One fresh sieve.Engine is constructed per pass, so passes
// share no mutable state.
//
// The Clock interface exists so tests can drive the deadline loop with a
// deterministic clock instead of wall time.
package bench
