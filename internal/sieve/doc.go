// Package sieve implements a bit-packed Sieve of Eratosthenes restricted
// to odd candidates.
//
// ARCHITECTURE:
//
// Two types, leaf-first:
//
//   - BitStore: a fixed-capacity packed array of 1-bit flags over uint32
//     words. The hot-path accessors (SetTrue, TestFalse) perform no bounds
//     checks; see the trusted-index contract on BitStore.
//   - Engine: owns one BitStore sized for odd numbers only and implements
//     the sieving pass, survivor counting, and ordered prime enumeration.
//
// Index mapping:
//
// Bit index k represents the odd integer 2k+1. A false bit means "still
// believed prime"; a true bit means "proven composite". The number 2 is
// never stored and is always implicitly prime, which makes counting
// asymmetric: CountPrimes returns odd primes only, while Primes injects
// 2 as its first element. Callers comparing against total prime counts
// must add 1 for the number 2.
//
// Storing only odd candidates halves both memory and inner-loop
// iterations versus a full bitmap.
//
// CRITICAL PATTERNS:
//
// Single-writer lifecycle: one Engine is constructed per benchmark pass,
// mutated by exactly one call to Run, then only read. Engines share no
// state, so independent instances may run on separate goroutines without
// locking, but a single Engine is not safe for concurrent use.
package sieve
