// Package testutil provides deterministic test doubles shared across
// packages.
package testutil

import (
	"sync"
	"time"
)

// ManualClock is a deterministic bench.Clock for tests.
//
// Each call to Now returns the current reading and then advances it by a
// fixed step, so a deadline loop driven by this clock terminates after a
// predictable number of passes regardless of how fast the work runs.
//
// Thread-safety: all methods are safe for concurrent use via internal
// mutex, though benchmark runs read the clock from a single goroutine.
type ManualClock struct {
	mu   sync.Mutex
	now  time.Time
	step time.Duration
}

// NewManualClock creates a clock starting at start, advancing by step on
// every Now call.
func NewManualClock(start time.Time, step time.Duration) *ManualClock {
	return &ManualClock{now: start, step: step}
}

// Now returns the current reading and advances the clock by the step.
func (c *ManualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := c.now
	c.now = c.now.Add(c.step)
	return t
}

// Advance moves the clock forward by d without returning a reading.
func (c *ManualClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// Peek returns the current reading without advancing the clock.
func (c *ManualClock) Peek() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}
