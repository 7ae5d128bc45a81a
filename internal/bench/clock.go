package bench

import "time"

// Clock supplies time readings for the deadline loop.
//
// Implemented by WallClock (production) and testutil.ManualClock (tests).
type Clock interface {
	Now() time.Time
}

// WallClock reads the system clock. time.Now carries a monotonic reading
// on all supported platforms, so deadline comparison is immune to
// wall-clock adjustments.
type WallClock struct{}

// Now returns the current time.
func (WallClock) Now() time.Time { return time.Now() }
