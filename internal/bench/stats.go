package bench

import (
	"time"

	"github.com/VividCortex/ewma"
)

// PassStats accumulates per-pass duration statistics for verbose
// reporting: minimum, maximum, arithmetic mean, and an exponentially
// weighted moving average that favors recent passes.
//
// Thread-safety: none. Stats are observed from the single runner loop.
type PassStats struct {
	count int
	min   time.Duration
	max   time.Duration
	total time.Duration
	ewma  ewma.MovingAverage
}

// NewPassStats creates empty statistics.
func NewPassStats() *PassStats {
	return &PassStats{ewma: ewma.NewMovingAverage()}
}

// Observe records one completed pass duration.
func (s *PassStats) Observe(d time.Duration) {
	if s.count == 0 || d < s.min {
		s.min = d
	}
	if d > s.max {
		s.max = d
	}
	s.count++
	s.total += d
	s.ewma.Add(float64(d))
}

// Count returns the number of observed passes.
func (s *PassStats) Count() int { return s.count }

// Min returns the fastest observed pass, or 0 before any observation.
func (s *PassStats) Min() time.Duration { return s.min }

// Max returns the slowest observed pass, or 0 before any observation.
func (s *PassStats) Max() time.Duration { return s.max }

// Mean returns the arithmetic mean pass duration, or 0 before any
// observation.
func (s *PassStats) Mean() time.Duration {
	if s.count == 0 {
		return 0
	}
	return s.total / time.Duration(s.count)
}

// EWMA returns the exponentially weighted moving average pass duration.
// The average needs a warmup of several samples before it reports a
// non-zero value; short runs fall back on Mean.
func (s *PassStats) EWMA() time.Duration {
	v := s.ewma.Value()
	if v == 0 {
		return s.Mean()
	}
	return time.Duration(v)
}
