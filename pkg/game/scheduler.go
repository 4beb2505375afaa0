package game

import "time"

// Scheduler gates simulation steps to a fixed real-time interval,
// decoupling the tick rate from however fast the surrounding loop spins
// on input polling and rendering.
type Scheduler struct {
	interval time.Duration
	last     time.Time
}

// NewScheduler creates a gate that admits a step every interval,
// measured from now.
func NewScheduler(interval time.Duration, now time.Time) *Scheduler {
	return &Scheduler{interval: interval, last: now}
}

// ShouldStep reports whether a full interval has elapsed since the last
// admitted step and, if so, marks now as the new reference point. The
// reference is set to now rather than advanced by the interval: time
// lost to a stalled loop is dropped, never replayed as a burst of
// catch-up ticks.
func (s *Scheduler) ShouldStep(now time.Time) bool {
	if now.Sub(s.last) < s.interval {
		return false
	}
	s.last = now
	return true
}

// Interval returns the configured tick interval.
func (s *Scheduler) Interval() time.Duration {
	return s.interval
}
