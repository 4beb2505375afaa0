package game

import "time"

// Clock abstracts wall-clock access so the tick scheduler can be driven
// by a fake time source in tests instead of real sleeps.
type Clock interface {
	Now() time.Time
}

// SystemClock is the Clock used outside of tests.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}
