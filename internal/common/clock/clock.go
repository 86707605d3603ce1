package clock

import "time"

//go:generate mockgen -package=mocks -destination=mocks/mock_clock.go github.com/clueduel/clueduel/internal/common/clock Clock

// Clock abstracts time for the timer-driven match engine. Everything
// the engine schedules (clue pacing, answer countdowns, simulated
// answers, pairing delays) goes through AfterFunc so sessions can
// cancel their pending work on teardown.
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

// Timer is a cancellable scheduled callback
type Timer interface {
	Stop() bool
}

// DefaultClock implements the Clock interface using the system clock
type DefaultClock struct{}

// Now returns the current time
func (c *DefaultClock) Now() time.Time {
	return time.Now()
}

// AfterFunc schedules f to run after d on its own goroutine
func (c *DefaultClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
