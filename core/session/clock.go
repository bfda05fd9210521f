package session

import "time"

// Clock abstracts wall-clock reads and deferred execution so tests can
// advance virtual time deterministically instead of sleeping.
type Clock interface {
	Now() time.Time
	// AfterFunc schedules f to run after d elapses and returns the timer.
	AfterFunc(d time.Duration, f func()) Timer
}

// Timer is a cancellable scheduled task.
type Timer interface {
	// Stop prevents the timer from firing. It reports whether the call
	// stopped the timer before it fired.
	Stop() bool
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now()
}

func (realClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
