package engine

import "time"

// TimeProvider supplies the current time to animation code
type TimeProvider interface {
	Now() time.Time
}

// Timer is a pending callback that can be cancelled
type Timer interface {
	// Stop cancels the callback, returns false if it already fired or was stopped
	Stop() bool
}

// Clock is a TimeProvider that can also schedule callbacks
type Clock interface {
	TimeProvider
	AfterFunc(d time.Duration, f func()) Timer
}

// MonotonicTimeProvider provides the real system time with monotonic clock readings
type MonotonicTimeProvider struct{}

// NewMonotonicTimeProvider creates a new monotonic time provider
func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}

// AfterFunc schedules f on its own goroutine via time.AfterFunc
func (p *MonotonicTimeProvider) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
