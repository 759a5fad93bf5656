package engine

import "time"

// TimeProvider abstracts wall-clock reads for the frame clock
type TimeProvider interface {
	Now() time.Time
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

// FrameClock derives per-frame delta and cumulative elapsed seconds from a provider
type FrameClock struct {
	provider TimeProvider
	start    time.Time
	last     time.Time
}

// NewFrameClock starts measuring from the provider's current time
func NewFrameClock(provider TimeProvider) *FrameClock {
	now := provider.Now()
	return &FrameClock{
		provider: provider,
		start:    now,
		last:     now,
	}
}

// Next returns seconds since start and since the previous call
func (fc *FrameClock) Next() (elapsed, delta float64) {
	now := fc.provider.Now()
	delta = now.Sub(fc.last).Seconds()
	elapsed = now.Sub(fc.start).Seconds()
	fc.last = now
	return elapsed, delta
}
