package engine

import (
	"fmt"
	"math"

	"github.com/lixenwraith/hourglass/parameter"
)

// CountdownClock owns the countdown duration, remaining time and running flag
// Invariant: 0 <= remaining <= duration
// Write discipline: Tick is the only writer of remaining during a frame,
// Start/Pause/Toggle/Reset/AddTime are driven by control actions
type CountdownClock struct {
	duration  float64
	remaining float64
	running   bool

	// resets counts Reset calls so edge detectors see resets that happened between frames
	resets uint64
}

// NewCountdownClock creates a stopped clock at full duration
// Non-positive or oversized durations are clamped
func NewCountdownClock(duration float64) *CountdownClock {
	d := clampDuration(duration)
	if d <= 0 {
		d = parameter.DefaultDuration
	}
	return &CountdownClock{
		duration:  d,
		remaining: d,
	}
}

func (c *CountdownClock) Duration() float64  { return c.duration }
func (c *CountdownClock) Remaining() float64 { return c.remaining }
func (c *CountdownClock) Running() bool      { return c.running }
func (c *CountdownClock) Resets() uint64     { return c.resets }

// Tick decrements remaining while running
// Returns true if the clock reached zero during this call
func (c *CountdownClock) Tick(dt float64) bool {
	if !c.running || dt <= 0 {
		return false
	}
	c.remaining -= dt
	if c.remaining <= 0 {
		c.remaining = 0
		c.running = false
		return true
	}
	return false
}

// Start sets running; no-op when already running or when no time is left
func (c *CountdownClock) Start() {
	if c.remaining <= 0 {
		return
	}
	c.running = true
}

// Pause clears running
func (c *CountdownClock) Pause() {
	c.running = false
}

// Toggle switches between running and paused
func (c *CountdownClock) Toggle() {
	if c.running {
		c.Pause()
	} else {
		c.Start()
	}
}

// Reset restores remaining to duration and stops
func (c *CountdownClock) Reset() {
	c.remaining = c.duration
	c.running = false
	c.resets++
}

// AddTime shifts duration and remaining by delta seconds
// Duration clamps to [0, MaxDuration], remaining to [0, duration]
func (c *CountdownClock) AddTime(delta float64) {
	c.duration = clampDuration(c.duration + delta)
	c.remaining = math.Max(0, math.Min(c.remaining+delta, c.duration))
	if c.remaining <= 0 {
		c.running = false
	}
}

// Progress returns remaining/duration, 0 for a zero duration
func (c *CountdownClock) Progress() float64 {
	if c.duration <= 0 {
		return 0
	}
	return c.remaining / c.duration
}

// AtRest reports a stopped clock at full duration (never started or just reset)
func (c *CountdownClock) AtRest() bool {
	return !c.running && c.remaining >= c.duration
}

// Paused reports a stopped clock that has been started and still has time left
func (c *CountdownClock) Paused() bool {
	return !c.running && c.remaining > 0 && c.remaining < c.duration
}

// Finished reports a clock that ran down to zero
func (c *CountdownClock) Finished() bool {
	return !c.running && c.remaining <= 0 && c.duration > 0
}

// Format renders remaining as HH:MM:SS, truncating fractional seconds
func (c *CountdownClock) Format() string {
	return FormatClock(c.remaining)
}

// FormatClock renders seconds as zero-padded HH:MM:SS, truncating toward zero
func FormatClock(seconds float64) string {
	total := int(seconds)
	if total < 0 {
		total = 0
	}
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total%3600)/60, total%60)
}

func clampDuration(d float64) float64 {
	return math.Max(0, math.Min(d, parameter.MaxDuration))
}
