package engine

// GuardState is the flip-once guard state
type GuardState uint8

const (
	// GuardAtRest: clock full and stopped, never started
	GuardAtRest GuardState = iota
	// GuardArmed: returned to rest by a reset or a duration change, waiting for the next start
	GuardArmed
	// GuardStarted: the clock has started at least once since the last reset
	GuardStarted
)

// String returns the state name
func (s GuardState) String() string {
	switch s {
	case GuardArmed:
		return "ARMED"
	case GuardStarted:
		return "STARTED"
	default:
		return "AT_REST"
	}
}

// FlipGuard detects the first false->true running transition per reset cycle
// It re-arms on a Reset, or when the clock is stopped and full at a duration
// other than the one it started with. A start paused before the first tick
// stays STARTED, so pause/resume never re-fires.
// It only decides; requesting the flip from the instance is the caller's job
type FlipGuard struct {
	state       GuardState
	lastRunning bool
	lastResets  uint64

	// startedDuration is the clock duration at the last STARTED transition
	startedDuration float64
}

// NewFlipGuard creates a guard in AT_REST
func NewFlipGuard() *FlipGuard {
	return &FlipGuard{}
}

// State returns the current guard state
func (g *FlipGuard) State() GuardState { return g.state }

// Started reports whether the clock has started since the last reset
func (g *FlipGuard) Started() bool { return g.state == GuardStarted }

// Observe samples the clock once per frame
// Returns true exactly on the AT_REST/ARMED -> STARTED transition
func (g *FlipGuard) Observe(c *CountdownClock) bool {
	running := c.Running()

	// A reset between samples invalidates the previous running edge
	if resets := c.Resets(); resets != g.lastResets {
		g.lastResets = resets
		g.state = GuardArmed
		g.lastRunning = false
	}

	// Add-time can refill a stopped clock to a new duration without a reset
	if g.state == GuardStarted && c.AtRest() && c.Duration() != g.startedDuration {
		g.state = GuardArmed
		g.lastRunning = false
	}

	fire := false
	if running && !g.lastRunning && g.state != GuardStarted {
		g.state = GuardStarted
		g.startedDuration = c.Duration()
		fire = true
	}
	g.lastRunning = running
	return fire
}
