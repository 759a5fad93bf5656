package parameter

// Countdown Clock
const (
	// DefaultDuration is the initial countdown length in seconds (3 minutes)
	DefaultDuration = 180.0

	// MaxDuration is the upper clamp for AddTime in seconds (24 hours)
	MaxDuration = 86400.0
)

// TimeAdjustSteps are the add/subtract amounts offered by the timer panel, in seconds
var TimeAdjustSteps = [...]float64{1, 5, 15, 60, 300, 900, 3600}

// Flip Animation
const (
	// FlipDuration is how long the collaborator owns the chamber levels during a flip, in seconds
	FlipDuration = 0.8
)
