package hourglass

import "github.com/lixenwraith/hourglass/core"

// VisualState is the mutable record a renderable instance exposes
// While Flipping is true the chamber levels belong to the flip animation
type VisualState struct {
	UpperChamber  float64
	LowerChamber  float64
	Running       bool
	Flipping      bool
	TotalTime     float64
	RemainingTime float64
	SandColor     core.RGB
	SplashColor   core.RGB
}

// Instance is a renderable hourglass produced by a Builder
type Instance interface {
	// ID identifies the build for logging
	ID() string

	// State returns the live mutable state record
	State() *VisualState

	// Flip requests a flip animation, returns false if refused
	Flip() bool

	// CanFlip reports whether a flip request would be accepted
	CanFlip() bool

	// Update advances any running animation by dt seconds
	Update(dt float64)

	Body() BodyConfig
	Plates() PlateConfig
	Splash() SplashConfig
}

// Builder creates and destroys renderable instances
type Builder interface {
	Build(body BodyConfig, plates PlateConfig, sand SandConfig, splash SplashConfig, duration float64) Instance
	Destroy(inst Instance)
}
