package hourglass

import (
	"math"

	"github.com/google/uuid"

	"github.com/lixenwraith/hourglass/parameter"
)

// Sim is the in-process animation collaborator
// It owns the flip transition: levels ease from their value at flip start to the swapped values
type Sim struct {
	id     string
	state  VisualState
	body   BodyConfig
	plates PlateConfig
	splash SplashConfig

	flipElapsed  float64
	flipDuration float64
	flipFromUp   float64
	flipFromLow  float64

	// Counters for tests and diagnostics
	FlipsAccepted int
	FlipsRejected int
	Destroyed     bool
}

// NewSim creates a simulated instance
func NewSim(body BodyConfig, plates PlateConfig, sand SandConfig, splash SplashConfig, duration float64) *Sim {
	fill := math.Max(0, math.Min(1, sand.FillPercent))
	return &Sim{
		id:           uuid.NewString(),
		body:         body,
		plates:       plates,
		splash:       splash,
		flipDuration: parameter.FlipDuration,
		state: VisualState{
			UpperChamber:  fill,
			LowerChamber:  1 - fill,
			TotalTime:     duration,
			RemainingTime: duration,
			SandColor:     sand.Color,
			SplashColor:   splash.Color,
		},
	}
}

func (s *Sim) ID() string           { return s.id }
func (s *Sim) State() *VisualState  { return &s.state }
func (s *Sim) Body() BodyConfig     { return s.body }
func (s *Sim) Plates() PlateConfig  { return s.plates }
func (s *Sim) Splash() SplashConfig { return s.splash }
func (s *Sim) CanFlip() bool        { return !s.state.Flipping && !s.Destroyed }

// Flip starts the flip animation unless one is already in progress
func (s *Sim) Flip() bool {
	if !s.CanFlip() {
		s.FlipsRejected++
		return false
	}
	s.state.Flipping = true
	s.flipElapsed = 0
	s.flipFromUp = s.state.UpperChamber
	s.flipFromLow = s.state.LowerChamber
	s.FlipsAccepted++
	return true
}

// FlipProgress returns [0,1] progress of the active flip, 0 when idle
func (s *Sim) FlipProgress() float64 {
	if !s.state.Flipping || s.flipDuration <= 0 {
		return 0
	}
	return math.Min(1, s.flipElapsed/s.flipDuration)
}

// Update advances the flip animation
func (s *Sim) Update(dt float64) {
	if !s.state.Flipping {
		return
	}
	s.flipElapsed += dt
	p := s.FlipProgress()

	// Smoothstep easing, sand turns over with the glass
	e := p * p * (3 - 2*p)
	s.state.UpperChamber = s.flipFromUp + (s.flipFromLow-s.flipFromUp)*e
	s.state.LowerChamber = s.flipFromLow + (s.flipFromUp-s.flipFromLow)*e

	if p >= 1 {
		s.state.Flipping = false
		s.flipElapsed = 0
	}
}

// SimBuilder builds Sim instances
type SimBuilder struct {
	// Last is the most recently built instance
	Last   *Sim
	Builds int
}

// NewSimBuilder creates a builder for simulated instances
func NewSimBuilder() *SimBuilder {
	return &SimBuilder{}
}

// Build creates a fresh Sim
func (b *SimBuilder) Build(body BodyConfig, plates PlateConfig, sand SandConfig, splash SplashConfig, duration float64) Instance {
	s := NewSim(body, plates, sand, splash, duration)
	b.Last = s
	b.Builds++
	return s
}

// Destroy marks the instance dead; further flips are refused
func (b *SimBuilder) Destroy(inst Instance) {
	if s, ok := inst.(*Sim); ok {
		s.Destroyed = true
	}
}
