package engine

import (
	"github.com/lixenwraith/hourglass/core"
	"github.com/lixenwraith/hourglass/event"
	"github.com/lixenwraith/hourglass/hourglass"
)

// Resource holds singleton state shared by systems, accessed via World.Resource
type Resource struct {
	Time      *TimeResource
	Clock     *CountdownClock
	Guard     *FlipGuard
	Config    *HourglassConfig
	Hourglass *HourglassResource
	Events    *event.EventQueue

	// Builder produces renderable instances
	Builder hourglass.Builder

	// View maps screen cells to hourglass-local units, nil until the first layout
	View ViewTransform

	// Audio is nil when sound is unavailable or disabled
	Audio AudioPlayer
}

// TimeResource wraps frame timing for systems
// Updated by World.Tick at the start of each frame
type TimeResource struct {
	// Elapsed is seconds since process start (drives morph and rainbow cycles)
	Elapsed float64

	// Delta is seconds since the previous frame
	Delta float64

	// FrameNumber is the current frame count
	FrameNumber int64
}

// Update modifies TimeResource fields in-place
func (tr *TimeResource) Update(elapsed, delta float64, frame int64) {
	tr.Elapsed = elapsed
	tr.Delta = delta
	tr.FrameNumber = frame
}

// DragGestureState is the per-press gesture record
// Created on pointer-down inside the hit region, cleared on pointer-up
type DragGestureState struct {
	Captured      bool // pointer-down landed inside the hit region
	IsDragging    bool
	StartPosition core.Point // press cell in screen coordinates
}

// Clear returns the state to idle
func (d *DragGestureState) Clear() {
	*d = DragGestureState{}
}

// HourglassResource tracks the live renderable instance
type HourglassResource struct {
	// Instance is nil during setup and teardown
	Instance hourglass.Instance

	// Drag survives instance rebuilds
	Drag DragGestureState

	// HoldLevels skips one chamber mapping pass after a forced at-rest write
	HoldLevels bool

	// BuiltShapeVersion is the config shape version of the last build
	BuiltShapeVersion uint64

	// Builds counts instance (re)builds
	Builds int
}

// ViewTransform converts between terminal cells and hourglass-local units
type ViewTransform interface {
	// ToLocal maps a screen cell to local units, y up, origin at the hourglass center
	ToLocal(x, y int) core.Point
}

// AudioPlayer defines the minimal audio interface used by systems
type AudioPlayer interface {
	Play(core.SoundType) bool
	ToggleMute() bool
	IsMuted() bool
}
