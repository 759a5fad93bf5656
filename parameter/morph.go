package parameter

import "time"

// Shape Morph
const (
	// MorphCycle is the wall-clock period of one pass through all presets, in seconds
	MorphCycle = 8.0

	// MorphMinInterval throttles morph rebuilds
	MorphMinInterval = 10 * time.Millisecond

	// MinBulbResolution floors interpolated bulb curve resolution
	MinBulbResolution = 5

	// MinNeckResolution floors interpolated neck curve resolution
	MinNeckResolution = 3

	// BaseHeight is the Classic preset body height in local units
	BaseHeight = 200.0

	// SandWallOffset is the gap between glass and sand in local units
	SandWallOffset = 4.0
)
