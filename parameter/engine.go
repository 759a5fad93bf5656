package parameter

import "time"

// Frame Loop & Engine Timing
const (
	// FrameInterval is the render/update tick interval (~60 FPS)
	FrameInterval = 16 * time.Millisecond

	// MaxFrameDelta caps a single frame's delta so a stalled terminal does not drain the clock in one step
	MaxFrameDelta = 250 * time.Millisecond
)

// Event Queue Limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo operations (256 - 1)
	EventBufferMask = 255
)
