package parameter

// Flip Gesture
const (
	// DragThresholdCells is the pointer displacement in terminal cells above which a press becomes a drag
	// Measured on screen so a one-cell wobble stays a click at any viewport size
	DragThresholdCells = 2.0

	// HitRadius is the hourglass hit region radius in local units
	// The region shrinks and grows with the displayed hourglass
	HitRadius = 130.0
)
