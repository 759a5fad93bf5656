package parameter

// System Execution Priorities (lower runs first)
const (
	PriorityGesture   = 10  // Input first, mutates clock running state
	PriorityTimer     = 20  // Clock decrement, exclusive writer of remaining
	PriorityFlipGuard = 30  // Observes running edges after control and tick
	PriorityColor     = 40  // Independent of shape
	PriorityShape     = 50  // Rebuilds instance, must precede chamber mapping
	PriorityChamber   = 60  // Re-stamps levels onto the (possibly fresh) instance
	PriorityAnimation = 70  // Collaborator advances flip animation
	PriorityAudio     = 100 // Sound cues, after all state settled
)
