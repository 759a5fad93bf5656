package engine

import "github.com/lixenwraith/hourglass/event"

// System is a per-frame update step
type System interface {
	// Name identifies the system in logs
	Name() string

	// Priority orders execution, lower runs first
	Priority() int

	// Update runs once per frame
	Update()
}

// EventHandler processes specific event types
// Systems implement this interface to receive routed events
type EventHandler interface {
	// HandleEvent processes a single event
	// Called synchronously during the dispatch phase, before systems update
	HandleEvent(ev event.GameEvent)

	// EventTypes returns the event types this handler processes
	EventTypes() []event.EventType
}
