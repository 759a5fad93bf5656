package engine

import (
	"github.com/lixenwraith/hourglass/event"
	"github.com/lixenwraith/hourglass/hourglass"
	"github.com/lixenwraith/hourglass/parameter"
)

// World owns the shared resources and the ordered system list
// Single-threaded: Tick and all systems run on the frame loop goroutine,
// other goroutines only Push events
type World struct {
	Resource Resource

	router  *EventRouter
	systems []System
}

// NewWorld creates a world with a fresh clock, guard, config and event queue
func NewWorld(duration float64, builder hourglass.Builder) *World {
	queue := event.NewEventQueue()
	w := &World{
		Resource: Resource{
			Time:      &TimeResource{},
			Clock:     NewCountdownClock(duration),
			Guard:     NewFlipGuard(),
			Config:    NewHourglassConfig(),
			Hourglass: &HourglassResource{},
			Events:    queue,
			Builder:   builder,
		},
		router:  NewEventRouter(queue),
		systems: make([]System, 0),
	}
	return w
}

// AddSystem adds a system, keeps the list sorted by priority and registers
// it with the router when it handles events
func (w *World) AddSystem(system System) {
	w.systems = append(w.systems, system)

	// Insertion sort, stable for equal priorities
	for i := len(w.systems) - 1; i > 0 && w.systems[i].Priority() < w.systems[i-1].Priority(); i-- {
		w.systems[i], w.systems[i-1] = w.systems[i-1], w.systems[i]
	}

	if h, ok := system.(EventHandler); ok {
		w.router.Register(h)
	}
}

// AddHandler registers a non-system event handler, such as the renderer
func (w *World) AddHandler(h EventHandler) {
	w.router.Register(h)
}

// Systems returns a copy of the registered systems in execution order
func (w *World) Systems() []System {
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// PushEvent emits an event tagged with the current frame
func (w *World) PushEvent(eventType event.EventType, payload any) {
	w.Resource.Events.Push(event.GameEvent{
		Type:    eventType,
		Payload: payload,
		Frame:   w.Resource.Time.FrameNumber,
	})
}

// Tick runs one frame: time update, event dispatch, then systems in priority order
// Returns the events dispatched this frame
func (w *World) Tick(elapsed, delta float64) []event.GameEvent {
	maxDelta := parameter.MaxFrameDelta.Seconds()
	if delta > maxDelta {
		delta = maxDelta
	}
	if delta < 0 {
		delta = 0
	}
	w.Resource.Time.Update(elapsed, delta, w.Resource.Time.FrameNumber+1)

	events := w.router.DispatchAll()
	for _, s := range w.systems {
		s.Update()
	}
	return events
}
