package system

import (
	"log"

	"github.com/lixenwraith/hourglass/engine"
	"github.com/lixenwraith/hourglass/event"
	"github.com/lixenwraith/hourglass/parameter"
)

// TimerSystem applies timer control actions and ticks the countdown
// It is the only system that writes remaining during a frame
type TimerSystem struct {
	world *engine.World
}

// NewTimerSystem creates a new timer system
func NewTimerSystem(world *engine.World) *TimerSystem {
	return &TimerSystem{world: world}
}

// Name returns system's name
func (s *TimerSystem) Name() string {
	return "timer"
}

// Priority returns the system's priority
func (s *TimerSystem) Priority() int {
	return parameter.PriorityTimer
}

// EventTypes returns the event types TimerSystem handles
func (s *TimerSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventTimerStart,
		event.EventTimerPause,
		event.EventTimerToggle,
		event.EventTimerReset,
		event.EventTimerAddTime,
	}
}

// HandleEvent processes timer control actions
func (s *TimerSystem) HandleEvent(ev event.GameEvent) {
	clock := s.world.Resource.Clock

	switch ev.Type {
	case event.EventTimerStart:
		clock.Start()
	case event.EventTimerPause:
		clock.Pause()
	case event.EventTimerToggle:
		clock.Toggle()
	case event.EventTimerReset:
		clock.Reset()
	case event.EventTimerAddTime:
		if payload, ok := ev.Payload.(*event.AddTimePayload); ok {
			clock.AddTime(payload.Seconds)
		}
	}
}

// Update decrements the clock and signals completion once
func (s *TimerSystem) Update() {
	clock := s.world.Resource.Clock
	if clock.Tick(s.world.Resource.Time.Delta) {
		log.Printf("timer: finished (duration %s)", engine.FormatClock(clock.Duration()))
		s.world.PushEvent(event.EventTimerFinished, nil)
	}
}
