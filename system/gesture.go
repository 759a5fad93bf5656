package system

import (
	"log"

	"github.com/lixenwraith/hourglass/core"
	"github.com/lixenwraith/hourglass/engine"
	"github.com/lixenwraith/hourglass/event"
	"github.com/lixenwraith/hourglass/parameter"
)

// GestureSystem disambiguates click and drag on the hourglass
//
// Press inside the hit region captures the gesture. Movement beyond the
// drag threshold marks it as a drag. Release inside the region fires:
// a drag flips (force at-rest levels, flip, reset, start), a click toggles
// running. Release always clears the gesture state.
type GestureSystem struct {
	world     *engine.World
	threshold float64
}

// NewGestureSystem creates a gesture system with the default drag threshold
func NewGestureSystem(world *engine.World) *GestureSystem {
	return &GestureSystem{
		world:     world,
		threshold: parameter.DragThresholdCells,
	}
}

// SetDragThreshold sets the click/drag boundary in terminal cells
func (s *GestureSystem) SetDragThreshold(cells float64) {
	s.threshold = cells
}

// Name returns system's name
func (s *GestureSystem) Name() string {
	return "gesture"
}

// Priority returns the system's priority
func (s *GestureSystem) Priority() int {
	return parameter.PriorityGesture
}

// EventTypes returns the event types GestureSystem handles
func (s *GestureSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventPointer}
}

// HandleEvent processes one pointer sample
func (s *GestureSystem) HandleEvent(ev event.GameEvent) {
	payload, ok := ev.Payload.(*event.PointerPayload)
	if !ok {
		return
	}
	view := s.world.Resource.View
	if view == nil {
		return
	}

	// Hit test in local units, displacement in screen cells
	inside := view.ToLocal(payload.X, payload.Y).Len() < parameter.HitRadius
	cell := core.Point{X: float64(payload.X), Y: float64(payload.Y)}
	drag := &s.world.Resource.Hourglass.Drag

	if payload.JustPressed {
		drag.Clear()
		if inside {
			drag.Captured = true
			drag.StartPosition = cell
		}
	}

	if payload.Pressed && drag.Captured && !drag.IsDragging {
		s.track(drag, cell)
	}

	if payload.JustReleased {
		if drag.Captured && inside {
			// Release position counts even without an intermediate move sample
			if !drag.IsDragging {
				s.track(drag, cell)
			}
			if drag.IsDragging {
				s.flip()
			} else {
				s.click()
			}
		}
		drag.Clear()
	}
}

// Update is a no-op; gestures are resolved during event dispatch
func (s *GestureSystem) Update() {}

func (s *GestureSystem) track(drag *engine.DragGestureState, cell core.Point) {
	if cell.Distance(drag.StartPosition) > s.threshold {
		drag.IsDragging = true
	}
}

// click toggles the clock between running and paused
func (s *GestureSystem) click() {
	s.world.Resource.Clock.Toggle()
	s.world.PushEvent(event.EventSoundRequest, &event.SoundRequestPayload{SoundType: core.SoundClick})
}

// flip resets the timer with an immediate at-rest orientation and auto-runs it
func (s *GestureSystem) flip() {
	res := &s.world.Resource

	if inst := res.Hourglass.Instance; inst != nil {
		st := inst.State()
		if !st.Flipping {
			st.UpperChamber = AtRestUpper
			st.LowerChamber = AtRestLower
			res.Hourglass.HoldLevels = true
		}
		if inst.CanFlip() {
			inst.Flip()
		} else {
			log.Printf("gesture: flip dropped, instance %s busy", inst.ID())
		}
	}

	res.Clock.Reset()
	res.Clock.Start()
}
