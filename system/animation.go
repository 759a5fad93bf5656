package system

import (
	"github.com/lixenwraith/hourglass/engine"
	"github.com/lixenwraith/hourglass/event"
	"github.com/lixenwraith/hourglass/parameter"
)

// AnimationSystem advances the instance's own animation and reports flip starts
type AnimationSystem struct {
	world *engine.World

	lastID       string
	lastFlipping bool
}

// NewAnimationSystem creates a new animation system
func NewAnimationSystem(world *engine.World) *AnimationSystem {
	return &AnimationSystem{world: world}
}

// Name returns system's name
func (s *AnimationSystem) Name() string {
	return "animation"
}

// Priority returns the system's priority
func (s *AnimationSystem) Priority() int {
	return parameter.PriorityAnimation
}

// Update steps the collaborator animation
func (s *AnimationSystem) Update() {
	inst := s.world.Resource.Hourglass.Instance
	if inst == nil {
		return
	}

	if id := inst.ID(); id != s.lastID {
		s.lastID = id
		s.lastFlipping = false
	}

	flipping := inst.State().Flipping
	if flipping && !s.lastFlipping {
		s.world.PushEvent(event.EventFlipPerformed, nil)
	}

	inst.Update(s.world.Resource.Time.Delta)
	s.lastFlipping = inst.State().Flipping
}
