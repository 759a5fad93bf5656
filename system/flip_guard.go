package system

import (
	"log"

	"github.com/lixenwraith/hourglass/engine"
	"github.com/lixenwraith/hourglass/parameter"
)

// FlipGuardSystem requests the auto-start flip on the first start of each reset cycle
// A request refused by the instance is dropped; the next start after a reset tries again
type FlipGuardSystem struct {
	world *engine.World
}

// NewFlipGuardSystem creates a new flip guard system
func NewFlipGuardSystem(world *engine.World) *FlipGuardSystem {
	return &FlipGuardSystem{world: world}
}

// Name returns system's name
func (s *FlipGuardSystem) Name() string {
	return "flipguard"
}

// Priority returns the system's priority
func (s *FlipGuardSystem) Priority() int {
	return parameter.PriorityFlipGuard
}

// Update samples the clock and forwards a first-start edge to the instance
func (s *FlipGuardSystem) Update() {
	res := &s.world.Resource
	if !res.Guard.Observe(res.Clock) {
		return
	}

	inst := res.Hourglass.Instance
	if inst == nil {
		return
	}
	if !inst.CanFlip() {
		log.Printf("flipguard: flip dropped, instance %s busy", inst.ID())
		return
	}
	inst.Flip()
}
