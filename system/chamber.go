package system

import (
	"github.com/lixenwraith/hourglass/engine"
	"github.com/lixenwraith/hourglass/parameter"
)

// Chamber fill convention: the upper chamber holds the time remaining
// At rest the sand has settled in the lower chamber; the flip brings it up
const (
	AtRestUpper = 0.0
	AtRestLower = 1.0
)

// ChamberInput is the mapper's view of the clock and instance
type ChamberInput struct {
	Duration  float64
	Remaining float64
	Running   bool
	Flipping  bool
	// Started is true once the clock has run since the last reset
	Started bool
}

// MapChambers derives chamber levels
// ok is false when the levels must be left untouched (flip in progress or paused mid-countdown)
func MapChambers(in ChamberInput) (upper, lower float64, ok bool) {
	switch {
	case in.Flipping:
		return 0, 0, false
	case in.Duration > 0 && (in.Running || in.Started):
		upper = in.Remaining / in.Duration
		if upper < 0 {
			upper = 0
		} else if upper > 1 {
			upper = 1
		}
		return upper, 1 - upper, true
	case !in.Running && in.Remaining >= in.Duration:
		return AtRestUpper, AtRestLower, true
	default:
		return 0, 0, false
	}
}

// LiveFill returns the upper chamber level implied by the clock alone
// Used to seed a rebuilt instance
func LiveFill(res *engine.Resource) float64 {
	upper, _, ok := MapChambers(ChamberInput{
		Duration:  res.Clock.Duration(),
		Remaining: res.Clock.Remaining(),
		Running:   res.Clock.Running(),
		Started:   res.Guard.Started(),
	})
	if !ok {
		return res.Clock.Progress()
	}
	return upper
}

// ChamberSystem stamps clock state and chamber levels onto the live instance every frame
// Runs after ShapeSystem so a freshly rebuilt instance is corrected in the same frame
type ChamberSystem struct {
	world *engine.World
}

// NewChamberSystem creates a new chamber system
func NewChamberSystem(world *engine.World) *ChamberSystem {
	return &ChamberSystem{world: world}
}

// Name returns system's name
func (s *ChamberSystem) Name() string {
	return "chamber"
}

// Priority returns the system's priority
func (s *ChamberSystem) Priority() int {
	return parameter.PriorityChamber
}

// Update maps the clock onto the instance
func (s *ChamberSystem) Update() {
	res := &s.world.Resource
	inst := res.Hourglass.Instance
	if inst == nil {
		return
	}

	st := inst.State()
	clock := res.Clock
	st.TotalTime = clock.Duration()
	st.RemainingTime = clock.Remaining()
	st.Running = clock.Running()

	if res.Hourglass.HoldLevels {
		res.Hourglass.HoldLevels = false
		return
	}

	upper, lower, ok := MapChambers(ChamberInput{
		Duration:  clock.Duration(),
		Remaining: clock.Remaining(),
		Running:   clock.Running(),
		Flipping:  st.Flipping,
		Started:   res.Guard.Started(),
	})
	if ok {
		st.UpperChamber = upper
		st.LowerChamber = lower
	}
}
