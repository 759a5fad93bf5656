package system

import (
	"log"

	"github.com/lixenwraith/hourglass/engine"
	"github.com/lixenwraith/hourglass/event"
	"github.com/lixenwraith/hourglass/hourglass"
	"github.com/lixenwraith/hourglass/parameter"
	"github.com/lixenwraith/hourglass/shape"
)

// ShapeSystem owns the instance lifecycle
// Static mode rebuilds when the config shape version moves past the last build.
// Morph mode rebuilds from the interpolated preset blend, throttled to
// MorphMinInterval. No rebuild happens while a flip animation is running.
type ShapeSystem struct {
	world *engine.World

	morphed     bool
	lastMorphAt float64
}

// NewShapeSystem creates the shape system and builds the initial instance
func NewShapeSystem(world *engine.World) *ShapeSystem {
	s := &ShapeSystem{world: world}
	body, plates := shape.Config(shape.Preset(world.Resource.Config.Shape()))
	s.rebuild(body, plates)
	return s
}

// Name returns system's name
func (s *ShapeSystem) Name() string {
	return "shape"
}

// Priority returns the system's priority
func (s *ShapeSystem) Priority() int {
	return parameter.PriorityShape
}

// EventTypes returns the event types ShapeSystem handles
func (s *ShapeSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventShapeSelect,
		event.EventMorphToggle,
	}
}

// HandleEvent applies shape selections
func (s *ShapeSystem) HandleEvent(ev event.GameEvent) {
	cfg := s.world.Resource.Config

	switch ev.Type {
	case event.EventShapeSelect:
		if payload, ok := ev.Payload.(*event.ShapePayload); ok {
			if payload.Preset < 0 || payload.Preset >= int(shape.PresetCount) {
				return
			}
			cfg.SetShape(payload.Preset)
			cfg.SetShapeMode(engine.ShapeStatic)
		}
	case event.EventMorphToggle:
		if cfg.ShapeMode() == engine.ShapeMorphing {
			cfg.SetShapeMode(engine.ShapeStatic)
		} else {
			cfg.SetShapeMode(engine.ShapeMorphing)
			s.morphed = false
		}
	}
}

// Update rebuilds the instance when the derived shape changed
func (s *ShapeSystem) Update() {
	res := &s.world.Resource
	if inst := res.Hourglass.Instance; inst != nil && inst.State().Flipping {
		return
	}

	cfg := res.Config
	if cfg.ShapeMode() == engine.ShapeMorphing {
		now := res.Time.Elapsed
		if s.morphed && now-s.lastMorphAt < parameter.MorphMinInterval.Seconds() {
			return
		}
		s.morphed = true
		s.lastMorphAt = now
		body, plates := shape.At(now, parameter.MorphCycle)
		s.rebuild(body, plates)
		return
	}

	if res.Hourglass.Instance != nil && res.Hourglass.BuiltShapeVersion == cfg.ShapeVersion() {
		return
	}
	preset := shape.Preset(cfg.Shape())
	body, plates := shape.Config(preset)
	s.rebuild(body, plates)
	if inst := res.Hourglass.Instance; inst != nil {
		log.Printf("shape: built %s instance %s", preset, inst.ID())
	}
}

// rebuild replaces the instance, seeding fill from the live clock
// The drag gesture lives on the resource, not the instance, so a press in
// progress survives the swap
func (s *ShapeSystem) rebuild(body hourglass.BodyConfig, plates hourglass.PlateConfig) {
	res := &s.world.Resource
	if res.Builder == nil {
		return
	}

	if old := res.Hourglass.Instance; old != nil {
		res.Builder.Destroy(old)
		res.Hourglass.Instance = nil
	}

	color := res.Config.Color()
	sand := hourglass.SandConfig{
		Color:       color,
		FillPercent: LiveFill(res),
		WallOffset:  parameter.SandWallOffset,
	}
	res.Hourglass.Instance = res.Builder.Build(body, plates, sand, hourglass.DefaultSplash(color), res.Clock.Duration())
	res.Hourglass.BuiltShapeVersion = res.Config.ShapeVersion()
	res.Hourglass.Builds++
}
