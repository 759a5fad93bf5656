package system

import (
	"math"
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/hourglass/core"
	"github.com/lixenwraith/hourglass/engine"
	"github.com/lixenwraith/hourglass/event"
	"github.com/lixenwraith/hourglass/parameter"
	"github.com/lixenwraith/hourglass/parameter/visual"
)

// RainbowHue returns the hue in degrees for elapsed seconds, one rotation per 6s
func RainbowHue(elapsed float64) float64 {
	h := math.Mod(elapsed*parameter.RainbowDegreesPerSecond, 360)
	if h < 0 {
		h += 360
	}
	return h
}

// RainbowColor converts the rainbow hue at elapsed seconds to RGB (S=1, L=0.5)
func RainbowColor(elapsed float64) core.RGB {
	c := colorful.Hsl(RainbowHue(elapsed), parameter.RainbowSaturation, parameter.RainbowLightness)
	r, g, b := c.Clamped().RGB255()
	return core.RGB{R: r, G: g, B: b}
}

// ColorSystem drives the sand color mode and propagates the color to the instance
type ColorSystem struct {
	world        *engine.World
	rng          *rand.Rand
	paletteIndex int
}

// NewColorSystem creates a color system with the given random source
func NewColorSystem(world *engine.World, rng *rand.Rand) *ColorSystem {
	return &ColorSystem{
		world:        world,
		rng:          rng,
		paletteIndex: -1,
	}
}

// Name returns system's name
func (s *ColorSystem) Name() string {
	return "color"
}

// Priority returns the system's priority
func (s *ColorSystem) Priority() int {
	return parameter.PriorityColor
}

// EventTypes returns the event types ColorSystem handles
func (s *ColorSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventColorSelect,
		event.EventColorNext,
		event.EventColorRandom,
		event.EventColorRainbow,
	}
}

// HandleEvent applies color mode selections
func (s *ColorSystem) HandleEvent(ev event.GameEvent) {
	cfg := s.world.Resource.Config

	switch ev.Type {
	case event.EventColorSelect:
		if payload, ok := ev.Payload.(*event.ColorPayload); ok {
			cfg.SetColorMode(engine.ColorStatic)
			cfg.SetColor(payload.Color)
		}
	case event.EventColorNext:
		s.paletteIndex = (s.paletteIndex + 1) % len(visual.Palette)
		cfg.SetColorMode(engine.ColorStatic)
		cfg.SetColor(visual.Palette[s.paletteIndex])
	case event.EventColorRandom:
		// One sample per selection, static afterwards
		cfg.SetColorMode(engine.ColorRandom)
		cfg.SetColor(core.RGB{
			R: uint8(s.rng.Intn(256)),
			G: uint8(s.rng.Intn(256)),
			B: uint8(s.rng.Intn(256)),
		})
	case event.EventColorRainbow:
		cfg.SetColorMode(engine.ColorRainbow)
		cfg.SetColor(RainbowColor(s.world.Resource.Time.Elapsed))
	}
}

// Update advances the rainbow and writes the color onto the instance
func (s *ColorSystem) Update() {
	res := &s.world.Resource
	if res.Config.ColorMode() == engine.ColorRainbow {
		res.Config.SetColor(RainbowColor(res.Time.Elapsed))
	}

	inst := res.Hourglass.Instance
	if inst == nil {
		return
	}
	color := res.Config.Color()
	st := inst.State()
	st.SandColor = color
	st.SplashColor = color
}
