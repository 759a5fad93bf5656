package system

import (
	"math/rand"
	"testing"

	"github.com/lixenwraith/hourglass/core"
	"github.com/lixenwraith/hourglass/engine"
	"github.com/lixenwraith/hourglass/event"
	"github.com/lixenwraith/hourglass/hourglass"
	"github.com/lixenwraith/hourglass/parameter"
)

const testSeed = 1

// identityView maps one cell to one local unit, origin at cell (0,0)
type identityView struct{}

func (identityView) ToLocal(x, y int) core.Point { return core.Point{X: float64(x), Y: float64(y)} }

// fakePlayer records played sounds
type fakePlayer struct {
	played []core.SoundType
	muted  bool
}

func (p *fakePlayer) Play(st core.SoundType) bool {
	p.played = append(p.played, st)
	return true
}
func (p *fakePlayer) ToggleMute() bool { p.muted = !p.muted; return p.muted }
func (p *fakePlayer) IsMuted() bool    { return p.muted }

// harness drives a fully wired world with explicit frame timing
type harness struct {
	t       *testing.T
	world   *engine.World
	builder *hourglass.SimBuilder
	gesture *GestureSystem
	elapsed float64
}

func newHarness(t *testing.T, duration float64) *harness {
	t.Helper()
	b := hourglass.NewSimBuilder()
	w := engine.NewWorld(duration, b)
	w.Resource.View = identityView{}

	gesture := NewGestureSystem(w)
	w.AddSystem(gesture)
	w.AddSystem(NewTimerSystem(w))
	w.AddSystem(NewFlipGuardSystem(w))
	w.AddSystem(NewColorSystem(w, rand.New(rand.NewSource(testSeed))))
	w.AddSystem(NewShapeSystem(w))
	w.AddSystem(NewChamberSystem(w))
	w.AddSystem(NewAnimationSystem(w))
	w.AddSystem(NewAudioSystem(w))

	if w.Resource.Hourglass.Instance == nil {
		t.Fatal("Expected an initial instance")
	}
	return &harness{t: t, world: w, builder: b, gesture: gesture}
}

// step advances dt seconds and returns the dispatched events
func (h *harness) step(dt float64) []event.GameEvent {
	return h.stepAt(h.elapsed+dt, dt)
}

// stepAt advances dt seconds ending at an absolute elapsed time
// Spans longer than MaxFrameDelta run as several frames so the clock sees all of dt
func (h *harness) stepAt(elapsed, dt float64) []event.GameEvent {
	maxDelta := parameter.MaxFrameDelta.Seconds()
	var events []event.GameEvent
	for dt > maxDelta {
		dt -= maxDelta
		events = append(events, h.world.Tick(elapsed-dt, maxDelta)...)
	}
	h.elapsed = elapsed
	return append(events, h.world.Tick(elapsed, dt)...)
}

func (h *harness) push(t event.EventType, payload any) {
	h.world.PushEvent(t, payload)
}

func (h *harness) press(x, y int) {
	h.push(event.EventPointer, &event.PointerPayload{X: x, Y: y, JustPressed: true, Pressed: true})
}

func (h *harness) move(x, y int) {
	h.push(event.EventPointer, &event.PointerPayload{X: x, Y: y, Pressed: true})
}

func (h *harness) release(x, y int) {
	h.push(event.EventPointer, &event.PointerPayload{X: x, Y: y, JustReleased: true})
}

// click is a press and release at the same cell within one frame
func (h *harness) click(x, y int) {
	h.press(x, y)
	h.release(x, y)
	h.step(0)
}

func (h *harness) sim() *hourglass.Sim {
	h.t.Helper()
	s, ok := h.world.Resource.Hourglass.Instance.(*hourglass.Sim)
	if !ok {
		h.t.Fatal("Expected a *hourglass.Sim instance")
	}
	return s
}

func (h *harness) clock() *engine.CountdownClock {
	return h.world.Resource.Clock
}

func hasEvent(events []event.GameEvent, t event.EventType) bool {
	for _, ev := range events {
		if ev.Type == t {
			return true
		}
	}
	return false
}
