package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/hourglass/event"
)

// Tracker turns tcell mouse reports into edge-detected pointer samples
// tcell reports the current button mask; press and release are derived from
// the previous mask. Only the primary button is tracked.
type Tracker struct {
	pressed bool
}

// NewTracker creates an idle tracker
func NewTracker() *Tracker {
	return &Tracker{}
}

// Sample converts a mouse event; ok is false for reports that carry no
// primary-button information (wheel, motion without a press)
func (t *Tracker) Sample(ev *tcell.EventMouse) (event.PointerPayload, bool) {
	x, y := ev.Position()
	down := ev.Buttons()&tcell.Button1 != 0

	p := event.PointerPayload{
		X:            x,
		Y:            y,
		JustPressed:  down && !t.pressed,
		Pressed:      down,
		JustReleased: !down && t.pressed,
	}
	if !down && !t.pressed {
		return p, false
	}
	t.pressed = down
	return p, true
}

// Dispatch pushes a pointer event for a mouse report
func (t *Tracker) Dispatch(ev *tcell.EventMouse, q *event.EventQueue) {
	p, ok := t.Sample(ev)
	if !ok {
		return
	}
	q.Push(event.GameEvent{Type: event.EventPointer, Payload: &p})
}
