package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/hourglass/event"
	"github.com/lixenwraith/hourglass/shape"
)

func TestDefaultKeymap(t *testing.T) {
	k := DefaultKeymap()

	tests := []struct {
		key      tcell.Key
		r        rune
		expected Action
	}{
		{tcell.KeyRune, ' ', ActionToggle},
		{tcell.KeyRune, 'r', ActionReset},
		{tcell.KeyRune, '+', ActionAddMinute},
		{tcell.KeyRune, '[', ActionSubFiveMinutes},
		{tcell.KeyRune, '3', ActionShapeSlim},
		{tcell.KeyRune, 'v', ActionMuteToggle},
		{tcell.KeyRune, 'z', ActionNone},
		{tcell.KeyEscape, 0, ActionQuit},
		{tcell.KeyEnter, 0, ActionToggle},
		{tcell.KeyUp, 0, ActionAddFifteenSeconds},
		{tcell.KeyPgDn, 0, ActionSubFifteenMinutes},
		{tcell.KeyF5, 0, ActionNone},
	}

	for _, tt := range tests {
		if got := k.ResolveKey(tt.key, tt.r); got != tt.expected {
			t.Errorf("Key %v %q: expected action %d, got %d", tt.key, tt.r, tt.expected, got)
		}
	}
}

func TestKeymapOverride(t *testing.T) {
	k := DefaultKeymap()

	err := k.Override(map[string]string{
		"toggle": "g",
		"quit":   "space",
		"none":   "r",
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if got := k.ResolveKey(tcell.KeyRune, 'g'); got != ActionToggle {
		t.Errorf("Expected g to toggle, got %d", got)
	}
	if got := k.ResolveKey(tcell.KeyRune, ' '); got != ActionQuit {
		t.Errorf("Expected space to quit, got %d", got)
	}
	if got := k.ResolveKey(tcell.KeyRune, 'r'); got != ActionNone {
		t.Errorf("Expected r to be unbound, got %d", got)
	}
}

func TestKeymapOverrideErrors(t *testing.T) {
	tests := []struct {
		name     string
		bindings map[string]string
	}{
		{"unknown action", map[string]string{"explode": "e"}},
		{"multi-character key", map[string]string{"reset": "ctrl"}},
		{"empty key", map[string]string{"reset": ""}},
	}

	for _, tt := range tests {
		if err := DefaultKeymap().Override(tt.bindings); err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
	}
}

func TestActionEvents(t *testing.T) {
	tests := []struct {
		action  Action
		evType  event.EventType
		seconds float64
	}{
		{ActionAddSecond, event.EventTimerAddTime, 1},
		{ActionSubFiveSeconds, event.EventTimerAddTime, -5},
		{ActionAddFifteenSeconds, event.EventTimerAddTime, 15},
		{ActionSubMinute, event.EventTimerAddTime, -60},
		{ActionAddFiveMinutes, event.EventTimerAddTime, 300},
		{ActionSubFifteenMinutes, event.EventTimerAddTime, -900},
		{ActionAddHour, event.EventTimerAddTime, 3600},
	}

	for _, tt := range tests {
		typ, payload, ok := tt.action.Event()
		if !ok || typ != tt.evType {
			t.Errorf("Action %d: expected %v, got %v ok=%v", tt.action, tt.evType, typ, ok)
			continue
		}
		p, isAdd := payload.(*event.AddTimePayload)
		if !isAdd || p.Seconds != tt.seconds {
			t.Errorf("Action %d: expected %v seconds, got %v", tt.action, tt.seconds, payload)
		}
	}

	typ, payload, ok := ActionShapeWide.Event()
	if sp, isShape := payload.(*event.ShapePayload); !ok || typ != event.EventShapeSelect || !isShape || sp.Preset != int(shape.Wide) {
		t.Errorf("Expected wide shape select, got %v %v", typ, payload)
	}

	if _, _, ok := ActionNone.Event(); ok {
		t.Error("Expected ActionNone to produce no event")
	}
}

func TestActionPush(t *testing.T) {
	q := event.NewEventQueue()

	if !DefaultKeymap().ResolveKey(tcell.KeyEscape, 0).Push(q) {
		t.Fatal("Expected quit to push an event")
	}
	if ActionNone.Push(q) {
		t.Error("Expected ActionNone to push nothing")
	}
	events := q.Consume()
	if len(events) != 1 || events[0].Type != event.EventQuit {
		t.Errorf("Expected one quit event, got %v", events)
	}
}

func TestLookupAction(t *testing.T) {
	if a, ok := LookupAction("morph"); !ok || a != ActionMorphToggle {
		t.Errorf("Expected morph toggle, got %d ok=%v", a, ok)
	}
	if _, ok := LookupAction("bogus"); ok {
		t.Error("Expected unknown action lookup to fail")
	}
}
