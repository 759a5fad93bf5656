package input

import (
	"github.com/lixenwraith/hourglass/event"
	"github.com/lixenwraith/hourglass/parameter"
	"github.com/lixenwraith/hourglass/shape"
)

// Action is a discrete UI control
type Action uint8

const (
	ActionNone Action = iota
	ActionStart
	ActionPause
	ActionToggle
	ActionReset
	ActionAddMinute
	ActionSubMinute
	ActionAddFiveMinutes
	ActionSubFiveMinutes
	ActionAddSecond
	ActionSubSecond
	ActionAddFiveSeconds
	ActionSubFiveSeconds
	ActionAddFifteenSeconds
	ActionSubFifteenSeconds
	ActionAddFifteenMinutes
	ActionSubFifteenMinutes
	ActionAddHour
	ActionSubHour
	ActionNextColor
	ActionRandomColor
	ActionRainbow
	ActionShapeClassic
	ActionShapeModern
	ActionShapeSlim
	ActionShapeWide
	ActionMorphToggle
	ActionPanelToggle
	ActionMuteToggle
	ActionQuit
)

// actionRegistry maps canonical action names to actions
// Used by the keymap config loader to resolve TOML action names
var actionRegistry = map[string]Action{
	"none":          ActionNone,
	"start":         ActionStart,
	"pause":         ActionPause,
	"toggle":        ActionToggle,
	"reset":         ActionReset,
	"add_minute":    ActionAddMinute,
	"sub_minute":    ActionSubMinute,
	"add_five":      ActionAddFiveMinutes,
	"sub_five":      ActionSubFiveMinutes,
	"add_second":    ActionAddSecond,
	"sub_second":    ActionSubSecond,
	"add_5s":        ActionAddFiveSeconds,
	"sub_5s":        ActionSubFiveSeconds,
	"add_15s":       ActionAddFifteenSeconds,
	"sub_15s":       ActionSubFifteenSeconds,
	"add_15m":       ActionAddFifteenMinutes,
	"sub_15m":       ActionSubFifteenMinutes,
	"add_hour":      ActionAddHour,
	"sub_hour":      ActionSubHour,
	"next_color":    ActionNextColor,
	"random_color":  ActionRandomColor,
	"rainbow":       ActionRainbow,
	"shape_classic": ActionShapeClassic,
	"shape_modern":  ActionShapeModern,
	"shape_slim":    ActionShapeSlim,
	"shape_wide":    ActionShapeWide,
	"morph":         ActionMorphToggle,
	"panel":         ActionPanelToggle,
	"mute":          ActionMuteToggle,
	"quit":          ActionQuit,
}

// adjustSteps maps time-adjust actions to signed seconds, one pair per step
var adjustSteps = map[Action]float64{
	ActionAddSecond:         parameter.TimeAdjustSteps[0],
	ActionSubSecond:         -parameter.TimeAdjustSteps[0],
	ActionAddFiveSeconds:    parameter.TimeAdjustSteps[1],
	ActionSubFiveSeconds:    -parameter.TimeAdjustSteps[1],
	ActionAddFifteenSeconds: parameter.TimeAdjustSteps[2],
	ActionSubFifteenSeconds: -parameter.TimeAdjustSteps[2],
	ActionAddMinute:         parameter.TimeAdjustSteps[3],
	ActionSubMinute:         -parameter.TimeAdjustSteps[3],
	ActionAddFiveMinutes:    parameter.TimeAdjustSteps[4],
	ActionSubFiveMinutes:    -parameter.TimeAdjustSteps[4],
	ActionAddFifteenMinutes: parameter.TimeAdjustSteps[5],
	ActionSubFifteenMinutes: -parameter.TimeAdjustSteps[5],
	ActionAddHour:           parameter.TimeAdjustSteps[6],
	ActionSubHour:           -parameter.TimeAdjustSteps[6],
}

// LookupAction resolves an action name
func LookupAction(name string) (Action, bool) {
	a, ok := actionRegistry[name]
	return a, ok
}

// Event converts an action to the game event it requests
// ok is false for ActionNone
func (a Action) Event() (event.EventType, any, bool) {
	if step, ok := adjustSteps[a]; ok {
		return event.EventTimerAddTime, &event.AddTimePayload{Seconds: step}, true
	}

	switch a {
	case ActionStart:
		return event.EventTimerStart, nil, true
	case ActionPause:
		return event.EventTimerPause, nil, true
	case ActionToggle:
		return event.EventTimerToggle, nil, true
	case ActionReset:
		return event.EventTimerReset, nil, true
	case ActionNextColor:
		return event.EventColorNext, nil, true
	case ActionRandomColor:
		return event.EventColorRandom, nil, true
	case ActionRainbow:
		return event.EventColorRainbow, nil, true
	case ActionShapeClassic:
		return event.EventShapeSelect, &event.ShapePayload{Preset: int(shape.Classic)}, true
	case ActionShapeModern:
		return event.EventShapeSelect, &event.ShapePayload{Preset: int(shape.Modern)}, true
	case ActionShapeSlim:
		return event.EventShapeSelect, &event.ShapePayload{Preset: int(shape.Slim)}, true
	case ActionShapeWide:
		return event.EventShapeSelect, &event.ShapePayload{Preset: int(shape.Wide)}, true
	case ActionMorphToggle:
		return event.EventMorphToggle, nil, true
	case ActionPanelToggle:
		return event.EventPanelToggle, nil, true
	case ActionMuteToggle:
		return event.EventMuteToggle, nil, true
	case ActionQuit:
		return event.EventQuit, nil, true
	default:
		return 0, nil, false
	}
}

// Push queues the action's event, returns false for actions without one
func (a Action) Push(q *event.EventQueue) bool {
	t, payload, ok := a.Event()
	if !ok {
		return false
	}
	q.Push(event.GameEvent{Type: t, Payload: payload})
	return true
}
