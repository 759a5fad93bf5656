package event

// EventType represents the type of game event
type EventType int

const (
	// === Timer Control ===

	// EventTimerStart starts the countdown (no-op when running)
	// Trigger: Keymap, UI control | Consumer: TimerSystem | Payload: nil
	EventTimerStart EventType = iota

	// EventTimerPause stops the countdown without resetting
	// Trigger: Keymap, UI control | Consumer: TimerSystem | Payload: nil
	EventTimerPause

	// EventTimerToggle flips between running and paused
	// Trigger: Keymap | Consumer: TimerSystem | Payload: nil
	EventTimerToggle

	// EventTimerReset restores remaining to duration and stops
	// Trigger: Keymap, UI control | Consumer: TimerSystem | Payload: nil
	EventTimerReset

	// EventTimerAddTime shifts duration and remaining
	// Trigger: Keymap, UI control | Consumer: TimerSystem | Payload: *AddTimePayload
	EventTimerAddTime

	// EventTimerFinished signals the countdown reached zero
	// Trigger: TimerSystem | Consumer: AudioSystem | Payload: nil
	EventTimerFinished

	// === Appearance ===

	// EventColorSelect sets a static sand color
	// Trigger: Keymap, UI control | Consumer: ColorSystem | Payload: *ColorPayload
	EventColorSelect

	// EventColorNext selects the next palette color as static
	// Trigger: Keymap | Consumer: ColorSystem | Payload: nil
	EventColorNext

	// EventColorRandom takes a one-shot random color sample
	// Trigger: Keymap, UI control | Consumer: ColorSystem | Payload: nil
	EventColorRandom

	// EventColorRainbow switches to continuous hue cycling
	// Trigger: Keymap, UI control | Consumer: ColorSystem | Payload: nil
	EventColorRainbow

	// EventShapeSelect selects a static shape preset
	// Trigger: Keymap, UI control | Consumer: ShapeSystem | Payload: *ShapePayload
	EventShapeSelect

	// EventMorphToggle switches between static and morphing shape mode
	// Trigger: Keymap, UI control | Consumer: ShapeSystem | Payload: nil
	EventMorphToggle

	// === Input ===

	// EventPointer carries one pointer sample in screen coordinates
	// Trigger: input.Tracker | Consumer: GestureSystem | Payload: *PointerPayload
	EventPointer

	// EventResize reports new terminal dimensions
	// Trigger: input goroutine | Consumer: TerminalRenderer | Payload: *ResizePayload
	EventResize

	// EventPanelToggle shows or hides the control panel
	// Trigger: Keymap | Consumer: renderer state | Payload: nil
	EventPanelToggle

	// EventMuteToggle mutes or unmutes sound cues
	// Trigger: Keymap | Consumer: AudioSystem | Payload: nil
	EventMuteToggle

	// EventQuit requests program exit
	// Trigger: Keymap | Consumer: main loop | Payload: nil
	EventQuit

	// === Feedback ===

	// EventFlipPerformed signals the collaborator accepted a flip
	// Trigger: AnimationSystem | Consumer: AudioSystem | Payload: nil
	EventFlipPerformed

	// EventSoundRequest requests audio playback
	// Trigger: Systems requiring audio feedback | Consumer: AudioSystem | Payload: *SoundRequestPayload
	EventSoundRequest
)

// GameEvent represents a single event with typed payload
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}

var eventNames = map[EventType]string{
	EventTimerStart:    "TimerStart",
	EventTimerPause:    "TimerPause",
	EventTimerToggle:   "TimerToggle",
	EventTimerReset:    "TimerReset",
	EventTimerAddTime:  "TimerAddTime",
	EventTimerFinished: "TimerFinished",
	EventColorSelect:   "ColorSelect",
	EventColorNext:     "ColorNext",
	EventColorRandom:   "ColorRandom",
	EventColorRainbow:  "ColorRainbow",
	EventShapeSelect:   "ShapeSelect",
	EventMorphToggle:   "MorphToggle",
	EventPointer:       "Pointer",
	EventResize:        "Resize",
	EventPanelToggle:   "PanelToggle",
	EventMuteToggle:    "MuteToggle",
	EventQuit:          "Quit",
	EventFlipPerformed: "FlipPerformed",
	EventSoundRequest:  "SoundRequest",
}

// String returns the event name for logging
func (t EventType) String() string {
	if name, ok := eventNames[t]; ok {
		return name
	}
	return "Unknown"
}
