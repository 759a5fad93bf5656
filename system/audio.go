package system

import (
	"log"

	"github.com/lixenwraith/hourglass/core"
	"github.com/lixenwraith/hourglass/engine"
	"github.com/lixenwraith/hourglass/event"
	"github.com/lixenwraith/hourglass/parameter"
)

// AudioSystem maps timer feedback events to sound effects
// Silent when no player is attached
type AudioSystem struct {
	world *engine.World
}

// NewAudioSystem creates a new audio system
func NewAudioSystem(world *engine.World) *AudioSystem {
	return &AudioSystem{world: world}
}

// Name returns system's name
func (s *AudioSystem) Name() string {
	return "audio"
}

// Priority returns the system's priority
func (s *AudioSystem) Priority() int {
	return parameter.PriorityAudio
}

// EventTypes returns the event types AudioSystem handles
func (s *AudioSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventTimerFinished,
		event.EventFlipPerformed,
		event.EventTimerStart,
		event.EventTimerPause,
		event.EventTimerToggle,
		event.EventSoundRequest,
		event.EventMuteToggle,
	}
}

// HandleEvent plays the sound for an event
func (s *AudioSystem) HandleEvent(ev event.GameEvent) {
	player := s.world.Resource.Audio
	if player == nil {
		return
	}
	if ev.Type == event.EventMuteToggle {
		log.Printf("audio: muted=%t", player.ToggleMute())
		return
	}
	if player.IsMuted() {
		return
	}

	switch ev.Type {
	case event.EventTimerFinished:
		player.Play(core.SoundBell)
	case event.EventFlipPerformed:
		player.Play(core.SoundWhoosh)
	case event.EventTimerStart, event.EventTimerPause, event.EventTimerToggle:
		player.Play(core.SoundClick)
	case event.EventSoundRequest:
		if payload, ok := ev.Payload.(*event.SoundRequestPayload); ok {
			player.Play(payload.SoundType)
		}
	}
}

// Update is a no-op; sounds are event driven
func (s *AudioSystem) Update() {}
