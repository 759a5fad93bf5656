package audio

import (
	"fmt"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/hourglass/core"
	"github.com/lixenwraith/hourglass/parameter"
)

// SoundManager plays one-shot cues through a shared mixer
// Safe for concurrent use; the speaker callback reads the mixer on its own goroutine
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	rate        beep.SampleRate
	volume      float64
	muted       bool
	initialized bool
}

// NewSoundManager creates a manager; call Initialize before playing
func NewSoundManager(muted bool) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		rate:   beep.SampleRate(parameter.AudioSampleRate),
		volume: parameter.AudioMasterVolume,
		muted:  muted,
	}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sm.rate, sm.rate.N(parameter.AudioBufferDuration)); err != nil {
		return fmt.Errorf("audio: speaker init: %w", err)
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Play queues a cue, returns false when not initialized, muted or unknown
func (sm *SoundManager) Play(st core.SoundType) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return false
	}
	s := Generate(st, sm.rate, sm.volume)
	if s == nil {
		return false
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
	return true
}

// ToggleMute flips the mute flag and returns the new state
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.muted = !sm.muted
	if sm.muted && sm.initialized {
		speaker.Lock()
		sm.mixer.Clear()
		speaker.Unlock()
	}
	return sm.muted
}

// IsMuted reports the mute flag
func (sm *SoundManager) IsMuted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// Close silences the mixer and releases the speaker
func (sm *SoundManager) Close() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	sm.initialized = false
}
