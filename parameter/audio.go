package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond

	// AudioMasterVolume scales all effects
	AudioMasterVolume = 0.5
)

// Bell Sound (timer finished)
const (
	BellSoundDuration           = 600 * time.Millisecond
	BellSoundAttack             = 5 * time.Millisecond
	BellSoundFundamentalRelease = 550 * time.Millisecond
	BellSoundOvertoneRelease    = 200 * time.Millisecond
)

// Whoosh Sound (flip)
const (
	WhooshSoundDuration = 300 * time.Millisecond
	WhooshSoundAttack   = 150 * time.Millisecond
	WhooshSoundRelease  = 150 * time.Millisecond
)

// Click Sound (start/pause)
const (
	ClickSoundDuration = 30 * time.Millisecond
	ClickSoundAttack   = 2 * time.Millisecond
	ClickSoundRelease  = 20 * time.Millisecond
)
