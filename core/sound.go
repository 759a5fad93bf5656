package core

// SoundType represents different sound effects
type SoundType int

const (
	SoundBell   SoundType = iota // Timer finished
	SoundWhoosh                  // Flip animation started
	SoundClick                   // Start/pause toggle
	SoundTypeCount
)
