package event

import "github.com/lixenwraith/hourglass/core"

// AddTimePayload carries a signed duration delta in seconds
type AddTimePayload struct {
	Seconds float64
}

// ColorPayload carries a user-selected sand color
type ColorPayload struct {
	Color core.RGB
}

// ShapePayload carries a preset index (shape.Preset underlying value)
type ShapePayload struct {
	Preset int
}

// PointerPayload is one pointer sample, position in terminal cells
type PointerPayload struct {
	X, Y         int
	JustPressed  bool
	Pressed      bool
	JustReleased bool
}

// SoundRequestPayload carries the sound type to play
type SoundRequestPayload struct {
	SoundType core.SoundType
}

// ResizePayload carries terminal dimensions in cells
type ResizePayload struct {
	Width  int
	Height int
}
