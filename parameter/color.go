package parameter

// Rainbow Color Mode
const (
	// RainbowDegreesPerSecond gives one full hue rotation every 6 seconds
	RainbowDegreesPerSecond = 60.0

	// RainbowSaturation and RainbowLightness are the fixed HSL components
	RainbowSaturation = 1.0
	RainbowLightness  = 0.5
)
