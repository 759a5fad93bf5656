package visual

import "github.com/lixenwraith/hourglass/core"

// Palette is the selectable sand color row: black, white, blue, red, purple, green, yellow, orange
var Palette = [...]core.RGB{
	core.RGBFromFloat(0.0, 0.0, 0.0),
	core.RGBFromFloat(1.0, 1.0, 1.0),
	core.RGBFromFloat(0.1, 0.3, 0.8),
	core.RGBFromFloat(0.8, 0.2, 0.2),
	core.RGBFromFloat(0.7, 0.1, 0.8),
	core.RGBFromFloat(0.1, 0.5, 0.1),
	core.RGBFromFloat(0.8, 0.8, 0.2),
	core.RGBFromFloat(0.8, 0.4, 0.0),
}

// Default and structural colors
var (
	// RgbSandDefault is the initial sandy sand color
	RgbSandDefault = core.RGBFromFloat(0.8, 0.6, 0.2)

	// RgbGlass tints the bulb outline
	RgbGlass = core.RGBFromFloat(0.85, 0.95, 1.0)

	RgbBackground  = core.RGB{R: 26, G: 27, B: 38} // Tokyo Night background
	RgbStatusText  = core.RGB{R: 0, G: 0, B: 0}
	RgbStatusBg    = core.RGB{R: 135, G: 206, B: 250}
	RgbPausedBg    = core.RGB{R: 200, G: 50, B: 50}
	RgbHelpText    = core.RGB{R: 180, G: 180, B: 180}
	RgbClockText   = core.RGB{R: 255, G: 255, B: 255}
	RgbFinishedBg  = core.RGB{R: 144, G: 238, B: 144}
	RgbPanelBorder = core.RGB{R: 90, G: 90, B: 110}
)
