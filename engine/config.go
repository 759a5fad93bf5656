package engine

import (
	"github.com/lixenwraith/hourglass/core"
	"github.com/lixenwraith/hourglass/parameter/visual"
)

// ColorMode selects how the sand color is derived
type ColorMode uint8

const (
	ColorStatic ColorMode = iota
	ColorRandom
	ColorRainbow
)

var colorModeNames = [...]string{"static", "random", "rainbow"}

// String returns the lowercase mode name
func (m ColorMode) String() string {
	if int(m) < len(colorModeNames) {
		return colorModeNames[m]
	}
	return "unknown"
}

// ShapeMode selects a fixed preset or continuous morphing
type ShapeMode uint8

const (
	ShapeStatic ShapeMode = iota
	ShapeMorphing
)

// HourglassConfig is the user-selected appearance
// Shape and color changes are tracked by separate version counters so the
// shape system rebuilds only on shape changes and color-only changes are
// written straight onto the live instance
type HourglassConfig struct {
	color     core.RGB
	colorMode ColorMode
	shape     int
	shapeMode ShapeMode

	shapeVersion uint64
	colorVersion uint64
}

// NewHourglassConfig returns the default appearance: sandy static color, Classic, static shape
func NewHourglassConfig() *HourglassConfig {
	return &HourglassConfig{
		color:     visual.RgbSandDefault,
		colorMode: ColorStatic,
	}
}

func (c *HourglassConfig) Color() core.RGB      { return c.color }
func (c *HourglassConfig) ColorMode() ColorMode { return c.colorMode }
func (c *HourglassConfig) Shape() int           { return c.shape }
func (c *HourglassConfig) ShapeMode() ShapeMode { return c.shapeMode }
func (c *HourglassConfig) ShapeVersion() uint64 { return c.shapeVersion }
func (c *HourglassConfig) ColorVersion() uint64 { return c.colorVersion }

// SetColor sets the color, bumping the color version on change
func (c *HourglassConfig) SetColor(rgb core.RGB) {
	if c.color == rgb {
		return
	}
	c.color = rgb
	c.colorVersion++
}

// SetColorMode sets the color mode, bumping the color version on change
func (c *HourglassConfig) SetColorMode(m ColorMode) {
	if c.colorMode == m {
		return
	}
	c.colorMode = m
	c.colorVersion++
}

// SetShape selects a preset index, bumping the shape version on change
func (c *HourglassConfig) SetShape(preset int) {
	if c.shape == preset {
		return
	}
	c.shape = preset
	c.shapeVersion++
}

// SetShapeMode sets the shape mode, bumping the shape version on change
func (c *HourglassConfig) SetShapeMode(m ShapeMode) {
	if c.shapeMode == m {
		return
	}
	c.shapeMode = m
	c.shapeVersion++
}
