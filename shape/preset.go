// Package shape holds the hourglass silhouette presets and the morph interpolator
package shape

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/hourglass/core"
	"github.com/lixenwraith/hourglass/hourglass"
	"github.com/lixenwraith/hourglass/parameter"
)

// Preset names a compile-time silhouette
type Preset int

const (
	Classic Preset = iota
	Modern
	Slim
	Wide
	PresetCount
)

// Order is the morph cycle order
var Order = [PresetCount]Preset{Classic, Modern, Slim, Wide}

var presetNames = [PresetCount]string{"classic", "modern", "slim", "wide"}

// String returns the lowercase preset name
func (p Preset) String() string {
	if p < 0 || p >= PresetCount {
		return "unknown"
	}
	return presetNames[p]
}

// ParsePreset resolves a case-insensitive preset name
func ParsePreset(name string) (Preset, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, s := range presetNames {
		if s == n {
			return Preset(i), nil
		}
	}
	return Classic, fmt.Errorf("unknown shape %q", name)
}

var glassColor = core.RGB{R: 217, G: 242, B: 255}

// presets are indexed by Preset; never mutated
var presets = [PresetCount]struct {
	body   hourglass.BodyConfig
	plates hourglass.PlateConfig
}{
	Classic: {
		body: hourglass.BodyConfig{
			TotalHeight: parameter.BaseHeight,
			Bulb:        hourglass.BulbStyle{Family: hourglass.BulbCircular, Curvature: 1.0, WidthFactor: 1.0, CurveResolution: 20},
			Neck:        hourglass.NeckStyle{Family: hourglass.NeckCurved, Curvature: 1.0, Width: 14, Height: 20, CurveResolution: 10},
			Color:       glassColor,
		},
		plates: hourglass.PlateConfig{Width: 200, Height: 10, Color: core.RGBFromFloat(0.6, 0.4, 0.2)},
	},
	Modern: {
		body: hourglass.BodyConfig{
			TotalHeight: parameter.BaseHeight,
			Bulb:        hourglass.BulbStyle{Family: hourglass.BulbCircular, Curvature: 0.3, WidthFactor: 0.9, CurveResolution: 16},
			Neck:        hourglass.NeckStyle{Family: hourglass.NeckStraight, Width: 12, Height: 32},
			Color:       glassColor,
		},
		plates: hourglass.PlateConfig{Width: 180, Height: 12, Color: core.RGBFromFloat(0.4, 0.4, 0.6)},
	},
	Slim: {
		body: hourglass.BodyConfig{
			TotalHeight: parameter.BaseHeight * 1.2,
			Bulb:        hourglass.BulbStyle{Family: hourglass.BulbCircular, Curvature: 1.2, WidthFactor: 0.7, CurveResolution: 18},
			Neck:        hourglass.NeckStyle{Family: hourglass.NeckCurved, Curvature: 1.5, Width: 10, Height: 24, CurveResolution: 8},
			Color:       glassColor,
		},
		plates: hourglass.PlateConfig{Width: 140, Height: 8, Color: core.RGBFromFloat(0.5, 0.3, 0.6)},
	},
	Wide: {
		body: hourglass.BodyConfig{
			TotalHeight: parameter.BaseHeight * 0.8,
			Bulb:        hourglass.BulbStyle{Family: hourglass.BulbCircular, Curvature: 0.8, WidthFactor: 1.3, CurveResolution: 24},
			Neck:        hourglass.NeckStyle{Family: hourglass.NeckCurved, Curvature: 0.7, Width: 20, Height: 16, CurveResolution: 12},
			Color:       glassColor,
		},
		plates: hourglass.PlateConfig{Width: 260, Height: 14, Color: core.RGBFromFloat(0.6, 0.3, 0.3)},
	},
}

// Config returns the body and plate configuration of a preset
// Out of range presets fall back to Classic
func Config(p Preset) (hourglass.BodyConfig, hourglass.PlateConfig) {
	if p < 0 || p >= PresetCount {
		p = Classic
	}
	return presets[p].body, presets[p].plates
}
