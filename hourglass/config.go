package hourglass

import "github.com/lixenwraith/hourglass/core"

// BulbFamily identifies the parameter set a bulb style uses
type BulbFamily uint8

const (
	BulbCircular BulbFamily = iota
)

// NeckFamily identifies the neck profile
type NeckFamily uint8

const (
	NeckStraight NeckFamily = iota
	NeckCurved
)

// String returns the neck family name
func (f NeckFamily) String() string {
	if f == NeckCurved {
		return "curved"
	}
	return "straight"
}

// BulbStyle describes one bulb's profile
type BulbStyle struct {
	Family          BulbFamily
	Curvature       float64
	WidthFactor     float64
	CurveResolution int
}

// NeckStyle describes the neck between bulbs
// Curvature and CurveResolution are ignored for NeckStraight
type NeckStyle struct {
	Family          NeckFamily
	Curvature       float64
	Width           float64
	Height          float64
	CurveResolution int
}

// BodyConfig is the glass body geometry
type BodyConfig struct {
	TotalHeight float64
	Bulb        BulbStyle
	Neck        NeckStyle
	Color       core.RGB
}

// PlateConfig is the top and bottom plate geometry
type PlateConfig struct {
	Width  float64
	Height float64
	Color  core.RGB
}

// SandConfig seeds the sand of a fresh instance
// FillPercent is the upper chamber level; the lower chamber gets the rest
type SandConfig struct {
	Color       core.RGB
	FillPercent float64
	WallOffset  float64
}

// SplashConfig controls the particle splash at the bottom of the stream
type SplashConfig struct {
	Enabled   bool
	Color     core.RGB
	Particles int
}

// DefaultSplash returns the standard splash settings with the given color
func DefaultSplash(color core.RGB) SplashConfig {
	return SplashConfig{
		Enabled:   true,
		Color:     color,
		Particles: 6,
	}
}
