package shape

import (
	"math"

	"github.com/lixenwraith/hourglass/hourglass"
	"github.com/lixenwraith/hourglass/parameter"
)

// Cursor maps wall-clock seconds onto the morph cycle
// Returns the segment's start and end presets and the local blend factor in [0,1)
func Cursor(elapsed, cycle float64) (a, b Preset, localT float64) {
	if cycle <= 0 {
		return Order[0], Order[0], 0
	}
	t := math.Mod(elapsed, cycle) / cycle
	if t < 0 {
		t += 1
	}

	n := float64(len(Order))
	scaled := t * n
	seg := int(math.Floor(scaled)) % len(Order)
	next := (seg + 1) % len(Order)
	localT = scaled - math.Floor(scaled)
	return Order[seg], Order[next], localT
}

// At returns the interpolated configuration for the given elapsed seconds
func At(elapsed, cycle float64) (hourglass.BodyConfig, hourglass.PlateConfig) {
	a, b, t := Cursor(elapsed, cycle)
	return Interpolate(a, b, t)
}

// Interpolate blends every numeric field of two presets at t
func Interpolate(a, b Preset, t float64) (hourglass.BodyConfig, hourglass.PlateConfig) {
	bodyA, platesA := Config(a)
	bodyB, platesB := Config(b)
	return LerpBody(bodyA, bodyB, t), LerpPlates(platesA, platesB, t)
}

// LerpBody blends two body configurations
func LerpBody(a, b hourglass.BodyConfig, t float64) hourglass.BodyConfig {
	return hourglass.BodyConfig{
		TotalHeight: lerp(a.TotalHeight, b.TotalHeight, t),
		Bulb:        LerpBulb(a.Bulb, b.Bulb, t),
		Neck:        LerpNeck(a.Neck, b.Neck, t),
		Color:       a.Color.Blend(b.Color, t),
	}
}

// LerpPlates blends two plate configurations
func LerpPlates(a, b hourglass.PlateConfig, t float64) hourglass.PlateConfig {
	return hourglass.PlateConfig{
		Width:  lerp(a.Width, b.Width, t),
		Height: lerp(a.Height, b.Height, t),
		Color:  a.Color.Blend(b.Color, t),
	}
}

// LerpBulb blends bulb styles of the same family
// Mismatched families switch discretely at t = 0.5
func LerpBulb(a, b hourglass.BulbStyle, t float64) hourglass.BulbStyle {
	if a.Family != b.Family {
		if t < 0.5 {
			return a
		}
		return b
	}
	return hourglass.BulbStyle{
		Family:          a.Family,
		Curvature:       lerp(a.Curvature, b.Curvature, t),
		WidthFactor:     lerp(a.WidthFactor, b.WidthFactor, t),
		CurveResolution: lerpResolution(a.CurveResolution, b.CurveResolution, t, parameter.MinBulbResolution),
	}
}

// LerpNeck blends neck styles, treating a straight neck as curved with curvature 0
// The result is curved when either endpoint is curved
func LerpNeck(a, b hourglass.NeckStyle, t float64) hourglass.NeckStyle {
	if a.Family == hourglass.NeckStraight && b.Family == hourglass.NeckStraight {
		return hourglass.NeckStyle{
			Family: hourglass.NeckStraight,
			Width:  lerp(a.Width, b.Width, t),
			Height: lerp(a.Height, b.Height, t),
		}
	}

	ca, ra := neckCurve(a, b)
	cb, rb := neckCurve(b, a)
	return hourglass.NeckStyle{
		Family:          hourglass.NeckCurved,
		Curvature:       lerp(ca, cb, t),
		Width:           lerp(a.Width, b.Width, t),
		Height:          lerp(a.Height, b.Height, t),
		CurveResolution: lerpResolution(ra, rb, t, parameter.MinNeckResolution),
	}
}

// neckCurve returns n's curvature and resolution as a curved neck
// A straight neck borrows the other endpoint's resolution so only curvature moves
func neckCurve(n, other hourglass.NeckStyle) (float64, int) {
	if n.Family == hourglass.NeckCurved {
		return n.Curvature, n.CurveResolution
	}
	return 0, other.CurveResolution
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// lerpResolution interpolates as float, floors, then clamps to minimum
func lerpResolution(a, b int, t float64, minimum int) int {
	r := int(math.Floor(lerp(float64(a), float64(b), t)))
	if r < minimum {
		return minimum
	}
	return r
}
