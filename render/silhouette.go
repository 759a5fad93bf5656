package render

import (
	"math"

	"github.com/lixenwraith/hourglass/hourglass"
)

// bulbWidthRatio is the widest bulb half-width relative to body height at width factor 1
const bulbWidthRatio = 0.3

// HalfWidth returns the glass half-width at local height y, 0 outside the body
func HalfWidth(body hourglass.BodyConfig, y float64) float64 {
	half := body.TotalHeight / 2
	ay := math.Abs(y)
	if ay > half {
		return 0
	}

	neckHalf := body.Neck.Height / 2
	neckW := body.Neck.Width / 2
	if ay <= neckHalf {
		if body.Neck.Family == hourglass.NeckStraight || neckHalf <= 0 {
			return neckW
		}
		// Curved neck flares toward the bulbs
		u := ay / neckHalf
		return neckW * (1 + 0.5*body.Neck.Curvature*u*u)
	}

	bulbLen := half - neckHalf
	if bulbLen <= 0 {
		return neckW
	}
	u := (ay - neckHalf) / bulbLen
	start := neckW
	if body.Neck.Family == hourglass.NeckCurved {
		start = neckW * (1 + 0.5*body.Neck.Curvature)
	}
	maxW := body.TotalHeight * bulbWidthRatio * body.Bulb.WidthFactor
	return start + (maxW-start)*bulge(u, body.Bulb.Curvature, body.Bulb.CurveResolution)
}

// bulge shapes the bulb profile from the neck (u=0) to the plate (u=1)
// Low curvature approaches a cone, high curvature a rounded bulb
func bulge(u, curvature float64, resolution int) float64 {
	if resolution > 0 {
		// Quantize like a polyline with resolution segments
		u = math.Round(u*float64(resolution)) / float64(resolution)
	}
	round := math.Sin(math.Pi * (0.1 + 0.8*u))
	cone := math.Min(1, u*1.6)
	mix := math.Max(0, math.Min(1, curvature/1.5))
	return cone*(1-mix) + round*mix
}
