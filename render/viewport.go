package render

import (
	"math"

	"github.com/lixenwraith/hourglass/core"
	"github.com/lixenwraith/hourglass/hourglass"
	"github.com/lixenwraith/hourglass/parameter"
)

// Viewport maps terminal cells to hourglass-local units and back
// Local space: origin at the hourglass center, y up, one unit = one geometry unit
type Viewport struct {
	centerX, centerY float64 // screen-space center in cells
	cellsPerUnitX    float64
	cellsPerUnitY    float64
}

// NewViewport fits an hourglass of the given geometry into a width x height terminal
// leaving the status and help rows free
func NewViewport(width, height int, body hourglass.BodyConfig, plates hourglass.PlateConfig) *Viewport {
	rows := float64(height - parameter.TopMargin - parameter.BottomMargin)
	extent := body.TotalHeight + 2*plates.Height
	cpy := parameter.CellsPerUnitY
	if extent > 0 && rows > 0 && extent*cpy > rows {
		cpy = rows / extent
	}
	if cpy <= 0 {
		cpy = parameter.CellsPerUnitY
	}

	return &Viewport{
		centerX:       float64(width) / 2,
		centerY:       float64(parameter.TopMargin) + rows/2,
		cellsPerUnitX: cpy * parameter.CellAspect,
		cellsPerUnitY: cpy,
	}
}

// ToLocal maps the center of a cell to local units
func (v *Viewport) ToLocal(x, y int) core.Point {
	return core.Point{
		X: (float64(x) + 0.5 - v.centerX) / v.cellsPerUnitX,
		Y: (v.centerY - (float64(y) + 0.5)) / v.cellsPerUnitY,
	}
}

// ToScreen maps a local point to the cell containing it
func (v *Viewport) ToScreen(p core.Point) (x, y int) {
	return int(math.Floor(v.centerX + p.X*v.cellsPerUnitX)), int(math.Floor(v.centerY - p.Y*v.cellsPerUnitY))
}

// RowY returns the local y of a screen row's center
func (v *Viewport) RowY(y int) float64 {
	return (v.centerY - (float64(y) + 0.5)) / v.cellsPerUnitY
}

// Columns returns how many cells a local width spans
func (v *Viewport) Columns(width float64) int {
	return int(math.Round(width * v.cellsPerUnitX))
}
