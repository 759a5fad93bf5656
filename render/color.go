package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/hourglass/core"
)

// Tcell converts an RGB to a tcell truecolor value
func Tcell(c core.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Style builds a foreground/background style from RGB pairs
func Style(fg, bg core.RGB) tcell.Style {
	return tcell.StyleDefault.Foreground(Tcell(fg)).Background(Tcell(bg))
}
