package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/hourglass/core"
	"github.com/lixenwraith/hourglass/engine"
	"github.com/lixenwraith/hourglass/event"
	"github.com/lixenwraith/hourglass/hourglass"
	"github.com/lixenwraith/hourglass/parameter"
	"github.com/lixenwraith/hourglass/parameter/visual"
	"github.com/lixenwraith/hourglass/shape"
)

// TerminalRenderer draws the hourglass, status line and help bar
type TerminalRenderer struct {
	screen       tcell.Screen
	width        int
	height       int
	viewport     *Viewport
	panelVisible bool
}

// NewTerminalRenderer creates a renderer sized to the screen
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	w, h := screen.Size()
	return &TerminalRenderer{
		screen: screen,
		width:  w,
		height: h,
	}
}

// EventTypes returns the event types the renderer handles
func (r *TerminalRenderer) EventTypes() []event.EventType {
	return []event.EventType{event.EventPanelToggle, event.EventResize}
}

// HandleEvent toggles the controls panel and tracks terminal size
func (r *TerminalRenderer) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventPanelToggle:
		r.panelVisible = !r.panelVisible
	case event.EventResize:
		if payload, ok := ev.Payload.(*event.ResizePayload); ok {
			r.UpdateDimensions(payload.Width, payload.Height)
		}
	}
}

// PanelVisible reports whether the full help text is shown
func (r *TerminalRenderer) PanelVisible() bool {
	return r.panelVisible
}

// UpdateDimensions resizes the drawing area, the next Layout refits the viewport
func (r *TerminalRenderer) UpdateDimensions(width, height int) {
	r.width = width
	r.height = height
}

// Layout fits the viewport to the live instance and publishes it as the world's view transform
func (r *TerminalRenderer) Layout(w *engine.World) *Viewport {
	inst := w.Resource.Hourglass.Instance
	if inst == nil {
		return r.viewport
	}
	r.viewport = NewViewport(r.width, r.height, inst.Body(), inst.Plates())
	w.Resource.View = r.viewport
	return r.viewport
}

// RenderFrame draws one complete frame
func (r *TerminalRenderer) RenderFrame(w *engine.World) {
	bg := Style(visual.RgbClockText, visual.RgbBackground)
	r.screen.Fill(' ', bg)

	inst := w.Resource.Hourglass.Instance
	if inst != nil && r.viewport != nil {
		r.drawHourglass(inst)
	}

	r.drawStatusBar(w)
	r.drawHelpBar()

	if w.Resource.Clock.Paused() && r.viewport != nil {
		_, cy := r.viewport.ToScreen(core.Point{})
		r.drawCentered(cy, parameter.PausedText, Style(visual.RgbClockText, visual.RgbPausedBg))
	}

	r.screen.Show()
}

// drawHourglass draws plates, glass outline, sand and the falling stream
func (r *TerminalRenderer) drawHourglass(inst hourglass.Instance) {
	v := r.viewport
	body := inst.Body()
	plates := inst.Plates()
	st := inst.State()

	half := body.TotalHeight / 2
	neckHalf := body.Neck.Height / 2
	upperTop := neckHalf + (half-neckHalf)*clamp01(st.UpperChamber)
	lowerTop := -half + (half-neckHalf)*clamp01(st.LowerChamber)
	streaming := st.Running && !st.Flipping && st.UpperChamber > 0

	glass := Style(body.Color, visual.RgbBackground)
	plate := Style(plates.Color, visual.RgbBackground)
	sand := Style(st.SandColor, visual.RgbBackground)

	for y := parameter.TopMargin; y < r.height-parameter.BottomMargin; y++ {
		ly := v.RowY(y)
		ay := ly
		if ay < 0 {
			ay = -ay
		}

		if ay > half && ay <= half+plates.Height {
			r.drawSpan(v, plates.Width/2, y, parameter.PlateChar, plate)
			continue
		}
		if ay > half {
			continue
		}

		hw := HalfWidth(body, ly)
		left, _ := v.ToScreen(core.Point{X: -hw, Y: ly})
		right, _ := v.ToScreen(core.Point{X: hw, Y: ly})

		sandHW := hw - parameter.SandWallOffset
		filled := (ly >= 0 && ly <= upperTop && st.UpperChamber > 0) ||
			(ly < 0 && ly <= lowerTop && st.LowerChamber > 0)
		if filled && sandHW > 0 {
			r.drawSpan(v, sandHW, y, parameter.SandChar, sand)
		} else if streaming && ly < 0 && ly > lowerTop {
			cx, _ := v.ToScreen(core.Point{})
			r.screen.SetContent(cx, y, parameter.StreamChar, nil, sand)
		}

		r.screen.SetContent(left, y, parameter.GlassChar, nil, glass)
		r.screen.SetContent(right, y, parameter.GlassChar, nil, glass)
	}
}

// drawSpan fills the cells covering [-halfWidth, halfWidth] on row y
func (r *TerminalRenderer) drawSpan(v *Viewport, halfWidth float64, y int, ch rune, style tcell.Style) {
	x0, _ := v.ToScreen(core.Point{X: -halfWidth})
	x1, _ := v.ToScreen(core.Point{X: halfWidth})
	if x0 < 0 {
		x0 = 0
	}
	if x1 >= r.width {
		x1 = r.width - 1
	}
	for x := x0; x <= x1; x++ {
		r.screen.SetContent(x, y, ch, nil, style)
	}
}

// drawStatusBar draws the clock on the left and shape/color state on the right
func (r *TerminalRenderer) drawStatusBar(w *engine.World) {
	barStyle := Style(visual.RgbStatusText, visual.RgbStatusBg)
	for x := 0; x < r.width; x++ {
		r.screen.SetContent(x, 0, ' ', nil, barStyle)
	}

	clock := w.Resource.Clock
	clockStyle := barStyle
	if clock.Finished() {
		clockStyle = Style(visual.RgbStatusText, visual.RgbFinishedBg)
	}
	r.drawText(1, 0, " "+clock.Format()+" ", clockStyle)

	cfg := w.Resource.Config
	name := shape.Preset(cfg.Shape()).String()
	if cfg.ShapeMode() == engine.ShapeMorphing {
		name += parameter.MorphIndicator
	}
	info := fmt.Sprintf("%s  %s %s", name, cfg.ColorMode(), cfg.Color().Hex())
	if a := w.Resource.Audio; a != nil && a.IsMuted() {
		info += "  muted"
	}
	r.drawText(r.width-len(info)-1, 0, info, barStyle)
}

// drawHelpBar shows the full controls when the panel is open, a hint otherwise
func (r *TerminalRenderer) drawHelpBar() {
	text := parameter.HelpHint
	if r.panelVisible {
		text = parameter.HelpText
	}
	r.drawText(1, r.height-1, text, Style(visual.RgbHelpText, visual.RgbBackground))
}

func (r *TerminalRenderer) drawCentered(y int, text string, style tcell.Style) {
	r.drawText((r.width-len(text))/2, y, text, style)
}

func (r *TerminalRenderer) drawText(x, y int, text string, style tcell.Style) {
	if y < 0 || y >= r.height {
		return
	}
	for i, ch := range []rune(text) {
		if x+i >= 0 && x+i < r.width {
			r.screen.SetContent(x+i, y, ch, nil, style)
		}
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
