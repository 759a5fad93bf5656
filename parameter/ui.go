package parameter

// Layout
const (
	// TopMargin reserves the status line
	TopMargin = 1

	// BottomMargin reserves the help bar
	BottomMargin = 1

	// CellsPerUnitY maps local units to terminal rows at display scale 1.0
	CellsPerUnitY = 0.1

	// CellAspect is the width/height ratio compensation for terminal cells
	CellAspect = 2.0
)

// Status Bar & Overlay
const (
	PausedText = " PAUSED "

	// MorphIndicator is appended to the shape name while morphing
	MorphIndicator = "~"

	// HelpText is shown in the panel when toggled on
	HelpText = "space:start/pause r:reset >/<:1s ←/→:5s ↑/↓:15s +/-:1m ]/[:5m pgup/pgdn:15m h/H:1h c/x/w:color 1-4:shape m:morph v:mute t:panel q:quit"

	// HelpHint is shown when the panel is hidden
	HelpHint = "t:controls  q:quit"
)

// Glyphs
const (
	GlassChar  = '│'
	SandChar   = '█'
	StreamChar = '┊'
	PlateChar  = '▀'
)
