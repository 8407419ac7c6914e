package constants

// Terminal glyphs
const (
	GlyphGridVertical   = '│'
	GlyphGridHorizontal = '─'
	GlyphGridCross      = '┼'
	GlyphCurve          = '•'
	GlyphHandle         = '·'
	GlyphControlPoint   = '●'
	GlyphShapeMono      = '█'
)

// StatusBarHeight is the number of terminal rows reserved below the world view
const StatusBarHeight = 1

// StatusHelp is the key help appended to the status bar
const StatusHelp = "drag points with mouse | r reset | q quit"
