package visual

import (
	"github.com/lixenwraith/habit-splash/render"
)

// Splash palette
var (
	RgbBackground = render.RGB{R: 10, G: 15, B: 30}    // Night navy, also the trail fill
	RgbGlyph      = render.RGB{R: 100, G: 200, B: 255} // Rain glyphs and plain cells
	RgbLeader     = render.RGB{R: 100, G: 200, B: 255} // Column leaders, drawn opaque
	RgbGridLine   = render.RGB{R: 100, G: 200, B: 255}
	RgbTitle      = render.RGB{R: 255, G: 255, B: 255}
	RgbSubtitle   = render.RGB{R: 180, G: 200, B: 220}
	RgbTitleGlow  = render.RGB{R: 255, G: 255, B: 255}
)

// Grid glyphs
const (
	GridLineH = '┄'
	GridLineV = '┆'
	GridCross = '┼'

	CornerRoundTL = '╭'
	CornerRoundTR = '╮'
	CornerRoundBL = '╰'
	CornerRoundBR = '╯'

	CornerSquareTL = '┌'
	CornerSquareTR = '┐'
	CornerSquareBL = '└'
	CornerSquareBR = '┘'

	EdgeH = '─'
	EdgeV = '│'

	// Single cell squares too small for a border
	DotLarge = '■'
	DotSmall = '▪'
)

// Blur shading, most diffuse first
var BlurShades = [3]rune{'░', '▒', '▓'}
