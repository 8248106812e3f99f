package render

import (
	"github.com/lixenwraith/habit-splash/vmath"
	"github.com/mattn/go-runewidth"
)

// faintAlpha is the coverage below which a faded rune is dropped
const faintAlpha = 0.02

// Cell is one layer cell, colors are straight (not premultiplied) with separate coverage
type Cell struct {
	Rune rune
	Fg   RGB
	FgA  float64
	Bg   RGB
	BgA  float64

	// Wide marks a rune spanning this and the next cell, Cont marks that next cell
	Wide bool
	Cont bool
}

// Layer is a drawing surface of cells composited with its own opacity
type Layer struct {
	cells   []Cell
	width   int
	height  int
	Opacity float64
}

// NewLayer creates a cleared layer at full opacity
func NewLayer(width, height int) *Layer {
	l := &Layer{Opacity: 1}
	l.Resize(width, height)
	return l
}

// Resize adjusts layer dimensions and clears it, reallocates only if capacity insufficient
func (l *Layer) Resize(width, height int) {
	width = max(width, 0)
	height = max(height, 0)
	size := width * height
	if cap(l.cells) < size {
		l.cells = make([]Cell, size)
	} else {
		l.cells = l.cells[:size]
	}
	l.width = width
	l.height = height
	l.Clear()
}

// Size returns layer dimensions
func (l *Layer) Size() (int, int) {
	return l.width, l.height
}

// Clear resets all cells using exponential copy
func (l *Layer) Clear() {
	if len(l.cells) == 0 {
		return
	}
	l.cells[0] = Cell{}
	for filled := 1; filled < len(l.cells); filled *= 2 {
		copy(l.cells[filled:], l.cells[:filled])
	}
}

func (l *Layer) inBounds(x, y int) bool {
	return x >= 0 && x < l.width && y >= 0 && y < l.height
}

// At returns the cell at x, y, zero cell when out of bounds
func (l *Layer) At(x, y int) Cell {
	if !l.inBounds(x, y) {
		return Cell{}
	}
	return l.cells[y*l.width+x]
}

// Fade decays every cell's coverage by alpha, the terminal analogue of an alpha-blended background fill
func (l *Layer) Fade(alpha float64) {
	keep := 1 - vmath.Clamp01(alpha)
	for i := range l.cells {
		c := &l.cells[i]
		if c.Rune == 0 && c.BgA == 0 {
			continue
		}
		c.FgA *= keep
		c.BgA *= keep
		if c.FgA < faintAlpha {
			l.dropRune(i)
		}
		if c.BgA < faintAlpha {
			c.BgA = 0
		}
	}
}

// dropRune clears the rune at index i along with its wide partner
func (l *Layer) dropRune(i int) {
	c := &l.cells[i]
	if c.Wide && i+1 < len(l.cells) {
		next := &l.cells[i+1]
		next.Cont = false
		next.Rune = 0
		next.FgA = 0
	}
	if c.Cont && i > 0 {
		prev := &l.cells[i-1]
		prev.Wide = false
		prev.Rune = 0
		prev.FgA = 0
	}
	c.Rune = 0
	c.FgA = 0
	c.Wide = false
	c.Cont = false
}

// Set writes a rune with foreground coverage, wide runes claim the next cell and are dropped at the right edge
// Non-finite alpha skips the write
func (l *Layer) Set(x, y int, r rune, fg RGB, alpha float64) int {
	if !l.inBounds(x, y) || !vmath.Finite(alpha) {
		return 0
	}
	w := runewidth.RuneWidth(r)
	if w <= 0 {
		return 0
	}
	if w == 2 && x+1 >= l.width {
		return 0
	}

	idx := y*l.width + x
	// Overwriting either half of an existing wide rune orphans the other half
	l.dropRune(idx)
	if w == 2 {
		l.dropRune(idx + 1)
	}

	dst := &l.cells[idx]
	dst.Rune = r
	dst.Fg = fg
	dst.FgA = vmath.Clamp01(alpha)
	if w == 2 {
		dst.Wide = true
		next := &l.cells[idx+1]
		next.Cont = true
		next.Fg = fg
		next.FgA = dst.FgA
	}
	return w
}

// SetBg composites a background tint over whatever tint the cell holds
func (l *Layer) SetBg(x, y int, bg RGB, alpha float64) {
	if !l.inBounds(x, y) || !vmath.Finite(alpha) {
		return
	}
	alpha = vmath.Clamp01(alpha)
	if alpha == 0 {
		return
	}
	dst := &l.cells[y*l.width+x]
	if dst.BgA == 0 {
		dst.Bg = bg
		dst.BgA = alpha
		return
	}
	// Porter-Duff over on straight colors
	outA := alpha + dst.BgA*(1-alpha)
	dst.Bg = Blend(dst.Bg, bg, alpha/outA)
	dst.BgA = outA
}

// Text writes a string starting at x and returns the columns consumed
// spacing inserts blank columns between runes; spaces and gaps are written as blank runes
// so the text covers whatever lower layers hold along its span
func (l *Layer) Text(x, y int, s string, fg RGB, alpha float64, spacing int) int {
	col := x
	first := true
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w <= 0 {
			continue
		}
		if !first {
			for i := 0; i < spacing; i++ {
				l.Set(col+i, y, ' ', fg, alpha)
			}
			col += spacing
		}
		first = false
		l.Set(col, y, r, fg, alpha)
		col += w
	}
	return col - x
}

// TextWidth measures what Text would consume
func TextWidth(s string, spacing int) int {
	n := 0
	count := 0
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w <= 0 {
			continue
		}
		n += w
		count++
	}
	if count > 1 {
		n += spacing * (count - 1)
	}
	return n
}

// StringWidth is the display width of s
func StringWidth(s string) int {
	return runewidth.StringWidth(s)
}
