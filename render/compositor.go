package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/habit-splash/vmath"
)

// Screen is the subset of tcell.Screen the compositor writes to
type Screen interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (width, height int)
	Show()
}

// Compositor flattens layers bottom to top onto a screen
type Compositor struct {
	screen     Screen
	background RGB
}

// NewCompositor creates a compositor painting untouched cells with background
func NewCompositor(screen Screen, background RGB) *Compositor {
	return &Compositor{screen: screen, background: background}
}

// resolved is the flattened state of one screen cell
type resolved struct {
	r    rune
	fg   RGB
	bg   RGB
	wide bool
	// top is the index of the layer that placed r, -1 for background
	top int
}

// Composite blends all layers at their opacities and shows the frame
func (c *Compositor) Composite(layers ...*Layer) {
	width, height := c.screen.Size()
	for y := 0; y < height; y++ {
		skip := false
		for x := 0; x < width; x++ {
			if skip {
				skip = false
				continue
			}
			cell := c.resolve(x, y, layers)
			if cell.wide && x+1 >= width {
				cell.r, cell.wide = ' ', false
			}
			// Anything a higher layer writes over the right half, blanks included, wins over the wide head
			if cell.wide {
				if next := c.resolve(x+1, y, layers); next.top > cell.top {
					cell.r, cell.wide = ' ', false
				}
			}
			style := tcell.StyleDefault.Foreground(cell.fg.TCell()).Background(cell.bg.TCell())
			c.screen.SetContent(x, y, cell.r, nil, style)
			skip = cell.wide
		}
	}
	c.screen.Show()
}

func (c *Compositor) resolve(x, y int, layers []*Layer) resolved {
	out := resolved{r: ' ', fg: c.background, bg: c.background, top: -1}
	var fg RGB
	fgA := 0.0

	for i, layer := range layers {
		if layer == nil {
			continue
		}
		op := vmath.Clamp01(layer.Opacity)
		if op == 0 {
			continue
		}
		cell := layer.At(x, y)

		if a := cell.BgA * op; a > 0 && vmath.Finite(a) {
			out.bg = Blend(out.bg, cell.Bg, a)
		}

		a := cell.FgA * op
		if !(a > faintAlpha) || !vmath.Finite(a) {
			continue
		}
		switch {
		case cell.Cont:
			// Covered by a wide rune whose head lives at x-1, blank unless the head was emitted
			out.r, out.wide = ' ', false
			out.top = i
			fgA = 0
		case cell.Rune != 0:
			out.r, out.wide = cell.Rune, cell.Wide
			out.top = i
			fg, fgA = cell.Fg, a
		}
	}

	out.fg = Blend(out.bg, fg, fgA)
	return out
}
