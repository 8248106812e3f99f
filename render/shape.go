package render

// BoxStyle selects the border glyphs of a square
type BoxStyle struct {
	TL, TR, BL, BR rune
	H, V           rune

	// Dot stands in when the square collapses below 2x2
	Dot rune
}

// FillRect tints the background of a rectangle
func (l *Layer) FillRect(x, y, w, h int, bg RGB, alpha float64) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			l.SetBg(col, row, bg, alpha)
		}
	}
}

// Box draws a filled and stroked square, the cell analogue of a rounded rect fill+stroke
func (l *Layer) Box(x, y, w, h int, style BoxStyle, fill RGB, fillA float64, stroke RGB, strokeA float64) {
	if w <= 0 || h <= 0 {
		return
	}
	l.FillRect(x, y, w, h, fill, fillA)

	if w < 2 || h < 2 {
		for row := y; row < y+h; row++ {
			for col := x; col < x+w; col++ {
				l.Set(col, row, style.Dot, stroke, strokeA)
			}
		}
		return
	}

	right, bottom := x+w-1, y+h-1
	for col := x + 1; col < right; col++ {
		l.Set(col, y, style.H, stroke, strokeA)
		l.Set(col, bottom, style.H, stroke, strokeA)
	}
	for row := y + 1; row < bottom; row++ {
		l.Set(x, row, style.V, stroke, strokeA)
		l.Set(right, row, style.V, stroke, strokeA)
	}
	l.Set(x, y, style.TL, stroke, strokeA)
	l.Set(right, y, style.TR, stroke, strokeA)
	l.Set(x, bottom, style.BL, stroke, strokeA)
	l.Set(right, bottom, style.BR, stroke, strokeA)
}

// Halo tints a one-cell ring around a rectangle, corners at half strength
func (l *Layer) Halo(x, y, w, h int, color RGB, alpha float64) {
	if w <= 0 || h <= 0 || !(alpha > 0) {
		return
	}
	left, right := x-1, x+w
	top, bottom := y-1, y+h
	for col := x; col < x+w; col++ {
		l.SetBg(col, top, color, alpha)
		l.SetBg(col, bottom, color, alpha)
	}
	for row := y; row < y+h; row++ {
		l.SetBg(left, row, color, alpha)
		l.SetBg(right, row, color, alpha)
	}
	half := alpha * 0.5
	l.SetBg(left, top, color, half)
	l.SetBg(right, top, color, half)
	l.SetBg(left, bottom, color, half)
	l.SetBg(right, bottom, color, half)
}

// DashedH draws a horizontal dashed run from x0 to x1 inclusive
func (l *Layer) DashedH(y, x0, x1 int, r rune, color RGB, alpha float64, on, off int) {
	period := on + off
	for col := x0; col <= x1; col++ {
		if period > 0 && (col-x0)%period >= on {
			continue
		}
		l.Set(col, y, r, color, alpha)
	}
}

// DashedV draws a vertical dashed run from y0 to y1 inclusive
func (l *Layer) DashedV(x, y0, y1 int, r rune, color RGB, alpha float64, on, off int) {
	period := on + off
	for row := y0; row <= y1; row++ {
		if period > 0 && (row-y0)%period >= on {
			continue
		}
		l.Set(x, row, r, color, alpha)
	}
}
