package splash

import (
	"math"
	"strings"

	"github.com/lixenwraith/habit-splash/habit"
	"github.com/lixenwraith/habit-splash/parameter"
	"github.com/lixenwraith/habit-splash/parameter/visual"
	"github.com/lixenwraith/habit-splash/render"
	"github.com/lixenwraith/habit-splash/vmath"
	"github.com/mattn/go-runewidth"
)

var (
	roundBox = render.BoxStyle{
		TL: visual.CornerRoundTL, TR: visual.CornerRoundTR,
		BL: visual.CornerRoundBL, BR: visual.CornerRoundBR,
		H: visual.EdgeH, V: visual.EdgeV, Dot: visual.DotLarge,
	}
	squareBox = render.BoxStyle{
		TL: visual.CornerSquareTL, TR: visual.CornerSquareTR,
		BL: visual.CornerSquareBL, BR: visual.CornerSquareBR,
		H: visual.EdgeH, V: visual.EdgeV, Dot: visual.DotSmall,
	}
)

// boxFor picks border glyphs by corner radius
func boxFor(radius int) render.BoxStyle {
	if radius >= parameter.RoundCornerRadius {
		return roundBox
	}
	return squareBox
}

// drawGrid draws the dashed grid lines across the whole layer at opacity
func drawGrid(layer *render.Layer, g *Grid, opacity float64) {
	alpha := parameter.GridLineAlpha * vmath.Clamp01(opacity)
	if alpha <= 0 {
		return
	}
	w, h := layer.Size()
	lay := g.Layout()
	for i := 0; i <= g.Size(); i++ {
		x := lay.OriginX + i*lay.CellW
		y := lay.OriginY + i*lay.CellH
		layer.DashedV(x, 0, h-1, visual.GridLineV, visual.RgbGridLine, alpha, parameter.GridDashOn, parameter.GridDashOff)
		layer.DashedH(y, 0, w-1, visual.GridLineH, visual.RgbGridLine, alpha, parameter.GridDashOn, parameter.GridDashOff)
	}
}

// drawCell renders one grid cell per the habit/plain contract
func drawCell(layer *render.Layer, lay Layout, c Cell) {
	intensity := vmath.Clamp01(c.Intensity)
	pulse := vmath.Clamp01(c.Pulse)

	sw := int(math.Round(float64(lay.CellW) * parameter.GridCellFill * intensity))
	sh := int(math.Round(float64(lay.CellH) * parameter.GridCellFill * intensity))
	if sw <= 0 || sh <= 0 {
		return
	}
	x := c.X + (lay.CellW-sw)/2
	y := c.Y + (lay.CellH-sh)/2

	if c.IsHabit {
		spec := habit.Lookup(c.Category)
		glow := parameter.HabitGlowAlpha * (parameter.HabitGlowBlur * pulse) / parameter.GlowBlurMax
		layer.Halo(x, y, sw, sh, spec.Color, glow)
		layer.Box(x, y, sw, sh, boxFor(parameter.HabitRadius),
			spec.Color, parameter.HabitFillAlpha,
			spec.Color, parameter.HabitStrokeAlpha)

		if intensity > parameter.IconIntensityThreshold {
			iw := runewidth.RuneWidth(spec.Icon)
			cx := c.X + lay.CellW/2 - iw/2
			cy := c.Y + lay.CellH/2
			layer.Set(cx, cy, spec.Icon, spec.Color, 1)
		}
		return
	}

	glow := parameter.PlainGlowAlpha * (parameter.PlainGlowBlur * pulse) / parameter.GlowBlurMax
	layer.Halo(x, y, sw, sh, visual.RgbGlyph, glow)
	layer.Box(x, y, sw, sh, boxFor(parameter.PlainRadius),
		visual.RgbGlyph, parameter.PlainFillAlpha*pulse,
		visual.RgbGlyph, parameter.PlainStrokeAlpha*pulse)
}

// drawCells renders every cell, inactive cells included (they have zero intensity and draw nothing)
func drawCells(layer *render.Layer, g *Grid, activeOnly bool) {
	lay := g.Layout()
	for i := range g.cells {
		c := g.cells[i]
		if activeOnly && !c.Active {
			continue
		}
		drawCell(layer, lay, c)
	}
}

// letterSpacing maps title scale to inter-letter columns: 0.8→0, 1.0→1, 1.3→3
func letterSpacing(scale float64) int {
	if !vmath.Finite(scale) {
		return 0
	}
	s := int(math.Round((scale - parameter.TitleScaleFrom) / 0.2))
	return max(0, min(s, parameter.TitleSpacingMax))
}

// blurShade picks the shading rune replacing letters at blurPx, 0 for sharp text
// Under one pixel is sharp, each BlurShadeStepPx moves one shade lighter
func blurShade(blurPx float64) rune {
	switch {
	case !(blurPx >= 1):
		return 0
	case blurPx < parameter.BlurShadeStepPx:
		return visual.BlurShades[2]
	case blurPx < 2*parameter.BlurShadeStepPx:
		return visual.BlurShades[1]
	default:
		return visual.BlurShades[0]
	}
}

// drawText writes a centered line of text at baseRow with style applied
func drawText(layer *render.Layer, text string, style TextStyle, baseRow int, color render.RGB) {
	opacity := vmath.Clamp01(style.Opacity)
	if opacity <= 0 || text == "" {
		return
	}
	w, _ := layer.Size()

	spacing := letterSpacing(style.Scale)
	if shade := blurShade(style.BlurPx); shade != 0 {
		text = strings.Map(func(r rune) rune {
			if r == ' ' {
				return r
			}
			return shade
		}, text)
	}

	width := render.TextWidth(text, spacing)
	x := (w - width) / 2
	y := baseRow + int(math.Round(style.OffsetPx/parameter.PixelsPerRow))

	if style.Glow > 0 {
		g := vmath.Clamp01(style.Glow)
		strength := parameter.TitleGlowStrength * opacity
		layer.FillRect(x-1, y, width+2, 1, visual.RgbTitleGlow, (0.2+g*0.2)*strength)
		layer.FillRect(x-2, y-1, width+4, 1, visual.RgbTitleGlow, (0.1+g*0.1)*strength)
		layer.FillRect(x-2, y+1, width+4, 1, visual.RgbTitleGlow, (0.1+g*0.1)*strength)
		layer.FillRect(x-3, y, 1, 1, visual.RgbTitleGlow, (0.05+g*0.05)*strength)
		layer.FillRect(x+width+2, y, 1, 1, visual.RgbTitleGlow, (0.05+g*0.05)*strength)
	}

	brightness := style.Brightness
	if !(brightness > 0) {
		brightness = 1
	}
	layer.Text(x, y, text, render.Scale(color, brightness), opacity, spacing)
}
