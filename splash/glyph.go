package splash

import (
	"math"

	"github.com/lixenwraith/habit-splash/parameter"
	"github.com/lixenwraith/habit-splash/parameter/visual"
	"github.com/lixenwraith/habit-splash/render"
	"github.com/lixenwraith/habit-splash/vmath"
)

// Glyph is one falling character of the background rain, positions in layer cells
type Glyph struct {
	Symbol     rune
	X, Y       float64
	Speed      float64 // rows per reference frame
	Opacity    float64
	Brightness float64
}

// Rain is the fixed-size glyph pool plus the per-column leaders of the rain phase
type Rain struct {
	glyphs  []Glyph
	leaders []int
	charset []rune
	rng     *vmath.FastRand
	width   int
	height  int
}

// NewRain creates a pool of count glyphs, populated on the first Reset
func NewRain(count int, charset []rune, rng *vmath.FastRand) *Rain {
	if len(charset) == 0 {
		charset = []rune(parameter.GlyphCharset)
	}
	return &Rain{
		glyphs:  make([]Glyph, max(count, 0)),
		charset: charset,
		rng:     rng,
	}
}

// Reset re-randomizes every glyph within the new bounds and restarts the leaders, pool size is unchanged
func (r *Rain) Reset(width, height int) {
	r.width, r.height = width, height
	for i := range r.glyphs {
		g := &r.glyphs[i]
		g.Symbol = r.symbol()
		g.X = r.rng.Float64() * float64(width)
		g.Y = r.rng.Float64() * float64(height)
		g.Speed = r.rng.Range(parameter.GlyphSpeedMin, parameter.GlyphSpeedMax)
		g.Opacity = r.rng.Float64() * parameter.GlyphOpacityMax
		g.Brightness = r.rng.Range(parameter.GlyphBrightnessMin, parameter.GlyphBrightnessMax)
	}

	columns := 0
	if width > 0 {
		columns = (width + parameter.ColumnSpacing - 1) / parameter.ColumnSpacing
	}
	r.leaders = r.leaders[:0]
	for i := 0; i < columns; i++ {
		r.leaders = append(r.leaders, parameter.ColumnLeaderStartY)
	}
}

func (r *Rain) symbol() rune {
	return r.charset[r.rng.Intn(len(r.charset))]
}

// recycle re-enters a glyph above the top edge, brightness is kept
func (r *Rain) recycle(g *Glyph) {
	g.Y = parameter.GlyphRecycleY
	g.X = r.rng.Float64() * float64(r.width)
	g.Symbol = r.symbol()
	g.Speed = r.rng.Range(parameter.GlyphSpeedMin, parameter.GlyphSpeedMax)
	g.Opacity = r.rng.Float64() * parameter.GlyphOpacityMax
}

// Update fades the layer, advances every glyph by frames reference frames, recycles and draws
// dimmed lowers brightness once the grid owns the scene, leaders run only during the rain phase
func (r *Rain) Update(layer *render.Layer, frames float64, dimmed, leaders bool) {
	if frames > 0 {
		// (1-a)^frames keeps trail length independent of frame rate
		fade := math.Pow(1-parameter.GlyphTrailFade, frames)
		layer.Fade(1 - fade)
	}

	bottom := float64(r.height)
	for i := range r.glyphs {
		g := &r.glyphs[i]
		g.Y += g.Speed * frames
		if g.Y > bottom {
			r.recycle(g)
		}

		brightness := g.Brightness
		if dimmed {
			brightness *= parameter.GlyphDimFactor
		}
		if g.Y < 0 {
			continue
		}
		layer.Set(int(g.X), int(g.Y), g.Symbol, visual.RgbGlyph, vmath.Clamp01(g.Opacity*brightness))
	}

	if !leaders {
		return
	}
	for i := range r.leaders {
		layer.Set(i*parameter.ColumnSpacing, r.leaders[i], r.symbol(), visual.RgbLeader, 1)
		if r.leaders[i] > r.height && r.rng.Chance(parameter.ColumnRestartOdds) {
			r.leaders[i] = 0
		}
		r.leaders[i]++
	}
}

// Glyphs returns a copy of the pool
func (r *Rain) Glyphs() []Glyph {
	out := make([]Glyph, len(r.glyphs))
	copy(out, r.glyphs)
	return out
}

// Len is the constant pool size
func (r *Rain) Len() int {
	return len(r.glyphs)
}
