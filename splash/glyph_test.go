package splash

import (
	"reflect"
	"testing"

	"github.com/lixenwraith/habit-splash/parameter"
	"github.com/lixenwraith/habit-splash/render"
	"github.com/lixenwraith/habit-splash/vmath"
)

func TestRainPoolConstant(t *testing.T) {
	rain := NewRain(150, nil, vmath.NewFastRand(1))
	rain.Reset(80, 24)
	layer := render.NewLayer(80, 24)

	for i := 0; i < 2000; i++ {
		rain.Update(layer, 1, i > 500, i < 500)
		if rain.Len() != 150 {
			t.Fatalf("Pool size changed to %d", rain.Len())
		}
	}
}

func TestRainGlyphBounds(t *testing.T) {
	const w, h = 80, 24
	rain := NewRain(150, nil, vmath.NewFastRand(7))
	rain.Reset(w, h)
	layer := render.NewLayer(w, h)

	for i := 0; i < 3000; i++ {
		// Mix of slow and clamped-large frames
		frames := float64(i%7) + 0.25
		rain.Update(layer, frames, false, true)
		for j, g := range rain.Glyphs() {
			if g.Y < -30 || g.Y > h {
				t.Fatalf("Frame %d glyph %d y=%v outside [-30,%d]", i, j, g.Y, h)
			}
			if g.X < 0 || g.X >= w {
				t.Fatalf("Frame %d glyph %d x=%v outside [0,%d)", i, j, g.X, w)
			}
			if g.Opacity < 0 || g.Opacity >= parameter.GlyphOpacityMax {
				t.Fatalf("Glyph %d opacity %v out of range", j, g.Opacity)
			}
			if g.Brightness < parameter.GlyphBrightnessMin || g.Brightness >= parameter.GlyphBrightnessMax {
				t.Fatalf("Glyph %d brightness %v out of range", j, g.Brightness)
			}
		}
	}
}

func TestRainRecycleKeepsBrightness(t *testing.T) {
	rain := NewRain(1, nil, vmath.NewFastRand(3))
	rain.Reset(10, 5)
	before := rain.Glyphs()[0]

	layer := render.NewLayer(10, 5)
	// Far enough to push the glyph past the bottom
	rain.Update(layer, 1000, false, false)

	after := rain.Glyphs()[0]
	if after.Y != parameter.GlyphRecycleY {
		t.Errorf("Expected recycled glyph at y=%v, got %v", parameter.GlyphRecycleY, after.Y)
	}
	if after.Brightness != before.Brightness {
		t.Errorf("Brightness changed on recycle: %v -> %v", before.Brightness, after.Brightness)
	}
}

func TestRainResetReseedsWithinBounds(t *testing.T) {
	rain := NewRain(150, nil, vmath.NewFastRand(11))
	rain.Reset(200, 60)
	rain.Reset(20, 6)
	for i, g := range rain.Glyphs() {
		if g.X >= 20 || g.Y > 6 {
			t.Fatalf("Glyph %d not reseeded into 20x6: %+v", i, g)
		}
	}
	if rain.Len() != 150 {
		t.Errorf("Reset changed pool size to %d", rain.Len())
	}
}

func TestRainDeterministic(t *testing.T) {
	run := func() []Glyph {
		rain := NewRain(50, nil, vmath.NewFastRand(42))
		rain.Reset(40, 12)
		layer := render.NewLayer(40, 12)
		for i := 0; i < 300; i++ {
			rain.Update(layer, 1, false, true)
		}
		return rain.Glyphs()
	}
	if !reflect.DeepEqual(run(), run()) {
		t.Error("Same seed should yield the same rain")
	}
}

func TestRainDrawsGlyphs(t *testing.T) {
	rain := NewRain(150, nil, vmath.NewFastRand(5))
	rain.Reset(40, 12)
	layer := render.NewLayer(40, 12)
	rain.Update(layer, 1, false, true)

	drawn := 0
	for y := 0; y < 12; y++ {
		for x := 0; x < 40; x++ {
			if layer.At(x, y).Rune != 0 {
				drawn++
			}
		}
	}
	if drawn == 0 {
		t.Error("Expected glyphs on the layer after one update")
	}
}
