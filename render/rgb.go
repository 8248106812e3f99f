package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// RGB is a 24-bit color, blended in float space and quantized on write
type RGB struct {
	R, G, B uint8
}

// Predefined default color
var (
	RGBBlack = RGB{0, 0, 0}
	RGBWhite = RGB{255, 255, 255}
)

// clamp converts float to uint8 efficiently
func clamp(v float64) uint8 {
	if v >= 255.0 {
		return 255
	}
	if !(v > 0.0) {
		return 0
	}
	return uint8(v + 0.5)
}

// ParseHex decodes "#RRGGBB" via go-colorful
func ParseHex(s string) (RGB, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	r, g, b := c.Clamped().RGB255()
	return RGB{R: r, G: g, B: b}, nil
}

// MustParseHex is ParseHex for static tables, panics on malformed input
func MustParseHex(s string) RGB {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex returns the "#rrggbb" form
func (c RGB) Hex() string {
	return c.colorful().Hex()
}

func (c RGB) colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// TCell converts to a tcell true color, tcell downsamples for 256-color terminals
func (c RGB) TCell() tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Blend alpha blends src over c
// If alpha is 1.0 or 0.0, we return early to save math
func Blend(c, src RGB, alpha float64) RGB {
	if alpha >= 1.0 {
		return src
	}
	if !(alpha > 0.0) {
		return c
	}

	inv := 1.0 - alpha

	return RGB{
		R: clamp(float64(src.R)*alpha + float64(c.R)*inv),
		G: clamp(float64(src.G)*alpha + float64(c.G)*inv),
		B: clamp(float64(src.B)*alpha + float64(c.B)*inv),
	}
}

// Scale multiplies every channel, factors above 1 brighten and saturate at white
func Scale(c RGB, factor float64) RGB {
	if !(factor > 0) {
		return RGBBlack
	}
	return RGB{
		R: clamp(float64(c.R) * factor),
		G: clamp(float64(c.G) * factor),
		B: clamp(float64(c.B) * factor),
	}
}

// Lerp linearly interpolates between two colors
// t=0 returns a, t=1 returns b
func Lerp(a, b RGB, t float64) RGB {
	if !(t > 0) {
		return a
	}
	if t >= 1 {
		return b
	}
	return RGB{
		R: clamp(float64(a.R) + t*float64(int(b.R)-int(a.R))),
		G: clamp(float64(a.G) + t*float64(int(b.G)-int(a.G))),
		B: clamp(float64(a.B) + t*float64(int(b.B)-int(a.B))),
	}
}

// Glow mixes towards src in Lab space, keeping hue stable for halos
func Glow(c, src RGB, t float64) RGB {
	if !(t > 0) {
		return c
	}
	if t > 1 {
		t = 1
	}
	r, g, b := c.colorful().BlendLab(src.colorful(), t).Clamped().RGB255()
	return RGB{R: r, G: g, B: b}
}
