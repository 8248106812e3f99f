package splash

import (
	"math"

	"github.com/lixenwraith/habit-splash/parameter"
	"github.com/lixenwraith/habit-splash/vmath"
)

// TextStyle is the animated presentation of the title or subtitle
// Offsets and blur are in reference pixels, the renderer converts them to cells
type TextStyle struct {
	Opacity    float64
	OffsetPx   float64
	Scale      float64
	BlurPx     float64
	Brightness float64
	Glow       float64
}

// hiddenText is the state before the title reveal
var hiddenText = TextStyle{Opacity: 0, Scale: 1, Brightness: 1}

// TitleReveal returns title and subtitle styles at phase progress p
// The title rides back-ease-out, the subtitle starts 20% later on cubic-ease-out
func TitleReveal(p float64) (title, subtitle TextStyle) {
	p = vmath.Clamp01(p)
	e := vmath.EaseOutBack(p)
	title = TextStyle{
		Opacity:    vmath.Clamp01(e),
		OffsetPx:   parameter.TitleOffsetPx * (1 - e),
		Scale:      parameter.TitleScaleFrom + e*(1-parameter.TitleScaleFrom),
		BlurPx:     math.Max(0, parameter.TitleBlurPx*(1-e)),
		Brightness: 1,
	}

	sp := math.Max(0, (p-parameter.SubtitleDelay)/(1-parameter.SubtitleDelay))
	se := vmath.EaseOutCubic(sp)
	subtitle = TextStyle{
		Opacity:    se,
		OffsetPx:   parameter.SubtitleOffsetPx * (1 - se),
		Scale:      1,
		BlurPx:     parameter.SubtitleBlurPx * (1 - se),
		Brightness: 1,
	}
	return title, subtitle
}

// PulseGlow is the breathing title glow in [0.4, 1.0], independently phased from the cell pulse
func PulseGlow(elapsedMs float64) float64 {
	return vmath.Wave(elapsedMs*parameter.PulseGlowRate, parameter.PulseGlowCenter, parameter.PulseGlowAmp)
}

// GlowBrightness maps glow to the title brightness filter
func GlowBrightness(glow float64) float64 {
	return 0.8 + glow*0.4
}

// ExitFade returns the shared layer opacity plus title scale and blur at exit progress p
func ExitFade(p float64) (opacity, scale, blurPx float64) {
	e := vmath.EaseInCubic(p)
	return 1 - e, 1 + e*parameter.ExitScaleGrowth, e * parameter.ExitBlurPx
}
