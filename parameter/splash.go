package parameter

import "time"

// Phase durations
const (
	// SplashRainDuration is how long the glyph rain plays alone, exit is strictly after
	SplashRainDuration = 1800 * time.Millisecond

	// SplashGridDuration is the grid fade-in and staggered activation wave
	SplashGridDuration = 2000 * time.Millisecond

	// SplashTitleDuration is the title and subtitle reveal
	SplashTitleDuration = 1200 * time.Millisecond

	// SplashPulseDuration is the habit pulse hold, exit is strictly after
	SplashPulseDuration = 2500 * time.Millisecond

	// SplashExitDuration is the fade-out of every layer
	SplashExitDuration = 1200 * time.Millisecond

	// SplashNavigateDelay separates the end of the exit fade from the navigation request
	SplashNavigateDelay = 400 * time.Millisecond

	// SplashMaxFrameDelta caps per-frame motion after a stall
	SplashMaxFrameDelta = 100 * time.Millisecond

	// SplashReferenceFrame is the frame length the per-frame rates below are expressed in
	SplashReferenceFrame = time.Second / 60
)

// Glyph rain
const (
	GlyphCount = 150

	// Fall speed in rows per reference frame
	GlyphSpeedMin = 0.03
	GlyphSpeedMax = 0.15

	GlyphOpacityMax    = 0.6
	GlyphBrightnessMin = 0.2
	GlyphBrightnessMax = 1.0

	// GlyphDimFactor scales glyph brightness once the grid takes over
	GlyphDimFactor = 0.4

	// GlyphRecycleY is where a recycled glyph re-enters above the top edge
	GlyphRecycleY = -2.0

	// GlyphTrailFade is the per-frame alpha of the background fill producing trails
	GlyphTrailFade = 0.08

	// Column leaders run during the rain phase only
	ColumnSpacing      = 3
	ColumnRestartOdds  = 0.025
	ColumnLeaderStartY = 1
)

// Default glyph set: digits followed by habit pictograms
const GlyphCharset = "0123456789✅❌⚡🔥💧🏃🧘📚🎯⭐🔒🔓❤💤🍎🚰🏋"

// Habit grid
const (
	GridSize         = 7
	HabitProbability = 0.4

	// Activation wave stretches past the cell count so trailing cells still ramp
	GridWaveStretch = 1.3
	GridWaveDelay   = 0.03

	// GridCellFill is the fraction of a grid cell a fully active square occupies
	GridCellFill = 0.7

	// GridLineAlpha is the dashed grid line alpha at full layer opacity
	GridLineAlpha = 0.2

	// GridDashOn and GridDashOff are the dash pattern lengths in cells
	GridDashOn  = 3
	GridDashOff = 3

	// IconIntensityThreshold gates the habit icon
	IconIntensityThreshold = 0.5
)

// Cell rendering alphas, mirrors of the fill/stroke/glow hex alphas
const (
	HabitFillAlpha   = 0x40 / 255.0
	HabitStrokeAlpha = 0xCC / 255.0
	HabitGlowAlpha   = 0x80 / 255.0
	HabitGlowBlur    = 15.0
	HabitRadius      = 8

	PlainFillAlpha   = 0.1
	PlainStrokeAlpha = 0.3
	PlainGlowAlpha   = 0.3
	PlainGlowBlur    = 5.0
	PlainRadius      = 4

	// GlowBlurMax normalizes blur radii into halo alpha
	GlowBlurMax = 15.0

	// RoundCornerRadius is the minimum radius drawn with rounded corners
	RoundCornerRadius = 6
)

// Pulse phase oscillators, radians per millisecond
const (
	PulseCellRate   = 0.004
	PulseCellCenter = 0.6
	PulseCellAmp    = 0.4
	PulseJitter     = 0.15

	PulseGlowRate   = 0.003
	PulseGlowCenter = 0.7
	PulseGlowAmp    = 0.3
)

// Title and subtitle motion, offsets in pixels of the reference 16px line
const (
	SplashTitle    = "HABIT TRACKER"
	SplashSubtitle = "build better days, one habit at a time"

	TitleOffsetPx    = 40.0
	TitleScaleFrom   = 0.8
	TitleBlurPx      = 8.0
	SubtitleDelay    = 0.2
	SubtitleOffsetPx = 25.0
	SubtitleBlurPx   = 4.0

	ExitScaleGrowth = 0.3
	ExitBlurPx      = 15.0

	// PixelsPerRow converts pixel offsets into terminal rows
	PixelsPerRow = 16.0
)

// SplashTarget is the route requested once the sequence ends
const SplashTarget = "/login"

// Title rendering in cells
const (
	// TitleGlowStrength scales the text-shadow halo into background tint
	TitleGlowStrength = 0.5

	// TitleSpacingMax caps letter spacing derived from scale
	TitleSpacingMax = 3

	// BlurShadeStepPx is the blur per shading level, heavier blur picks lighter shades
	BlurShadeStepPx = 3.0
)
