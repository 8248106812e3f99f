package splash

import (
	"time"

	"github.com/lixenwraith/habit-splash/parameter"
	"github.com/lixenwraith/habit-splash/vmath"
)

// Phase is the ordinal stage of the splash sequence, it only ever advances by one
type Phase uint8

const (
	PhaseRain Phase = iota
	PhaseGridActivation
	PhaseTitleReveal
	PhasePulse
	PhaseExit
)

// PhaseCount is the number of phases
const PhaseCount = int(PhaseExit) + 1

var phaseNames = [PhaseCount]string{"rain", "grid", "title", "pulse", "exit"}

func (p Phase) String() string {
	if int(p) >= PhaseCount {
		return "unknown"
	}
	return phaseNames[p]
}

// Durations holds per-phase lengths and the post-exit navigation delay
type Durations struct {
	Rain          time.Duration
	Grid          time.Duration
	Title         time.Duration
	Pulse         time.Duration
	Exit          time.Duration
	NavigateDelay time.Duration
}

// DefaultDurations returns the stock 1800/2000/1200/2500/1200 +400ms timeline
func DefaultDurations() Durations {
	return Durations{
		Rain:          parameter.SplashRainDuration,
		Grid:          parameter.SplashGridDuration,
		Title:         parameter.SplashTitleDuration,
		Pulse:         parameter.SplashPulseDuration,
		Exit:          parameter.SplashExitDuration,
		NavigateDelay: parameter.SplashNavigateDelay,
	}
}

// Of returns the duration of phase p
func (d Durations) Of(p Phase) time.Duration {
	switch p {
	case PhaseRain:
		return d.Rain
	case PhaseGridActivation:
		return d.Grid
	case PhaseTitleReveal:
		return d.Title
	case PhasePulse:
		return d.Pulse
	case PhaseExit:
		return d.Exit
	}
	return 0
}

// Sequence is the summed length of all phases, excluding the navigation delay
func (d Durations) Sequence() time.Duration {
	return d.Rain + d.Grid + d.Title + d.Pulse + d.Exit
}

// Total is the time from mount to the navigation request
func (d Durations) Total() time.Duration {
	return d.Sequence() + d.NavigateDelay
}

// Complete reports whether phase p has run its course after elapsed
// Rain and Pulse are hold phases that end strictly after their duration, the others end once progress reaches 1
func (d Durations) Complete(p Phase, elapsed time.Duration) bool {
	switch p {
	case PhaseRain, PhasePulse:
		return elapsed > d.Of(p)
	default:
		return d.Progress(p, elapsed) >= 1
	}
}

// Progress returns elapsed as a fraction of phase p, saturating at 1
func (d Durations) Progress(p Phase, elapsed time.Duration) float64 {
	return vmath.Progress(float64(elapsed), float64(d.Of(p)))
}

// ms converts a duration to float milliseconds, the unit of the oscillator rates
func ms(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
