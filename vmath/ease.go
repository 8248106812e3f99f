package vmath

import "math"

// Back easing overshoot constants
const (
	backC1 = 1.70158
	backC3 = backC1 + 1
)

// Clamp01 clamps v to [0, 1], NaN collapses to 0
func Clamp01(v float64) float64 {
	if !(v > 0) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Clamp bounds v to [lo, hi], NaN collapses to lo
func Clamp(v, lo, hi float64) float64 {
	if !(v > lo) {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Progress returns elapsed/total in [0, 1]
// Non-positive total is treated as already complete
func Progress(elapsed, total float64) float64 {
	if total <= 0 {
		return 1
	}
	return Clamp01(elapsed / total)
}

// EaseOutCubic decelerates towards 1
func EaseOutCubic(t float64) float64 {
	t = Clamp01(t)
	inv := 1 - t
	return 1 - inv*inv*inv
}

// EaseInCubic accelerates away from 0
func EaseInCubic(t float64) float64 {
	t = Clamp01(t)
	return t * t * t
}

// EaseOutBack overshoots 1 near t≈0.6 before settling, output is intentionally not clamped
func EaseOutBack(t float64) float64 {
	t = Clamp01(t) - 1
	return 1 + backC3*t*t*t + backC1*t*t
}

// Wave maps sin(phase) from [-1, 1] onto [center-amp, center+amp]
func Wave(phase, center, amp float64) float64 {
	return math.Sin(phase)*amp + center
}

// Finite reports whether v is neither NaN nor infinite
func Finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
