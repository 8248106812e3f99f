package audio

import (
	"math"
	"time"

	"github.com/lixenwraith/habit-splash/parameter"
)

// floatBuffer is mono float64 samples at unit volume
type floatBuffer []float64

// rampKind selects how a param moves from the previous point to this one
type rampKind int

const (
	rampStep rampKind = iota
	rampLinear
	rampExp
)

type point struct {
	at    float64 // seconds
	value float64
	ramp  rampKind
}

// param is an automated value: steps hold, ramps interpolate from the previous point
type param struct {
	points []point
}

func (p *param) set(at time.Duration, v float64) *param {
	p.points = append(p.points, point{at: at.Seconds(), value: v, ramp: rampStep})
	return p
}

func (p *param) linear(at time.Duration, v float64) *param {
	p.points = append(p.points, point{at: at.Seconds(), value: v, ramp: rampLinear})
	return p
}

func (p *param) exp(at time.Duration, v float64) *param {
	p.points = append(p.points, point{at: at.Seconds(), value: v, ramp: rampExp})
	return p
}

// valueAt evaluates the automation at t seconds, holding the last value past the end
func (p *param) valueAt(t float64) float64 {
	if len(p.points) == 0 {
		return 0
	}
	if t < p.points[0].at {
		return p.points[0].value
	}
	for i := 1; i < len(p.points); i++ {
		next := p.points[i]
		if t >= next.at {
			continue
		}
		prev := p.points[i-1]
		span := next.at - prev.at
		if span <= 0 {
			return next.value
		}
		frac := (t - prev.at) / span
		switch next.ramp {
		case rampLinear:
			return prev.value + (next.value-prev.value)*frac
		case rampExp:
			// Undefined across zero or a sign change, hold
			if prev.value*next.value <= 0 {
				return prev.value
			}
			return prev.value * math.Pow(next.value/prev.value, frac)
		default:
			return prev.value
		}
	}
	return p.points[len(p.points)-1].value
}

// voice is a sine oscillator sounding over [start, stop) with its own gain automation
type voice struct {
	freq  *param
	gain  *param
	start time.Duration
	stop  time.Duration
}

type filterKind int

const (
	filterNone filterKind = iota
	filterLowpass
	filterHighpass
)

// tone is a full patch: voices summed, filtered, then shaped by a master gain
type tone struct {
	voices []voice
	filter filterKind
	gain   *param
	length time.Duration
}

func constant(v float64) *param {
	return (&param{}).set(0, v)
}

// durationToSamples converts duration to sample count
func durationToSamples(d time.Duration) int {
	return int(d.Seconds() * float64(parameter.AudioSampleRate))
}

// render synthesizes the tone into a mono buffer
func (t tone) render() floatBuffer {
	n := durationToSamples(t.length)
	buf := make(floatBuffer, n)
	sr := float64(parameter.AudioSampleRate)

	for _, v := range t.voices {
		from := max(durationToSamples(v.start), 0)
		to := min(durationToSamples(v.stop), n)
		phase := 0.0
		for i := from; i < to; i++ {
			at := float64(i) / sr
			buf[i] += math.Sin(2*math.Pi*phase) * v.gain.valueAt(at)
			phase += v.freq.valueAt(at) / sr
			if phase >= 1 {
				phase -= math.Floor(phase)
			}
		}
	}

	switch t.filter {
	case filterLowpass:
		newBiquad(filterLowpass, parameter.AudioFilterCutoff, parameter.AudioFilterQ).process(buf)
	case filterHighpass:
		newBiquad(filterHighpass, parameter.AudioFilterCutoff, parameter.AudioFilterQ).process(buf)
	}

	if t.gain != nil {
		for i := range buf {
			buf[i] *= t.gain.valueAt(float64(i) / sr)
		}
	}
	return buf
}

// biquad is a second order IIR section, RBJ cookbook coefficients
type biquad struct {
	b0, b1, b2, a1, a2 float64
	x1, x2, y1, y2     float64
}

func newBiquad(kind filterKind, cutoff, q float64) *biquad {
	w0 := 2 * math.Pi * cutoff / float64(parameter.AudioSampleRate)
	cos, alpha := math.Cos(w0), math.Sin(w0)/(2*q)
	a0 := 1 + alpha

	f := &biquad{a1: -2 * cos / a0, a2: (1 - alpha) / a0}
	switch kind {
	case filterHighpass:
		f.b0 = (1 + cos) / 2 / a0
		f.b1 = -(1 + cos) / a0
		f.b2 = f.b0
	default:
		f.b0 = (1 - cos) / 2 / a0
		f.b1 = (1 - cos) / a0
		f.b2 = f.b0
	}
	return f
}

func (f *biquad) process(buf floatBuffer) {
	for i, x := range buf {
		y := f.b0*x + f.b1*f.x1 + f.b2*f.x2 - f.a1*f.y1 - f.a2*f.y2
		f.x2, f.x1 = f.x1, x
		f.y2, f.y1 = f.y1, y
		buf[i] = y
	}
}

// --- Reminder tones (unit volume) ---

func bellTone() tone {
	d := parameter.BellSoundDuration
	gain := (&param{}).set(0, parameter.BellSoundGain).exp(d, parameter.AudioEnvelopeFloor)
	sweep := func(from, to float64) voice {
		return voice{
			freq:  (&param{}).set(0, from).exp(parameter.BellSoundSweep, to),
			gain:  constant(1),
			start: 0,
			stop:  d,
		}
	}
	return tone{
		voices: []voice{sweep(800, 600), sweep(1000, 800)},
		gain:   gain,
		length: d,
	}
}

func chimeTone() tone {
	// C5 E5 G5 C6
	notes := []float64{523.25, 659.25, 783.99, 1046.50}
	spacing, dur := parameter.ChimeNoteSpacing, parameter.ChimeNoteDuration

	t := tone{length: time.Duration(len(notes)-1)*spacing + dur}
	for i, freq := range notes {
		start := time.Duration(i) * spacing
		t.voices = append(t.voices, voice{
			freq:  constant(freq),
			gain:  (&param{}).set(start, parameter.ChimeSoundGain).exp(start+dur, parameter.AudioEnvelopeFloor),
			start: start,
			stop:  start + dur,
		})
	}
	return t
}

func gentleTone() tone {
	d, step := parameter.GentleSoundDuration, parameter.GentleSoundStep
	return tone{
		voices: []voice{{
			freq:  (&param{}).set(0, 440).set(step, 550).set(2*step, 660),
			gain:  constant(1),
			start: 0,
			stop:  d,
		}},
		filter: filterLowpass,
		gain: (&param{}).set(0, 0).
			linear(parameter.GentleSoundAttack, parameter.GentleSoundGain).
			exp(d, parameter.AudioEnvelopeFloor),
		length: d,
	}
}

func classicTone() tone {
	d := parameter.ClassicSoundDuration
	return tone{
		voices: []voice{{
			freq:  (&param{}).set(0, 800).set(parameter.ClassicSoundStep, 600),
			gain:  constant(1),
			start: 0,
			stop:  d,
		}},
		gain:   (&param{}).set(0, parameter.ClassicSoundGain).exp(d, parameter.AudioEnvelopeFloor),
		length: d,
	}
}

func natureTone() tone {
	d := parameter.NatureSoundDuration
	t := tone{
		gain: (&param{}).set(0, 0).
			linear(parameter.NatureSoundAttack, parameter.NatureSoundGain).
			exp(d, parameter.AudioEnvelopeFloor),
		length: d,
	}
	for _, harmonic := range []float64{1, 1.5, 2, 2.5} {
		t.voices = append(t.voices, voice{
			freq:  constant(parameter.NatureSoundBase * harmonic),
			gain:  constant(1),
			start: 0,
			stop:  d,
		})
	}
	return t
}

func modernTone() tone {
	d, step := parameter.ModernSoundDuration, parameter.ModernSoundStep
	stepped := func(from, to float64) voice {
		return voice{
			freq:  (&param{}).set(0, from).set(step, to),
			gain:  constant(1),
			start: 0,
			stop:  d,
		}
	}
	return tone{
		voices: []voice{stepped(1200, 1000), stepped(800, 600)},
		filter: filterHighpass,
		gain:   (&param{}).set(0, parameter.ModernSoundGain).exp(d, parameter.AudioEnvelopeFloor),
		length: d,
	}
}

// generateSound dispatches to specific generator, unknown types render the bell
func generateSound(st SoundType) floatBuffer {
	switch st {
	case SoundChime:
		return chimeTone().render()
	case SoundGentle:
		return gentleTone().render()
	case SoundClassic:
		return classicTone().render()
	case SoundNature:
		return natureTone().render()
	case SoundModern:
		return modernTone().render()
	default:
		return bellTone().render()
	}
}
