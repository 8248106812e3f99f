package audio

import (
	"math"
	"sync"
	"testing"
	"time"

	"github.com/lixenwraith/habit-splash/parameter"
)

func TestParamAutomation(t *testing.T) {
	p := (&param{}).set(0, 0).linear(100*time.Millisecond, 1).exp(200*time.Millisecond, 0.01)

	checks := []struct {
		at   float64
		want float64
	}{
		{0, 0},
		{0.05, 0.5},
		{0.1, 1},
		{0.15, 0.1}, // geometric midpoint of 1 and 0.01
		{0.2, 0.01},
		{5, 0.01},
	}
	for _, c := range checks {
		if got := p.valueAt(c.at); math.Abs(got-c.want) > 1e-9 {
			t.Errorf("valueAt(%v) = %v, want %v", c.at, got, c.want)
		}
	}
}

func TestParamSteps(t *testing.T) {
	p := (&param{}).set(0, 440).set(200*time.Millisecond, 550).set(400*time.Millisecond, 660)
	if p.valueAt(0.1) != 440 || p.valueAt(0.2) != 550 || p.valueAt(0.39) != 550 || p.valueAt(0.5) != 660 {
		t.Errorf("Unexpected step values %v %v %v %v", p.valueAt(0.1), p.valueAt(0.2), p.valueAt(0.39), p.valueAt(0.5))
	}
}

func TestParamExpFromZeroHolds(t *testing.T) {
	p := (&param{}).set(0, 0).exp(time.Second, 1)
	if p.valueAt(0.5) != 0 {
		t.Errorf("Exponential ramp from zero should hold, got %v", p.valueAt(0.5))
	}
}

func TestToneLengths(t *testing.T) {
	want := map[SoundType]time.Duration{
		SoundBell:    1200 * time.Millisecond,
		SoundChime:   750 * time.Millisecond,
		SoundGentle:  800 * time.Millisecond,
		SoundClassic: 500 * time.Millisecond,
		SoundNature:  1500 * time.Millisecond,
		SoundModern:  400 * time.Millisecond,
	}
	for st, d := range want {
		buf := generateSound(st)
		if len(buf) != durationToSamples(d) {
			t.Errorf("%s: %d samples, want %d", st, len(buf), durationToSamples(d))
		}
	}
}

func TestTonesAudibleAndBounded(t *testing.T) {
	for st := SoundType(0); st < soundTypeCount; st++ {
		buf := generateSound(st)
		peak := 0.0
		for i, v := range buf {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Fatalf("%s: non-finite sample at %d", st, i)
			}
			peak = math.Max(peak, math.Abs(v))
		}
		if peak < 0.01 {
			t.Errorf("%s: peak %v is inaudible", st, peak)
		}
		if peak > 1 {
			t.Errorf("%s: peak %v clips", st, peak)
		}
	}
}

func TestTonesDecay(t *testing.T) {
	for st := SoundType(0); st < soundTypeCount; st++ {
		buf := generateSound(st)
		tail := buf[len(buf)*9/10:]
		head := buf[:len(buf)/3]
		if rms(tail) >= rms(head) {
			t.Errorf("%s: tail rms %v not below head rms %v", st, rms(tail), rms(head))
		}
	}
}

func TestChimeNotesStaggered(t *testing.T) {
	buf := generateSound(SoundChime)
	// Only the first note sounds before the second is due
	second := durationToSamples(parameter.ChimeNoteSpacing)
	if rms(buf[:second]) == 0 {
		t.Fatal("First note silent")
	}
	if got := dominantOf(buf[second/4:second*3/4], 523.25, 659.25); got != 523.25 {
		t.Errorf("Expected C5 first, dominant %v", got)
	}
}

func TestHighpassAttenuatesLowTone(t *testing.T) {
	sr := parameter.AudioSampleRate
	low := make(floatBuffer, sr/4)
	high := make(floatBuffer, sr/4)
	for i := range low {
		ts := float64(i) / float64(sr)
		low[i] = math.Sin(2 * math.Pi * 100 * ts)
		high[i] = math.Sin(2 * math.Pi * 5000 * ts)
	}
	newBiquad(filterHighpass, 1000, 1).process(low)
	newBiquad(filterHighpass, 1000, 1).process(high)
	if rms(low) > rms(high)/10 {
		t.Errorf("Highpass passed 100Hz at %v vs 5kHz at %v", rms(low), rms(high))
	}
}

func TestLowpassAttenuatesHighTone(t *testing.T) {
	sr := parameter.AudioSampleRate
	high := make(floatBuffer, sr/4)
	for i := range high {
		high[i] = math.Sin(2 * math.Pi * 10000 * float64(i) / float64(sr))
	}
	before := rms(high)
	newBiquad(filterLowpass, 1000, 1).process(high)
	if rms(high) > before/10 {
		t.Errorf("Lowpass passed 10kHz: %v of %v", rms(high), before)
	}
}

func TestToneCacheRendersOnce(t *testing.T) {
	c := new(toneCache)
	a := c.lookup("modern")
	b := c.lookup("MODERN")
	if len(a) == 0 || &a[0] != &b[0] {
		t.Error("Cache should return the stored buffer")
	}
	if unknown, bell := c.lookup("foghorn"), c.lookup("bell"); &unknown[0] != &bell[0] {
		t.Error("Unknown id should share the bell buffer")
	}

	// Concurrent first lookups all see the same rendering
	var wg sync.WaitGroup
	bufs := make([]floatBuffer, 8)
	for i := range bufs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			bufs[i] = c.lookup("nature")
		}(i)
	}
	wg.Wait()
	for i := range bufs {
		if len(bufs[i]) == 0 || &bufs[i][0] != &bufs[0][0] {
			t.Fatalf("Lookup %d returned a different buffer", i)
		}
	}
}

func rms(buf floatBuffer) float64 {
	if len(buf) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range buf {
		sum += v * v
	}
	return math.Sqrt(sum / float64(len(buf)))
}

// dominantOf returns whichever candidate frequency correlates most with buf
func dominantOf(buf floatBuffer, candidates ...float64) float64 {
	best, bestPower := 0.0, -1.0
	sr := float64(parameter.AudioSampleRate)
	for _, f := range candidates {
		var re, im float64
		for i, v := range buf {
			w := 2 * math.Pi * f * float64(i) / sr
			re += v * math.Cos(w)
			im += v * math.Sin(w)
		}
		if p := re*re + im*im; p > bestPower {
			best, bestPower = f, p
		}
	}
	return best
}
