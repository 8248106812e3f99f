package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 48000

	// AudioBufferDuration is the speaker buffer, trades latency for underrun safety
	AudioBufferDuration = 100 * time.Millisecond
)

// Volume
const (
	AudioDefaultVolume = 0.5
	AudioDefaultSound  = "bell"
)

// Envelope floor every reminder tone decays to, at unit volume
const AudioEnvelopeFloor = 0.01

// Filters
const (
	AudioFilterCutoff = 1000.0
	AudioFilterQ      = 1.0
)

// Bell: two descending partials
const (
	BellSoundDuration = 1200 * time.Millisecond
	BellSoundSweep    = 800 * time.Millisecond
	BellSoundGain     = 0.3
)

// Chime: C major arpeggio, one note every spacing
const (
	ChimeNoteSpacing  = 150 * time.Millisecond
	ChimeNoteDuration = 300 * time.Millisecond
	ChimeSoundGain    = 0.2
)

// Gentle: stepped A4 triad through a lowpass
const (
	GentleSoundDuration = 800 * time.Millisecond
	GentleSoundStep     = 200 * time.Millisecond
	GentleSoundAttack   = 100 * time.Millisecond
	GentleSoundGain     = 0.15
)

// Classic: two-tone beep
const (
	ClassicSoundDuration = 500 * time.Millisecond
	ClassicSoundStep     = 100 * time.Millisecond
	ClassicSoundGain     = 0.3
)

// Nature: harmonic stack on A3
const (
	NatureSoundDuration = 1500 * time.Millisecond
	NatureSoundAttack   = 100 * time.Millisecond
	NatureSoundBase     = 220.0
	NatureSoundGain     = 0.1
)

// Modern: two stepped partials through a highpass
const (
	ModernSoundDuration = 400 * time.Millisecond
	ModernSoundStep     = 100 * time.Millisecond
	ModernSoundGain     = 0.25
)
