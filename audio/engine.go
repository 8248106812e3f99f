package audio

import (
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/habit-splash/parameter"
	"github.com/lixenwraith/habit-splash/vmath"
)

const sampleRate = beep.SampleRate(parameter.AudioSampleRate)

// Player plays reminder tones by id, never blocks the caller
type Player interface {
	Play(id string)
	SetVolume(v float64)
	Volume() float64
	Close()
}

// Engine synthesizes tones into a beep mixer feeding the speaker
type Engine struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	tones       *toneCache
	volume      float64
	initialized bool
}

// NewEngine creates an engine at volume, the speaker is opened by Initialize
func NewEngine(volume float64) *Engine {
	return &Engine{
		mixer:  &beep.Mixer{},
		tones:  new(toneCache),
		volume: vmath.Clamp01(volume),
	}
}

// Initialize opens the speaker and starts the mixer, repeated calls are no-ops
func (e *Engine) Initialize() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(e.mixer)
	e.initialized = true
	return nil
}

// Preload renders the given ids so the first Play does not synthesize on the caller
func (e *Engine) Preload(ids ...string) {
	for _, id := range ids {
		e.tones.lookup(id)
	}
}

// Stream returns a finite streamer of the tone at the current volume, unknown ids give the bell
func (e *Engine) Stream(id string) beep.Streamer {
	e.mu.Lock()
	volume := e.volume
	e.mu.Unlock()
	return newBufferStreamer(e.tones.lookup(id), volume)
}

// Length is how long the tone plays
func (e *Engine) Length(id string) time.Duration {
	return sampleRate.D(len(e.tones.lookup(id)))
}

// Play queues the tone on the mixer, dropped silently when the speaker is not open
func (e *Engine) Play(id string) {
	e.mu.Lock()
	ready := e.initialized
	e.mu.Unlock()
	if !ready {
		return
	}

	s := e.Stream(id)
	speaker.Lock()
	e.mixer.Add(s)
	speaker.Unlock()
}

// SetVolume clamps v into [0,1]; tones already queued keep their volume
func (e *Engine) SetVolume(v float64) {
	e.mu.Lock()
	e.volume = vmath.Clamp01(v)
	e.mu.Unlock()
}

// Volume returns the current volume
func (e *Engine) Volume() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.volume
}

// Close drops queued tones
// Note: the speaker stays open, clearing the mixer is enough to stop output
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.initialized {
		return
	}
	speaker.Lock()
	e.mixer.Clear()
	speaker.Unlock()
	e.initialized = false
}

// Silent is the muted player
type Silent struct {
	mu     sync.Mutex
	volume float64
}

func (s *Silent) Play(string) {}

func (s *Silent) SetVolume(v float64) {
	s.mu.Lock()
	s.volume = vmath.Clamp01(v)
	s.mu.Unlock()
}

func (s *Silent) Volume() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.volume
}

func (s *Silent) Close() {}

// Open returns a running engine, or a silent player when muted or the speaker is unavailable
func Open(volume float64, mute bool, preload ...string) Player {
	if mute {
		return &Silent{volume: vmath.Clamp01(volume)}
	}
	e := NewEngine(volume)
	if err := e.Initialize(); err != nil {
		log.Printf("audio: speaker unavailable, running silent: %v", err)
		return &Silent{volume: e.Volume()}
	}
	e.Preload(preload...)
	return e
}

// bufferStreamer plays a mono buffer on both channels at a fixed gain
type bufferStreamer struct {
	buf  floatBuffer
	pos  int
	gain float64
}

func newBufferStreamer(buf floatBuffer, gain float64) *bufferStreamer {
	return &bufferStreamer{buf: buf, gain: gain}
}

func (s *bufferStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if s.pos >= len(s.buf) {
		return 0, false
	}
	for n < len(samples) && s.pos < len(s.buf) {
		v := s.buf[s.pos] * s.gain
		samples[n][0] = v
		samples[n][1] = v
		s.pos++
		n++
	}
	return n, true
}

func (s *bufferStreamer) Err() error {
	return nil
}
