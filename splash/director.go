package splash

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/lixenwraith/habit-splash/engine"
	"github.com/lixenwraith/habit-splash/navigation"
	"github.com/lixenwraith/habit-splash/parameter"
	"github.com/lixenwraith/habit-splash/parameter/visual"
	"github.com/lixenwraith/habit-splash/render"
	"github.com/lixenwraith/habit-splash/vmath"
)

// SoundPlayer plays a named cue, must not block
type SoundPlayer interface {
	Play(id string)
}

type nopSound struct{}

func (nopSound) Play(string) {}

// Deps are the director's collaborators
type Deps struct {
	Screen    render.Screen
	Navigator navigation.Navigator

	// Optional: monotonic clock, time-seeded generator and silence by default
	Clock engine.Clock
	Rand  *vmath.FastRand
	Sound SoundPlayer
}

// Director drives the five-phase splash over a glyph layer, a grid layer and a text layer
// Step, Resize and Unmount are mutually exclusive; the navigation callback may run on a timer goroutine
type Director struct {
	mu sync.Mutex

	cfg   Config
	ctx   context.Context
	clock engine.Clock
	rng   *vmath.FastRand
	nav   navigation.Navigator
	sound SoundPlayer

	compositor *render.Compositor
	matrix     *render.Layer // background glyph rain
	canvas     *render.Layer // foreground grid
	text       *render.Layer // title and subtitle

	rain *Rain
	grid *Grid

	width, height int

	phase      Phase
	phaseStart time.Time
	lastFrame  time.Time
	frames     uint64

	title    TextStyle
	subtitle TextStyle

	finished  bool
	unmounted bool
	navigated bool
	navErr    error
	navTimer  engine.Timer
	loop      *engine.FrameLoop

	done     chan struct{}
	doneOnce sync.Once
}

// New mounts a director on deps.Screen; the phase clock starts now
func New(ctx context.Context, cfg Config, deps Deps) (*Director, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if deps.Screen == nil {
		return nil, ErrNoSurface
	}
	width, height := deps.Screen.Size()
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: surface is %dx%d", ErrNoSurface, width, height)
	}
	if deps.Navigator == nil {
		return nil, ErrNoNavigator
	}
	if deps.Clock == nil {
		deps.Clock = engine.NewMonotonicTimeProvider()
	}
	if deps.Rand == nil {
		deps.Rand = vmath.NewFastRand(uint64(time.Now().UnixNano()))
	}
	if deps.Sound == nil {
		deps.Sound = nopSound{}
	}
	if ctx == nil {
		ctx = context.Background()
	}

	d := &Director{
		cfg:        cfg,
		ctx:        ctx,
		clock:      deps.Clock,
		rng:        deps.Rand,
		nav:        deps.Navigator,
		sound:      deps.Sound,
		compositor: render.NewCompositor(deps.Screen, visual.RgbBackground),
		matrix:     render.NewLayer(width, height),
		canvas:     render.NewLayer(width, height),
		text:       render.NewLayer(width, height),
		width:      width,
		height:     height,
		title:      hiddenText,
		subtitle:   hiddenText,
		done:       make(chan struct{}),
	}
	d.canvas.Opacity = 0

	d.rain = NewRain(cfg.GlyphCount, []rune(cfg.Charset), d.rng)
	d.rain.Reset(width, height)
	d.grid = NewGrid(cfg.GridSize, cfg.HabitProbability, d.rng)
	d.grid.Relayout(width, height)

	now := d.clock.Now()
	d.phaseStart = now
	d.lastFrame = now

	log.Printf("splash: mounted %dx%d, %d glyphs, %d/%d habit cells", width, height, d.rain.Len(), d.grid.HabitCount(), d.grid.Len())
	return d, nil
}

// Run drives the director on a FrameLoop at fps until finished, unmounted or ctx is done
func (d *Director) Run(ctx context.Context, fps int) error {
	interval := time.Second / 60
	if fps > 0 {
		interval = time.Second / time.Duration(fps)
	}
	loop := engine.NewFrameLoop(d.clock, interval, d)

	d.mu.Lock()
	if d.unmounted || d.finished {
		d.mu.Unlock()
		return nil
	}
	d.loop = loop
	d.mu.Unlock()

	return loop.Run(ctx)
}

// RequestResize routes a resize through the frame loop when running, applies it directly otherwise
func (d *Director) RequestResize(width, height int) {
	d.mu.Lock()
	loop := d.loop
	d.mu.Unlock()
	if loop != nil {
		loop.RequestResize(width, height)
		return
	}
	d.Resize(width, height)
}

// Step runs one frame at now, returns false once the sequence finished or the director was unmounted
func (d *Director) Step(now time.Time) bool {
	d.mu.Lock()
	running, navDelay, schedule := d.stepLocked(now)
	d.mu.Unlock()

	// Scheduled outside the lock, a mock clock may fire synchronously
	if schedule {
		d.scheduleNavigation(navDelay)
	}
	return running
}

func (d *Director) stepLocked(now time.Time) (running bool, navDelay time.Duration, schedule bool) {
	if d.unmounted || d.finished {
		return false, 0, false
	}
	d.frames++

	dt := now.Sub(d.lastFrame)
	dt = max(0, min(dt, parameter.SplashMaxFrameDelta))
	d.lastFrame = now
	frames := float64(dt) / float64(parameter.SplashReferenceFrame)

	elapsed := now.Sub(d.phaseStart)

	d.rain.Update(d.matrix, frames, d.phase >= PhaseGridActivation, d.phase == PhaseRain)
	d.canvas.Clear()
	d.text.Clear()

	switch d.phase {
	case PhaseRain:
		d.stepRain(elapsed)
	case PhaseGridActivation:
		d.stepGrid(elapsed)
	case PhaseTitleReveal:
		d.stepTitle(elapsed)
	case PhasePulse:
		d.stepPulse(elapsed)
	case PhaseExit:
		navDelay, schedule = d.stepExit(now, elapsed)
	}

	d.drawTexts()
	d.compositor.Composite(d.matrix, d.canvas, d.text)

	return !d.finished, navDelay, schedule
}

func (d *Director) stepRain(elapsed time.Duration) {
	d.canvas.Opacity = 0
	if d.cfg.Durations.Complete(PhaseRain, elapsed) {
		d.advance()
	}
}

func (d *Director) stepGrid(elapsed time.Duration) {
	progress := d.cfg.Durations.Progress(PhaseGridActivation, elapsed)
	eased := vmath.EaseOutCubic(progress)

	d.canvas.Opacity = eased
	drawGrid(d.canvas, d.grid, eased)
	d.grid.Activate(eased)
	drawCells(d.canvas, d.grid, true)

	if progress >= 1 {
		d.advance()
	}
}

func (d *Director) stepTitle(elapsed time.Duration) {
	drawGrid(d.canvas, d.grid, 1)
	drawCells(d.canvas, d.grid, false)

	progress := d.cfg.Durations.Progress(PhaseTitleReveal, elapsed)
	d.title, d.subtitle = TitleReveal(progress)

	if progress >= 1 {
		d.advance()
	}
}

func (d *Director) stepPulse(elapsed time.Duration) {
	drawGrid(d.canvas, d.grid, 1)
	t := ms(elapsed)
	d.grid.PulseHabits(t, d.rng)
	drawCells(d.canvas, d.grid, false)

	glow := PulseGlow(t)
	d.title.Glow = glow
	d.title.Brightness = GlowBrightness(glow)

	if d.cfg.Durations.Complete(PhasePulse, elapsed) {
		d.advance()
	}
}

// stepExit fades everything out; on completion the sequence is finished and navigation is due
// exactly NavigateDelay after the phase boundary, independent of when this frame landed
func (d *Director) stepExit(now time.Time, elapsed time.Duration) (time.Duration, bool) {
	drawGrid(d.canvas, d.grid, 1)
	drawCells(d.canvas, d.grid, false)

	progress := d.cfg.Durations.Progress(PhaseExit, elapsed)
	opacity, scale, blur := ExitFade(progress)

	d.canvas.Opacity = opacity
	d.matrix.Opacity = opacity
	d.title.Opacity = opacity
	d.title.Scale = scale
	d.title.BlurPx = blur
	d.title.Brightness = 1
	d.subtitle.Opacity = opacity

	if progress < 1 {
		return 0, false
	}

	d.finished = true
	deadline := d.phaseStart.Add(d.cfg.Durations.Exit + d.cfg.Durations.NavigateDelay)
	delay := max(deadline.Sub(now), 0)
	log.Printf("splash: sequence finished after %d frames, navigating to %s in %v", d.frames, d.cfg.Target, delay)
	return delay, true
}

// advance moves to the next phase, carrying the exact boundary so overshoot does not accumulate
func (d *Director) advance() {
	if d.phase >= PhaseExit {
		return
	}
	from := d.phase
	d.phaseStart = d.phaseStart.Add(d.cfg.Durations.Of(from))
	d.phase++
	log.Printf("splash: phase %s -> %s", from, d.phase)

	switch d.phase {
	case PhaseTitleReveal:
		if d.cfg.TitleCue != "" {
			d.sound.Play(d.cfg.TitleCue)
		}
	case PhaseExit:
		if d.cfg.ExitCue != "" {
			d.sound.Play(d.cfg.ExitCue)
		}
	}
}

func (d *Director) drawTexts() {
	mid := d.height / 2
	drawText(d.text, d.cfg.Title, d.title, mid-1, visual.RgbTitle)
	drawText(d.text, d.cfg.Subtitle, d.subtitle, mid+1, visual.RgbSubtitle)
	d.text.Opacity = 1
}

func (d *Director) scheduleNavigation(delay time.Duration) {
	timer := d.clock.AfterFunc(delay, d.navigate)

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.unmounted {
		timer.Stop()
		return
	}
	if !d.navigated {
		d.navTimer = timer
	}
}

// navigate issues the single navigation request; one attempt, failures are kept for Err
func (d *Director) navigate() {
	d.mu.Lock()
	if d.unmounted || d.navigated {
		d.mu.Unlock()
		return
	}
	d.navigated = true
	d.navTimer = nil
	nav, target, ctx := d.nav, d.cfg.Target, d.ctx
	d.mu.Unlock()

	err := nav.Navigate(ctx, target)
	if err != nil {
		log.Printf("splash: navigation to %s failed: %v", target, err)
		err = fmt.Errorf("navigate %s: %w", target, err)
	}

	d.mu.Lock()
	d.navErr = err
	d.mu.Unlock()
	d.doneOnce.Do(func() { close(d.done) })
}

// Resize re-sizes all layers, recomputes grid layout and reseeds the glyph pool
// Phase, phase start and cell activation are preserved
func (d *Director) Resize(width, height int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.unmounted {
		return
	}
	if width <= 0 || height <= 0 {
		log.Printf("splash: ignoring resize to %dx%d", width, height)
		return
	}
	d.width, d.height = width, height
	d.matrix.Resize(width, height)
	d.canvas.Resize(width, height)
	d.text.Resize(width, height)
	d.rain.Reset(width, height)
	d.grid.Relayout(width, height)
	log.Printf("splash: resized to %dx%d in phase %s", width, height, d.phase)
}

// Unmount stops the frame loop and cancels pending navigation; no draw or navigation follows, idempotent
func (d *Director) Unmount() {
	d.mu.Lock()
	if d.unmounted {
		d.mu.Unlock()
		return
	}
	d.unmounted = true
	timer, loop := d.navTimer, d.loop
	d.navTimer = nil
	phase := d.phase
	d.mu.Unlock()

	if timer != nil {
		timer.Stop()
	}
	if loop != nil {
		loop.Stop()
	}
	log.Printf("splash: unmounted in phase %s", phase)
	d.doneOnce.Do(func() { close(d.done) })
}

// Done is closed once navigation was attempted or the director was unmounted
func (d *Director) Done() <-chan struct{} {
	return d.done
}

// Err returns the navigation failure, nil if navigation succeeded or has not happened
func (d *Director) Err() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.navErr
}

// Phase returns the current phase
func (d *Director) Phase() Phase {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.phase
}

// Snapshot is a copy of the director state for inspection
type Snapshot struct {
	Phase        Phase
	PhaseStart   time.Time
	PhaseElapsed time.Duration // as of the last frame
	Frames       uint64
	Width        int
	Height       int

	Glyphs []Glyph
	Cells  []Cell
	Layout Layout

	ForegroundOpacity float64
	BackgroundOpacity float64
	Title             TextStyle
	Subtitle          TextStyle

	Finished  bool
	Navigated bool
	Unmounted bool
}

// Snapshot returns a consistent copy of the current state
func (d *Director) Snapshot() Snapshot {
	d.mu.Lock()
	defer d.mu.Unlock()
	return Snapshot{
		Phase:             d.phase,
		PhaseStart:        d.phaseStart,
		PhaseElapsed:      d.lastFrame.Sub(d.phaseStart),
		Frames:            d.frames,
		Width:             d.width,
		Height:            d.height,
		Glyphs:            d.rain.Glyphs(),
		Cells:             d.grid.Cells(),
		Layout:            d.grid.Layout(),
		ForegroundOpacity: d.canvas.Opacity,
		BackgroundOpacity: d.matrix.Opacity,
		Title:             d.title,
		Subtitle:          d.subtitle,
		Finished:          d.finished,
		Navigated:         d.navigated,
		Unmounted:         d.unmounted,
	}
}
