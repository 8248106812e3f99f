package engine

import (
	"context"
	"sync"
	"time"
)

// Stepper is driven one frame at a time by a FrameLoop
type Stepper interface {
	// Step runs one frame at now, returns false once the stepper has finished
	Step(now time.Time) bool
	// Resize applies new surface dimensions, only ever called between steps
	Resize(width, height int)
}

// ResizeEvent carries new surface dimensions
type ResizeEvent struct {
	Width, Height int
}

// FrameLoop runs a Stepper on a fixed frame interval in a single goroutine
// Resize requests are queued and applied between frames, never interleaved with a step
type FrameLoop struct {
	clock    TimeProvider
	stepper  Stepper
	interval time.Duration

	resizeChan chan ResizeEvent
	stopChan   chan struct{}
	stopOnce   sync.Once

	mu     sync.Mutex
	frames uint64
}

// NewFrameLoop creates a loop stepping at the given interval
func NewFrameLoop(clock TimeProvider, interval time.Duration, stepper Stepper) *FrameLoop {
	if interval <= 0 {
		interval = time.Second / 60
	}
	return &FrameLoop{
		clock:      clock,
		stepper:    stepper,
		interval:   interval,
		resizeChan: make(chan ResizeEvent, 1),
		stopChan:   make(chan struct{}),
	}
}

// RequestResize queues a resize, coalescing with any resize not yet applied
// Non-blocking, safe from any goroutine
func (l *FrameLoop) RequestResize(width, height int) {
	ev := ResizeEvent{Width: width, Height: height}
	for {
		select {
		case l.resizeChan <- ev:
			return
		default:
		}
		// Drop the stale request and retry
		select {
		case <-l.resizeChan:
		default:
		}
	}
}

// Stop ends the loop after the current step, idempotent
func (l *FrameLoop) Stop() {
	l.stopOnce.Do(func() {
		close(l.stopChan)
	})
}

// Frames returns the number of steps run so far
func (l *FrameLoop) Frames() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.frames
}

// Run blocks until the context is cancelled, Stop is called, or the stepper finishes
// Returns ctx.Err() on cancellation, nil otherwise
func (l *FrameLoop) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	// First frame immediately
	if !l.step() {
		return nil
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-l.stopChan:
			return nil

		case ev := <-l.resizeChan:
			l.stepper.Resize(ev.Width, ev.Height)

		case <-ticker.C:
			// Resize and stop take precedence over a due frame
			select {
			case ev := <-l.resizeChan:
				l.stepper.Resize(ev.Width, ev.Height)
			default:
			}
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-l.stopChan:
				return nil
			default:
			}
			if !l.step() {
				return nil
			}
		}
	}
}

func (l *FrameLoop) step() bool {
	l.mu.Lock()
	l.frames++
	l.mu.Unlock()
	return l.stepper.Step(l.clock.Now())
}
