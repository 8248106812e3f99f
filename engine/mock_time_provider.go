package engine

import (
	"sort"
	"sync"
	"time"
)

// MockTimeProvider provides a controllable time source for testing
// Scheduled callbacks fire synchronously inside Advance/SetTime, in deadline order
type MockTimeProvider struct {
	mu          sync.Mutex
	currentTime time.Time
	timers      []*mockTimer
	seq         uint64
}

type mockTimer struct {
	owner    *MockTimeProvider
	deadline time.Time
	seq      uint64
	f        func()
	done     bool
}

// NewMockTimeProvider creates a new mock time provider with the given start time
func NewMockTimeProvider(startTime time.Time) *MockTimeProvider {
	return &MockTimeProvider{
		currentTime: startTime,
	}
}

// Now returns the current mocked time
func (m *MockTimeProvider) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.currentTime
}

// SetTime sets the current time and fires every timer now due
func (m *MockTimeProvider) SetTime(t time.Time) {
	m.mu.Lock()
	m.currentTime = t
	m.mu.Unlock()
	m.fireDue()
}

// Advance advances the current time by the given duration and fires every timer now due
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.mu.Lock()
	m.currentTime = m.currentTime.Add(d)
	m.mu.Unlock()
	m.fireDue()
}

// AfterFunc registers f to run once the mock time reaches now+d
func (m *MockTimeProvider) AfterFunc(d time.Duration, f func()) Timer {
	m.mu.Lock()
	m.seq++
	t := &mockTimer{owner: m, deadline: m.currentTime.Add(d), seq: m.seq, f: f}
	m.timers = append(m.timers, t)
	m.mu.Unlock()

	if d <= 0 {
		m.fireDue()
	}
	return t
}

// Pending returns the number of timers not yet fired or stopped
func (m *MockTimeProvider) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, t := range m.timers {
		if !t.done {
			n++
		}
	}
	return n
}

// fireDue runs callbacks outside the lock so they may schedule or stop timers
func (m *MockTimeProvider) fireDue() {
	for {
		m.mu.Lock()
		due := make([]*mockTimer, 0, len(m.timers))
		live := m.timers[:0]
		for _, t := range m.timers {
			switch {
			case t.done:
			case !t.deadline.After(m.currentTime):
				t.done = true
				due = append(due, t)
			default:
				live = append(live, t)
			}
		}
		m.timers = live
		m.mu.Unlock()

		if len(due) == 0 {
			return
		}
		sort.Slice(due, func(i, j int) bool {
			if due[i].deadline.Equal(due[j].deadline) {
				return due[i].seq < due[j].seq
			}
			return due[i].deadline.Before(due[j].deadline)
		})
		for _, t := range due {
			t.f()
		}
	}
}

func (t *mockTimer) Stop() bool {
	t.owner.mu.Lock()
	defer t.owner.mu.Unlock()
	if t.done {
		return false
	}
	t.done = true
	return true
}
