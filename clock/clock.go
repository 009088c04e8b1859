// Package clock provides the time source for the simulation.
package clock

import (
	"sync"
	"time"
)

// Clock provides time functionality
type Clock interface {
	Now() time.Time
}

// Real implements Clock using actual system time
type Real struct{}

// Now returns the current time
func (c *Real) Now() time.Time {
	return time.Now()
}

// New returns a new real clock
func New() Clock {
	return &Real{}
}

// Manual is a Clock that only moves when told to. Tests and the headless
// simulator use it to step the simulation deterministically.
type Manual struct {
	mu      sync.RWMutex
	current time.Time
}

// NewManual creates a manual clock starting at start
func NewManual(start time.Time) *Manual {
	return &Manual{current: start}
}

// Now returns the current manual time
func (m *Manual) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Set moves the clock to t
func (m *Manual) Set(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = t
}

// Advance moves the clock forward by d
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = m.current.Add(d)
}

// Pausable wraps a Clock and freezes it while paused. Time spent paused is
// never observed by callers.
type Pausable struct {
	mu       sync.Mutex
	base     Clock
	offset   time.Duration
	pausedAt time.Time
	paused   bool
}

func NewPausable(base Clock) *Pausable {
	return &Pausable{base: base}
}

// Now returns the base time minus all time spent paused
func (p *Pausable) Now() time.Time {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.paused {
		return p.pausedAt.Add(-p.offset)
	}
	return p.base.Now().Add(-p.offset)
}

func (p *Pausable) Pause() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.paused {
		return
	}
	p.paused = true
	p.pausedAt = p.base.Now()
}

func (p *Pausable) Resume() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.paused {
		return
	}
	p.paused = false
	p.offset += p.base.Now().Sub(p.pausedAt)
}

func (p *Pausable) Paused() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.paused
}
