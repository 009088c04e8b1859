// Package core drives the simulation: one tick runs movement, effect aging
// and combat timers in that order, then hands a FrameView to the renderer.
package core

import (
	"github.com/automoto/tacdrill/clock"
	"github.com/automoto/tacdrill/systems"
	"github.com/yohamta/donburi/ecs"
)

// Renderer receives the frame after every tick
type Renderer func(view systems.FrameView)

type Scheduler struct {
	ecs     *ecs.ECS
	clock   clock.Clock
	render  Renderer
	running bool
}

// NewScheduler registers the simulation systems on e in tick order
func NewScheduler(e *ecs.ECS, clk clock.Clock, resolver *systems.Resolver) *Scheduler {
	e.AddSystem(systems.UpdateEnemies)
	e.AddSystem(systems.UpdateDeaths)
	e.AddSystem(systems.UpdateEffects)
	e.AddSystem(resolver.Update)

	return &Scheduler{
		ecs:   e,
		clock: clk,
	}
}

// SetRenderer installs the render pass. Window hosts leave it unset and draw
// from their own draw callback.
func (s *Scheduler) SetRenderer(r Renderer) {
	s.render = r
}

func (s *Scheduler) Start() {
	s.running = true
}

// Stop cancels the loop; Tick is a no-op until Start is called again
func (s *Scheduler) Stop() {
	s.running = false
}

func (s *Scheduler) Running() bool {
	return s.running
}

// Tick runs one frame. It does nothing while stopped or before the level
// assets are ready, and reports whether a frame ran. The first frame only
// establishes the clock, so it carries no delta.
func (s *Scheduler) Tick() bool {
	if !s.running || !systems.IsReady(s.ecs) {
		return false
	}

	now := s.clock.Now()
	frame := systems.GetOrCreateFrame(s.ecs)
	if frame.Tick == 0 {
		frame.Delta = 0
	} else {
		frame.Delta = now.Sub(frame.Now)
	}
	frame.Now = now
	frame.Tick++

	s.ecs.Update()

	if s.render != nil {
		s.render(systems.View(s.ecs))
	}
	return true
}
