package core

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/automoto/tacdrill/clock"
	"github.com/yohamta/donburi/ecs"
)

// Command is work queued for the simulation goroutine, such as a click or an
// answer. Commands run between ticks, never during one.
type Command func(e *ecs.ECS)

// Loop hosts a Scheduler without a window
type Loop struct {
	scheduler *Scheduler
	ecs       *ecs.ECS
	tickRate  int
	commands  chan Command
	stopChan  chan struct{}
	stopOnce  sync.Once
}

func NewLoop(e *ecs.ECS, scheduler *Scheduler, tickRate int) *Loop {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &Loop{
		scheduler: scheduler,
		ecs:       e,
		tickRate:  tickRate,
		commands:  make(chan Command, 64),
		stopChan:  make(chan struct{}),
	}
}

// Submit queues cmd. It reports false once the loop has stopped.
func (l *Loop) Submit(cmd Command) bool {
	select {
	case <-l.stopChan:
		return false
	default:
	}
	select {
	case l.commands <- cmd:
		return true
	case <-l.stopChan:
		return false
	}
}

// Run ticks in real time until ctx is done or Stop is called
func (l *Loop) Run(ctx context.Context) error {
	l.scheduler.Start()
	defer l.scheduler.Stop()

	ticker := time.NewTicker(time.Second / time.Duration(l.tickRate))
	defer ticker.Stop()

	log.Printf("Simulation loop started at %d ticks/second", l.tickRate)

	for {
		select {
		case <-ctx.Done():
			log.Println("Simulation loop stopped")
			return ctx.Err()
		case <-l.stopChan:
			log.Println("Simulation loop stopped")
			return nil
		case cmd := <-l.commands:
			cmd(l.ecs)
		case <-ticker.C:
			l.drain()
			l.scheduler.Tick()
		}
	}
}

// RunFixed runs ticks as fast as possible, advancing clk by step before each
// one. It returns after ticks frames, on Stop, or when ctx is done.
func (l *Loop) RunFixed(ctx context.Context, clk *clock.Manual, step time.Duration, ticks int) error {
	l.scheduler.Start()
	defer l.scheduler.Stop()

	for i := 0; i < ticks; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.stopChan:
			return nil
		default:
		}

		l.drain()
		clk.Advance(step)
		l.scheduler.Tick()
	}
	l.drain()
	return nil
}

// Stop ends Run or RunFixed. It is safe to call more than once.
func (l *Loop) Stop() {
	l.stopOnce.Do(func() {
		close(l.stopChan)
	})
}

func (l *Loop) drain() {
	for {
		select {
		case cmd := <-l.commands:
			cmd(l.ecs)
		default:
			return
		}
	}
}
