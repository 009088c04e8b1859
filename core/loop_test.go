package core_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/mock/gomock"

	"github.com/automoto/tacdrill/components"
	"github.com/automoto/tacdrill/core"
	"github.com/automoto/tacdrill/systems"
)

func TestRunFixedDrainsCommandsBeforeTicks(t *testing.T) {
	h := newHarness(t)
	systems.SetReady(h.ecs, true)
	loop := core.NewLoop(h.ecs, h.scheduler, 60)

	var aims []float64
	h.scheduler.SetRenderer(func(v systems.FrameView) {
		aims = append(aims, v.AimX)
	})

	require.True(t, loop.Submit(func(e *ecs.ECS) {
		systems.MoveAim(e, 123, 456)
	}))

	require.NoError(t, loop.RunFixed(context.Background(), h.clock, 16*time.Millisecond, 3))
	assert.Equal(t, []float64{123, 123, 123}, aims)
	assert.Equal(t, epoch.Add(48*time.Millisecond), h.clock.Now())
	assert.False(t, h.scheduler.Running())
}

func TestRunFixedEngagesThroughCommands(t *testing.T) {
	h := newHarness(t)
	systems.SetReady(h.ecs, true)
	loop := core.NewLoop(h.ecs, h.scheduler, 60)

	var answer systems.AnswerFunc
	h.gate.EXPECT().Open(gomock.Any(), gomock.Any()).Do(func(q components.Question, a systems.AnswerFunc) {
		answer = a
	})
	h.outcomes.EXPECT().OnGameOver(0).Do(func(int) { loop.Stop() })

	loop.Submit(func(e *ecs.ECS) {
		entry, ok := systems.EnemyByID(e, 0)
		require.True(t, ok)
		x, y := components.Object.Get(entry).Center()
		h.resolver.Engage(e, x, y)
	})
	require.NoError(t, loop.RunFixed(context.Background(), h.clock, 16*time.Millisecond, 1))
	require.NotNil(t, answer)

	loop.Submit(func(*ecs.ECS) { answer(systems.AnswerIncorrect) })
	require.NoError(t, loop.RunFixed(context.Background(), h.clock, 16*time.Millisecond, 100))

	assert.False(t, loop.Submit(func(*ecs.ECS) {}), "stopped loops refuse work")
}

func TestRunStopsOnCancel(t *testing.T) {
	h := newHarness(t)
	loop := core.NewLoop(h.ecs, h.scheduler, 120)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- loop.Run(ctx) }()

	ran := make(chan struct{})
	require.True(t, loop.Submit(func(*ecs.ECS) { close(ran) }))
	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatal("command never ran")
	}

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("loop did not stop")
	}
}

func TestStopIsIdempotent(t *testing.T) {
	h := newHarness(t)
	loop := core.NewLoop(h.ecs, h.scheduler, 60)

	done := make(chan error, 1)
	go func() { done <- loop.Run(context.Background()) }()

	loop.Stop()
	loop.Stop()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("loop did not stop")
	}
	assert.False(t, loop.Submit(func(*ecs.ECS) {}))
}
