package systems_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/solarlune/resolv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/tacdrill/components"
	"github.com/automoto/tacdrill/config"
	"github.com/automoto/tacdrill/systems"
	"github.com/automoto/tacdrill/systems/factory"
)

const step = 50 * time.Millisecond

func newMover(pattern config.Pattern, originX float64) (*components.EnemyData, *resolv.Object) {
	enemy := &components.EnemyData{
		ID:        0,
		Slot:      config.SlotAlive,
		OriginX:   originX,
		OriginY:   300,
		Pattern:   pattern,
		Speed:     1,
		Direction: 1,
	}
	return enemy, resolv.NewObject(originX, 300, 100, 100)
}

// runUntil steps the target every 50ms until cond holds or limit passes
func runUntil(enemy *components.EnemyData, obj *resolv.Object, now time.Time, limit time.Duration, cond func() bool) time.Time {
	end := now.Add(limit)
	for !cond() && now.Before(end) {
		now = now.Add(step)
		systems.MoveEnemy(enemy, obj, now)
	}
	return now
}

func TestMoveEnemyFirstVisitOnlyStamps(t *testing.T) {
	enemy, obj := newMover(config.PatternCover, 500)

	assert.False(t, systems.MoveEnemy(enemy, obj, epoch))
	assert.Equal(t, 500.0, obj.X)
	assert.Equal(t, epoch, enemy.LastUpdate)
	assert.Equal(t, epoch, enemy.PhaseStarted)
}

func TestMoveEnemyRateLimited(t *testing.T) {
	enemy, obj := newMover(config.PatternCover, 500)
	systems.MoveEnemy(enemy, obj, epoch)

	assert.False(t, systems.MoveEnemy(enemy, obj, epoch.Add(49*time.Millisecond)))
	assert.Equal(t, 500.0, obj.X)

	assert.True(t, systems.MoveEnemy(enemy, obj, epoch.Add(50*time.Millisecond)))
	// speed 1 * 50ms * rate 0.08
	assert.InDelta(t, 496.0, obj.X, 1e-9)
}

func TestCoverCycle(t *testing.T) {
	enemy, obj := newMover(config.PatternCover, 500)
	systems.MoveEnemy(enemy, obj, epoch)

	now := runUntil(enemy, obj, epoch, 5*time.Second, func() bool { return enemy.Phase == 1 })
	require.Equal(t, 1, enemy.Phase)
	assert.Equal(t, 440.0, obj.X, "clamped to origin - offset")
	holdStart := now

	// Holds for the full dwell
	for now.Sub(holdStart) < 2*time.Second-step {
		now = now.Add(step)
		systems.MoveEnemy(enemy, obj, now)
		require.Equal(t, 1, enemy.Phase, "left cover after %v", now.Sub(holdStart))
		require.Equal(t, 440.0, obj.X)
	}

	now = now.Add(step)
	systems.MoveEnemy(enemy, obj, now)
	assert.Equal(t, 2, enemy.Phase)

	runUntil(enemy, obj, now, 5*time.Second, func() bool { return enemy.Phase == 0 })
	assert.Equal(t, 0, enemy.Phase)
	assert.Equal(t, 500.0, obj.X, "clamped back to origin")
}

func TestAdvanceCycle(t *testing.T) {
	enemy, obj := newMover(config.PatternAdvance, 500)
	systems.MoveEnemy(enemy, obj, epoch)

	now := runUntil(enemy, obj, epoch, 10*time.Second, func() bool { return enemy.Phase == 1 })
	require.Equal(t, 1, enemy.Phase)
	assert.Equal(t, 400.0, obj.X)

	held := runUntil(enemy, obj, now, 5*time.Second, func() bool { return enemy.Phase == 2 })
	assert.Equal(t, 1500*time.Millisecond, held.Sub(now))
}

func TestStrafeVisitsBothEnds(t *testing.T) {
	enemy, obj := newMover(config.PatternStrafe, 500)
	systems.MoveEnemy(enemy, obj, epoch)

	now := runUntil(enemy, obj, epoch, 5*time.Second, func() bool { return enemy.Phase == 1 })
	require.Equal(t, 1, enemy.Phase)
	assert.Equal(t, 420.0, obj.X)

	now = runUntil(enemy, obj, now, 5*time.Second, func() bool { return enemy.Phase == 3 })
	require.Equal(t, 3, enemy.Phase)
	assert.Equal(t, 580.0, obj.X)

	held := runUntil(enemy, obj, now, 5*time.Second, func() bool { return enemy.Phase == 0 })
	assert.Equal(t, time.Second, held.Sub(now))
}

func TestPatrolFlipsAtBound(t *testing.T) {
	enemy, obj := newMover(config.PatternPatrol, 500)
	obj.X = 619.99
	systems.MoveEnemy(enemy, obj, epoch)

	require.True(t, systems.MoveEnemy(enemy, obj, epoch.Add(step)))
	assert.Equal(t, -1.0, enemy.Direction)
	assert.Equal(t, 619.99, obj.X, "no motion on the flip step")

	systems.MoveEnemy(enemy, obj, epoch.Add(2*step))
	assert.Less(t, obj.X, 619.99)
}

func TestPatrolStaysInBounds(t *testing.T) {
	enemy, obj := newMover(config.PatternPatrol, 500)
	systems.MoveEnemy(enemy, obj, epoch)

	now := epoch
	for i := 0; i < 2000; i++ {
		now = now.Add(step)
		systems.MoveEnemy(enemy, obj, now)
		require.InDelta(t, 500.0, obj.X, 120.0)
	}
}

func TestDeadTargetsDoNotMove(t *testing.T) {
	enemy, obj := newMover(config.PatternCover, 500)
	systems.MoveEnemy(enemy, obj, epoch)
	enemy.Slot = config.SlotFalling

	assert.False(t, systems.MoveEnemy(enemy, obj, epoch.Add(time.Second)))
	assert.Equal(t, 500.0, obj.X)
}

func TestMovementIsDeterministic(t *testing.T) {
	positions := func() []float64 {
		e := ecs.NewECS(donburi.NewWorld())
		factory.CreateLevel(e, levelsOf(spreadLevel(5)), 0, rand.New(rand.NewSource(42)))
		systems.SetReady(e, true)

		now := epoch
		for i := 0; i < 300; i++ {
			setFrame(e, now)
			systems.UpdateEnemies(e)
			now = now.Add(16 * time.Millisecond)
		}

		var xs []float64
		for _, entry := range systems.Roster(e) {
			xs = append(xs, components.Object.Get(entry).X)
		}
		return xs
	}

	assert.Equal(t, positions(), positions())
}

func TestPatternsFollowTheCycle(t *testing.T) {
	e := newWorld(t, spreadLevel(7))

	want := []config.Pattern{
		config.PatternPatrol, config.PatternCover, config.PatternAdvance,
		config.PatternStrafe, config.PatternCover, config.PatternPatrol, config.PatternCover,
	}
	for i, entry := range systems.Roster(e) {
		enemy := components.Enemy.Get(entry)
		assert.Equal(t, want[i], enemy.Pattern, "slot %d", i)
		assert.GreaterOrEqual(t, enemy.Speed, 0.5)
		assert.Less(t, enemy.Speed, 1.0)
		assert.Contains(t, []float64{-1, 1}, enemy.Direction)
	}
}
