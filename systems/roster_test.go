package systems_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automoto/tacdrill/components"
	"github.com/automoto/tacdrill/config"
	"github.com/automoto/tacdrill/systems"
)

func TestHitTestHalfOpenBounds(t *testing.T) {
	e := newWorld(t, spreadLevel(1))

	tests := []struct {
		name string
		x, y float64
		hit  bool
	}{
		{"top left corner", 100, 300, true},
		{"inside", 200, 400, true},
		{"just inside far corner", 299.99, 499.99, true},
		{"right edge", 300, 400, false},
		{"bottom edge", 200, 500, false},
		{"left of box", 99.99, 400, false},
		{"above box", 200, 299.99, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := systems.HitTest(e, tt.x, tt.y)
			assert.Equal(t, tt.hit, ok)
		})
	}
}

func TestHitTestOverlapPrefersRosterOrder(t *testing.T) {
	e := newWorld(t, trainingLevel())

	// 375 lies in both target 0 [100,400) and target 1 [350,650)
	entry, ok := systems.HitTest(e, 375, 500)
	require.True(t, ok)
	assert.Equal(t, 0, components.Enemy.Get(entry).ID)

	require.True(t, systems.Kill(e, 0, epoch))

	entry, ok = systems.HitTest(e, 375, 500)
	require.True(t, ok)
	assert.Equal(t, 1, components.Enemy.Get(entry).ID, "dead targets are not hittable")
}

func TestKillChangesLivenessOnce(t *testing.T) {
	e := newWorld(t, spreadLevel(3))
	require.Equal(t, 3, systems.LiveCount(e))

	assert.True(t, systems.Kill(e, 1, epoch))
	assert.False(t, systems.Kill(e, 1, epoch), "second kill is a no-op")
	assert.False(t, systems.Kill(e, 7, epoch), "unknown slot")
	assert.Equal(t, 2, systems.LiveCount(e))

	entry, ok := systems.EnemyByID(e, 1)
	require.True(t, ok)
	assert.Equal(t, config.SlotFalling, components.Enemy.Get(entry).Slot)
	require.True(t, entry.HasComponent(components.Falling))
	assert.Equal(t, epoch, components.Falling.Get(entry).Started)
}

func TestOverlappingTargets(t *testing.T) {
	e := newWorld(t, trainingLevel())
	assert.Equal(t, [][2]int{{0, 1}, {3, 4}}, systems.OverlappingTargets(e))

	spread := newWorld(t, spreadLevel(5))
	assert.Empty(t, systems.OverlappingTargets(spread))
}

func TestRosterKeepsEveryTarget(t *testing.T) {
	e := newWorld(t, spreadLevel(4))
	require.True(t, systems.Kill(e, 2, epoch))

	setFrame(e, epoch.Add(config.Fall.Window))
	systems.UpdateDeaths(e)

	roster := systems.Roster(e)
	require.Len(t, roster, 4)
	for i, entry := range roster {
		assert.Equal(t, i, components.Enemy.Get(entry).ID)
	}
	assert.Equal(t, config.SlotGone, components.Enemy.Get(roster[2]).Slot)
}
