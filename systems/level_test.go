package systems_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/tacdrill/assets"
	"github.com/automoto/tacdrill/clock"
	"github.com/automoto/tacdrill/systems"
	"github.com/automoto/tacdrill/systems/factory"
)

func TestImageRetryGivesUpWhileNotReady(t *testing.T) {
	level := spreadLevel(2)
	level.Background = "no-such-backdrop"
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateLevel(e, levelsOf(level), 0, rand.New(rand.NewSource(1)))

	clk := clock.NewManual(epoch)
	retry := systems.NewImageRetry(clk, assets.NewImageLoader())

	require.NoError(t, retry.Poll(e))
	assert.Equal(t, 1, retry.Tries())
	assert.False(t, systems.IsReady(e))

	clk.Advance(500 * time.Millisecond)
	require.NoError(t, retry.Poll(e))
	assert.Equal(t, 1, retry.Tries(), "not due yet")

	clk.Advance(500 * time.Millisecond)
	require.NoError(t, retry.Poll(e))
	assert.Equal(t, 2, retry.Tries())

	clk.Advance(time.Second)
	err := retry.Poll(e)
	assert.ErrorIs(t, err, systems.ErrImagesUnavailable)
	assert.Equal(t, 3, retry.Tries())
	assert.False(t, systems.IsReady(e))

	clk.Advance(time.Minute)
	assert.ErrorIs(t, retry.Poll(e), systems.ErrImagesUnavailable)
	assert.Equal(t, 3, retry.Tries(), "no attempts after giving up")
}

func TestImageRetryIdleOnceReady(t *testing.T) {
	e := newWorld(t, spreadLevel(2))
	systems.CurrentLevel(e).CurrentLevel.Background = "no-such-backdrop"
	retry := systems.NewImageRetry(clock.NewManual(epoch), assets.NewImageLoader())

	assert.NoError(t, retry.Poll(e))
	assert.Zero(t, retry.Tries())
}

func TestCreateLevelRejectsRosterMismatch(t *testing.T) {
	level := spreadLevel(3)
	level.Questions = level.Questions[:2]

	assert.PanicsWithError(t, "positions and questions differ in count: 3 positions, 2 questions", func() {
		factory.CreateLevel(ecs.NewECS(donburi.NewWorld()), levelsOf(level), 0, rand.New(rand.NewSource(1)))
	})
}

func TestCreateRosterRejectsRosterMismatch(t *testing.T) {
	level := spreadLevel(1)
	level.Positions = append(level.Positions, assets.Point{X: 900, Y: 300})

	assert.Panics(t, func() {
		factory.CreateRoster(ecs.NewECS(donburi.NewWorld()), &level, rand.New(rand.NewSource(1)))
	})
}
