package sim

import (
	"context"
	"testing"
	"time"

	"github.com/automoto/tacdrill/assets"
	cfg "github.com/automoto/tacdrill/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadLevels(t *testing.T) []assets.Level {
	t.Helper()
	levels, err := assets.NewLevelLoader().LoadAll()
	require.NoError(t, err)
	require.NotEmpty(t, levels)
	return levels
}

func TestPerfectRunCompletesMission(t *testing.T) {
	levels := loadLevels(t)

	report, err := Run(context.Background(), levels, 0, Options{
		Accuracy: 1,
		Duration: time.Minute,
		Seed:     7,
	})
	require.NoError(t, err)

	total := len(levels[0].Questions)
	assert.Equal(t, cfg.OutcomeMissionComplete, report.Outcome)
	assert.Equal(t, total, report.Score)
	assert.Equal(t, total, report.Correct)
	assert.Zero(t, report.Wrong)
	assert.Equal(t, cfg.Combat.MaxHealth, report.Health)
	assert.Less(t, report.Elapsed, time.Minute)
}

func TestFirstWrongAnswerEndsRun(t *testing.T) {
	levels := loadLevels(t)

	report, err := Run(context.Background(), levels, 1, Options{
		Accuracy: 0,
		Duration: time.Minute,
		Seed:     7,
	})
	require.NoError(t, err)

	assert.Equal(t, cfg.OutcomeGameOver, report.Outcome)
	assert.Zero(t, report.Score)
	assert.Equal(t, 1, report.Shots)
	assert.Equal(t, 1, report.Wrong)
	assert.Equal(t, cfg.Combat.MaxHealth, report.Health)
}

func TestRunsReplayWithSameSeed(t *testing.T) {
	levels := loadLevels(t)
	opts := Options{Accuracy: 0.7, Duration: 30 * time.Second, Seed: 99}

	first, err := Run(context.Background(), levels, 2, opts)
	require.NoError(t, err)
	second, err := Run(context.Background(), levels, 2, opts)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRunTimesOut(t *testing.T) {
	levels := loadLevels(t)

	// Too short for the first answer to land
	report, err := Run(context.Background(), levels, 0, Options{
		Accuracy: 1,
		Duration: 100 * time.Millisecond,
		Seed:     1,
	})
	require.NoError(t, err)

	assert.Equal(t, cfg.OutcomeNone, report.Outcome)
	assert.Zero(t, report.Score)
	assert.Equal(t, 1, report.Shots)
	assert.Contains(t, report.String(), "timed out")
}

func TestRunRejectsUnknownLevel(t *testing.T) {
	_, err := Run(context.Background(), loadLevels(t), 42, Options{Duration: time.Second})
	assert.ErrorIs(t, err, assets.ErrUnknownLevel)
}

func TestRunStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, loadLevels(t), 0, Options{Accuracy: 1, Duration: time.Minute})
	assert.ErrorIs(t, err, context.Canceled)
}
