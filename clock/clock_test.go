package clock_test

import (
	"testing"
	"time"

	"github.com/automoto/tacdrill/clock"
	"github.com/stretchr/testify/assert"
)

func TestManualAdvance(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c := clock.NewManual(start)

	assert.Equal(t, start, c.Now())

	c.Advance(250 * time.Millisecond)
	assert.Equal(t, start.Add(250*time.Millisecond), c.Now())

	later := start.Add(time.Hour)
	c.Set(later)
	assert.Equal(t, later, c.Now())
}

func TestRealIsMonotonic(t *testing.T) {
	c := clock.New()
	a := c.Now()
	b := c.Now()
	assert.False(t, b.Before(a))
}

func TestPausableHidesPausedTime(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	base := clock.NewManual(start)
	c := clock.NewPausable(base)

	base.Advance(time.Second)
	assert.Equal(t, start.Add(time.Second), c.Now())

	c.Pause()
	assert.True(t, c.Paused())
	base.Advance(5 * time.Second)
	assert.Equal(t, start.Add(time.Second), c.Now())

	c.Resume()
	assert.False(t, c.Paused())
	assert.Equal(t, start.Add(time.Second), c.Now())

	base.Advance(time.Second)
	assert.Equal(t, start.Add(2*time.Second), c.Now())
}

func TestPausableIgnoresRepeatedCalls(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	base := clock.NewManual(start)
	c := clock.NewPausable(base)

	c.Pause()
	base.Advance(time.Second)
	c.Pause()
	base.Advance(time.Second)
	c.Resume()
	c.Resume()

	assert.Equal(t, start, c.Now())
}
