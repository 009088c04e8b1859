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

var epoch = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func drillQuestions(n int) []assets.Question {
	qs := make([]assets.Question, n)
	for i := range qs {
		qs[i] = assets.Question{
			Text:    "Which signal means move out?",
			Options: []string{"Fist", "Wave forward", "Flat palm", "Thumbs down"},
			Correct: 1,
		}
	}
	return qs
}

// spreadLevel places n 200x200 targets far enough apart that none overlap
func spreadLevel(n int) assets.Level {
	positions := make([]assets.Point, n)
	for i := range positions {
		positions[i] = assets.Point{X: 100 + float64(i)*350, Y: 300}
	}
	return assets.Level{
		ID:           1,
		Name:         "Test Range",
		EntityWidth:  200,
		EntityHeight: 200,
		PassScore:    3,
		Positions:    positions,
		Questions:    drillQuestions(n),
	}
}

// trainingLevel mirrors the layout of the first shipped level
func trainingLevel() assets.Level {
	return assets.Level{
		ID:           1,
		Name:         "Tactical Training",
		EntityWidth:  300,
		EntityHeight: 440,
		PassScore:    3,
		Positions: []assets.Point{
			{X: 100, Y: 400},
			{X: 350, Y: 400},
			{X: 860, Y: 400},
			{X: 1370, Y: 400},
			{X: 1620, Y: 400},
		},
		Questions: drillQuestions(5),
	}
}

func levelsOf(levels ...assets.Level) []assets.Level {
	return levels
}

func newWorld(t *testing.T, level assets.Level) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateLevel(e, levelsOf(level), 0, rand.New(rand.NewSource(7)))
	systems.SetReady(e, true)
	return e
}

// setFrame moves the frame clock the way the scheduler does
func setFrame(e *ecs.ECS, now time.Time) {
	frame := systems.GetOrCreateFrame(e)
	frame.Delta = now.Sub(frame.Now)
	frame.Now = now
	frame.Tick++
}

func TestSingletonsAreCreatedOnce(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())

	a := systems.GetOrCreateSession(e)
	b := systems.GetOrCreateSession(e)
	assert.Same(t, a, b)
	assert.Equal(t, -1, a.Selected)
	assert.Equal(t, 100, a.Health)

	aim := systems.GetOrCreateAim(e)
	assert.Equal(t, 960.0, aim.X)
	assert.Equal(t, 540.0, aim.Y)

	assert.False(t, systems.IsReady(e))
	systems.SetReady(e, true)
	assert.True(t, systems.IsReady(e))
}

func TestNowFollowsFrame(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	clk := clock.NewManual(epoch)

	setFrame(e, clk.Now())
	require.Equal(t, epoch, systems.Now(e))

	clk.Advance(16 * time.Millisecond)
	setFrame(e, clk.Now())
	assert.Equal(t, epoch.Add(16*time.Millisecond), systems.Now(e))
	assert.Equal(t, 16*time.Millisecond, systems.GetOrCreateFrame(e).Delta)
}
