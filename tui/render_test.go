package tui

import (
	"strings"
	"testing"

	"github.com/automoto/tacdrill/assets"
	cfg "github.com/automoto/tacdrill/config"
	"github.com/automoto/tacdrill/systems"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(80, 24)
	t.Cleanup(screen.Fini)
	return screen
}

func row(screen tcell.Screen, y int) string {
	cols, _ := screen.Size()
	var b strings.Builder
	for x := 0; x < cols; x++ {
		ch, _, _, _ := screen.GetContent(x, y)
		b.WriteRune(ch)
	}
	return b.String()
}

func battleView() systems.FrameView {
	return systems.FrameView{
		Ready:     true,
		Score:     3,
		Health:    75,
		MaxHealth: 100,
		Live:      2,
		AimX:      24,
		AimY:      1035,
		Entities: []systems.EntityView{
			{ID: 0, X: 960, Y: 540, W: 240, H: 108, Slot: cfg.SlotAlive},
			{ID: 1, X: 0, Y: 540, W: 240, H: 108, Slot: cfg.SlotGone},
		},
	}
}

func TestRenderBattle(t *testing.T) {
	screen := newScreen(t)
	level := &assets.Level{Name: "Tactical Training"}
	r := NewRenderer(screen, level, 0, 3, NewPrompt())

	r.Render(battleView())

	status := row(screen, 0)
	assert.Contains(t, status, "SCORE 3")
	assert.Contains(t, status, "HEALTH 75/100")
	assert.Contains(t, status, "TARGETS 2")
	assert.Contains(t, status, "LEVEL 1/3 Tactical Training")

	ch, _, _, _ := screen.GetContent(45, 13)
	assert.Equal(t, '█', ch)

	// Gone targets are not drawn
	ch, _, _, _ = screen.GetContent(5, 13)
	assert.Equal(t, ' ', ch)

	ch, _, _, _ = screen.GetContent(1, 23)
	assert.Equal(t, '+', ch)
}

func TestRenderNotReadyDrawsNothing(t *testing.T) {
	screen := newScreen(t)
	r := NewRenderer(screen, &assets.Level{Name: "Urban Combat"}, 1, 3, NewPrompt())

	r.Render(systems.FrameView{})

	assert.NotContains(t, row(screen, 0), "SCORE")
}

func TestRenderPrompt(t *testing.T) {
	screen := newScreen(t)
	prompt := NewPrompt()
	r := NewRenderer(screen, &assets.Level{Name: "Night Operations"}, 2, 3, prompt)

	prompt.Open(drillQuestion, func(systems.Answer) {})
	prompt.Choose(1)

	v := battleView()
	q := drillQuestion
	v.Question = &q
	r.Render(v)

	var screenText strings.Builder
	for y := 0; y < 24; y++ {
		screenText.WriteString(row(screen, y))
		screenText.WriteByte('\n')
	}
	out := screenText.String()
	assert.Contains(t, out, "TARGET ENGAGED")
	assert.Contains(t, out, "Which signal means move out?")
	assert.Contains(t, out, "[x] 2. Point forward")
	assert.Contains(t, out, "[ ] 1. Fist")
}

func TestCellToScene(t *testing.T) {
	x, y := cellToScene(0, 0, 80, 24)
	assert.InDelta(t, 12, x, 1e-9)
	assert.InDelta(t, 22.5, y, 1e-9)

	x, y = cellToScene(79, 23, 80, 24)
	assert.InDelta(t, 1908, x, 1e-9)
	assert.InDelta(t, 1057.5, y, 1e-9)
}
