// Package tui is a terminal front end for the drill. Mouse clicks aim and
// fire, number keys answer questions.
package tui

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"strings"

	"github.com/automoto/tacdrill/assets"
	"github.com/automoto/tacdrill/clock"
	cfg "github.com/automoto/tacdrill/config"
	"github.com/automoto/tacdrill/core"
	"github.com/automoto/tacdrill/systems"
	"github.com/automoto/tacdrill/systems/factory"
	"github.com/gdamore/tcell/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ErrQuit is returned when the player leaves before the campaign ends
var ErrQuit = errors.New("player quit")

// Result is the outcome of one level attempt
type Result struct {
	Outcome cfg.OutcomeKind
	Score   int
	Quit    bool
}

// App runs levels on a tcell screen
type App struct {
	screen tcell.Screen
	events chan tcell.Event
	seed   func() int64

	// Owned by the simulation goroutine while a level runs
	loop   *core.Loop
	prompt *Prompt
	result Result

	// Owned by the event forwarding goroutine
	mouseDown bool
}

// NewApp takes an initialised screen. seed supplies the seed of each attempt.
func NewApp(screen tcell.Screen, seed func() int64) *App {
	return &App{
		screen: screen,
		events: make(chan tcell.Event, 32),
		seed:   seed,
	}
}

// Run plays the campaign from start until the player quits, fails a level
// or finishes the last one.
func (a *App) Run(ctx context.Context, levels []assets.Level, start int) error {
	a.screen.EnableMouse()
	go a.poll()

	rank := 0
	for index := start; index < len(levels); {
		level := &levels[index]
		if !a.waitKey(ctx, a.briefing(level, rank)) {
			return ErrQuit
		}

		result, err := a.Play(ctx, levels, index)
		if err != nil {
			return err
		}
		if result.Quit {
			return ErrQuit
		}

		lines := []string{level.Name}
		switch result.Outcome {
		case cfg.OutcomeGameOver:
			lines = append(lines, "MISSION FAILED", fmt.Sprintf("SCORE: %d", result.Score))
		case cfg.OutcomeMissionComplete:
			var promoted bool
			rank, promoted = systems.Promote(rank, result.Score, level.PassScore)
			lines = append(lines,
				"MISSION COMPLETE",
				fmt.Sprintf("SCORE: %d / %d", result.Score, len(level.Questions)),
				fmt.Sprintf("GRADE: %s", systems.Grade(result.Score, len(level.Questions))),
			)
			if promoted {
				lines = append(lines, fmt.Sprintf("PROMOTED TO %s", systems.RankName(rank)))
			}
			index++
		}
		lines = append(lines, "", "Enter: Continue   Q: Quit")
		if !a.waitKey(ctx, lines) {
			return ErrQuit
		}
	}
	log.Printf("Campaign complete at rank %s", systems.RankName(rank))
	return nil
}

// Play runs one attempt of levels[index] until it is decided or the player
// quits.
func (a *App) Play(ctx context.Context, levels []assets.Level, index int) (Result, error) {
	world := ecs.NewECS(donburi.NewWorld())
	clk := clock.New()
	rng := newRand(a.seed())

	factory.CreateLevel(world, levels, index, rng)
	systems.SetReady(world, true)

	a.prompt = NewPrompt()
	a.result = Result{}
	resolver := systems.NewResolver(clk, rng, a.prompt, a)
	scheduler := core.NewScheduler(world, clk, resolver)
	scheduler.SetRenderer(NewRenderer(a.screen, &levels[index], index, len(levels), a.prompt).Render)
	a.loop = core.NewLoop(world, scheduler, cfg.C.TickRate)

	ctx, cancel := context.WithCancel(ctx)
	forwarded := make(chan struct{})
	go func() {
		defer close(forwarded)
		a.forward(ctx, resolver)
	}()

	err := a.loop.Run(ctx)
	cancel()
	<-forwarded
	if err != nil {
		return Result{}, fmt.Errorf("level %d: %w", levels[index].ID, err)
	}
	return a.result, nil
}

func (a *App) OnGameOver(score int) {
	a.result = Result{Outcome: cfg.OutcomeGameOver, Score: score}
	a.loop.Stop()
}

func (a *App) OnMissionComplete(score int) {
	a.result = Result{Outcome: cfg.OutcomeMissionComplete, Score: score}
	a.loop.Stop()
}

// poll feeds terminal events to whoever is listening. PollEvent returns nil
// once the screen is finalised.
func (a *App) poll() {
	for {
		ev := a.screen.PollEvent()
		if ev == nil {
			close(a.events)
			return
		}
		a.events <- ev
	}
}

// forward turns terminal events into loop commands until ctx is done
func (a *App) forward(ctx context.Context, resolver *systems.Resolver) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-a.events:
			if !ok {
				a.loop.Submit(a.quit)
				return
			}
			if cmd := a.command(ev, resolver); cmd != nil {
				if !a.loop.Submit(cmd) {
					return
				}
			}
		}
	}
}

// command maps one event to the work it causes in the simulation
func (a *App) command(ev tcell.Event, resolver *systems.Resolver) core.Command {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.keyCommand(ev.Key(), ev.Rune())
	case *tcell.EventMouse:
		cols, rows := a.screen.Size()
		col, row := ev.Position()
		pressed := ev.Buttons()&tcell.Button1 != 0
		clicked := pressed && !a.mouseDown
		a.mouseDown = pressed
		x, y := cellToScene(col, row, cols, rows)
		return func(e *ecs.ECS) {
			systems.MoveAim(e, x, y)
			if clicked && !a.prompt.IsOpen() {
				resolver.Engage(e, x, y)
			}
		}
	case *tcell.EventResize:
		a.screen.Sync()
	}
	return nil
}

func (a *App) keyCommand(key tcell.Key, ch rune) core.Command {
	switch key {
	case tcell.KeyCtrlC:
		return a.quit
	case tcell.KeyEnter:
		return func(*ecs.ECS) { a.prompt.Confirm() }
	case tcell.KeyEscape:
		return func(e *ecs.ECS) {
			if a.prompt.IsOpen() {
				a.prompt.Cancel()
				return
			}
			a.quit(e)
		}
	case tcell.KeyRune:
		switch {
		case ch >= '1' && ch <= '4':
			choice := int(ch - '1')
			return func(*ecs.ECS) { a.prompt.Choose(choice) }
		case ch == 'q' || ch == 'Q':
			return func(e *ecs.ECS) {
				if !a.prompt.IsOpen() {
					a.quit(e)
				}
			}
		}
	}
	return nil
}

func (a *App) quit(*ecs.ECS) {
	a.result.Quit = true
	a.loop.Stop()
}

func (a *App) briefing(level *assets.Level, rank int) []string {
	return []string{
		cfg.Menu.Title,
		level.Name,
		fmt.Sprintf("RANK: %s", systems.RankName(rank)),
		"",
		level.Briefing,
		"",
		"Enter: Start Mission   Q: Quit",
	}
}

// waitKey shows lines centred on the screen until Enter (true) or a quit
// key (false)
func (a *App) waitKey(ctx context.Context, lines []string) bool {
	for {
		a.drawCentered(lines)
		select {
		case <-ctx.Done():
			return false
		case ev, ok := <-a.events:
			if !ok {
				return false
			}
			key, isKey := ev.(*tcell.EventKey)
			if !isKey {
				continue
			}
			switch {
			case key.Key() == tcell.KeyEnter:
				return true
			case key.Key() == tcell.KeyEscape, key.Key() == tcell.KeyCtrlC,
				key.Key() == tcell.KeyRune && (key.Rune() == 'q' || key.Rune() == 'Q'):
				return false
			}
		}
	}
}

func (a *App) drawCentered(lines []string) {
	a.screen.Clear()
	cols, rows := a.screen.Size()

	var wrapped []string
	for _, line := range lines {
		if line == "" {
			wrapped = append(wrapped, "")
			continue
		}
		wrapped = append(wrapped, wrap(line, cols-4)...)
	}

	top := (rows - len(wrapped)) / 2
	for i, line := range wrapped {
		x := (cols - len([]rune(line))) / 2
		for _, ch := range line {
			a.screen.SetContent(x, top+i, ch, nil, styleDefault)
			x++
		}
	}
	a.screen.Show()
}

func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// wrap breaks s at spaces into lines of at most width runes
func wrap(s string, width int) []string {
	words := strings.Fields(s)
	if len(words) == 0 || width <= 0 {
		return []string{s}
	}
	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if len([]rune(line))+1+len([]rune(w)) > width {
			lines = append(lines, line)
			line = w
			continue
		}
		line += " " + w
	}
	return append(lines, line)
}
