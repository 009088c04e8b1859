// Package sim plays levels headlessly with a scripted bot on a manual clock,
// as fast as the machine allows.
package sim

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/automoto/tacdrill/assets"
	"github.com/automoto/tacdrill/clock"
	cfg "github.com/automoto/tacdrill/config"
	"github.com/automoto/tacdrill/core"
	"github.com/automoto/tacdrill/systems"
	"github.com/automoto/tacdrill/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Start of simulated time. Runs with the same seed replay exactly.
var epoch = time.Date(2024, time.January, 1, 12, 0, 0, 0, time.UTC)

type Options struct {
	Accuracy float64       // chance the bot answers correctly
	Duration time.Duration // simulated time limit
	Seed     int64
}

// Report summarises one headless attempt
type Report struct {
	Level   string
	Outcome cfg.OutcomeKind
	Score   int
	Health  int
	Shots   int
	Correct int
	Wrong   int
	Ticks   uint64
	Elapsed time.Duration
}

func (r Report) String() string {
	outcome := "timed out"
	switch r.Outcome {
	case cfg.OutcomeGameOver:
		outcome = "game over"
	case cfg.OutcomeMissionComplete:
		outcome = "mission complete"
	}
	return fmt.Sprintf("%s: %s score=%d health=%d shots=%d correct=%d wrong=%d ticks=%d elapsed=%s",
		r.Level, outcome, r.Score, r.Health, r.Shots, r.Correct, r.Wrong, r.Ticks, r.Elapsed)
}

type outcomes struct {
	loop    *core.Loop
	kind    cfg.OutcomeKind
	score   int
	decided time.Time
	clock   clock.Clock
}

func (o *outcomes) OnGameOver(score int) {
	o.record(cfg.OutcomeGameOver, score)
}

func (o *outcomes) OnMissionComplete(score int) {
	o.record(cfg.OutcomeMissionComplete, score)
}

func (o *outcomes) record(kind cfg.OutcomeKind, score int) {
	o.kind, o.score, o.decided = kind, score, o.clock.Now()
	o.loop.Stop()
}

// Run plays levels[index] until it is decided or opts.Duration of simulated
// time has passed.
func Run(ctx context.Context, levels []assets.Level, index int, opts Options) (Report, error) {
	if index < 0 || index >= len(levels) {
		return Report{}, fmt.Errorf("level index %d: %w", index, assets.ErrUnknownLevel)
	}

	world := ecs.NewECS(donburi.NewWorld())
	clk := clock.NewManual(epoch)
	rng := rand.New(rand.NewSource(opts.Seed))

	factory.CreateLevel(world, levels, index, rng)
	systems.SetReady(world, true)

	bot := systems.NewBot(clk, rand.New(rand.NewSource(opts.Seed+1)), opts.Accuracy)
	listener := &outcomes{clock: clk}
	resolver := systems.NewResolver(clk, rng, bot, listener)
	bot.Attach(resolver)

	scheduler := core.NewScheduler(world, clk, resolver)
	world.AddSystem(bot.Update)

	loop := core.NewLoop(world, scheduler, cfg.C.TickRate)
	listener.loop = loop

	step := time.Second / time.Duration(cfg.C.TickRate)
	ticks := int(opts.Duration / step)
	if err := loop.RunFixed(ctx, clk, step, ticks); err != nil {
		return Report{}, fmt.Errorf("simulate level %d: %w", levels[index].ID, err)
	}

	session := systems.GetOrCreateSession(world)
	report := Report{
		Level:   levels[index].Name,
		Outcome: listener.kind,
		Score:   session.Score,
		Health:  session.Health,
		Shots:   bot.Shots,
		Correct: bot.Correct,
		Wrong:   bot.Wrong,
		Ticks:   systems.GetOrCreateFrame(world).Tick,
		Elapsed: clk.Now().Sub(epoch),
	}
	if listener.kind != cfg.OutcomeNone {
		report.Score = listener.score
		report.Elapsed = listener.decided.Sub(epoch)
	}
	return report, nil
}
