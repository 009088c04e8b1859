package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/tacdrill/assets"
	"github.com/automoto/tacdrill/clock"
	cfg "github.com/automoto/tacdrill/config"
	"github.com/automoto/tacdrill/core"
	"github.com/automoto/tacdrill/systems"
	"github.com/automoto/tacdrill/systems/factory"
	"github.com/automoto/tacdrill/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// BattleScene plays one level attempt in the window
type BattleScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	campaign     *Campaign
	once         sync.Once

	clock     *clock.Pausable
	resolver  *systems.Resolver
	scheduler *core.Scheduler
	dialog    *ui.QuestionDialog
	pause     ecs.System
	images    *systems.ImageRetry
	done      bool
}

func NewBattleScene(sc SceneChanger, campaign *Campaign) *BattleScene {
	return &BattleScene{sceneChanger: sc, campaign: campaign}
}

// Update polls input, routes it to the dialog or the resolver and then runs
// one simulation tick.
func (bs *BattleScene) Update() {
	bs.once.Do(bs.configure)

	systems.UpdateInput(bs.ecs)
	bs.pause(bs.ecs)

	if systems.GetOrCreatePause(bs.ecs).Abort {
		bs.leave(NewBriefingScene(bs.sceneChanger, bs.campaign))
		return
	}

	if err := bs.images.Poll(bs.ecs); err != nil {
		log.Printf("Error: %v", err)
		bs.leave(NewBriefingScene(bs.sceneChanger, bs.campaign))
		return
	}

	if !systems.IsPaused(bs.ecs) {
		bs.handleInput()
		bs.dialog.Update()
	}

	bs.scheduler.Tick()
}

func (bs *BattleScene) handleInput() {
	input := systems.GetOrCreateInput(bs.ecs)
	x, y := systems.CursorScene(input)
	systems.MoveAim(bs.ecs, x, y)

	if bs.dialog.IsOpen() {
		if choice := systems.AnswerChoice(input); choice >= 0 {
			bs.dialog.Choose(choice)
		}
		if systems.GetAction(input, cfg.ActionConfirm).JustPressed {
			bs.dialog.Confirm()
		} else if systems.GetAction(input, cfg.ActionCancel).JustPressed {
			bs.dialog.Cancel()
		}
		return
	}

	if systems.GetAction(input, cfg.ActionFire).JustPressed {
		bs.resolver.Engage(bs.ecs, x, y)
	}
}

func (bs *BattleScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if bs.ecs == nil {
		return
	}
	bs.ecs.Draw(screen)
	bs.dialog.Draw(screen)
}

// OnGameOver is called by the resolver when a wrong answer finds no score
func (bs *BattleScene) OnGameOver(score int) {
	bs.leave(NewResultScene(bs.sceneChanger, bs.campaign, cfg.OutcomeGameOver, score))
}

// OnMissionComplete is called by the resolver once every target is down
func (bs *BattleScene) OnMissionComplete(score int) {
	bs.leave(NewResultScene(bs.sceneChanger, bs.campaign, cfg.OutcomeMissionComplete, score))
}

func (bs *BattleScene) leave(next Scene) {
	if bs.done {
		return
	}
	bs.done = true
	bs.scheduler.Stop()
	bs.dialog.Close()
	bs.sceneChanger.ChangeScene(next)
}

func (bs *BattleScene) configure() {
	bs.ecs = ecs.NewECS(donburi.NewWorld())
	bs.clock = clock.NewPausable(clock.New())

	rng := NewRand()
	factory.CreateLevel(bs.ecs, bs.campaign.Levels, bs.campaign.Index, rng)

	bs.dialog = ui.NewQuestionDialog()
	bs.resolver = systems.NewResolver(bs.clock, rng, bs.dialog, bs)
	bs.scheduler = core.NewScheduler(bs.ecs, bs.clock, bs.resolver)
	bs.pause = systems.NewUpdatePause(bs.clock)

	// Swallow the click that started the mission
	systems.UpdateInput(bs.ecs)

	bs.ecs.AddRenderer(cfg.Default, systems.DrawBattle)
	bs.ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	bs.ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	bs.ecs.AddRenderer(cfg.Default, systems.DrawPause)

	// Ticks wait until the first successful load in Update
	bs.images = systems.NewImageRetry(clock.New(), assets.NewImageLoader())

	bs.scheduler.Start()
}
