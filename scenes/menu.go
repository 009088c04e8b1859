package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/tacdrill/config"
	"github.com/automoto/tacdrill/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// BriefingScene shows the mission briefing before each level
type BriefingScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	campaign     *Campaign
	once         sync.Once
}

func NewBriefingScene(sc SceneChanger, campaign *Campaign) *BriefingScene {
	return &BriefingScene{sceneChanger: sc, campaign: campaign}
}

func (bs *BriefingScene) Update() {
	bs.once.Do(bs.configure)
	bs.ecs.Update()
}

func (bs *BriefingScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if bs.ecs == nil {
		return
	}
	bs.ecs.Draw(screen)
}

func (bs *BriefingScene) configure() {
	bs.ecs = ecs.NewECS(donburi.NewWorld())

	level := bs.campaign.Level()
	menu := systems.GetOrCreateMenu(bs.ecs)
	menu.LevelName = level.Name
	menu.Briefing = level.Briefing
	menu.Rank = systems.RankName(bs.campaign.Rank)

	// Swallow the press that opened this screen
	systems.UpdateInput(bs.ecs)

	onStart := func() {
		bs.sceneChanger.ChangeScene(NewBattleScene(bs.sceneChanger, bs.campaign))
	}
	onExit := func() {
		bs.sceneChanger.Exit()
	}

	bs.ecs.AddSystem(systems.UpdateInput)
	bs.ecs.AddSystem(systems.NewUpdateMenu(onStart, onExit))

	bs.ecs.AddRenderer(cfg.Default, systems.DrawMenu)
}
