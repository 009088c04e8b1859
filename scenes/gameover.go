package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/tacdrill/components"
	cfg "github.com/automoto/tacdrill/config"
	"github.com/automoto/tacdrill/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ResultScene reports a finished level attempt
type ResultScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	campaign     *Campaign
	outcome      cfg.OutcomeKind
	score        int
	once         sync.Once
}

func NewResultScene(sc SceneChanger, campaign *Campaign, outcome cfg.OutcomeKind, score int) *ResultScene {
	return &ResultScene{sceneChanger: sc, campaign: campaign, outcome: outcome, score: score}
}

func (rs *ResultScene) Update() {
	rs.once.Do(rs.configure)
	rs.ecs.Update()
}

func (rs *ResultScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if rs.ecs == nil {
		return
	}
	rs.ecs.Draw(screen)
}

func (rs *ResultScene) configure() {
	rs.ecs = ecs.NewECS(donburi.NewWorld())

	result := systems.GetOrCreateResult(rs.ecs)
	*result = rs.settle()

	// Swallow the press that ended the battle
	systems.UpdateInput(rs.ecs)

	rs.ecs.AddSystem(systems.UpdateInput)
	rs.ecs.AddSystem(systems.NewUpdateResult(rs.choose))

	rs.ecs.AddRenderer(cfg.Default, systems.DrawResult)
}

// settle applies the attempt to the campaign and builds the screen state
func (rs *ResultScene) settle() components.ResultData {
	level := rs.campaign.Level()
	result := components.ResultData{
		Outcome:   rs.outcome,
		LevelName: level.Name,
		Score:     rs.score,
		Total:     len(level.Questions),
	}

	if rs.outcome == cfg.OutcomeGameOver {
		result.Options = cfg.Result.GameOverOptions
		result.Rank = systems.RankName(rs.campaign.Rank)
		return result
	}

	result.Grade = systems.Grade(rs.score, result.Total)
	rs.campaign.Rank, result.Promoted = systems.Promote(rs.campaign.Rank, rs.score, level.PassScore)
	result.Rank = systems.RankName(rs.campaign.Rank)
	result.CampaignFinish = rs.campaign.Last()
	result.Options = cfg.Result.CompleteOptions
	return result
}

func (rs *ResultScene) choose(option string) {
	switch option {
	case "NEXT MISSION":
		rs.campaign.Advance()
		rs.sceneChanger.ChangeScene(NewBriefingScene(rs.sceneChanger, rs.campaign))
	case "REPLAY", "RETRY":
		rs.sceneChanger.ChangeScene(NewBattleScene(rs.sceneChanger, rs.campaign))
	default:
		rs.sceneChanger.ChangeScene(NewBriefingScene(rs.sceneChanger, rs.campaign))
	}
}
