package systems

import (
	"fmt"

	"github.com/automoto/tacdrill/components"
	cfg "github.com/automoto/tacdrill/config"
	"github.com/automoto/tacdrill/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateResult creates the result screen system. onSelect receives the
// chosen option label.
func NewUpdateResult(onSelect func(option string)) ecs.System {
	return func(e *ecs.ECS) {
		result := GetOrCreateResult(e)
		input := GetOrCreateInput(e)

		// Navigate menu with wrap-around using modulo arithmetic
		numOptions := len(result.Options)
		if numOptions == 0 {
			return
		}
		if GetAction(input, cfg.ActionMenuUp).JustPressed {
			result.SelectedIndex = (result.SelectedIndex - 1 + numOptions) % numOptions
		}
		if GetAction(input, cfg.ActionMenuDown).JustPressed {
			result.SelectedIndex = (result.SelectedIndex + 1) % numOptions
		}

		if GetAction(input, cfg.ActionMenuSelect).JustPressed {
			onSelect(result.Options[result.SelectedIndex])
		}
	}
}

// DrawResult renders the mission complete or game over screen
func DrawResult(e *ecs.ECS, screen *ebiten.Image) {
	result := GetOrCreateResult(e)
	rc := cfg.Result

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(screen, 0, 0, float32(width), float32(height), rc.BackgroundColor, false)

	title, titleColor := "MISSION COMPLETE", rc.TitleColor
	if result.Outcome == cfg.OutcomeGameOver {
		title, titleColor = "MISSION FAILED", rc.FailColor
	} else if result.CampaignFinish {
		title = "CAMPAIGN COMPLETE"
	}
	text.Draw(screen, title, fonts.Title.Get(), centerX(width, fonts.Title, title), int(rc.TitleY), titleColor)

	lines := []string{result.LevelName}
	if result.Outcome == cfg.OutcomeGameOver {
		lines = append(lines, "A wrong answer with no score to spare.", fmt.Sprintf("RANK: %s", result.Rank))
	} else {
		lines = append(lines,
			fmt.Sprintf("SCORE: %d / %d", result.Score, result.Total),
			fmt.Sprintf("GRADE: %s", result.Grade),
		)
		if result.Promoted {
			lines = append(lines, fmt.Sprintf("PROMOTED TO %s", result.Rank))
		} else {
			lines = append(lines, fmt.Sprintf("RANK: %s", result.Rank))
		}
	}

	y := rc.ScoreY
	for _, line := range lines {
		text.Draw(screen, line, fonts.Bold.Get(), centerX(width, fonts.Bold, line), int(y), cfg.White)
		y += 56
	}

	for i, option := range result.Options {
		y := rc.MenuStartY + float64(i)*(rc.MenuItemHeight+rc.MenuItemGap)

		textColor := rc.TextColorNormal
		if i == result.SelectedIndex {
			textColor = rc.TextColorSelected
		}
		text.Draw(screen, option, fonts.Bold.Get(), centerX(width, fonts.Bold, option), int(y)+int(rc.MenuItemHeight), textColor)
	}
}

// GetOrCreateResult returns the singleton Result component, creating if needed
func GetOrCreateResult(e *ecs.ECS) *components.ResultData {
	if _, ok := components.Result.First(e.World); !ok {
		e.World.Entry(e.World.Create(components.Result))
	}

	ent, _ := components.Result.First(e.World)
	return components.Result.Get(ent)
}
