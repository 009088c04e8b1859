package systems

import (
	"fmt"

	cfg "github.com/automoto/tacdrill/config"
	"github.com/automoto/tacdrill/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders score, health, remaining targets and the last answer notice.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	v := View(ecs)
	if !v.Ready {
		return
	}

	hud := cfg.HUD
	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())
	m := hud.Margin

	text.Draw(screen, fmt.Sprintf("SCORE: %d", v.Score), fonts.Bold.Get(), int(m), int(m)+36, hud.TextColor)

	// Health bar
	barY := m + 56
	vector.FillRect(screen, float32(m), float32(barY), float32(hud.HealthBarWidth), float32(hud.HealthBarHeight), hud.HealthBgColor, false)
	ratio := 0.0
	if v.MaxHealth > 0 {
		ratio = float64(v.Health) / float64(v.MaxHealth)
	}
	barColor := hud.HealthColor
	if ratio <= 0.25 {
		barColor = hud.HealthLowColor
	}
	vector.FillRect(screen, float32(m), float32(barY), float32(hud.HealthBarWidth*ratio), float32(hud.HealthBarHeight), barColor, false)
	text.Draw(screen, fmt.Sprintf("HEALTH %d/%d", v.Health, v.MaxHealth), fonts.Small.Get(),
		int(m+hud.HealthBarWidth+12), int(barY+hud.HealthBarHeight-4), hud.TextColor)

	// Targets and level, top right
	targets := fmt.Sprintf("TARGETS: %d", v.Live)
	text.Draw(screen, targets, fonts.Bold.Get(), int(width-m)-fonts.Width(fonts.Bold, targets), int(m)+36, hud.TextColor)
	if level := CurrentLevel(ecs); level != nil && level.CurrentLevel != nil {
		name := fmt.Sprintf("LEVEL %d/%d  %s", level.LevelIndex+1, level.LevelCount, level.CurrentLevel.Name)
		text.Draw(screen, name, fonts.Small.Get(), int(width-m)-fonts.Width(fonts.Small, name), int(m)+70, hud.TextColor)
	}

	if v.Notice != "" && v.NoticeAge < hud.NoticeDuration {
		clr := hud.NoticeBad
		if v.NoticeGood {
			clr = hud.NoticeGood
		}
		alpha := 1 - float64(v.NoticeAge)/float64(hud.NoticeDuration)
		x := (int(width) - fonts.Width(fonts.Bold, v.Notice)) / 2
		text.Draw(screen, v.Notice, fonts.Bold.Get(), x, int(m)+120, fade(clr, alpha))
	}

	if v.Question == nil {
		hint := "Click a target to engage   Esc: Pause"
		x := (int(width) - fonts.Width(fonts.Small, hint)) / 2
		text.Draw(screen, hint, fonts.Small.Get(), x, int(height-m), hud.TextColor)
	}
}
