package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/tacdrill/components"
	cfg "github.com/automoto/tacdrill/config"
	"github.com/automoto/tacdrill/fonts"
	"github.com/automoto/tacdrill/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every hit box in the target space when --show-boxes is
// set. Boxes that overlap another target are drawn in orange, since a click
// there goes to the earlier roster slot.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowBoxes || !IsReady(ecs) {
		return
	}

	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	overlapping := map[int]bool{}
	for _, pair := range OverlappingTargets(ecs) {
		overlapping[pair[0]] = true
		overlapping[pair[1]] = true
	}

	for _, obj := range space.Objects() {
		if !obj.HasTags(tags.ResolvTarget) {
			continue
		}
		entry, ok := obj.Data.(*donburi.Entry)
		if !ok || !entry.Valid() {
			continue
		}
		enemy := components.Enemy.Get(entry)
		if !enemy.Alive() {
			continue
		}

		c := color.RGBA{0, 255, 255, 255} // Cyan default
		if overlapping[enemy.ID] {
			c = cfg.Orange
		}
		vector.StrokeRect(screen, float32(obj.X), float32(obj.Y), float32(obj.W), float32(obj.H), 1, c, false)

		label := fmt.Sprintf("#%d %s", enemy.ID, enemy.Pattern)
		text.Draw(screen, label, fonts.Small.Get(), int(obj.X)+4, int(obj.Y)-6, c)
	}

	stats := fmt.Sprintf("TPS %.0f  FPS %.0f", ebiten.ActualTPS(), ebiten.ActualFPS())
	text.Draw(screen, stats, fonts.Small.Get(), int(cfg.HUD.Margin), int(float64(cfg.C.Height)-cfg.HUD.Margin), cfg.Green)
}
