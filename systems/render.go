package systems

import (
	"image/color"

	"github.com/automoto/tacdrill/components"
	cfg "github.com/automoto/tacdrill/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp      = &ebiten.DrawImageOptions{}
	sceneBuffer *ebiten.Image
)

var particleColors = map[cfg.EffectKind]color.RGBA{
	cfg.EffectProjectile:    cfg.BrightYellow,
	cfg.EffectSpark:         cfg.Orange,
	cfg.EffectBlood:         cfg.DarkRed,
	cfg.EffectPlayerDamage:  cfg.Red,
	cfg.EffectFallingMarker: cfg.Red,
	cfg.EffectHitRing:       cfg.Yellow,
	cfg.EffectDeathRing:     cfg.Red,
}

// DrawBattle renders the battlefield: backdrop, targets and particles under
// the screen shake, then the damage flash, weapon and crosshair on top.
func DrawBattle(ecs *ecs.ECS, screen *ebiten.Image) {
	v := View(ecs)
	if !v.Ready {
		screen.Fill(cfg.HUD.BackgroundColor)
		return
	}

	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	if sceneBuffer == nil || sceneBuffer.Bounds().Dx() != w || sceneBuffer.Bounds().Dy() != h {
		sceneBuffer = ebiten.NewImage(w, h)
	}
	sceneBuffer.Clear()

	drawBackground(ecs, sceneBuffer)
	drawTargets(ecs, sceneBuffer, v)
	drawParticles(sceneBuffer, v)

	screen.Fill(color.Black)
	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Translate(v.ShakeX, v.ShakeY)
	screen.DrawImage(sceneBuffer, drawOp)

	if v.FlashAlpha > 0 {
		vector.FillRect(screen, 0, 0, float32(w), float32(h), fade(cfg.Red, v.FlashAlpha), false)
	}

	drawWeapon(screen, v)
	drawCrosshair(screen, v)
}

func drawBackground(ecs *ecs.ECS, dst *ebiten.Image) {
	bg := backgroundImage(ecs)
	if bg == nil {
		dst.Fill(cfg.HUD.BackgroundColor)
		b := dst.Bounds()
		horizon := float32(b.Dy()) * 0.6
		vector.FillRect(dst, 0, horizon, float32(b.Dx()), float32(b.Dy())-horizon, cfg.HUD.HorizonColor, false)
		return
	}
	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	dst.DrawImage(bg, drawOp)
}

func drawTargets(ecs *ecs.ECS, dst *ebiten.Image, v FrameView) {
	for _, ev := range v.Entities {
		if ev.Slot == cfg.SlotGone {
			continue
		}

		var sprite *ebiten.Image
		if entry, ok := EnemyByID(ecs, ev.ID); ok && entry.HasComponent(components.Sprite) {
			sprite = components.Sprite.Get(entry).Image
		}

		if sprite == nil {
			if ev.Fall == nil {
				vector.FillRect(dst, float32(ev.X), float32(ev.Y), float32(ev.W), float32(ev.H), cfg.HUD.EntityColor, false)
			}
		} else {
			drawOp.GeoM.Reset()
			drawOp.ColorScale.Reset()
			sw, sh := float64(sprite.Bounds().Dx()), float64(sprite.Bounds().Dy())
			drawOp.GeoM.Scale(ev.W/sw, ev.H/sh)

			if ev.Fall != nil {
				// Topple around the feet while sinking
				drawOp.GeoM.Translate(-ev.W/2, -ev.H)
				drawOp.GeoM.Rotate(ev.Fall.Rotation)
				drawOp.GeoM.Translate(ev.X+ev.W/2, ev.Y+ev.H+ev.Fall.OffsetY)
				drawOp.ColorScale.ScaleAlpha(float32(ev.Fall.Alpha))
			} else {
				drawOp.GeoM.Translate(ev.X, ev.Y)
			}
			dst.DrawImage(sprite, drawOp)
		}

		if ev.Selected {
			vector.StrokeRect(dst, float32(ev.X), float32(ev.Y), float32(ev.W), float32(ev.H), 4, cfg.HUD.SelectedColor, false)
		}
	}
}

func drawParticles(dst *ebiten.Image, v FrameView) {
	for _, p := range v.Particles {
		clr := fade(particleColors[p.Kind], p.Alpha)
		x, y, r := float32(p.X), float32(p.Y), float32(p.Size)
		if r <= 0 {
			continue
		}

		switch p.Kind {
		case cfg.EffectHitRing:
			vector.StrokeCircle(dst, x, y, r, 3, clr, true)
		case cfg.EffectDeathRing:
			vector.StrokeCircle(dst, x, y, r, 4, clr, true)
		default:
			vector.FillCircle(dst, x, y, r, clr, true)
		}
	}
}

// fade scales a premultiplied color by alpha
func fade(c color.RGBA, alpha float64) color.RGBA {
	if alpha <= 0 {
		return color.RGBA{}
	}
	if alpha > 1 {
		alpha = 1
	}
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}
