package systems

import (
	"math"
	"time"

	cfg "github.com/automoto/tacdrill/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// WeaponPose returns the top-left corner of the first-person weapon. It leans
// toward the reticle within clamped limits and carries a small idle sway.
func WeaponPose(aimX, aimY float64, now time.Time) (float64, float64) {
	w := cfg.Weapon
	baseX := float64(cfg.C.Width) - w.Width
	baseY := float64(cfg.C.Height) - w.Height

	aimOffX := clamp((aimX-float64(cfg.C.Width)/2)*w.AimFactor, -w.MaxOffsetLeft, w.MaxOffsetRight)
	aimOffY := clamp((aimY-float64(cfg.C.Height)/2)*w.AimFactor, -w.MaxOffsetY, w.MaxOffsetY)

	t := float64(now.UnixMilli())
	sway := t * 0.01
	swayX := math.Sin(sway)*w.RecoilFactor*8 + math.Sin(sway*2.3)*w.RecoilFactor*4
	swayY := math.Cos(sway*0.8)*w.RecoilFactor*6 + math.Sin(sway*1.7)*w.RecoilFactor*3
	breathing := math.Sin(t*0.003) * w.BreathingAmount

	return baseX + aimOffX + swayX, baseY + aimOffY + swayY + breathing
}

// MuzzlePoint is where the muzzle flash is drawn for a weapon at (x, y)
func MuzzlePoint(x, y float64) (float64, float64) {
	return x + cfg.Weapon.Width - 50, y + cfg.Weapon.Height/2
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func drawWeapon(screen *ebiten.Image, v FrameView) {
	x, y := WeaponPose(v.AimX, v.AimY, v.Now)
	fx, fy := float32(x), float32(y)
	body, barrel := cfg.Weapon.Color, cfg.Weapon.BarrelColor

	// Stock, receiver, magazine, barrel
	vector.FillRect(screen, fx+640, fy+330, 160, 170, body, false)
	vector.FillRect(screen, fx+430, fy+300, 300, 110, body, false)
	vector.FillRect(screen, fx+520, fy+410, 70, 130, barrel, false)
	vector.FillRect(screen, fx+560, fy+285, 200, 30, barrel, false)
	vector.FillRect(screen, fx+470, fy+270, 90, 30, barrel, false)

	if v.MuzzleActive && v.MuzzleRadius > 0 {
		mx, my := MuzzlePoint(x, y)
		vector.FillCircle(screen, float32(mx), float32(my), float32(v.MuzzleRadius), fade(cfg.Yellow, v.MuzzleAlpha), true)
	}
}

func drawCrosshair(screen *ebiten.Image, v FrameView) {
	x, y := float32(v.AimX), float32(v.AimY)
	size := float32(cfg.HUD.CrosshairSize)
	gap := size / 3
	clr := cfg.HUD.CrosshairColor

	vector.StrokeLine(screen, x-size, y, x-gap, y, 2, clr, true)
	vector.StrokeLine(screen, x+gap, y, x+size, y, 2, clr, true)
	vector.StrokeLine(screen, x, y-size, x, y-gap, 2, clr, true)
	vector.StrokeLine(screen, x, y+gap, x, y+size, 2, clr, true)
	vector.StrokeCircle(screen, x, y, size*0.7, 1.5, clr, true)
}
