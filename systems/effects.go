package systems

import (
	"math"
	"time"

	"github.com/automoto/tacdrill/components"
	"github.com/automoto/tacdrill/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects prunes expired particles, integrates the survivors and
// retires finished screen effects. Expiry compares now against the spawn
// time, so dropped frames never keep an effect alive.
func UpdateEffects(ecs *ecs.ECS) {
	now := Now(ecs)
	pruneParticles(ecs, now)
	integrateParticles(ecs, now)
	updateScreenEffects(ecs, now)
}

func pruneParticles(ecs *ecs.ECS, now time.Time) {
	var toDestroy []*donburi.Entry

	components.Particle.Each(ecs.World, func(e *donburi.Entry) {
		if ParticleExpired(components.Particle.Get(e), now) {
			toDestroy = append(toDestroy, e)
		}
	})

	for _, e := range toDestroy {
		e.Remove()
	}
}

func integrateParticles(ecs *ecs.ECS, now time.Time) {
	components.Particle.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Particle.Get(e)
		switch p.Kind {
		case config.EffectFallingMarker:
			p.Pos.Y = p.OriginY + markerDisplacement(ParticleAge(p, now))
		case config.EffectHitRing, config.EffectDeathRing:
			// static
		default:
			p.Pos.X += p.Vel.X
			p.Pos.Y += p.Vel.Y
			p.Vel.Y += config.Effects.Kinds[p.Kind].Gravity
		}
	})
}

// markerDisplacement descends for the first half of the window and climbs
// back for the second half
func markerDisplacement(age time.Duration) float64 {
	window := config.Effects.Kinds[config.EffectFallingMarker].Window
	half := window / 2
	if age > window {
		age = window
	}
	if age <= half {
		return config.Effects.MarkerRate * ms(age)
	}
	return config.Effects.MarkerRate * ms(window-age)
}

func updateScreenEffects(ecs *ecs.ECS, now time.Time) {
	entry, ok := components.ScreenShake.First(ecs.World)
	if !ok {
		return
	}
	expire(&components.ScreenShake.Get(entry).ScreenEffectData, config.ScreenShake.Window, now)
	expire(&components.ScreenFlash.Get(entry).ScreenEffectData, config.ScreenFlash.Window, now)
	expire(&components.MuzzleFlash.Get(entry).ScreenEffectData, config.MuzzleFlash.Window, now)
}

func expire(fx *components.ScreenEffectData, window time.Duration, now time.Time) {
	if fx.Active && now.Sub(fx.Started) >= window {
		fx.Active = false
		fx.Intensity = 0
	}
}

// ParticleAge is the time since the particle was spawned
func ParticleAge(p *components.ParticleData, now time.Time) time.Duration {
	age := now.Sub(p.Spawned)
	if age < 0 {
		return 0
	}
	return age
}

// ParticleExpired reports whether the particle has reached its decay window
func ParticleExpired(p *components.ParticleData, now time.Time) bool {
	return ParticleAge(p, now) >= config.Effects.Kinds[p.Kind].Window
}

// remaining is the share of the window left, 1 at spawn and 0 at expiry
func remaining(age, window time.Duration) float64 {
	if window <= 0 {
		return 0
	}
	r := 1 - float64(age)/float64(window)
	return math.Max(0, math.Min(1, r))
}

// ParticleAlpha fades linearly from 1 to 0 over the decay window
func ParticleAlpha(p *components.ParticleData, now time.Time) float64 {
	return remaining(ParticleAge(p, now), config.Effects.Kinds[p.Kind].Window)
}

// ParticleSize is the drawn radius. Hit rings shrink and death rings grow;
// other kinds keep their spawn size.
func ParticleSize(p *components.ParticleData, now time.Time) float64 {
	life := 1 - remaining(ParticleAge(p, now), config.Effects.Kinds[p.Kind].Window)
	switch p.Kind {
	case config.EffectHitRing:
		return p.Size - config.Effects.HitRingShrink*life
	case config.EffectDeathRing:
		return p.Size + config.Effects.DeathRingGrow*life
	}
	return p.Size
}

// ScreenIntensity is the linearly decayed intensity of a screen effect
func ScreenIntensity(fx *components.ScreenEffectData, window time.Duration, now time.Time) float64 {
	if !fx.Active {
		return 0
	}
	return fx.Intensity * remaining(now.Sub(fx.Started), window)
}

// ShakeOffset is the camera offset of the screen shake at now
func ShakeOffset(shake *components.ScreenShakeData, now time.Time) (float64, float64) {
	intensity := ScreenIntensity(&shake.ScreenEffectData, config.ScreenShake.Window, now)
	if intensity == 0 {
		return 0, 0
	}
	// Oscillate roughly once per 60Hz frame
	t := ms(now.Sub(shake.Started)) / 16
	return math.Sin(t*1.1) * intensity, math.Cos(t*1.3) * intensity
}

// FlashAlpha is the opacity of the red damage overlay at now
func FlashAlpha(flash *components.ScreenFlashData, now time.Time) float64 {
	return ScreenIntensity(&flash.ScreenEffectData, config.ScreenFlash.Window, now)
}

// MuzzleGeometry returns the muzzle flash radius and alpha at now
func MuzzleGeometry(muzzle *components.MuzzleFlashData, now time.Time) (radius, alpha float64) {
	if !muzzle.Active {
		return 0, 0
	}
	left := remaining(now.Sub(muzzle.Started), config.MuzzleFlash.Window)
	return config.MuzzleFlash.Radius - config.MuzzleFlash.RadiusLoss*(1-left), left
}
