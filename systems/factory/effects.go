package factory

import (
	"math"
	"math/rand"
	"time"

	"github.com/automoto/tacdrill/archetypes"
	"github.com/automoto/tacdrill/components"
	cfg "github.com/automoto/tacdrill/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// SpawnParticle creates one pooled effect with the next effect id
func SpawnParticle(ecs *ecs.ECS, kind cfg.EffectKind, now time.Time, pos, vel dmath.Vec2, size float64) *donburi.Entry {
	e := archetypes.Particle.Spawn(ecs)
	components.Particle.SetValue(e, components.ParticleData{
		ID:      nextEffectID(ecs),
		Kind:    kind,
		Spawned: now,
		Pos:     pos,
		Vel:     vel,
		Size:    size,
		OriginY: pos.Y,
	})
	return e
}

func nextEffectID(ecs *ecs.ECS) uint64 {
	entry, ok := components.EffectSequence.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.EffectSequence))
	}
	seq := components.EffectSequence.Get(entry)
	seq.Next++
	return seq.Next
}

// SpawnProjectile fires a round from (fromX, fromY) toward (toX, toY).
// A zero-length shot gets zero velocity.
func SpawnProjectile(ecs *ecs.ECS, now time.Time, fromX, fromY, toX, toY float64) *donburi.Entry {
	dx, dy := toX-fromX, toY-fromY
	dist := math.Hypot(dx, dy)

	var vel dmath.Vec2
	if dist > 0 {
		speed := cfg.Effects.ProjectileSpeed
		vel = dmath.NewVec2(dx/dist*speed, dy/dist*speed)
	}
	return SpawnParticle(ecs, cfg.EffectProjectile, now, dmath.NewVec2(fromX, fromY), vel, cfg.Effects.ProjectileSize)
}

// SpawnSparkBurst emits sparks evenly spaced around (x, y) with a little
// angle jitter and random speed.
func SpawnSparkBurst(ecs *ecs.ECS, now time.Time, x, y float64, rng *rand.Rand) {
	b := cfg.Effects.Spark
	for i := 0; i < b.Count; i++ {
		angle := float64(i)/float64(b.Count)*2*math.Pi + (rng.Float64()-0.5)*b.Jitter
		speed := b.SpeedMin + rng.Float64()*b.SpeedRange
		SpawnParticle(ecs, cfg.EffectSpark, now, dmath.NewVec2(x, y),
			dmath.NewVec2(math.Cos(angle)*speed, math.Sin(angle)*speed), cfg.Effects.SparkSize)
	}
}

// SpawnBloodBurst emits blood droplets in every direction around (x, y)
func SpawnBloodBurst(ecs *ecs.ECS, now time.Time, x, y float64, rng *rand.Rand) {
	spawnDroplets(ecs, cfg.EffectBlood, cfg.Effects.Blood, now, x, y, rng)
}

// SpawnPlayerDamageBurst emits the splatter shown when the player is hit
func SpawnPlayerDamageBurst(ecs *ecs.ECS, now time.Time, x, y float64, rng *rand.Rand) {
	spawnDroplets(ecs, cfg.EffectPlayerDamage, cfg.Effects.PlayerDamage, now, x, y, rng)
}

func spawnDroplets(ecs *ecs.ECS, kind cfg.EffectKind, b cfg.BurstConfig, now time.Time, x, y float64, rng *rand.Rand) {
	for i := 0; i < b.Count; i++ {
		angle := rng.Float64() * 2 * math.Pi
		speed := b.SpeedMin + rng.Float64()*b.SpeedRange

		var size float64
		if rng.Float64() < b.LargeChance {
			size = b.LargeMin + rng.Float64()*b.LargeRange
		} else {
			size = b.NormalMin + rng.Float64()*b.NormalRange
		}

		SpawnParticle(ecs, kind, now, dmath.NewVec2(x, y),
			dmath.NewVec2(math.Cos(angle)*speed, math.Sin(angle)*speed), size)
	}
}

// SpawnFallingMarker drops the splatter marker at an eliminated target
func SpawnFallingMarker(ecs *ecs.ECS, now time.Time, x, y float64) *donburi.Entry {
	return SpawnParticle(ecs, cfg.EffectFallingMarker, now, dmath.NewVec2(x, y), dmath.Vec2{}, cfg.Effects.MarkerRadius)
}

// SpawnHitRing marks the target that was just engaged
func SpawnHitRing(ecs *ecs.ECS, now time.Time, x, y float64) *donburi.Entry {
	return SpawnParticle(ecs, cfg.EffectHitRing, now, dmath.NewVec2(x, y), dmath.Vec2{}, cfg.Effects.HitRingRadius)
}

// SpawnDeathRing marks an eliminated target
func SpawnDeathRing(ecs *ecs.ECS, now time.Time, x, y float64) *donburi.Entry {
	return SpawnParticle(ecs, cfg.EffectDeathRing, now, dmath.NewVec2(x, y), dmath.Vec2{}, cfg.Effects.DeathRingRadius)
}

func screenEffects(ecs *ecs.ECS) *donburi.Entry {
	entry, ok := components.ScreenShake.First(ecs.World)
	if !ok {
		entry = CreateScreenEffects(ecs)
	}
	return entry
}

// TriggerScreenShake restarts the screen shake at full intensity
func TriggerScreenShake(ecs *ecs.ECS, now time.Time) {
	shake := components.ScreenShake.Get(screenEffects(ecs))
	shake.ScreenEffectData = components.ScreenEffectData{
		Active:    true,
		Started:   now,
		Intensity: cfg.ScreenShake.Intensity,
	}
}

// TriggerScreenFlash restarts the red damage overlay
func TriggerScreenFlash(ecs *ecs.ECS, now time.Time) {
	flash := components.ScreenFlash.Get(screenEffects(ecs))
	flash.ScreenEffectData = components.ScreenEffectData{
		Active:    true,
		Started:   now,
		Intensity: cfg.ScreenFlash.Intensity,
	}
}

// TriggerMuzzleFlash shows the muzzle flash at (x, y)
func TriggerMuzzleFlash(ecs *ecs.ECS, now time.Time, x, y float64) {
	muzzle := components.MuzzleFlash.Get(screenEffects(ecs))
	muzzle.ScreenEffectData = components.ScreenEffectData{
		Active:    true,
		Started:   now,
		Intensity: 1,
	}
	muzzle.X, muzzle.Y = x, y
}
