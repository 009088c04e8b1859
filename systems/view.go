package systems

import (
	"sort"
	"time"

	"github.com/automoto/tacdrill/components"
	cfg "github.com/automoto/tacdrill/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// EntityView is a target as the renderer sees it
type EntityView struct {
	ID       int
	X, Y     float64
	W, H     float64
	Slot     cfg.SlotState
	Pattern  cfg.Pattern
	Selected bool
	Fall     *FallPose // set while falling
}

// ParticleView is an active effect with its derived look
type ParticleView struct {
	ID    uint64
	Kind  cfg.EffectKind
	X, Y  float64
	Size  float64
	Alpha float64
}

// FrameView is everything a renderer may read for one frame. It is derived
// from the world and nothing in it feeds back into the simulation.
type FrameView struct {
	Now   time.Time
	Ready bool

	Entities  []EntityView
	Particles []ParticleView

	AimX, AimY float64

	ShakeX, ShakeY float64
	FlashAlpha     float64

	MuzzleActive bool
	MuzzleX      float64
	MuzzleY      float64
	MuzzleRadius float64
	MuzzleAlpha  float64

	Score     int
	Health    int
	MaxHealth int
	Live      int
	Question  *components.Question // open question, nil when idle

	Notice     string
	NoticeGood bool
	NoticeAge  time.Duration
}

// View snapshots the world at the current frame time
func View(e *ecs.ECS) FrameView {
	frame := GetOrCreateFrame(e)
	now := frame.Now
	session := GetOrCreateSession(e)
	aim := GetOrCreateAim(e)

	v := FrameView{
		Now:        now,
		Ready:      frame.Ready,
		AimX:       aim.X,
		AimY:       aim.Y,
		Score:      session.Score,
		Health:     session.Health,
		MaxHealth:  session.MaxHealth,
		Notice:     session.Notice,
		NoticeGood: session.NoticeGood,
		NoticeAge:  now.Sub(session.NoticeAt),
	}

	for _, entry := range Roster(e) {
		enemy := components.Enemy.Get(entry)
		obj := components.Object.Get(entry)
		ev := EntityView{
			ID:       enemy.ID,
			X:        obj.X,
			Y:        obj.Y,
			W:        obj.W,
			H:        obj.H,
			Slot:     enemy.Slot,
			Pattern:  enemy.Pattern,
			Selected: session.Selected == enemy.ID,
		}
		if enemy.Slot == cfg.SlotFalling && entry.HasComponent(components.Falling) {
			pose := FallPoseAt(components.Falling.Get(entry), now)
			ev.Fall = &pose
		}
		if enemy.Alive() {
			v.Live++
			if ev.Selected {
				q := enemy.Question
				v.Question = &q
			}
		}
		v.Entities = append(v.Entities, ev)
	}

	components.Particle.Each(e.World, func(entry *donburi.Entry) {
		p := components.Particle.Get(entry)
		if ParticleExpired(p, now) {
			return
		}
		v.Particles = append(v.Particles, ParticleView{
			ID:    p.ID,
			Kind:  p.Kind,
			X:     p.Pos.X,
			Y:     p.Pos.Y,
			Size:  ParticleSize(p, now),
			Alpha: ParticleAlpha(p, now),
		})
	})
	sort.Slice(v.Particles, func(i, j int) bool { return v.Particles[i].ID < v.Particles[j].ID })

	if entry, ok := components.ScreenShake.First(e.World); ok {
		v.ShakeX, v.ShakeY = ShakeOffset(components.ScreenShake.Get(entry), now)
		v.FlashAlpha = FlashAlpha(components.ScreenFlash.Get(entry), now)

		muzzle := components.MuzzleFlash.Get(entry)
		if muzzle.Active {
			v.MuzzleActive = true
			v.MuzzleX, v.MuzzleY = muzzle.X, muzzle.Y
			v.MuzzleRadius, v.MuzzleAlpha = MuzzleGeometry(muzzle, now)
		}
	}

	return v
}
