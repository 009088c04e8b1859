package systems

import (
	"time"

	"github.com/automoto/tacdrill/components"
	cfg "github.com/automoto/tacdrill/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDeaths retires falling targets once their fall has played out.
// The entity stays in the world and the roster; only its hit box leaves the
// target space.
func UpdateDeaths(ecs *ecs.ECS) {
	now := Now(ecs)
	components.Falling.Each(ecs.World, func(e *donburi.Entry) {
		enemy := components.Enemy.Get(e)
		if enemy.Slot != cfg.SlotFalling {
			return
		}
		falling := components.Falling.Get(e)
		if now.Sub(falling.Started) < cfg.Fall.Window {
			return
		}

		enemy.Slot = cfg.SlotGone
		if obj := components.Object.Get(e); obj.Space != nil {
			obj.Space.Remove(obj.Object)
		}
	})
}

// FallPose is how an eliminated target is drawn at a point of its fall
type FallPose struct {
	OffsetY  float64
	Rotation float64
	Alpha    float64
	Progress float64 // 0..1
}

// FallPoseAt returns the pose of a falling target at now
func FallPoseAt(falling *components.FallingData, now time.Time) FallPose {
	window := cfg.Fall.Window.Seconds()
	elapsed := now.Sub(falling.Started).Seconds()
	if elapsed < 0 {
		elapsed = 0
	}

	tw := gween.New(0, float32(cfg.Fall.Distance), float32(window), ease.InQuad)
	offset, _ := tw.Set(float32(elapsed))

	progress := elapsed / window
	if progress > 1 {
		progress = 1
	}
	return FallPose{
		OffsetY:  float64(offset),
		Rotation: progress * cfg.Fall.Rotation,
		Alpha:    cfg.Fall.Alpha,
		Progress: progress,
	}
}
