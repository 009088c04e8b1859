package systems

import (
	"math"
	"time"

	"github.com/automoto/tacdrill/components"
	cfg "github.com/automoto/tacdrill/config"
	"github.com/automoto/tacdrill/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// moveState is the part of a target a pattern step may change
type moveState struct {
	X         float64
	Phase     int
	Direction float64
}

// patternStep advances one target by elapsed. now is only used for dwell
// timing and the patrol speed oscillation.
type patternStep func(enemy *components.EnemyData, cur moveState, elapsed time.Duration, now time.Time) moveState

var patternSteps = map[cfg.Pattern]patternStep{
	cfg.PatternPatrol:  stepPatrol,
	cfg.PatternCover:   stepRetreat(cfg.PatternCover),
	cfg.PatternAdvance: stepRetreat(cfg.PatternAdvance),
	cfg.PatternStrafe:  stepStrafe,
}

// UpdateEnemies moves every alive target according to its pattern
func UpdateEnemies(ecs *ecs.ECS) {
	now := Now(ecs)
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		enemy := components.Enemy.Get(e)
		if !enemy.Alive() {
			return
		}
		MoveEnemy(enemy, components.Object.Get(e).Object, now)
	})
}

// MoveEnemy advances a single target to now. The first call only records the
// time. Later calls are skipped until the minimum update interval has passed.
// It reports whether the target state was recomputed.
func MoveEnemy(enemy *components.EnemyData, obj *resolv.Object, now time.Time) bool {
	if !enemy.Alive() {
		return false
	}
	if enemy.LastUpdate.IsZero() {
		enemy.LastUpdate = now
		enemy.PhaseStarted = now
		return false
	}

	elapsed := now.Sub(enemy.LastUpdate)
	if elapsed < cfg.Movement.MinUpdateInterval {
		return false
	}

	step, ok := patternSteps[enemy.Pattern]
	if !ok {
		step = stepPatrol
	}
	next := step(enemy, moveState{X: obj.X, Phase: enemy.Phase, Direction: enemy.Direction}, elapsed, now)

	if next.Phase != enemy.Phase {
		enemy.PhaseStarted = now
	}
	enemy.Phase = next.Phase
	enemy.Direction = next.Direction
	enemy.LastUpdate = now

	if next.X != obj.X {
		obj.X = next.X
		if obj.Space != nil {
			obj.Update()
		}
	}
	return true
}

func ms(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

// stepPatrol walks back and forth around the origin. Crossing the bound flips
// the direction and the target holds still for that step.
func stepPatrol(enemy *components.EnemyData, cur moveState, elapsed time.Duration, now time.Time) moveState {
	m := cfg.Movement
	seconds := float64(now.UnixMilli()) / 1000
	speed := enemy.Speed * (m.PatrolBase + math.Sin(seconds*m.PatrolFrequency+float64(enemy.ID))*m.PatrolSwing)

	nx := cur.X + cur.Direction*speed*ms(elapsed)*m.Patterns[cfg.PatternPatrol].Rate
	if nx > enemy.OriginX+m.PatrolBound || nx < enemy.OriginX-m.PatrolBound {
		cur.Direction = -cur.Direction
		return cur
	}
	cur.X = nx
	return cur
}

// stepRetreat is the three phase cycle shared by cover and advance:
// pull back to origin-offset, hold, return to origin.
func stepRetreat(p cfg.Pattern) patternStep {
	return func(enemy *components.EnemyData, cur moveState, elapsed time.Duration, now time.Time) moveState {
		pc := cfg.Movement.Patterns[p]
		dist := enemy.Speed * ms(elapsed) * pc.Rate
		target := enemy.OriginX - pc.Offset

		switch cur.Phase {
		case 0:
			cur.X -= dist
			if cur.X <= target {
				cur.X = target
				cur.Phase = 1
			}
		case 1:
			if now.Sub(enemy.PhaseStarted) >= pc.Dwell {
				cur.Phase = 2
			}
		default:
			cur.X += dist
			if cur.X >= enemy.OriginX {
				cur.X = enemy.OriginX
				cur.Phase = 0
			}
		}
		return cur
	}
}

// stepStrafe sweeps between origin-offset and origin+offset with a hold at
// each end.
func stepStrafe(enemy *components.EnemyData, cur moveState, elapsed time.Duration, now time.Time) moveState {
	pc := cfg.Movement.Patterns[cfg.PatternStrafe]
	dist := enemy.Speed * ms(elapsed) * pc.Rate
	left, right := enemy.OriginX-pc.Offset, enemy.OriginX+pc.Offset

	switch cur.Phase {
	case 0:
		cur.X -= dist
		if cur.X <= left {
			cur.X = left
			cur.Phase = 1
		}
	case 1:
		if now.Sub(enemy.PhaseStarted) >= pc.Dwell {
			cur.Phase = 2
		}
	case 2:
		cur.X += dist
		if cur.X >= right {
			cur.X = right
			cur.Phase = 3
		}
	default:
		if now.Sub(enemy.PhaseStarted) >= pc.Dwell {
			cur.Phase = 0
		}
	}
	return cur
}
