package factory

import (
	"math/rand"

	"github.com/automoto/tacdrill/archetypes"
	"github.com/automoto/tacdrill/assets"
	"github.com/automoto/tacdrill/components"
	cfg "github.com/automoto/tacdrill/config"
	"github.com/automoto/tacdrill/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateEnemy spawns the target for roster slot id. Its pattern comes from
// the slot index; speed and direction are the only random draws it ever gets.
func CreateEnemy(ecs *ecs.ECS, id int, x, y, w, h float64, q components.Question, rng *rand.Rand) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(ecs)

	// Create collision object
	obj := resolv.NewObject(x, y, w, h, tags.ResolvTarget)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = enemy
	components.Object.SetValue(enemy, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	cycle := cfg.Movement.PatternCycle
	speed := cfg.Movement.SpeedMin + rng.Float64()*cfg.Movement.SpeedRange
	direction := -1.0
	if rng.Float64() > 0.5 {
		direction = 1.0
	}

	components.Enemy.SetValue(enemy, components.EnemyData{
		ID:        id,
		Question:  q,
		Slot:      cfg.SlotAlive,
		OriginX:   x,
		OriginY:   y,
		Pattern:   cycle[id%len(cycle)],
		Speed:     speed,
		Direction: direction,
	})

	return enemy
}

// CreateRoster spawns one target per position/question pair of the level,
// in order, and records the roster. A level whose counts differ panics.
func CreateRoster(ecs *ecs.ECS, level *assets.Level, rng *rand.Rand) []*donburi.Entry {
	if err := assets.CheckRoster(level); err != nil {
		panic(err)
	}
	n := len(level.Questions)

	roster := archetypes.Roster.Spawn(ecs)
	entries := make([]*donburi.Entry, 0, n)
	ids := make([]donburi.Entity, 0, n)

	for i := 0; i < n; i++ {
		p := level.Positions[i]
		q := level.Questions[i]
		e := CreateEnemy(ecs, i, p.X, p.Y, level.EntityWidth, level.EntityHeight, components.Question{
			Text:    q.Text,
			Options: append([]string(nil), q.Options...),
			Correct: q.Correct,
		}, rng)
		entries = append(entries, e)
		ids = append(ids, e.Entity())
	}

	components.Roster.SetValue(roster, components.RosterData{Entities: ids})
	return entries
}
