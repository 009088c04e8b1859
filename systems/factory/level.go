package factory

import (
	"math/rand"

	"github.com/automoto/tacdrill/archetypes"
	"github.com/automoto/tacdrill/assets"
	"github.com/automoto/tacdrill/components"
	cfg "github.com/automoto/tacdrill/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Broad phase cell size for the target space
const spaceCell = 32

// CreateLevel sets up everything one level attempt needs: the level record,
// the target space and roster, the session and the effect singletons.
// Frame.Ready stays false; the caller flips it once its images are loaded.
func CreateLevel(ecs *ecs.ECS, levels []assets.Level, levelIndex int, rng *rand.Rand) *donburi.Entry {
	if len(levels) == 0 {
		panic("No levels to create")
	}

	// Clamp index to valid range
	if levelIndex < 0 || levelIndex >= len(levels) {
		levelIndex = 0
	}
	if err := assets.CheckRoster(&levels[levelIndex]); err != nil {
		panic(err)
	}

	level := archetypes.Level.Spawn(ecs)

	components.Level.Set(level, &components.LevelData{
		CurrentLevel: &levels[levelIndex],
		LevelIndex:   levelIndex,
		LevelCount:   len(levels),
	})

	CreateSpace(ecs, cfg.C.Width, cfg.C.Height, spaceCell, spaceCell)
	CreateRoster(ecs, &levels[levelIndex], rng)
	CreateSession(ecs)
	CreateScreenEffects(ecs)
	CreateFrame(ecs)

	return level
}
