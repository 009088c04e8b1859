package components

import (
	"github.com/automoto/tacdrill/assets"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	CurrentLevel *assets.Level
	LevelIndex   int
	LevelCount   int
}

var Level = donburi.NewComponentType[LevelData]()
