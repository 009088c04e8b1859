package scenes

import (
	"math/rand"
	"time"

	"github.com/automoto/tacdrill/assets"
	cfg "github.com/automoto/tacdrill/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene is one screen of the game
type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene Scene)
	Exit()
}

// Campaign is the player's progress for this run of the program. Nothing in
// it is saved.
type Campaign struct {
	Levels []assets.Level
	Index  int
	Rank   int
}

func NewCampaign(levels []assets.Level, startIndex int) *Campaign {
	if startIndex < 0 || startIndex >= len(levels) {
		startIndex = 0
	}
	return &Campaign{Levels: levels, Index: startIndex}
}

// Level returns the level being played
func (c *Campaign) Level() *assets.Level {
	return &c.Levels[c.Index]
}

// Last reports whether the current level ends the campaign
func (c *Campaign) Last() bool {
	return c.Index == len(c.Levels)-1
}

// Advance moves to the next level, wrapping back to the first after the last
func (c *Campaign) Advance() {
	c.Index = (c.Index + 1) % len(c.Levels)
}

// NewRand returns the source for one level attempt. A configured seed makes
// every attempt replay the same movement.
func NewRand() *rand.Rand {
	seed := cfg.C.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
