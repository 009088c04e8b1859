package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// FrameData is the timing of the current tick
type FrameData struct {
	Now   time.Time
	Delta time.Duration // zero on the first tick
	Tick  uint64

	// Ready is set once the level and its images are loaded. Nothing ticks
	// or draws before that.
	Ready bool
}

var Frame = donburi.NewComponentType[FrameData]()
