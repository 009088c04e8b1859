package systems

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/automoto/tacdrill/assets"
	"github.com/automoto/tacdrill/clock"
	"github.com/automoto/tacdrill/components"
	cfg "github.com/automoto/tacdrill/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CurrentLevel returns the level being played, or nil before one is created
func CurrentLevel(e *ecs.ECS) *components.LevelData {
	entry, ok := components.Level.First(e.World)
	if !ok {
		return nil
	}
	return components.Level.Get(entry)
}

// LoadLevelImages draws the backdrop and target sprites of the current level
// and marks the frame ready. Ticks are skipped until this succeeds.
func LoadLevelImages(e *ecs.ECS, loader *assets.ImageLoader) error {
	level := CurrentLevel(e)
	if level == nil || level.CurrentLevel == nil {
		return fmt.Errorf("no level to load images for")
	}
	lvl := level.CurrentLevel

	bg, err := loader.Background(lvl.Background, cfg.C.Width, cfg.C.Height)
	if err != nil {
		return fmt.Errorf("level %d background: %w", lvl.ID, err)
	}
	sprite, err := loader.EntitySprite(lvl.EntitySprite, int(lvl.EntityWidth), int(lvl.EntityHeight))
	if err != nil {
		return fmt.Errorf("level %d sprite: %w", lvl.ID, err)
	}

	bgEntry, ok := components.Background.First(e.World)
	if !ok {
		bgEntry = e.World.Entry(e.World.Create(components.Background))
	}
	components.Background.SetValue(bgEntry, components.BackgroundData{Image: bg})

	for _, entry := range Roster(e) {
		donburi.Add(entry, components.Sprite, &components.SpriteData{Image: sprite})
	}

	SetReady(e, true)
	return nil
}

// ErrImagesUnavailable is returned once every image load attempt has failed
var ErrImagesUnavailable = errors.New("level images unavailable")

// ImageRetry retries LoadLevelImages on an interval until it succeeds or the
// attempts run out. The frame stays not ready until a load succeeds.
type ImageRetry struct {
	Interval time.Duration
	Attempts int

	loader *assets.ImageLoader
	clock  clock.Clock
	tries  int
	next   time.Time
	err    error
}

func NewImageRetry(clk clock.Clock, loader *assets.ImageLoader) *ImageRetry {
	return &ImageRetry{
		Interval: time.Second,
		Attempts: 3,
		loader:   loader,
		clock:    clk,
	}
}

// Tries returns how many loads have been attempted
func (r *ImageRetry) Tries() int {
	return r.tries
}

// Poll attempts a load when one is due. It returns ErrImagesUnavailable,
// wrapping the last load error, after the final attempt fails.
func (r *ImageRetry) Poll(e *ecs.ECS) error {
	if IsReady(e) {
		return nil
	}
	if r.tries >= r.Attempts {
		return fmt.Errorf("%w after %d attempts: %w", ErrImagesUnavailable, r.tries, r.err)
	}

	now := r.clock.Now()
	if r.tries > 0 && now.Before(r.next) {
		return nil
	}
	r.tries++
	r.next = now.Add(r.Interval)

	if r.err = LoadLevelImages(e, r.loader); r.err == nil {
		return nil
	}
	log.Printf("Warning: Could not load level images (attempt %d/%d): %v", r.tries, r.Attempts, r.err)
	if r.tries >= r.Attempts {
		return fmt.Errorf("%w after %d attempts: %w", ErrImagesUnavailable, r.tries, r.err)
	}
	return nil
}

func backgroundImage(e *ecs.ECS) *ebiten.Image {
	entry, ok := components.Background.First(e.World)
	if !ok {
		return nil
	}
	return components.Background.Get(entry).Image
}
