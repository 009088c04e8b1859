package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// SpriteData is the image a target is drawn with, scaled to its bounds
type SpriteData struct {
	Image *ebiten.Image
}

var Sprite = donburi.NewComponentType[SpriteData]()

// BackgroundData is the backdrop of the current level
type BackgroundData struct {
	Image *ebiten.Image
}

var Background = donburi.NewComponentType[BackgroundData]()
