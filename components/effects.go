package components

import (
	"time"

	"github.com/automoto/tacdrill/config"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// ParticleData is one pooled transient effect
type ParticleData struct {
	ID      uint64
	Kind    config.EffectKind
	Spawned time.Time
	Pos     dmath.Vec2
	Vel     dmath.Vec2
	Size    float64
	OriginY float64 // falling markers only
}

var Particle = donburi.NewComponentType[ParticleData]()

// EffectSequenceData hands out monotonic particle ids
type EffectSequenceData struct {
	Next uint64
}

var EffectSequence = donburi.NewComponentType[EffectSequenceData]()

// ScreenEffectData is a screen-level singleton effect such as shake or flash.
// Intensity decays linearly over the configured window.
type ScreenEffectData struct {
	Active    bool
	Started   time.Time
	Intensity float64
}

// ScreenShakeData tracks active screen shake effect on the camera
type ScreenShakeData struct {
	ScreenEffectData
}

var ScreenShake = donburi.NewComponentType[ScreenShakeData]()

// ScreenFlashData tracks the red damage overlay
type ScreenFlashData struct {
	ScreenEffectData
}

var ScreenFlash = donburi.NewComponentType[ScreenFlashData]()

// MuzzleFlashData tracks the muzzle flash drawn at the click point
type MuzzleFlashData struct {
	ScreenEffectData
	X, Y float64
}

var MuzzleFlash = donburi.NewComponentType[MuzzleFlashData]()
