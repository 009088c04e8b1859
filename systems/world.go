package systems

import (
	"time"

	"github.com/automoto/tacdrill/components"
	"github.com/automoto/tacdrill/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateFrame returns the frame timing singleton
func GetOrCreateFrame(e *ecs.ECS) *components.FrameData {
	entry, ok := components.Frame.First(e.World)
	if !ok {
		entry = factory.CreateFrame(e)
	}
	return components.Frame.Get(entry)
}

// GetOrCreateSession returns the combat session singleton
func GetOrCreateSession(e *ecs.ECS) *components.SessionData {
	entry, ok := components.Session.First(e.World)
	if !ok {
		entry = factory.CreateSession(e)
	}
	return components.Session.Get(entry)
}

// GetOrCreateAim returns the reticle position
func GetOrCreateAim(e *ecs.ECS) *components.AimData {
	entry, ok := components.Aim.First(e.World)
	if !ok {
		entry = factory.CreateSession(e)
	}
	return components.Aim.Get(entry)
}

// Now is the timestamp of the current tick
func Now(e *ecs.ECS) time.Time {
	return GetOrCreateFrame(e).Now
}

// SetReady marks the level assets as loaded (or not)
func SetReady(e *ecs.ECS, ready bool) {
	GetOrCreateFrame(e).Ready = ready
}

// IsReady reports whether the level assets are loaded
func IsReady(e *ecs.ECS) bool {
	return GetOrCreateFrame(e).Ready
}
