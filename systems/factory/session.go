package factory

import (
	"github.com/automoto/tacdrill/archetypes"
	"github.com/automoto/tacdrill/components"
	cfg "github.com/automoto/tacdrill/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSession starts a fresh attempt: no score, full health, nothing selected
func CreateSession(ecs *ecs.ECS) *donburi.Entry {
	session := archetypes.Session.Spawn(ecs)
	components.Session.SetValue(session, components.SessionData{
		Health:    cfg.Combat.MaxHealth,
		MaxHealth: cfg.Combat.MaxHealth,
		Selected:  -1,
	})
	components.Aim.SetValue(session, components.AimData{
		X: float64(cfg.C.Width) / 2,
		Y: float64(cfg.C.Height) / 2,
	})
	return session
}

func CreateFrame(ecs *ecs.ECS) *donburi.Entry {
	return archetypes.Frame.Spawn(ecs)
}

func CreateScreenEffects(ecs *ecs.ECS) *donburi.Entry {
	return archetypes.ScreenEffects.Spawn(ecs)
}
