package archetypes

import (
	"github.com/automoto/tacdrill/components"
	cfg "github.com/automoto/tacdrill/config"
	"github.com/automoto/tacdrill/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Object,
	)
	Particle = newArchetype(
		tags.Effect,
		components.Particle,
	)
	Space = newArchetype(
		components.Space,
	)
	Roster = newArchetype(
		components.Roster,
	)
	Session = newArchetype(
		components.Session,
		components.Aim,
	)
	Frame = newArchetype(
		components.Frame,
	)
	ScreenEffects = newArchetype(
		components.ScreenShake,
		components.ScreenFlash,
		components.MuzzleFlash,
		components.EffectSequence,
	)
	Level = newArchetype(
		components.Level,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
