package config

// Pattern selects the scripted movement state machine of an entity
type Pattern int

const (
	PatternPatrol Pattern = iota
	PatternCover
	PatternAdvance
	PatternStrafe
)

func (p Pattern) String() string {
	switch p {
	case PatternPatrol:
		return "patrol"
	case PatternCover:
		return "cover"
	case PatternAdvance:
		return "advance"
	case PatternStrafe:
		return "strafe"
	}
	return "unknown"
}

// SlotState is the liveness of a roster slot. Alive is the only state that
// moves or can be hit; Falling plays the death animation; Gone is terminal.
type SlotState int

const (
	SlotAlive SlotState = iota
	SlotFalling
	SlotGone
)

func (s SlotState) String() string {
	switch s {
	case SlotAlive:
		return "alive"
	case SlotFalling:
		return "falling"
	case SlotGone:
		return "gone"
	}
	return "unknown"
}

// EffectKind identifies a pooled transient effect
type EffectKind int

const (
	EffectProjectile EffectKind = iota
	EffectSpark
	EffectBlood
	EffectPlayerDamage
	EffectFallingMarker
	EffectHitRing
	EffectDeathRing
)

func (k EffectKind) String() string {
	switch k {
	case EffectProjectile:
		return "projectile"
	case EffectSpark:
		return "spark"
	case EffectBlood:
		return "blood"
	case EffectPlayerDamage:
		return "player-damage"
	case EffectFallingMarker:
		return "falling-marker"
	case EffectHitRing:
		return "hit-ring"
	case EffectDeathRing:
		return "death-ring"
	}
	return "unknown"
}

// OutcomeKind is the terminal result of a level attempt
type OutcomeKind int

const (
	OutcomeNone OutcomeKind = iota
	OutcomeGameOver
	OutcomeMissionComplete
)
