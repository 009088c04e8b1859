package components

import (
	"time"

	"github.com/automoto/tacdrill/config"
	"github.com/yohamta/donburi"
)

// Question is the multiple-choice prompt attached to a target
type Question struct {
	Text    string
	Options []string
	Correct int // index into Options
}

// IsCorrect reports whether choice is the correct option
func (q Question) IsCorrect(choice int) bool {
	return choice == q.Correct
}

type EnemyData struct {
	ID       int // roster index, stable for the level
	Question Question
	Slot     config.SlotState

	// Movement state machine
	OriginX, OriginY float64
	Pattern          config.Pattern
	Phase            int
	PhaseStarted     time.Time // when Phase was entered
	LastUpdate       time.Time // zero until the first movement visit
	Speed            float64
	Direction        float64 // +1 or -1
}

// Alive reports whether the slot can move and be hit
func (e *EnemyData) Alive() bool {
	return e.Slot == config.SlotAlive
}

var Enemy = donburi.NewComponentType[EnemyData]()

// FallingData records the cosmetic descent of an eliminated target
type FallingData struct {
	Started time.Time
	StartY  float64
}

var Falling = donburi.NewComponentType[FallingData]()

// RosterData keeps the targets of the level in roster order. Entries are
// never removed during an attempt.
type RosterData struct {
	Entities []donburi.Entity
}

var Roster = donburi.NewComponentType[RosterData]()
