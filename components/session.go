package components

import (
	"time"

	"github.com/automoto/tacdrill/config"
	"github.com/yohamta/donburi"
)

// SessionData is the score, health and selection state of one level attempt
type SessionData struct {
	Score     int
	Health    int
	MaxHealth int

	// Roster index of the target awaiting an answer, -1 when idle
	Selected   int
	Engagement uint64 // token of the open question
	EngagedAt  time.Time

	Outcome OutcomeData

	// Short HUD notice about the last answer
	Notice     string
	NoticeGood bool
	NoticeAt   time.Time
}

// Awaiting reports whether a question is open
func (s *SessionData) Awaiting() bool {
	return s.Selected >= 0
}

// Terminal reports whether the attempt has been decided
func (s *SessionData) Terminal() bool {
	return s.Outcome.Kind != config.OutcomeNone
}

// OutcomeData is the decided result of the attempt. Mission complete is
// reported once Due has passed, game over is reported immediately.
type OutcomeData struct {
	Kind  config.OutcomeKind
	Score int
	Due   time.Time
	Fired bool
}

var Session = donburi.NewComponentType[SessionData]()

// AimData is the reticle position in scene space
type AimData struct {
	X, Y float64
}

var Aim = donburi.NewComponentType[AimData]()
