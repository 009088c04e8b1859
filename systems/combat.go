package systems

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/automoto/tacdrill/clock"
	"github.com/automoto/tacdrill/components"
	cfg "github.com/automoto/tacdrill/config"
	"github.com/automoto/tacdrill/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

//go:generate mockgen -destination=mocks/mock_combat.go -package=mocks github.com/automoto/tacdrill/systems QuestionGate,OutcomeListener

// Answer is the player's response to an open question
type Answer int

const (
	AnswerCorrect Answer = iota
	AnswerIncorrect
	AnswerCancelled
)

func (a Answer) String() string {
	switch a {
	case AnswerCorrect:
		return "correct"
	case AnswerIncorrect:
		return "incorrect"
	case AnswerCancelled:
		return "cancelled"
	}
	return "unknown"
}

// AnswerFor grades the chosen option of q
func AnswerFor(q components.Question, choice int) Answer {
	if q.IsCorrect(choice) {
		return AnswerCorrect
	}
	return AnswerIncorrect
}

// AnswerFunc reports the answer to an open question. Only the first call for
// an engagement counts. It must be called from the simulation goroutine.
type AnswerFunc func(Answer)

// QuestionGate presents the question of an engaged target
type QuestionGate interface {
	Open(q components.Question, answer AnswerFunc)
	// Close dismisses the question when it was resolved without the gate
	Close()
}

// OutcomeListener receives the terminal result of a level attempt. Each
// method is called at most once per attempt.
type OutcomeListener interface {
	OnGameOver(score int)
	OnMissionComplete(score int)
}

// Resolver turns clicks into engagements and answers into session changes
type Resolver struct {
	clock    clock.Clock
	rng      *rand.Rand
	gate     QuestionGate
	outcomes OutcomeListener
}

func NewResolver(clk clock.Clock, rng *rand.Rand, gate QuestionGate, outcomes OutcomeListener) *Resolver {
	return &Resolver{
		clock:    clk,
		rng:      rng,
		gate:     gate,
		outcomes: outcomes,
	}
}

// DisplayToScene maps a point in display space onto the logical scene
func DisplayToScene(x, y, displayW, displayH float64) (float64, float64) {
	if displayW <= 0 || displayH <= 0 {
		return x, y
	}
	return x * float64(cfg.C.Width) / displayW, y * float64(cfg.C.Height) / displayH
}

// MoveAim puts the reticle at a scene point
func MoveAim(e *ecs.ECS, x, y float64) {
	aim := GetOrCreateAim(e)
	aim.X, aim.Y = x, y
}

// Engage fires at the scene point (x, y). Every shot spawns a projectile,
// sparks, a muzzle flash and screen shake. Hitting a live target selects it
// and opens its question. Shots are ignored while a question is open or once
// the attempt is decided. It reports whether a target was engaged.
func (r *Resolver) Engage(e *ecs.ECS, x, y float64) bool {
	session := GetOrCreateSession(e)
	if session.Awaiting() || session.Terminal() {
		return false
	}

	now := r.clock.Now()
	tipX, tipY := cfg.WeaponTip()
	factory.SpawnProjectile(e, now, tipX, tipY, x, y)
	factory.SpawnSparkBurst(e, now, tipX, tipY, r.rng)
	factory.TriggerMuzzleFlash(e, now, x, y)
	factory.TriggerScreenShake(e, now)

	entry, ok := HitTest(e, x, y)
	if !ok {
		return false
	}

	enemy := components.Enemy.Get(entry)
	cx, cy := components.Object.Get(entry).Center()
	factory.SpawnHitRing(e, now, cx, cy)

	session.Selected = enemy.ID
	session.Engagement++
	session.EngagedAt = now
	token := session.Engagement

	r.gate.Open(enemy.Question, func(a Answer) {
		r.resolve(e, token, a)
	})
	return true
}

func (r *Resolver) resolve(e *ecs.ECS, token uint64, a Answer) {
	session := GetOrCreateSession(e)
	if !session.Awaiting() || session.Engagement != token || session.Terminal() {
		return
	}

	id := session.Selected
	session.Selected = -1
	now := r.clock.Now()

	switch a {
	case AnswerCorrect:
		r.resolveCorrect(e, session, id, now)
	case AnswerIncorrect:
		r.resolveIncorrect(e, session, now)
	}
}

func (r *Resolver) resolveCorrect(e *ecs.ECS, session *components.SessionData, id int, now time.Time) {
	entry, ok := EnemyByID(e, id)
	if !ok || !Kill(e, id, now) {
		return
	}

	session.Score += cfg.Combat.KillScore
	notify(session, fmt.Sprintf("Target Eliminated! +%d Score", cfg.Combat.KillScore), true, now)

	cx, cy := components.Object.Get(entry).Center()
	factory.SpawnBloodBurst(e, now, cx, cy, r.rng)
	factory.SpawnFallingMarker(e, now, cx, cy)
	factory.SpawnDeathRing(e, now, cx, cy)

	if LiveCount(e) == 0 {
		session.Outcome = components.OutcomeData{
			Kind:  cfg.OutcomeMissionComplete,
			Score: session.Score,
			Due:   now.Add(cfg.Combat.MissionCompleteDelay),
		}
	}
}

func (r *Resolver) resolveIncorrect(e *ecs.ECS, session *components.SessionData, now time.Time) {
	// A miss with nothing to lose ends the attempt
	if session.Score <= 0 {
		session.Outcome = components.OutcomeData{
			Kind:  cfg.OutcomeGameOver,
			Score: 0,
			Due:   now,
		}
		r.fireOutcome(session)
		return
	}

	session.Score = max(0, session.Score-cfg.Combat.WrongAnswerPenalty)
	session.Health = max(0, session.Health-cfg.Combat.WrongAnswerDamage)
	notify(session, fmt.Sprintf("Enemy Retaliation! -%d Score", cfg.Combat.WrongAnswerPenalty), false, now)

	px, py := cfg.PlayerOrigin()
	factory.SpawnPlayerDamageBurst(e, now, px, py, r.rng)
	factory.TriggerScreenFlash(e, now)
}

func notify(session *components.SessionData, text string, good bool, now time.Time) {
	session.Notice = text
	session.NoticeGood = good
	session.NoticeAt = now
}

// Update is the per-tick part of the resolver: it reports a due mission
// complete, expires an unanswered question when a timeout is configured and
// ends an attempt that has no targets at all.
func (r *Resolver) Update(e *ecs.ECS) {
	session := GetOrCreateSession(e)
	now := Now(e)

	if !session.Terminal() {
		if len(Roster(e)) == 0 {
			session.Outcome = components.OutcomeData{
				Kind:  cfg.OutcomeMissionComplete,
				Score: session.Score,
				Due:   now,
			}
		} else if timeout := cfg.Combat.AnswerTimeout; timeout > 0 && session.Awaiting() &&
			now.Sub(session.EngagedAt) >= timeout {
			r.gate.Close()
			r.resolve(e, session.Engagement, AnswerIncorrect)
		}
	}

	if session.Terminal() && !session.Outcome.Fired && !now.Before(session.Outcome.Due) {
		r.fireOutcome(session)
	}
}

func (r *Resolver) fireOutcome(session *components.SessionData) {
	if session.Outcome.Fired {
		return
	}
	session.Outcome.Fired = true

	switch session.Outcome.Kind {
	case cfg.OutcomeGameOver:
		r.outcomes.OnGameOver(session.Outcome.Score)
	case cfg.OutcomeMissionComplete:
		r.outcomes.OnMissionComplete(session.Outcome.Score)
	}
}
