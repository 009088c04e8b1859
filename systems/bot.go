package systems

import (
	"math/rand"
	"time"

	"github.com/automoto/tacdrill/clock"
	"github.com/automoto/tacdrill/components"
	"github.com/yohamta/donburi/ecs"
)

// Bot is a scripted player for headless runs. It shoots at the first live
// target in roster order every ShotInterval and answers each question after
// AnswerDelay, correctly with probability Accuracy. It is the question gate
// of the resolver it shoots through.
type Bot struct {
	Accuracy     float64
	ShotInterval time.Duration
	AnswerDelay  time.Duration

	// Tallies for the run report
	Shots   int
	Correct int
	Wrong   int

	clock    clock.Clock
	rng      *rand.Rand
	resolver *Resolver

	lastShot time.Time
	question components.Question
	answer   AnswerFunc
	openedAt time.Time
}

// NewBot uses its own random source so answering does not disturb the
// movement draws of the level.
func NewBot(clk clock.Clock, rng *rand.Rand, accuracy float64) *Bot {
	return &Bot{
		Accuracy:     accuracy,
		ShotInterval: 500 * time.Millisecond,
		AnswerDelay:  300 * time.Millisecond,
		clock:        clk,
		rng:          rng,
	}
}

// Attach sets the resolver the bot fires through
func (b *Bot) Attach(r *Resolver) {
	b.resolver = r
}

func (b *Bot) Open(q components.Question, answer AnswerFunc) {
	b.question = q
	b.answer = answer
	b.openedAt = b.clock.Now()
}

func (b *Bot) Close() {
	b.answer = nil
}

// Update answers a due question or takes the next shot
func (b *Bot) Update(e *ecs.ECS) {
	now := Now(e)

	if b.answer != nil {
		if now.Sub(b.openedAt) < b.AnswerDelay {
			return
		}
		choice := b.question.Correct
		if b.rng.Float64() >= b.Accuracy {
			choice = (choice + 1) % len(b.question.Options)
			b.Wrong++
		} else {
			b.Correct++
		}
		answer := b.answer
		b.answer = nil
		answer(AnswerFor(b.question, choice))
		return
	}

	if b.resolver == nil || now.Sub(b.lastShot) < b.ShotInterval {
		return
	}

	for _, entry := range Roster(e) {
		if !components.Enemy.Get(entry).Alive() {
			continue
		}
		x, y := components.Object.Get(entry).Center()
		b.lastShot = now
		b.Shots++
		MoveAim(e, x, y)
		b.resolver.Engage(e, x, y)
		return
	}
}
