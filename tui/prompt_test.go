package tui

import (
	"testing"

	"github.com/automoto/tacdrill/components"
	"github.com/automoto/tacdrill/core"
	"github.com/automoto/tacdrill/systems"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi/ecs"
)

var drillQuestion = components.Question{
	Text:    "Which signal means move out?",
	Options: []string{"Fist", "Point forward", "Flat palm", "Thumbs down"},
	Correct: 1,
}

// recorder collects answers handed back by a gate
type recorder struct {
	answers []systems.Answer
}

func (r *recorder) answer(a systems.Answer) {
	r.answers = append(r.answers, a)
}

func TestPromptConfirmNeedsChoice(t *testing.T) {
	p := NewPrompt()
	rec := &recorder{}
	p.Open(drillQuestion, rec.answer)

	p.Confirm()
	assert.Empty(t, rec.answers)
	assert.True(t, p.IsOpen())

	p.Choose(7)
	assert.Equal(t, -1, p.Chosen())

	p.Choose(1)
	p.Confirm()
	assert.Equal(t, []systems.Answer{systems.AnswerCorrect}, rec.answers)
	assert.False(t, p.IsOpen())

	// Closed prompts ignore further input
	p.Confirm()
	p.Cancel()
	assert.Len(t, rec.answers, 1)
}

func TestPromptWrongAndCancel(t *testing.T) {
	p := NewPrompt()
	rec := &recorder{}

	p.Open(drillQuestion, rec.answer)
	p.Choose(3)
	p.Confirm()

	p.Open(drillQuestion, rec.answer)
	assert.Equal(t, -1, p.Chosen(), "a new question starts unmarked")
	p.Cancel()

	assert.Equal(t, []systems.Answer{systems.AnswerIncorrect, systems.AnswerCancelled}, rec.answers)
}

func TestPromptCloseDropsAnswer(t *testing.T) {
	p := NewPrompt()
	rec := &recorder{}
	p.Open(drillQuestion, rec.answer)
	p.Choose(1)

	p.Close()
	p.Confirm()

	assert.Empty(t, rec.answers)
}

func TestKeyCommands(t *testing.T) {
	a := &App{prompt: NewPrompt(), loop: core.NewLoop(nil, nil, 60)}
	rec := &recorder{}
	a.prompt.Open(drillQuestion, rec.answer)

	a.keyCommand(tcell.KeyRune, '2')(nil)
	assert.Equal(t, 1, a.prompt.Chosen())

	// Quit is ignored while a question is open
	a.keyCommand(tcell.KeyRune, 'q')(nil)
	assert.False(t, a.result.Quit)

	a.keyCommand(tcell.KeyEnter, 0)(nil)
	assert.Equal(t, []systems.Answer{systems.AnswerCorrect}, rec.answers)

	a.prompt.Open(drillQuestion, rec.answer)
	a.keyCommand(tcell.KeyEscape, 0)(nil)
	assert.Equal(t, systems.AnswerCancelled, rec.answers[1])
	assert.False(t, a.result.Quit)

	assert.Nil(t, a.keyCommand(tcell.KeyRune, 'z'))

	a.keyCommand(tcell.KeyEscape, 0)(nil)
	require.True(t, a.result.Quit)
	assert.False(t, a.loop.Submit(func(*ecs.ECS) {}), "quitting stops the loop")
}
