package tui

import (
	"github.com/automoto/tacdrill/components"
	"github.com/automoto/tacdrill/systems"
)

// Prompt is the terminal question gate. It is only touched from the
// simulation goroutine: the resolver opens it and key commands answer it.
type Prompt struct {
	question components.Question
	answer   systems.AnswerFunc
	chosen   int
}

func NewPrompt() *Prompt {
	return &Prompt{chosen: -1}
}

func (p *Prompt) Open(q components.Question, answer systems.AnswerFunc) {
	p.question = q
	p.answer = answer
	p.chosen = -1
}

func (p *Prompt) Close() {
	p.answer = nil
	p.chosen = -1
}

func (p *Prompt) IsOpen() bool {
	return p.answer != nil
}

// Chosen is the marked option, -1 when none
func (p *Prompt) Chosen() int {
	return p.chosen
}

func (p *Prompt) Choose(i int) {
	if !p.IsOpen() || i < 0 || i >= len(p.question.Options) {
		return
	}
	p.chosen = i
}

// Confirm answers with the marked option. It does nothing until one is marked.
func (p *Prompt) Confirm() {
	if !p.IsOpen() || p.chosen < 0 {
		return
	}
	answer := p.answer
	result := systems.AnswerFor(p.question, p.chosen)
	p.Close()
	answer(result)
}

func (p *Prompt) Cancel() {
	if !p.IsOpen() {
		return
	}
	answer := p.answer
	p.Close()
	answer(systems.AnswerCancelled)
}
