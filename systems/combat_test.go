package systems_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/mock/gomock"

	"github.com/automoto/tacdrill/assets"
	"github.com/automoto/tacdrill/clock"
	"github.com/automoto/tacdrill/components"
	"github.com/automoto/tacdrill/config"
	"github.com/automoto/tacdrill/systems"
	"github.com/automoto/tacdrill/systems/factory"
	"github.com/automoto/tacdrill/systems/mocks"
)

const frameStep = 16 * time.Millisecond

type CombatTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	gate     *mocks.MockQuestionGate
	outcomes *mocks.MockOutcomeListener
	clock    *clock.Manual
	ecs      *ecs.ECS
	resolver *systems.Resolver
	answer   systems.AnswerFunc
}

func (s *CombatTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.gate = mocks.NewMockQuestionGate(s.ctrl)
	s.outcomes = mocks.NewMockOutcomeListener(s.ctrl)
	s.clock = clock.NewManual(epoch)
	s.answer = nil

	s.setupLevel(spreadLevel(5))
}

func (s *CombatTestSuite) setupLevel(level assets.Level) {
	s.ecs = ecs.NewECS(donburi.NewWorld())
	factory.CreateLevel(s.ecs, levelsOf(level), 0, rand.New(rand.NewSource(1)))
	systems.SetReady(s.ecs, true)

	s.resolver = systems.NewResolver(s.clock, rand.New(rand.NewSource(2)), s.gate, s.outcomes)
	s.ecs.AddSystem(systems.UpdateDeaths)
	s.ecs.AddSystem(systems.UpdateEffects)
	s.ecs.AddSystem(s.resolver.Update)
	setFrame(s.ecs, s.clock.Now())
}

func (s *CombatTestSuite) tick(d time.Duration) {
	s.clock.Advance(d)
	setFrame(s.ecs, s.clock.Now())
	s.ecs.Update()
}

func (s *CombatTestSuite) session() *components.SessionData {
	return systems.GetOrCreateSession(s.ecs)
}

func (s *CombatTestSuite) center(id int) (float64, float64) {
	entry, ok := systems.EnemyByID(s.ecs, id)
	s.Require().True(ok)
	return components.Object.Get(entry).Center()
}

// engage clicks target id and captures the answer callback handed to the gate
func (s *CombatTestSuite) engage(id int) systems.AnswerFunc {
	s.gate.EXPECT().Open(gomock.Any(), gomock.Any()).Do(func(q components.Question, answer systems.AnswerFunc) {
		s.Equal(1, q.Correct)
		s.answer = answer
	})
	x, y := s.center(id)
	s.Require().True(s.resolver.Engage(s.ecs, x, y))
	s.Require().NotNil(s.answer)
	return s.answer
}

func (s *CombatTestSuite) count(kind config.EffectKind) int {
	return len(particles(s.ecs, kind))
}

func (s *CombatTestSuite) TestMissSpawnsShotEffectsOnly() {
	s.False(s.resolver.Engage(s.ecs, 1900, 50))

	s.Equal(1, s.count(config.EffectProjectile))
	s.Equal(8, s.count(config.EffectSpark))
	s.Equal(0, s.count(config.EffectHitRing))
	s.Equal(-1, s.session().Selected)

	view := systems.View(s.ecs)
	s.True(view.MuzzleActive)
	s.Equal(1900.0, view.MuzzleX)
	s.Equal(50.0, view.MuzzleY)
	s.NotZero(view.ShakeX*view.ShakeX + view.ShakeY*view.ShakeY)
	s.Nil(view.Question)
}

func (s *CombatTestSuite) TestHitOpensQuestion() {
	s.engage(2)

	s.Equal(2, s.session().Selected)
	s.Equal(1, s.count(config.EffectHitRing))

	view := systems.View(s.ecs)
	s.Require().NotNil(view.Question)
	s.Equal("Which signal means move out?", view.Question.Text)
	s.True(view.Entities[2].Selected)
	s.False(view.Entities[1].Selected)
}

func (s *CombatTestSuite) TestShotsIgnoredWhileAwaiting() {
	s.engage(0)

	x, y := s.center(1)
	s.False(s.resolver.Engage(s.ecs, x, y))
	s.Equal(1, s.count(config.EffectProjectile), "no second shot")
	s.Equal(0, s.session().Selected)
}

func (s *CombatTestSuite) TestAllCorrectCompletesMissionOnce() {
	s.outcomes.EXPECT().OnMissionComplete(5).Times(1)

	for id := 0; id < 5; id++ {
		s.engage(id)(systems.AnswerCorrect)
		s.Equal(id+1, s.session().Score)
		s.Equal(-1, s.session().Selected)
		if id < 4 {
			s.tick(frameStep)
		}
	}
	s.Equal(0, systems.LiveCount(s.ecs))
	s.True(s.session().Terminal())
	s.Equal("Target Eliminated! +1 Score", s.session().Notice)

	s.tick(999 * time.Millisecond)
	s.False(s.session().Outcome.Fired, "reported before the delay")

	s.tick(time.Millisecond)
	s.True(s.session().Outcome.Fired)

	s.tick(time.Second)
	x, y := s.center(0)
	s.False(s.resolver.Engage(s.ecs, x, y), "decided attempts ignore clicks")
}

func (s *CombatTestSuite) TestWrongAnswerAtZeroEndsImmediately() {
	s.outcomes.EXPECT().OnGameOver(0).Times(1)

	s.engage(0)(systems.AnswerIncorrect)

	s.True(s.session().Outcome.Fired)
	s.Equal(100, s.session().Health)
	s.Equal(0, s.session().Score)

	s.tick(time.Second)
	s.tick(time.Second)
}

func (s *CombatTestSuite) TestWrongAnswerCostsScoreAndHealth() {
	s.engage(0)(systems.AnswerCorrect)
	s.engage(1)(systems.AnswerCorrect)
	s.Require().Equal(2, s.session().Score)

	s.engage(2)(systems.AnswerIncorrect)

	s.Equal(1, s.session().Score)
	s.Equal(75, s.session().Health)
	s.Equal(-1, s.session().Selected)
	s.False(s.session().NoticeGood)
	s.Equal("Enemy Retaliation! -1 Score", s.session().Notice)
	s.Equal(25, s.count(config.EffectPlayerDamage))
	s.Greater(systems.View(s.ecs).FlashAlpha, 0.0)

	entry, _ := systems.EnemyByID(s.ecs, 2)
	s.True(components.Enemy.Get(entry).Alive(), "a wrong answer spares the target")
}

func (s *CombatTestSuite) TestHealthFloorsAtZeroWithoutGameOver() {
	s.session().Score = 10

	for i := 0; i < 5; i++ {
		s.engage(0)(systems.AnswerIncorrect)
	}

	s.Equal(0, s.session().Health)
	s.Equal(5, s.session().Score)
	s.False(s.session().Terminal())
}

func (s *CombatTestSuite) TestStaleAnswersAreIgnored() {
	first := s.engage(0)
	first(systems.AnswerCorrect)
	first(systems.AnswerCorrect)
	s.Equal(1, s.session().Score)

	s.engage(1)
	first(systems.AnswerCorrect)
	s.Equal(1, s.session().Score)
	s.Equal(1, s.session().Selected, "old callback leaves the new question open")
}

func (s *CombatTestSuite) TestCancelKeepsTarget() {
	s.engage(3)(systems.AnswerCancelled)

	s.Equal(-1, s.session().Selected)
	s.Equal(0, s.session().Score)
	s.Equal(100, s.session().Health)
	s.Equal(5, systems.LiveCount(s.ecs))

	s.engage(3)(systems.AnswerCorrect)
	s.Equal(1, s.session().Score)
}

func (s *CombatTestSuite) TestKilledTargetFalls() {
	s.engage(0)(systems.AnswerCorrect)
	s.Equal(1, s.count(config.EffectFallingMarker))
	s.Equal(1, s.count(config.EffectDeathRing))
	s.Equal(20, s.count(config.EffectBlood))

	s.tick(500 * time.Millisecond)
	view := systems.View(s.ecs)
	s.Require().NotNil(view.Entities[0].Fall)
	s.InDelta(0.5, view.Entities[0].Fall.Progress, 1e-9)
	s.InDelta(20.0, view.Entities[0].Fall.OffsetY, 1e-3)
	s.Equal(4, view.Live)

	s.tick(500 * time.Millisecond)
	view = systems.View(s.ecs)
	s.Equal(config.SlotGone, view.Entities[0].Slot)
	s.Nil(view.Entities[0].Fall)

	x, y := s.center(0)
	s.False(s.resolver.Engage(s.ecs, x, y), "gone targets cannot be engaged")
}

func (s *CombatTestSuite) TestAnswerTimeout() {
	prev := config.Combat.AnswerTimeout
	config.Combat.AnswerTimeout = 3 * time.Second
	defer func() { config.Combat.AnswerTimeout = prev }()

	s.engage(0)
	s.gate.EXPECT().Close().Times(1)
	s.outcomes.EXPECT().OnGameOver(0).Times(1)

	s.tick(2999 * time.Millisecond)
	s.True(s.session().Awaiting())

	s.tick(time.Millisecond)
	s.False(s.session().Awaiting())
	s.True(s.session().Outcome.Fired)

	s.answer(systems.AnswerCorrect)
	s.Equal(0, s.session().Score, "late answer is ignored")
}

func (s *CombatTestSuite) TestNoTimeoutByDefault() {
	s.engage(0)
	s.tick(time.Minute)
	s.True(s.session().Awaiting())
}

func (s *CombatTestSuite) TestEmptyRosterCompletesOnFirstTick() {
	level := spreadLevel(0)
	s.setupLevel(level)
	s.outcomes.EXPECT().OnMissionComplete(0).Times(1)

	s.tick(frameStep)
	s.tick(frameStep)
}

func TestCombatTestSuite(t *testing.T) {
	suite.Run(t, new(CombatTestSuite))
}

func TestAnswerFor(t *testing.T) {
	q := components.Question{Options: []string{"a", "b", "c"}, Correct: 2}
	assert.Equal(t, systems.AnswerCorrect, systems.AnswerFor(q, 2))
	assert.Equal(t, systems.AnswerIncorrect, systems.AnswerFor(q, 0))
	assert.Equal(t, systems.AnswerIncorrect, systems.AnswerFor(q, 5))
}

func TestDisplayToScene(t *testing.T) {
	x, y := systems.DisplayToScene(640, 360, 1280, 720)
	assert.Equal(t, 960.0, x)
	assert.Equal(t, 540.0, y)

	x, y = systems.DisplayToScene(10, 20, 0, 0)
	assert.Equal(t, 10.0, x)
	assert.Equal(t, 20.0, y)
}
