package gamemaster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MyNameIsAlexandro/Akinator-2.0-sub000/catalog"
	"github.com/MyNameIsAlexandro/Akinator-2.0-sub000/engine"
	"github.com/MyNameIsAlexandro/Akinator-2.0-sub000/errors"
	"github.com/MyNameIsAlexandro/Akinator-2.0-sub000/internal/catalogtest"
)

func newManager(t *testing.T) *Manager {
	t.Helper()
	cat, related := catalogtest.Fixture(t)
	return New(cat, related, engine.DefaultTuning())
}

func TestStartGameReplacesExisting(t *testing.T) {
	m := newManager(t)

	first := m.StartGame(1, "en")
	second := m.StartGame(1, "en")

	assert.NotEqual(t, first.ID, second.ID)

	info, err := m.SessionInfo(1)
	require.NoError(t, err)
	assert.Equal(t, second.ID, info.ID)
	assert.Equal(t, engine.ModeWaitingHint, info.Mode)
}

func TestNoGame(t *testing.T) {
	m := newManager(t)

	_, err := m.NextTurn(7)
	assert.True(t, errors.Is(err, errors.ErrNoGame))

	err = m.SubmitAnswer(7, 1, engine.AnswerYes)
	assert.True(t, errors.Is(err, errors.ErrNoGame))

	_, err = m.SessionInfo(7)
	assert.True(t, errors.Is(err, errors.ErrNoGame))
}

func TestSeedCandidates(t *testing.T) {
	m := newManager(t)
	m.StartGame(1, "en")

	err := m.SeedCandidates(1, nil, nil)
	assert.True(t, errors.Is(err, errors.ErrEmptyCatalog))

	require.NoError(t, m.SeedAll(1))

	info, err := m.SessionInfo(1)
	require.NoError(t, err)
	assert.Equal(t, engine.ModeAsking, info.Mode)
	assert.Equal(t, 5, info.Candidates)
	assert.Greater(t, info.EntropyBits, 2.0)

	// Seeding twice is a mode violation.
	err = m.SeedAll(1)
	assert.True(t, errors.Is(err, errors.ErrWrongMode))
}

func TestNextTurnBeforeSeedingFails(t *testing.T) {
	m := newManager(t)
	m.StartGame(1, "en")

	_, err := m.NextTurn(1)
	assert.True(t, errors.Is(err, errors.ErrWrongMode))
}

func TestSubmitAnswerValidation(t *testing.T) {
	m := newManager(t)
	m.StartGame(1, "en")
	require.NoError(t, m.SeedAll(1))

	err := m.SubmitAnswer(1, 999, engine.AnswerYes)
	assert.True(t, errors.Is(err, errors.ErrNotFound))
}

func TestTurnLoopAsksUniqueQuestions(t *testing.T) {
	m := newManager(t)
	m.StartGame(1, "en")
	require.NoError(t, m.SeedAll(1))

	seen := make(map[int64]struct{})
	for i := 0; i < 50; i++ {
		turn, err := m.NextTurn(1)
		require.NoError(t, err)
		if turn.Guess != nil {
			assert.Equal(t, engine.ModeGuessing, turn.Mode)
			return
		}
		require.NotNil(t, turn.Question)
		assert.NotEmpty(t, turn.Text)
		_, dup := seen[turn.Question.ID]
		require.False(t, dup, "question %s asked twice", turn.Question.Key)
		seen[turn.Question.ID] = struct{}{}

		require.NoError(t, m.SubmitAnswer(1, turn.Question.ID, engine.AnswerDontKnow))
	}
	t.Fatal("turn loop never reached a guess")
}

func TestFullGameCorrectGuess(t *testing.T) {
	m := newManager(t)
	cat := m.catalog
	m.StartGame(1, "en")
	require.NoError(t, m.SeedAll(1))

	// Answer every question as Marie Curie.
	target, ok := cat.Entity(catalogtest.CurieID)
	require.True(t, ok)

	var turn *Turn
	for {
		var err error
		turn, err = m.NextTurn(1)
		require.NoError(t, err)
		if turn.Guess != nil {
			break
		}
		p := target.AttributeValue(turn.Question.Key)
		ans := engine.AnswerDontKnow
		switch {
		case p >= 0.85:
			ans = engine.AnswerYes
		case p <= 0.15:
			ans = engine.AnswerNo
		}
		require.NoError(t, m.SubmitAnswer(1, turn.Question.ID, ans))
	}

	assert.Equal(t, int64(catalogtest.CurieID), turn.Guess.EntityID)
	assert.Equal(t, "Marie Curie", turn.Guess.Name)

	// Re-requesting the turn re-presents the same guess.
	repeat, err := m.NextTurn(1)
	require.NoError(t, err)
	require.NotNil(t, repeat.Guess)
	assert.Equal(t, turn.Guess.EntityID, repeat.Guess.EntityID)

	followUp, err := m.SubmitGuessResult(1, true)
	require.NoError(t, err)
	assert.Nil(t, followUp)

	info, err := m.SessionInfo(1)
	require.NoError(t, err)
	assert.Equal(t, engine.ModeFinished, info.Mode)
}

func TestSecondGuessFlow(t *testing.T) {
	cat, related := catalogtest.Fixture(t)
	m := New(cat, related, engine.DefaultTuning())
	m.StartGame(1, "en")

	// Seed with a strong runner-up so a rejected first guess offers it.
	ids := []int64{catalogtest.SherlockID, catalogtest.PoirotID, catalogtest.SwiftID}
	require.NoError(t, m.SeedCandidates(1, ids, []float64{0.28, 0.71, 0.01}))

	// Force the guess without asking questions.
	g, err := m.game(1)
	require.NoError(t, err)
	g.session.Mode = engine.ModeGuessing

	turn, err := m.NextTurn(1)
	require.NoError(t, err)
	require.NotNil(t, turn.Guess)
	assert.Equal(t, int64(catalogtest.PoirotID), turn.Guess.EntityID, "top-weight candidate guessed first")

	followUp, err := m.SubmitGuessResult(1, false)
	require.NoError(t, err)
	require.NotNil(t, followUp, "0.71 runner-up position clears the second-guess bar")
	assert.Equal(t, "Hercule Poirot", followUp.Name)

	followUp, err = m.SubmitGuessResult(1, false)
	require.NoError(t, err)
	assert.Nil(t, followUp)

	info, err := m.SessionInfo(1)
	require.NoError(t, err)
	assert.Equal(t, engine.ModeLearning, info.Mode)

	// Learning wraps up the game.
	require.NoError(t, m.FinishLearning(1))
	info, err = m.SessionInfo(1)
	require.NoError(t, err)
	assert.Equal(t, engine.ModeFinished, info.Mode)
}

func TestSubmitGuessResultWrongMode(t *testing.T) {
	m := newManager(t)
	m.StartGame(1, "en")
	require.NoError(t, m.SeedAll(1))

	_, err := m.SubmitGuessResult(1, true)
	assert.True(t, errors.Is(err, errors.ErrWrongMode))
}

func TestTopAndExplain(t *testing.T) {
	m := newManager(t)
	m.StartGame(1, "en")
	require.NoError(t, m.SeedAll(1))

	turn, err := m.NextTurn(1)
	require.NoError(t, err)
	require.NotNil(t, turn.Question)
	require.NoError(t, m.SubmitAnswer(1, turn.Question.ID, engine.AnswerYes))

	top, err := m.Top(1, 3)
	require.NoError(t, err)
	require.Len(t, top, 3)
	assert.NotEmpty(t, top[0].Name)
	assert.GreaterOrEqual(t, top[0].Weight, top[1].Weight)
	assert.GreaterOrEqual(t, top[1].Weight, top[2].Weight)

	history, err := m.Explain(1)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, turn.Question.Key, history[0].Key)
	assert.Equal(t, engine.AnswerYes, history[0].Answer)
}

func TestAbandon(t *testing.T) {
	m := newManager(t)
	m.StartGame(1, "en")

	m.Abandon(1)
	_, err := m.SessionInfo(1)
	assert.True(t, errors.Is(err, errors.ErrNoGame))

	// Abandoning a missing game is harmless.
	m.Abandon(42)
}

func TestGamesAreIndependentPerUser(t *testing.T) {
	m := newManager(t)
	m.StartGame(1, "en")
	m.StartGame(2, "en")
	require.NoError(t, m.SeedAll(1))

	info1, err := m.SessionInfo(1)
	require.NoError(t, err)
	info2, err := m.SessionInfo(2)
	require.NoError(t, err)

	assert.Equal(t, engine.ModeAsking, info1.Mode)
	assert.Equal(t, engine.ModeWaitingHint, info2.Mode)
}

func TestForcedGuessWhenQuestionsExhausted(t *testing.T) {
	// Two-attribute catalog that cannot separate the candidates: the loop
	// runs out of questions and must force a guess rather than stall.
	c := catalog.New("en")
	require.NoError(t, c.AddAttribute(&catalog.Attribute{ID: 1, Key: "a", Text: map[string]string{"en": "A?"}}))
	require.NoError(t, c.AddAttribute(&catalog.Attribute{ID: 2, Key: "b", Text: map[string]string{"en": "B?"}}))
	require.NoError(t, c.AddEntity(&catalog.Entity{ID: 1, Name: "x", Attributes: map[string]float64{"a": 1, "b": 1}}))
	require.NoError(t, c.AddEntity(&catalog.Entity{ID: 2, Name: "y", Attributes: map[string]float64{"a": 1, "b": 1}}))

	m := New(c, nil, engine.DefaultTuning())
	m.StartGame(1, "en")
	require.NoError(t, m.SeedAll(1))

	for i := 0; i < 3; i++ {
		turn, err := m.NextTurn(1)
		require.NoError(t, err)
		if turn.Guess != nil {
			assert.Equal(t, engine.ModeGuessing, turn.Mode)
			return
		}
		require.NoError(t, m.SubmitAnswer(1, turn.Question.ID, engine.AnswerYes))
	}
	t.Fatal("expected a forced guess after exhausting the questions")
}
