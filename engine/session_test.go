package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MyNameIsAlexandro/Akinator-2.0-sub000/internal/catalogtest"
)

func TestNewSession(t *testing.T) {
	s := NewSession(42, "en")

	assert.Equal(t, ModeWaitingHint, s.Mode)
	assert.Equal(t, int64(42), s.UserID)
	assert.Equal(t, "en", s.Language)
	assert.Empty(t, s.Candidates)
	assert.Empty(t, s.History)
	assert.Zero(t, s.QuestionCount)
	assert.Zero(t, s.GuessCount)
	assert.NotZero(t, s.ID)
	assert.False(t, s.StartedAt.IsZero())
}

func TestInitCandidatesNormalizesScores(t *testing.T) {
	s := NewSession(1, "en")
	InitCandidates(s, []int64{1, 2, 3}, []float64{3, 1, 0})

	assert.Equal(t, ModeAsking, s.Mode)
	assert.InDelta(t, 0.75, s.Weights[0], 1e-12)
	assert.InDelta(t, 0.25, s.Weights[1], 1e-12)
	assert.InDelta(t, 0.0, s.Weights[2], 1e-12)
}

func TestInitCandidatesUniformFallback(t *testing.T) {
	for name, scores := range map[string][]float64{
		"nil":      nil,
		"all_zero": {0, 0, 0, 0},
		"mismatch": {1, 2},
	} {
		t.Run(name, func(t *testing.T) {
			s := NewSession(1, "en")
			InitCandidates(s, []int64{1, 2, 3, 4}, scores)
			for i, w := range s.Weights {
				assert.InDelta(t, 0.25, w, 1e-12, "weight %d", i)
			}
		})
	}
}

func TestProcessAnswerBookkeeping(t *testing.T) {
	cat, _ := catalogtest.Fixture(t)
	s := NewSession(1, "en")
	InitCandidates(s, cat.EntityIDs(), nil)
	tuning := DefaultTuning()

	attr, ok := cat.AttributeByKey("is_fictional")
	require.True(t, ok)

	ProcessAnswer(s, cat, attr, AnswerYes, tuning)

	assert.Equal(t, 1, s.QuestionCount)
	_, asked := s.Asked[attr.ID]
	assert.True(t, asked)
	require.Len(t, s.History, 1)
	assert.Equal(t, "is_fictional", s.History[0].Key)
	assert.Equal(t, "Is your character fictional?", s.History[0].Question)
	assert.Equal(t, AnswerYes, s.History[0].Answer)
	assert.False(t, s.History[0].At.IsZero())
}

func TestProcessAnswerRecordsDontKnow(t *testing.T) {
	cat, _ := catalogtest.Fixture(t)
	s := NewSession(1, "en")
	InitCandidates(s, cat.EntityIDs(), nil)
	tuning := DefaultTuning()

	alive, _ := cat.AttributeByKey("is_alive")
	sci, _ := cat.AttributeByKey("is_scientist")
	ProcessAnswer(s, cat, alive, AnswerDontKnow, tuning)
	ProcessAnswer(s, cat, sci, AnswerYes, tuning)

	// The full history keeps the DONT_KNOW ask; the scored view drops it.
	assert.Len(t, s.History, 2)
	assert.Equal(t, 2, s.QuestionCount)

	scored := s.ScoredHistory()
	require.Len(t, scored, 1)
	assert.Equal(t, "is_scientist", scored[0].Key)
}

func TestShouldGuessConfidence(t *testing.T) {
	tuning := DefaultTuning()

	s := NewSession(1, "en")
	InitCandidates(s, []int64{1, 2, 3}, []float64{0.90, 0.07, 0.03})
	s.QuestionCount = 3
	assert.True(t, ShouldGuess(s, tuning), "0.90 leader clears the 0.85 threshold")

	s = NewSession(1, "en")
	InitCandidates(s, []int64{1, 2, 3}, []float64{0.40, 0.30, 0.30})
	s.QuestionCount = 3
	assert.False(t, ShouldGuess(s, tuning), "no leader, few questions, three candidates")
}

func TestShouldGuessQuestionCap(t *testing.T) {
	tuning := DefaultTuning()

	s := NewSession(1, "en")
	InitCandidates(s, []int64{1, 2, 3}, []float64{0.40, 0.30, 0.30})
	s.QuestionCount = tuning.MaxQuestions
	assert.True(t, ShouldGuess(s, tuning), "cap reached forces a guess")
}

func TestShouldGuessEarlyStop(t *testing.T) {
	tuning := DefaultTuning()

	s := NewSession(1, "en")
	InitCandidates(s, []int64{1, 2}, []float64{0.55, 0.45})

	s.QuestionCount = tuning.MinQuestionsBeforeEarlyStop - 1
	assert.False(t, ShouldGuess(s, tuning), "two candidates but too few questions")

	s.QuestionCount = tuning.MinQuestionsBeforeEarlyStop
	assert.True(t, ShouldGuess(s, tuning), "two candidates after the minimum question count")
}

func TestGuessCandidate(t *testing.T) {
	s := NewSession(1, "en")
	InitCandidates(s, []int64{10, 20, 30}, []float64{0.2, 0.7, 0.1})

	first, ok := GuessCandidate(s)
	require.True(t, ok)
	assert.Equal(t, int64(20), first)

	s.GuessCount = 1
	second, ok := GuessCandidate(s)
	require.True(t, ok)
	assert.Equal(t, int64(10), second)

	// Guess count past the candidate list clamps to the weakest candidate
	// instead of panicking.
	s.GuessCount = 9
	last, ok := GuessCandidate(s)
	require.True(t, ok)
	assert.Equal(t, int64(30), last)
}

func TestGuessCandidateEmpty(t *testing.T) {
	s := NewSession(1, "en")
	_, ok := GuessCandidate(s)
	assert.False(t, ok)
}

func TestHandleGuessResponseCorrect(t *testing.T) {
	s := NewSession(1, "en")
	InitCandidates(s, []int64{1, 2}, nil)
	s.Mode = ModeGuessing

	_, again := HandleGuessResponse(s, true, DefaultTuning())
	assert.False(t, again)
	assert.Equal(t, ModeFinished, s.Mode)
	assert.Zero(t, s.GuessCount)
}

func TestHandleGuessResponseSecondGuess(t *testing.T) {
	tuning := DefaultTuning()

	s := NewSession(1, "en")
	InitCandidates(s, []int64{11, 22, 33}, []float64{0.28, 0.71, 0.01})
	s.Mode = ModeGuessing

	// First wrong guess: the runner-up position carries 0.71 >= 0.70, so
	// the engine offers it and stays in guessing mode.
	next, again := HandleGuessResponse(s, false, tuning)
	require.True(t, again)
	assert.Equal(t, int64(22), next)
	assert.Equal(t, ModeGuessing, s.Mode)
	assert.Equal(t, 1, s.GuessCount)

	// Second wrong guess always moves to learning.
	_, again = HandleGuessResponse(s, false, tuning)
	assert.False(t, again)
	assert.Equal(t, ModeLearning, s.Mode)
	assert.Equal(t, 2, s.GuessCount)
}

func TestHandleGuessResponseWeakRunnerUp(t *testing.T) {
	s := NewSession(1, "en")
	InitCandidates(s, []int64{1, 2, 3}, []float64{0.5, 0.3, 0.2})
	s.Mode = ModeGuessing

	_, again := HandleGuessResponse(s, false, DefaultTuning())
	assert.False(t, again, "0.3 runner-up is below the 0.70 threshold")
	assert.Equal(t, ModeLearning, s.Mode)
}

func TestHandleGuessResponseSingleCandidate(t *testing.T) {
	s := NewSession(1, "en")
	InitCandidates(s, []int64{1}, nil)
	s.Mode = ModeGuessing

	_, again := HandleGuessResponse(s, false, DefaultTuning())
	assert.False(t, again)
	assert.Equal(t, ModeLearning, s.Mode)
}

func TestFinishLearning(t *testing.T) {
	s := NewSession(1, "en")
	s.Mode = ModeLearning
	FinishLearning(s)
	assert.Equal(t, ModeFinished, s.Mode)
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "waiting_hint", ModeWaitingHint.String())
	assert.Equal(t, "asking", ModeAsking.String())
	assert.Equal(t, "guessing", ModeGuessing.String())
	assert.Equal(t, "learning", ModeLearning.String())
	assert.Equal(t, "finished", ModeFinished.String())
	assert.Equal(t, "unknown", Mode(99).String())
}

func TestFullGameNarrowsToSherlock(t *testing.T) {
	cat, related := catalogtest.Fixture(t)
	tuning := DefaultTuning()

	// Oracle answers as Sherlock Holmes would.
	oracle := func(key string) Answer {
		e, ok := cat.Entity(catalogtest.SherlockID)
		require.True(t, ok)
		p := e.AttributeValue(key)
		switch {
		case p >= 0.85:
			return AnswerYes
		case p <= 0.15:
			return AnswerNo
		case p >= 0.6:
			return AnswerProbablyYes
		case p <= 0.4:
			return AnswerProbablyNo
		}
		return AnswerDontKnow
	}

	s := NewSession(1, "en")
	InitCandidates(s, cat.EntityIDs(), nil)

	for !ShouldGuess(s, tuning) {
		attr, ok := SelectQuestion(s, cat, related)
		require.True(t, ok, "question pool exhausted before a guess was possible")
		ProcessAnswer(s, cat, attr, oracle(attr.Key), tuning)
	}

	guess, ok := GuessCandidate(s)
	require.True(t, ok)
	assert.Equal(t, int64(catalogtest.SherlockID), guess)
	assert.LessOrEqual(t, s.QuestionCount, tuning.MaxQuestions)
}

func TestTuningValidate(t *testing.T) {
	assert.NoError(t, DefaultTuning().Validate())

	mutate := func(fn func(*Tuning)) Tuning {
		tn := DefaultTuning()
		fn(&tn)
		return tn
	}

	cases := map[string]Tuning{
		"epsilon_zero":    mutate(func(tn *Tuning) { tn.LikelihoodEpsilon = 0 }),
		"epsilon_too_big": mutate(func(tn *Tuning) { tn.LikelihoodEpsilon = 0.3 }),
		"prune_negative":  mutate(func(tn *Tuning) { tn.PruneThreshold = -1 }),
		"prune_too_big":   mutate(func(tn *Tuning) { tn.PruneThreshold = 0.5 }),
		"guess_low":       mutate(func(tn *Tuning) { tn.GuessThreshold = 0.5 }),
		"guess_high":      mutate(func(tn *Tuning) { tn.GuessThreshold = 1.1 }),
		"second_zero":     mutate(func(tn *Tuning) { tn.SecondGuessThreshold = 0 }),
		"max_questions":   mutate(func(tn *Tuning) { tn.MaxQuestions = 0 }),
		"min_above_max":   mutate(func(tn *Tuning) { tn.MinQuestionsBeforeEarlyStop = 99 }),
		"early_stop_zero": mutate(func(tn *Tuning) { tn.EarlyStopCandidates = 0 }),
	}
	for name, tn := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Error(t, tn.Validate())
		})
	}
}
