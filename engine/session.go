package engine

import (
	"time"

	"github.com/google/uuid"

	"github.com/MyNameIsAlexandro/Akinator-2.0-sub000/catalog"
)

// Mode is the state of a game session.
type Mode uint8

const (
	// ModeWaitingHint: created, waiting for the host to seed candidates.
	ModeWaitingHint Mode = iota
	// ModeAsking: the question loop is running.
	ModeAsking
	// ModeGuessing: the engine has committed to guessing.
	ModeGuessing
	// ModeLearning: guesses exhausted; waiting for the player to reveal
	// the answer so the host can learn a new entity.
	ModeLearning
	// ModeFinished: terminal.
	ModeFinished
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeWaitingHint:
		return "waiting_hint"
	case ModeAsking:
		return "asking"
	case ModeGuessing:
		return "guessing"
	case ModeLearning:
		return "learning"
	case ModeFinished:
		return "finished"
	}
	return "unknown"
}

// MarshalText renders the mode name, so JSON output carries "asking"
// rather than an opaque enum number.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// HistoryEntry records one asked question and the answer given. The
// question text is captured as shown (localized) so explanations replay
// exactly what the player saw.
type HistoryEntry struct {
	AttributeID int64     `json:"attribute_id"`
	Key         string    `json:"key"`
	Question    string    `json:"question"`
	Answer      Answer    `json:"answer"`
	At          time.Time `json:"at"`
}

// Session is the complete mutable state of one in-progress game. It is
// owned by exactly one logical game at a time; the host serializes all
// access to it. Candidates and Weights are index-aligned at all times.
type Session struct {
	ID       uuid.UUID
	UserID   int64
	Language string
	Mode     Mode

	Candidates []int64
	Weights    []float64

	Asked   map[int64]struct{}
	History []HistoryEntry

	QuestionCount int
	GuessCount    int

	StartedAt time.Time
}

// NewSession creates a session in ModeWaitingHint with empty candidates,
// zero counters and empty history.
func NewSession(userID int64, language string) *Session {
	return &Session{
		ID:        uuid.New(),
		UserID:    userID,
		Language:  language,
		Mode:      ModeWaitingHint,
		Asked:     make(map[int64]struct{}),
		StartedAt: time.Now(),
	}
}

// InitCandidates seeds the candidate set and transitions to ModeAsking.
//
// When scores are provided (index-aligned with ids) they are normalized
// into a prior distribution; an all-zero score vector falls back to
// uniform, as does a nil scores slice. How the ids were chosen is the
// seeder's business; the engine only needs ids and optional priors.
func InitCandidates(s *Session, ids []int64, scores []float64) {
	s.Candidates = make([]int64, len(ids))
	copy(s.Candidates, ids)
	s.Weights = make([]float64, len(ids))

	uniform := true
	if len(scores) == len(ids) && len(scores) > 0 {
		var sum float64
		for _, sc := range scores {
			sum += sc
		}
		if sum > 0 {
			for i, sc := range scores {
				s.Weights[i] = sc / sum
			}
			uniform = false
		}
	}
	if uniform && len(ids) > 0 {
		w := 1 / float64(len(ids))
		for i := range s.Weights {
			s.Weights[i] = w
		}
	}

	s.Mode = ModeAsking
}

// ProcessAnswer is the single per-turn orchestration step: score the
// answer, then record the ask. It must be called exactly once per
// attribute actually asked, including DONT_KNOW answers: the history
// records the attempt even though DONT_KNOW skips the weight update.
func ProcessAnswer(s *Session, cat *catalog.Catalog, attr *catalog.Attribute, ans Answer, t Tuning) {
	Update(s, cat, attr.Key, ans, t)

	s.QuestionCount++
	s.Asked[attr.ID] = struct{}{}
	s.History = append(s.History, HistoryEntry{
		AttributeID: attr.ID,
		Key:         attr.Key,
		Question:    attr.Question(s.Language, cat.DefaultLanguage()),
		Answer:      ans,
		At:          time.Now(),
	})
}

// ScoredHistory returns the history entries that actually moved the
// belief, i.e. everything except DONT_KNOW answers. The learning flow
// re-derives attribute values for a new entity from these.
func (s *Session) ScoredHistory() []HistoryEntry {
	out := make([]HistoryEntry, 0, len(s.History))
	for _, h := range s.History {
		if h.Answer != AnswerDontKnow {
			out = append(out, h)
		}
	}
	return out
}

// ShouldGuess is the stopping rule, evaluated after every processed
// answer. It fires when the leading candidate is confident enough, when
// the hard question cap is reached, or when the field has narrowed to a
// coin flip after a minimum number of questions.
func ShouldGuess(s *Session, t Tuning) bool {
	if best, ok := MaxProb(s); ok && best.Weight >= t.GuessThreshold {
		return true
	}
	if s.QuestionCount >= t.MaxQuestions {
		return true
	}
	if s.QuestionCount >= t.MinQuestionsBeforeEarlyStop {
		alive := 0
		for _, w := range s.Weights {
			if w > t.PruneThreshold {
				alive++
			}
		}
		if alive > 0 && alive <= t.EarlyStopCandidates {
			return true
		}
	}
	return false
}

// GuessCandidate returns the entity to present as the current guess: the
// top candidate on the first guess, the runner-up on a second guess, and
// so on, clamped to the last candidate so a repeat guess is still possible
// with very few candidates. False when there are no candidates.
func GuessCandidate(s *Session) (int64, bool) {
	if len(s.Candidates) == 0 {
		return 0, false
	}
	ranked := TopK(s, len(s.Candidates))
	idx := s.GuessCount
	if idx > len(ranked)-1 {
		idx = len(ranked) - 1
	}
	return ranked[idx].EntityID, true
}

// HandleGuessResponse advances the state machine after the player confirms
// or rejects a guess.
//
// A correct guess finishes the game. After the first wrong guess, if a
// runner-up candidate still carries enough weight the session stays in
// ModeGuessing and that candidate's id is returned as the follow-up guess;
// otherwise (or after a second wrong guess) the session moves to
// ModeLearning and the host must ask the player to reveal the answer.
//
// The runner-up check reads position 1 of the candidate vector, matching
// the behavior the game has always had: seeders supply candidates in
// descending prior order, so position 1 is the second-best candidate in
// practice.
func HandleGuessResponse(s *Session, correct bool, t Tuning) (int64, bool) {
	if correct {
		s.Mode = ModeFinished
		return 0, false
	}

	s.GuessCount++
	if s.GuessCount < 2 && len(s.Candidates) >= 2 && s.Weights[1] >= t.SecondGuessThreshold {
		return s.Candidates[1], true
	}

	s.Mode = ModeLearning
	return 0, false
}

// FinishLearning transitions ModeLearning to ModeFinished once the host
// has collected whatever it needed from the player.
func FinishLearning(s *Session) {
	s.Mode = ModeFinished
}
