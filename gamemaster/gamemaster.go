// Package gamemaster is the host side of the guessing game: it owns the
// live sessions, serializes access to each one, and drives the engine's
// question/guess loop on behalf of a caller (CLI, simulation harness, or
// whatever front end embeds it).
//
// The engine itself is stateless; everything stateful lives here. Each
// player has at most one game at a time and every mutation of that game
// happens under its own mutex.
package gamemaster

import (
	"sync"

	"github.com/google/uuid"

	"github.com/MyNameIsAlexandro/Akinator-2.0-sub000/catalog"
	"github.com/MyNameIsAlexandro/Akinator-2.0-sub000/engine"
	"github.com/MyNameIsAlexandro/Akinator-2.0-sub000/errors"
	"github.com/MyNameIsAlexandro/Akinator-2.0-sub000/logger"
)

// Guess is an entity the engine proposes as the answer.
type Guess struct {
	EntityID int64   `json:"entity_id"`
	Name     string  `json:"name"`
	Weight   float64 `json:"weight"`
}

// Turn is what the host tells the front end to do next: either ask the
// question (Question set, Guess nil) or present the guess (Guess set,
// Question nil). Mode reflects the session after the turn was computed.
type Turn struct {
	Mode     engine.Mode        `json:"mode"`
	Question *catalog.Attribute `json:"question,omitempty"`
	Text     string             `json:"text,omitempty"`
	Guess    *Guess             `json:"guess,omitempty"`
}

// SessionInfo is a read-only snapshot of a game's public state.
type SessionInfo struct {
	ID            uuid.UUID   `json:"id"`
	UserID        int64       `json:"user_id"`
	Language      string      `json:"language"`
	Mode          engine.Mode `json:"mode"`
	Candidates    int         `json:"candidates"`
	QuestionCount int         `json:"question_count"`
	GuessCount    int         `json:"guess_count"`
	EntropyBits   float64     `json:"entropy_bits"`
}

type game struct {
	mu      sync.Mutex
	session *engine.Session
}

// Manager hosts one game per user over a shared catalog.
type Manager struct {
	catalog *catalog.Catalog
	related catalog.RelatedTable
	tuning  engine.Tuning

	mu    sync.RWMutex
	games map[int64]*game
}

// New creates a Manager over the given catalog, related-attribute table
// and tuning.
func New(cat *catalog.Catalog, related catalog.RelatedTable, tuning engine.Tuning) *Manager {
	return &Manager{
		catalog: cat,
		related: related,
		tuning:  tuning,
		games:   make(map[int64]*game),
	}
}

// StartGame creates a fresh session for the user, replacing any game in
// progress. The new session waits for candidates to be seeded.
func (m *Manager) StartGame(userID int64, language string) SessionInfo {
	s := engine.NewSession(userID, language)

	m.mu.Lock()
	m.games[userID] = &game{session: s}
	m.mu.Unlock()

	logger.Infow("game started",
		logger.FieldSessionID, s.ID.String(),
		logger.FieldUserID, userID,
		logger.FieldLanguage, language,
	)
	return snapshot(s)
}

// SeedCandidates seeds the game's candidate set with optional prior
// scores and starts the question loop. How the ids were selected is the
// caller's concern.
func (m *Manager) SeedCandidates(userID int64, ids []int64, scores []float64) error {
	g, err := m.game(userID)
	if err != nil {
		return err
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	s := g.session
	if s.Mode != engine.ModeWaitingHint {
		return errors.Wrapf(errors.ErrWrongMode, "cannot seed candidates in mode %s", s.Mode)
	}
	if len(ids) == 0 {
		return errors.Wrap(errors.ErrEmptyCatalog, "no candidates to seed")
	}

	engine.InitCandidates(s, ids, scores)
	logger.Infow("candidates seeded",
		logger.FieldSessionID, s.ID.String(),
		logger.FieldCandidates, len(ids),
		logger.FieldEntropyBits, engine.Entropy(s),
	)
	return nil
}

// SeedAll seeds every entity in the catalog with a uniform prior.
func (m *Manager) SeedAll(userID int64) error {
	return m.SeedCandidates(userID, m.catalog.EntityIDs(), nil)
}

// NextTurn computes the next thing to show the player: the most
// informative remaining question, or a guess once the stopping rule fires
// or the question pool runs dry. Calling it again while a guess is pending
// re-presents the same guess.
func (m *Manager) NextTurn(userID int64) (*Turn, error) {
	g, err := m.game(userID)
	if err != nil {
		return nil, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	s := g.session
	switch s.Mode {
	case engine.ModeAsking:
		if engine.ShouldGuess(s, m.tuning) {
			return m.commitGuess(s)
		}
		attr, ok := engine.SelectQuestion(s, m.catalog, m.related)
		if !ok {
			// Every usable question has been asked; guessing is all
			// that is left.
			return m.commitGuess(s)
		}
		logger.Debugw("question selected",
			logger.FieldSessionID, s.ID.String(),
			logger.FieldAttributeKey, attr.Key,
			logger.FieldEntropyBits, engine.Entropy(s),
		)
		return &Turn{
			Mode:     s.Mode,
			Question: attr,
			Text:     attr.Question(s.Language, m.catalog.DefaultLanguage()),
		}, nil
	case engine.ModeGuessing:
		id, ok := engine.GuessCandidate(s)
		if !ok {
			return nil, errors.Wrap(errors.ErrNoQuestion, "no candidate to guess")
		}
		return &Turn{Mode: s.Mode, Guess: m.guessFor(s, id)}, nil
	}
	return nil, errors.Wrapf(errors.ErrWrongMode, "cannot take a turn in mode %s", s.Mode)
}

// commitGuess flips the session into guessing mode and builds the guess
// turn. Caller holds the game mutex.
func (m *Manager) commitGuess(s *engine.Session) (*Turn, error) {
	id, ok := engine.GuessCandidate(s)
	if !ok {
		return nil, errors.Wrap(errors.ErrNoQuestion, "no candidate to guess")
	}
	s.Mode = engine.ModeGuessing
	guess := m.guessFor(s, id)
	logger.Infow("guess committed",
		logger.FieldSessionID, s.ID.String(),
		logger.FieldEntityID, guess.EntityID,
		logger.FieldEntityName, guess.Name,
		logger.FieldWeight, guess.Weight,
		logger.FieldQuestionCount, s.QuestionCount,
	)
	return &Turn{Mode: s.Mode, Guess: guess}, nil
}

func (m *Manager) guessFor(s *engine.Session, id int64) *Guess {
	guess := &Guess{EntityID: id}
	if e, ok := m.catalog.Entity(id); ok {
		guess.Name = e.Name
	}
	for i, cid := range s.Candidates {
		if cid == id {
			guess.Weight = s.Weights[i]
			break
		}
	}
	return guess
}

// SubmitAnswer scores the player's answer to the given attribute and
// advances the question counter.
func (m *Manager) SubmitAnswer(userID, attributeID int64, ans engine.Answer) error {
	g, err := m.game(userID)
	if err != nil {
		return err
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	s := g.session
	if s.Mode != engine.ModeAsking {
		return errors.Wrapf(errors.ErrWrongMode, "cannot answer in mode %s", s.Mode)
	}
	attr, ok := m.catalog.AttributeByID(attributeID)
	if !ok {
		return errors.Wrapf(errors.ErrNotFound, "attribute %d", attributeID)
	}

	engine.ProcessAnswer(s, m.catalog, attr, ans, m.tuning)
	logger.Debugw("answer processed",
		logger.FieldSessionID, s.ID.String(),
		logger.FieldAttributeKey, attr.Key,
		logger.FieldAnswer, ans.String(),
		logger.FieldCandidates, len(s.Candidates),
		logger.FieldEntropyBits, engine.Entropy(s),
	)
	return nil
}

// SubmitGuessResult records whether the presented guess was right. On a
// rejected first guess a strong runner-up may be returned as a follow-up
// guess; otherwise the session moves to learning and nil is returned.
func (m *Manager) SubmitGuessResult(userID int64, correct bool) (*Guess, error) {
	g, err := m.game(userID)
	if err != nil {
		return nil, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	s := g.session
	if s.Mode != engine.ModeGuessing {
		return nil, errors.Wrapf(errors.ErrWrongMode, "no guess pending in mode %s", s.Mode)
	}

	nextID, again := engine.HandleGuessResponse(s, correct, m.tuning)
	logger.Infow("guess result",
		logger.FieldSessionID, s.ID.String(),
		"correct", correct,
		logger.FieldMode, s.Mode.String(),
		logger.FieldGuessCount, s.GuessCount,
	)
	if again {
		return m.guessFor(s, nextID), nil
	}
	return nil, nil
}

// FinishLearning ends the learning phase once the caller has collected the
// revealed answer from the player.
func (m *Manager) FinishLearning(userID int64) error {
	g, err := m.game(userID)
	if err != nil {
		return err
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	s := g.session
	if s.Mode != engine.ModeLearning {
		return errors.Wrapf(errors.ErrWrongMode, "not learning in mode %s", s.Mode)
	}
	engine.FinishLearning(s)
	logger.Infow("learning finished", logger.FieldSessionID, s.ID.String())
	return nil
}

// Abandon drops the user's game, if any.
func (m *Manager) Abandon(userID int64) {
	m.mu.Lock()
	g, ok := m.games[userID]
	delete(m.games, userID)
	m.mu.Unlock()

	if ok {
		logger.Infow("game abandoned",
			logger.FieldSessionID, g.session.ID.String(),
			logger.FieldUserID, userID,
		)
	}
}

// Top returns the k leading candidates with their names resolved.
func (m *Manager) Top(userID int64, k int) ([]Guess, error) {
	g, err := m.game(userID)
	if err != nil {
		return nil, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	ranked := engine.TopK(g.session, k)
	out := make([]Guess, len(ranked))
	for i, r := range ranked {
		out[i] = Guess{EntityID: r.EntityID, Weight: r.Weight}
		if e, ok := m.catalog.Entity(r.EntityID); ok {
			out[i].Name = e.Name
		}
	}
	return out, nil
}

// Explain returns a copy of the game's question history, in order.
func (m *Manager) Explain(userID int64) ([]engine.HistoryEntry, error) {
	g, err := m.game(userID)
	if err != nil {
		return nil, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	out := make([]engine.HistoryEntry, len(g.session.History))
	copy(out, g.session.History)
	return out, nil
}

// SessionInfo returns a snapshot of the user's current game.
func (m *Manager) SessionInfo(userID int64) (SessionInfo, error) {
	g, err := m.game(userID)
	if err != nil {
		return SessionInfo{}, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return snapshot(g.session), nil
}

func (m *Manager) game(userID int64) (*game, error) {
	m.mu.RLock()
	g, ok := m.games[userID]
	m.mu.RUnlock()
	if !ok {
		return nil, errors.Wrapf(errors.ErrNoGame, "user %d", userID)
	}
	return g, nil
}

func snapshot(s *engine.Session) SessionInfo {
	return SessionInfo{
		ID:            s.ID,
		UserID:        s.UserID,
		Language:      s.Language,
		Mode:          s.Mode,
		Candidates:    len(s.Candidates),
		QuestionCount: s.QuestionCount,
		GuessCount:    s.GuessCount,
		EntropyBits:   engine.Entropy(s),
	}
}
