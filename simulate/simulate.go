// Package simulate plays the guessing game against itself: a scripted
// oracle answers for a chosen target entity while the engine asks, and
// the harness reports whether the engine found the target and how many
// questions it took. It doubles as an accuracy check for catalog data.
package simulate

import (
	"github.com/MyNameIsAlexandro/Akinator-2.0-sub000/catalog"
	"github.com/MyNameIsAlexandro/Akinator-2.0-sub000/engine"
	"github.com/MyNameIsAlexandro/Akinator-2.0-sub000/errors"
	"github.com/MyNameIsAlexandro/Akinator-2.0-sub000/logger"
)

// Oracle answers questions the way a player thinking of the target entity
// would: thresholds on the target's attribute value map to the five-way
// answer scale.
type Oracle struct {
	target *catalog.Entity
}

// NewOracle builds an oracle for the given target.
func NewOracle(target *catalog.Entity) *Oracle {
	return &Oracle{target: target}
}

// Answer maps the target's value for the attribute to an answer.
//
// An attribute the target does not define answers NO, not DONT_KNOW: a
// real player asked about a property their character conspicuously lacks
// says no. This is deliberately different from the engine's neutral 0.5
// reading of the same gap, and it is what makes the simulation honest
// about sparse catalog data.
func (o *Oracle) Answer(attributeKey string) engine.Answer {
	if _, ok := o.target.Attributes[attributeKey]; !ok {
		return engine.AnswerNo
	}
	p := o.target.Attributes[attributeKey]
	switch {
	case p >= 0.85:
		return engine.AnswerYes
	case p <= 0.15:
		return engine.AnswerNo
	case p >= 0.60:
		return engine.AnswerProbablyYes
	case p <= 0.40:
		return engine.AnswerProbablyNo
	}
	return engine.AnswerDontKnow
}

// Result is the outcome of one simulated game.
type Result struct {
	TargetID   int64  `json:"target_id"`
	TargetName string `json:"target_name"`
	GuessedID  int64  `json:"guessed_id"`
	Correct    bool   `json:"correct"`
	Questions  int    `json:"questions"`
	Guesses    int    `json:"guesses"`
}

// Run plays one full game with targetID as the hidden answer. The game
// loop mirrors the interactive one: select a question, answer via the
// oracle, update, and guess once the stopping rule fires or the question
// pool runs out. A rejected guess exercises the second-guess path before
// the game gives up.
func Run(cat *catalog.Catalog, related catalog.RelatedTable, tuning engine.Tuning, targetID int64) (Result, error) {
	target, ok := cat.Entity(targetID)
	if !ok {
		return Result{}, errors.Wrapf(errors.ErrNotFound, "entity %d", targetID)
	}
	oracle := NewOracle(target)

	s := engine.NewSession(0, cat.DefaultLanguage())
	engine.InitCandidates(s, cat.EntityIDs(), nil)

	for !engine.ShouldGuess(s, tuning) {
		attr, ok := engine.SelectQuestion(s, cat, related)
		if !ok {
			break
		}
		engine.ProcessAnswer(s, cat, attr, oracle.Answer(attr.Key), tuning)
	}

	res := Result{TargetID: targetID, TargetName: target.Name}
	s.Mode = engine.ModeGuessing
	for {
		id, ok := engine.GuessCandidate(s)
		if !ok {
			break
		}
		res.Guesses++
		res.GuessedID = id
		if id == targetID {
			res.Correct = true
			engine.HandleGuessResponse(s, true, tuning)
			break
		}
		if _, again := engine.HandleGuessResponse(s, false, tuning); !again {
			break
		}
	}
	res.Questions = s.QuestionCount

	logger.Debugw("simulated game",
		logger.FieldEntityID, res.TargetID,
		logger.FieldEntityName, res.TargetName,
		"correct", res.Correct,
		logger.FieldQuestionCount, res.Questions,
		logger.FieldGuessCount, res.Guesses,
	)
	return res, nil
}

// Stats aggregates a batch of simulated games.
type Stats struct {
	Games        int      `json:"games"`
	Correct      int      `json:"correct"`
	Accuracy     float64  `json:"accuracy"`
	AvgQuestions float64  `json:"avg_questions"`
	Results      []Result `json:"results"`
}

// RunBatch plays one game per catalog entity and aggregates the outcomes.
func RunBatch(cat *catalog.Catalog, related catalog.RelatedTable, tuning engine.Tuning) (Stats, error) {
	ids := cat.EntityIDs()
	stats := Stats{Results: make([]Result, 0, len(ids))}

	var questions int
	for _, id := range ids {
		res, err := Run(cat, related, tuning, id)
		if err != nil {
			return Stats{}, err
		}
		stats.Games++
		if res.Correct {
			stats.Correct++
		}
		questions += res.Questions
		stats.Results = append(stats.Results, res)
	}

	if stats.Games > 0 {
		stats.Accuracy = float64(stats.Correct) / float64(stats.Games)
		stats.AvgQuestions = float64(questions) / float64(stats.Games)
	}

	logger.Infow("simulation batch finished",
		logger.FieldCount, stats.Games,
		"correct", stats.Correct,
		"accuracy", stats.Accuracy,
	)
	return stats, nil
}
