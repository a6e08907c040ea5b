// Package engine implements the inference core of the guessing game: a
// Bayesian posterior over candidate entities, an expected-information-gain
// question policy, and the session state machine that sequences them.
//
// The package is deliberately stateless: every operation is a pure, bounded
// computation over the Session it is handed plus read-only catalog data.
// There is no logging, no I/O and no global state here; the host owns the
// sessions and serializes access to each one.
package engine

import "github.com/MyNameIsAlexandro/Akinator-2.0-sub000/errors"

// Tuning holds the numeric knobs of the inference core. The defaults are
// the values the game has been tuned with; hosts load overrides from
// configuration.
type Tuning struct {
	// LikelihoodEpsilon floors every answer likelihood so a single answer
	// can never drive a candidate to exactly zero probability.
	LikelihoodEpsilon float64 `mapstructure:"likelihood_epsilon"`

	// PruneThreshold drops candidates whose posterior weight falls below it.
	PruneThreshold float64 `mapstructure:"prune_threshold"`

	// GuessThreshold is the posterior mass at which the engine stops asking
	// and commits to a guess.
	GuessThreshold float64 `mapstructure:"guess_threshold"`

	// SecondGuessThreshold is the weight the runner-up candidate needs for
	// the engine to offer a second guess after the first one is rejected.
	SecondGuessThreshold float64 `mapstructure:"second_guess_threshold"`

	// MaxQuestions hard-caps the question loop.
	MaxQuestions int `mapstructure:"max_questions"`

	// MinQuestionsBeforeEarlyStop delays the few-candidates-left early stop
	// so the engine never snap-guesses from thin evidence.
	MinQuestionsBeforeEarlyStop int `mapstructure:"min_questions_before_early_stop"`

	// EarlyStopCandidates triggers the early stop once at most this many
	// candidates carry non-negligible weight.
	EarlyStopCandidates int `mapstructure:"early_stop_candidates"`
}

// DefaultTuning returns the production defaults.
func DefaultTuning() Tuning {
	return Tuning{
		LikelihoodEpsilon:           0.01,
		PruneThreshold:              1e-6,
		GuessThreshold:              0.85,
		SecondGuessThreshold:        0.70,
		MaxQuestions:                20,
		MinQuestionsBeforeEarlyStop: 5,
		EarlyStopCandidates:         2,
	}
}

// Validate checks that the knobs are inside their sane ranges.
func (t Tuning) Validate() error {
	if t.LikelihoodEpsilon <= 0 || t.LikelihoodEpsilon >= 0.25 {
		return errors.Newf("likelihood_epsilon must be in (0, 0.25), got %g", t.LikelihoodEpsilon)
	}
	if t.PruneThreshold <= 0 || t.PruneThreshold >= 0.1 {
		return errors.Newf("prune_threshold must be in (0, 0.1), got %g", t.PruneThreshold)
	}
	if t.GuessThreshold <= 0.5 || t.GuessThreshold > 1 {
		return errors.Newf("guess_threshold must be in (0.5, 1], got %g", t.GuessThreshold)
	}
	if t.SecondGuessThreshold <= 0 || t.SecondGuessThreshold > 1 {
		return errors.Newf("second_guess_threshold must be in (0, 1], got %g", t.SecondGuessThreshold)
	}
	if t.MaxQuestions <= 0 {
		return errors.Newf("max_questions must be positive, got %d", t.MaxQuestions)
	}
	if t.MinQuestionsBeforeEarlyStop < 0 || t.MinQuestionsBeforeEarlyStop > t.MaxQuestions {
		return errors.Newf("min_questions_before_early_stop must be in [0, max_questions], got %d", t.MinQuestionsBeforeEarlyStop)
	}
	if t.EarlyStopCandidates < 1 {
		return errors.Newf("early_stop_candidates must be at least 1, got %d", t.EarlyStopCandidates)
	}
	return nil
}
