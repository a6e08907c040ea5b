package engine

import "github.com/MyNameIsAlexandro/Akinator-2.0-sub000/errors"

// Answer is the five-way ordinal scale a player answers a question with.
// The fixed five-point scale is load-bearing: the likelihood formulas and
// the conversation surface both depend on exactly these values, so this
// stays a closed enum rather than an arbitrary confidence float.
type Answer uint8

const (
	AnswerYes Answer = iota
	AnswerProbablyYes
	AnswerDontKnow
	AnswerProbablyNo
	AnswerNo
)

// String returns the canonical lowercase name of the answer.
func (a Answer) String() string {
	switch a {
	case AnswerYes:
		return "yes"
	case AnswerProbablyYes:
		return "probably_yes"
	case AnswerDontKnow:
		return "dont_know"
	case AnswerProbablyNo:
		return "probably_no"
	case AnswerNo:
		return "no"
	}
	return "unknown"
}

// MarshalText renders the canonical answer name for JSON output.
func (a Answer) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// ParseAnswer maps a string to an Answer. It accepts the canonical names
// plus the short forms used by the CLI (y/p/d/n and "no").
func ParseAnswer(s string) (Answer, error) {
	switch s {
	case "yes", "y":
		return AnswerYes, nil
	case "probably_yes", "probably", "p":
		return AnswerProbablyYes, nil
	case "dont_know", "don't know", "idk", "d", "?":
		return AnswerDontKnow, nil
	case "probably_no", "pn":
		return AnswerProbablyNo, nil
	case "no", "n":
		return AnswerNo, nil
	}
	return AnswerDontKnow, errors.Wrapf(errors.ErrInvalidAnswer, "%q", s)
}

// Likelihood returns P(answer | entity), given p = the entity's probability
// of answering YES to the asked attribute.
//
//	YES          -> p
//	NO           -> 1 - p
//	PROBABLY_YES -> 0.5*p + 0.25   (soft boost toward p=1, bounded to [0.25, 0.75])
//	PROBABLY_NO  -> 0.75 - 0.5*p   (soft boost toward p=0, bounded to [0.25, 0.75])
//	DONT_KNOW    -> 1              (uninformative; Update skips scoring entirely)
//
// The mapping is total over the enum. Callers floor the result at the
// tuning epsilon so no candidate is eliminated by a single answer.
func (a Answer) Likelihood(p float64) float64 {
	switch a {
	case AnswerYes:
		return p
	case AnswerProbablyYes:
		return 0.5*p + 0.25
	case AnswerProbablyNo:
		return 0.75 - 0.5*p
	case AnswerNo:
		return 1 - p
	}
	return 1
}
