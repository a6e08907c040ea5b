package engine

import (
	"github.com/MyNameIsAlexandro/Akinator-2.0-sub000/catalog"
)

// degenerateSplit is the probability below which a yes/no split is treated
// as non-discriminating for the current candidate set.
const degenerateSplit = 1e-12

// InfoGain computes the expected reduction in belief entropy from asking
// the given attribute, treating the answer as a soft Bernoulli variable
// weighted by each candidate's attribute value.
//
// With one candidate or none, no question helps and the gain is 0. An
// attribute whose expected yes-probability is ~0 or ~1 cannot split this
// candidate set and also scores 0; this doubles as the divide-by-zero
// guard for the conditional posteriors. Floating-point noise can make the
// difference marginally negative, so the result is clamped to >= 0.
func InfoGain(s *Session, cat *catalog.Catalog, attributeKey string) float64 {
	n := len(s.Candidates)
	if n <= 1 {
		return 0
	}

	hCurrent := entropyOf(s.Weights)

	var pYes float64
	probs := make([]float64, n)
	for i, id := range s.Candidates {
		p := 0.5
		if e, ok := cat.Entity(id); ok {
			p = e.AttributeValue(attributeKey)
		}
		probs[i] = p
		pYes += s.Weights[i] * p
	}
	pNo := 1 - pYes

	if pYes < degenerateSplit || pNo < degenerateSplit {
		return 0
	}

	wYes := make([]float64, n)
	wNo := make([]float64, n)
	for i, w := range s.Weights {
		wYes[i] = w * probs[i]
		wNo[i] = w * (1 - probs[i])
	}
	normalize(wYes)
	normalize(wNo)

	expected := pYes*entropyOf(wYes) + pNo*entropyOf(wNo)

	gain := hCurrent - expected
	if gain < 0 {
		gain = 0
	}
	return gain
}

// SelectQuestion picks the not-yet-asked attribute with the highest
// expected information gain.
//
// Attributes already asked this game are excluded. So are attributes
// related (per the skip table) to any asked attribute, regardless of how
// that question was answered; near-duplicate questions read as repetitive
// to a human even when they are not byte-identical. Among the rest the
// strictly maximal gain wins, first seen in catalog load order on exact
// ties, keeping selection deterministic.
//
// The second return is false when no attribute qualifies; the caller must
// then force a guess.
func SelectQuestion(s *Session, cat *catalog.Catalog, related catalog.RelatedTable) (*catalog.Attribute, bool) {
	skip := make(map[string]struct{})
	for id := range s.Asked {
		a, ok := cat.AttributeByID(id)
		if !ok {
			continue
		}
		for _, key := range related.Related(a.Key) {
			skip[key] = struct{}{}
		}
	}

	var best *catalog.Attribute
	var bestGain float64
	for _, a := range cat.Attributes() {
		if _, asked := s.Asked[a.ID]; asked {
			continue
		}
		if _, skipped := skip[a.Key]; skipped {
			continue
		}
		gain := InfoGain(s, cat, a.Key)
		if best == nil || gain > bestGain {
			best = a
			bestGain = gain
		}
	}

	if best == nil {
		return nil, false
	}
	return best, true
}
