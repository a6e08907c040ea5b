package engine

import (
	"math"
	"sort"

	"github.com/MyNameIsAlexandro/Akinator-2.0-sub000/catalog"
)

// Ranked pairs an entity id with its posterior weight.
type Ranked struct {
	EntityID int64
	Weight   float64
}

// Update performs one Bayesian belief update on the session: multiply each
// candidate's weight by the likelihood of the observed answer given that
// candidate's attribute value, renormalize, then prune negligible
// candidates.
//
// A DONT_KNOW answer is a strict no-op: the weight vector is left
// bit-for-bit unchanged so replays stay deterministic.
//
// Candidates whose entities are missing from the catalog read as unknown
// (p = 0.5) rather than failing; a shrinking late-game candidate set is an
// expected condition, not an error.
func Update(s *Session, cat *catalog.Catalog, attributeKey string, ans Answer, t Tuning) {
	if ans == AnswerDontKnow || len(s.Candidates) == 0 {
		return
	}

	for i, id := range s.Candidates {
		p := 0.5
		if e, ok := cat.Entity(id); ok {
			p = e.AttributeValue(attributeKey)
		}
		l := ans.Likelihood(p)
		if l < t.LikelihoodEpsilon {
			l = t.LikelihoodEpsilon
		}
		s.Weights[i] *= l
	}

	normalize(s.Weights)
	prune(s, t.PruneThreshold)
}

// normalize scales the weights to sum to 1. A non-positive sum (impossible
// given the epsilon floor, but guarded anyway) leaves the vector untouched
// rather than dividing by zero.
func normalize(ws []float64) {
	var sum float64
	for _, w := range ws {
		sum += w
	}
	if sum <= 0 {
		return
	}
	for i := range ws {
		ws[i] /= sum
	}
}

// prune drops candidates below the threshold and renormalizes the
// survivors. If pruning would remove every candidate, the pre-prune set is
// kept unchanged: the candidate set must never be emptied by pruning.
func prune(s *Session, threshold float64) {
	keep := 0
	for _, w := range s.Weights {
		if w >= threshold {
			keep++
		}
	}
	if keep == 0 || keep == len(s.Candidates) {
		return
	}

	ids := make([]int64, 0, keep)
	ws := make([]float64, 0, keep)
	for i, w := range s.Weights {
		if w >= threshold {
			ids = append(ids, s.Candidates[i])
			ws = append(ws, w)
		}
	}
	s.Candidates = ids
	s.Weights = ws
	normalize(s.Weights)
}

// TopK returns the k highest-weight candidates in descending weight order.
// Ties preserve candidate order (stable sort), so the result is
// deterministic for a fixed session.
func TopK(s *Session, k int) []Ranked {
	ranked := make([]Ranked, len(s.Candidates))
	for i, id := range s.Candidates {
		ranked[i] = Ranked{EntityID: id, Weight: s.Weights[i]}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Weight > ranked[j].Weight
	})
	if k < len(ranked) {
		ranked = ranked[:k]
	}
	return ranked
}

// MaxProb returns the single highest-weight candidate. On ties the first
// candidate in session order wins. The second return is false when the
// session has no candidates.
func MaxProb(s *Session) (Ranked, bool) {
	if len(s.Candidates) == 0 {
		return Ranked{}, false
	}
	best := 0
	for i, w := range s.Weights {
		if w > s.Weights[best] {
			best = i
		}
	}
	return Ranked{EntityID: s.Candidates[best], Weight: s.Weights[best]}, true
}

// Entropy returns the Shannon entropy of the belief in bits. Zero weights
// contribute zero, not NaN; a single-candidate belief has entropy 0.
func Entropy(s *Session) float64 {
	return entropyOf(s.Weights)
}

func entropyOf(ws []float64) float64 {
	var h float64
	for _, w := range ws {
		if w > 0 {
			h -= w * math.Log2(w)
		}
	}
	return h
}
