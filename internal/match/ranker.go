package match

import (
	"sort"
)

const (
	// DefaultLimit is the result count for pantry matching when the caller
	// leaves it unspecified.
	DefaultLimit = 10

	// DefaultSimilarLimit is the result count for similar-recipe lookups.
	DefaultSimilarLimit = 5

	// DefaultPoolSize caps how many recipes are fetched for scoring. Recall
	// is limited to the most recent DefaultPoolSize recipes; deployments
	// with larger corpora raise MATCH_POOL_SIZE instead of editing code.
	DefaultPoolSize = 1000

	// MinMatchPercentage is the (strict) threshold a candidate must exceed
	// to be ranked.
	MinMatchPercentage = 50.0
)

// Ranker filters scored candidates against a percentage threshold, orders
// them best-first, and truncates to a limit.
type Ranker struct {
	Threshold float64
}

// NewRanker returns a Ranker with the default >50% threshold.
func NewRanker() Ranker {
	return Ranker{Threshold: MinMatchPercentage}
}

// Rank keeps candidates strictly above the threshold, sorts them by match
// percentage descending, and truncates to limit. The sort is stable so
// equal scores keep the incoming (candidate pool) order, which makes output
// deterministic. A non-positive limit yields an empty result rather than an
// error.
func (r Ranker) Rank(scored []ScoredRecipe, limit int) []ScoredRecipe {
	if limit <= 0 {
		return []ScoredRecipe{}
	}

	ranked := make([]ScoredRecipe, 0, len(scored))
	for _, s := range scored {
		if s.MatchPercentage > r.Threshold {
			ranked = append(ranked, s)
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].MatchPercentage > ranked[j].MatchPercentage
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
