package match

import (
	"strings"

	"github.com/pantrycook/pantrycook/backend/internal/model"
)

// Strategy decides whether one available ingredient counts as present in a
// recipe's ingredient text. The substring default trades precision for
// recall ("oil" matches "olive oil"); swapping in a canonical-ingredient
// strategy does not change the Scorer's contract.
type Strategy interface {
	Matches(ingredientsText, available string) bool
}

// SubstringStrategy matches when the lower-cased available ingredient is a
// substring of the lower-cased recipe ingredient text.
type SubstringStrategy struct{}

func (SubstringStrategy) Matches(ingredientsText, available string) bool {
	return strings.Contains(strings.ToLower(ingredientsText), strings.ToLower(available))
}

// Score is the outcome of matching one recipe against a pantry.
type Score struct {
	MatchPercentage float64
	MissingCount    int
}

// ScoredRecipe pairs a recipe with its pantry match score.
type ScoredRecipe struct {
	Recipe          model.Recipe `json:"recipe"`
	MatchPercentage float64      `json:"match_percentage"`
	MissingCount    int          `json:"missing_ingredients"`
}

// Scorer computes pantry match scores using a pluggable matching strategy.
type Scorer struct {
	strategy Strategy
}

// NewScorer creates a Scorer; a nil strategy falls back to SubstringStrategy.
func NewScorer(strategy Strategy) *Scorer {
	if strategy == nil {
		strategy = SubstringStrategy{}
	}
	return &Scorer{strategy: strategy}
}

// Score matches each available ingredient against the recipe's ingredient
// text and reports the match percentage and missing-ingredient count.
//
// matching is counted per available ingredient (duplicates count twice) and
// is therefore bounded by len(available), not by the recipe's token count:
// when the caller supplies more matching ingredients than the recipe has
// tokens, MissingCount goes negative. That raw arithmetic is kept on
// purpose; callers that need a floor clamp it themselves.
func (s *Scorer) Score(ingredientsText string, available []string) Score {
	total := len(SplitIngredients(ingredientsText))
	if total == 0 {
		return Score{}
	}

	matching := 0
	for _, a := range available {
		if s.strategy.Matches(ingredientsText, a) {
			matching++
		}
	}

	return Score{
		MatchPercentage: 100.0 * float64(matching) / float64(total),
		MissingCount:    total - matching,
	}
}
