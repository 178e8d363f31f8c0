package match

import (
	"strings"
)

const (
	// maxKeyIngredients caps how many ingredient tokens join the keyword set.
	maxKeyIngredients = 5

	// minKeyIngredientLen filters out short noise tokens ("2", "oil").
	minKeyIngredientLen = 3
)

// SimilarityKeywords derives the keyword set used for similar-recipe
// retrieval: whitespace-split title words (original case), the category if
// present, and up to 5 normalized ingredient tokens longer than 3
// characters, in their original order. No deduplication is applied.
func SimilarityKeywords(title, category, ingredientsText string) []string {
	keywords := strings.Fields(title)

	if category != "" {
		keywords = append(keywords, category)
	}

	taken := 0
	for _, tok := range NormalizedIngredients(ingredientsText) {
		if len(tok) <= minKeyIngredientLen {
			continue
		}
		keywords = append(keywords, tok)
		taken++
		if taken == maxKeyIngredients {
			break
		}
	}

	return keywords
}
