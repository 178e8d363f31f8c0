// Package match implements the ingredient-availability matching engine:
// tokenization of free-text ingredient lists, per-recipe match scoring
// against a pantry, threshold ranking, and similarity keyword extraction.
package match

import (
	"strings"
)

// SplitIngredients splits a free-text ingredient field ("flour, 2 eggs;
// olive oil") on commas and semicolons and trims each piece. Empty and
// whitespace-only input yields no tokens, so callers can safely use the
// token count as a denominator.
//
// Tokens keep their original casing and are not deduplicated: the token
// count stands in for "number of ingredients in the recipe", so duplicate
// or noisy entries in the source text directly affect scoring.
func SplitIngredients(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	pieces := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == ';'
	})

	tokens := make([]string, 0, len(pieces))
	for _, p := range pieces {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		tokens = append(tokens, p)
	}
	return tokens
}

// NormalizedIngredients returns the lower-cased view of SplitIngredients,
// used for keyword extraction and matching.
func NormalizedIngredients(text string) []string {
	tokens := SplitIngredients(text)
	for i, t := range tokens {
		tokens[i] = strings.ToLower(t)
	}
	return tokens
}
