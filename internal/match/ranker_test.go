package match

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pantrycook/pantrycook/backend/internal/model"
)

func scoredFixture(id int64, pct float64) ScoredRecipe {
	return ScoredRecipe{
		Recipe:          model.Recipe{ID: id},
		MatchPercentage: pct,
	}
}

func TestRankFiltersAtThreshold(t *testing.T) {
	ranker := NewRanker()

	ranked := ranker.Rank([]ScoredRecipe{
		scoredFixture(1, 40.0),
		scoredFixture(2, 50.0),
		scoredFixture(3, 50.1),
		scoredFixture(4, 100.0),
	}, 10)

	// Exactly 50.0 is excluded; the threshold is strict.
	assert.Len(t, ranked, 2)
	assert.Equal(t, int64(4), ranked[0].Recipe.ID)
	assert.Equal(t, int64(3), ranked[1].Recipe.ID)
}

func TestRankSortsDescending(t *testing.T) {
	ranker := NewRanker()

	ranked := ranker.Rank([]ScoredRecipe{
		scoredFixture(1, 60.0),
		scoredFixture(2, 90.0),
		scoredFixture(3, 75.0),
	}, 10)

	assert.Equal(t, []float64{90.0, 75.0, 60.0}, []float64{
		ranked[0].MatchPercentage,
		ranked[1].MatchPercentage,
		ranked[2].MatchPercentage,
	})
}

func TestRankTiesKeepInputOrder(t *testing.T) {
	ranker := NewRanker()

	// The candidate pool arrives most-recent-first; equal scores must keep
	// that order.
	ranked := ranker.Rank([]ScoredRecipe{
		scoredFixture(9, 80.0),
		scoredFixture(7, 80.0),
		scoredFixture(3, 80.0),
	}, 10)

	assert.Equal(t, int64(9), ranked[0].Recipe.ID)
	assert.Equal(t, int64(7), ranked[1].Recipe.ID)
	assert.Equal(t, int64(3), ranked[2].Recipe.ID)
}

func TestRankTruncatesToLimit(t *testing.T) {
	ranker := NewRanker()

	scored := []ScoredRecipe{
		scoredFixture(1, 90.0),
		scoredFixture(2, 80.0),
		scoredFixture(3, 70.0),
	}

	assert.Len(t, ranker.Rank(scored, 2), 2)
	assert.Len(t, ranker.Rank(scored, 5), 3)
}

func TestRankNonPositiveLimit(t *testing.T) {
	ranker := NewRanker()

	scored := []ScoredRecipe{scoredFixture(1, 90.0)}

	assert.Empty(t, ranker.Rank(scored, 0))
	assert.Empty(t, ranker.Rank(scored, -3))
}

func TestRankEmptyInput(t *testing.T) {
	ranker := NewRanker()
	assert.Empty(t, ranker.Rank(nil, 10))
}
