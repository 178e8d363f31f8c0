// Package service wires the matching engine to the recipe store and exposes
// the operations the HTTP layer serves.
package service

import (
	"context"

	"github.com/pantrycook/pantrycook/backend/internal/match"
	"github.com/pantrycook/pantrycook/backend/internal/model"
	"github.com/pantrycook/pantrycook/backend/internal/store"
)

// SearchPage is a paginated search result.
type SearchPage struct {
	Recipes  []model.Recipe
	Total    int64
	Page     int
	PageSize int
}

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// RecipeService handles recipe retrieval, pantry matching and similarity
// lookups. It holds no mutable state; every call derives its results from a
// fresh store snapshot.
type RecipeService struct {
	store    store.Store
	scorer   *match.Scorer
	ranker   match.Ranker
	poolSize int
}

// NewRecipeService creates a RecipeService. poolSize bounds the candidate
// pool fetched for pantry matching; non-positive values fall back to the
// default cap.
func NewRecipeService(st store.Store, poolSize int) *RecipeService {
	if poolSize <= 0 {
		poolSize = match.DefaultPoolSize
	}
	return &RecipeService{
		store:    st,
		scorer:   match.NewScorer(nil),
		ranker:   match.NewRanker(),
		poolSize: poolSize,
	}
}

// FindByAvailableIngredients scores the candidate pool against the pantry
// and returns ranked matches. Recall is bounded by the configured pool size:
// only the most recent recipes are considered.
//
// An empty pantry short-circuits to an empty result, and so does a
// non-positive limit; neither is an error.
func (s *RecipeService) FindByAvailableIngredients(ctx context.Context, ingredients []string, limit int) ([]match.ScoredRecipe, error) {
	if len(ingredients) == 0 {
		return []match.ScoredRecipe{}, nil
	}

	pool, err := s.store.FetchCandidatePool(ctx, s.poolSize)
	if err != nil {
		return nil, err
	}

	scored := make([]match.ScoredRecipe, 0, len(pool))
	for _, recipe := range pool {
		sc := s.scorer.Score(recipe.Ingredients, ingredients)
		scored = append(scored, match.ScoredRecipe{
			Recipe:          recipe,
			MatchPercentage: sc.MatchPercentage,
			MissingCount:    sc.MissingCount,
		})
	}

	return s.ranker.Rank(scored, limit), nil
}

// FindSimilar returns recipes sharing the reference recipe's keyword set
// (title words, category, key ingredients), excluding the reference itself.
// Every keyword must appear in at least one of title, category or
// ingredients. Returns store.ErrNotFound when the reference id does not
// exist.
//
// A reference with an empty keyword set yields an empty result: a vacuous
// predicate would otherwise match the whole corpus.
func (s *RecipeService) FindSimilar(ctx context.Context, id int64, limit int) ([]model.Recipe, error) {
	reference, err := s.store.FetchByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if limit <= 0 {
		return []model.Recipe{}, nil
	}

	keywords := match.SimilarityKeywords(reference.Title, reference.Category, reference.Ingredients)
	if len(keywords) == 0 {
		return []model.Recipe{}, nil
	}

	return s.store.FindByKeywords(ctx, id, keywords, limit)
}

// Search runs a structured, paginated recipe search.
func (s *RecipeService) Search(ctx context.Context, filter store.SearchFilter, page, pageSize int) (*SearchPage, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	total, err := s.store.CountMatching(ctx, filter)
	if err != nil {
		return nil, err
	}

	recipes, err := s.store.QueryMatching(ctx, filter, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, err
	}

	return &SearchPage{
		Recipes:  recipes,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// GetRecipe retrieves a recipe by id.
func (s *RecipeService) GetRecipe(ctx context.Context, id int64) (*model.Recipe, error) {
	return s.store.FetchByID(ctx, id)
}

// CreateRecipe persists a new recipe.
func (s *RecipeService) CreateRecipe(ctx context.Context, recipe *model.Recipe) error {
	return s.store.Create(ctx, recipe)
}

// UpdateRecipe updates an existing recipe.
func (s *RecipeService) UpdateRecipe(ctx context.Context, recipe *model.Recipe) error {
	return s.store.Update(ctx, recipe)
}

// DeleteRecipe removes a recipe.
func (s *RecipeService) DeleteRecipe(ctx context.Context, id int64) error {
	return s.store.Delete(ctx, id)
}
