// Package store provides the persistence collaborator for recipes. The
// matching core and the HTTP layer depend on the Store interface, never on
// a package-global database handle.
package store

import (
	"context"
	"errors"

	"github.com/pantrycook/pantrycook/backend/internal/model"
)

// ErrNotFound is returned when a recipe id does not resolve to a record.
var ErrNotFound = errors.New("recipe not found")

// SearchFilter describes the structured search predicate used by the outer
// query layer. Zero values mean "no constraint".
type SearchFilter struct {
	// Query matches as a case-insensitive substring of title, description
	// or ingredients.
	Query string

	// Field filters, each a case-insensitive substring match.
	Title      string
	Ingredient string
	Category   string
	Author     string

	// Threshold filters.
	MinRating    float64
	MaxTotalTime int
}

// Store is the recipe persistence contract. Results are ordered
// most-recent-first by id unless stated otherwise; failures propagate
// unchanged to the caller (retries belong to an outer layer).
type Store interface {
	// FetchCandidatePool returns at most max recipes, most recent first,
	// as the bounded scoring input for pantry matching.
	FetchCandidatePool(ctx context.Context, max int) ([]model.Recipe, error)

	// FetchByID returns the recipe or ErrNotFound.
	FetchByID(ctx context.Context, id int64) (*model.Recipe, error)

	// CountMatching returns how many recipes satisfy the filter.
	CountMatching(ctx context.Context, filter SearchFilter) (int64, error)

	// QueryMatching returns a page of recipes satisfying the filter.
	QueryMatching(ctx context.Context, filter SearchFilter, limit, offset int) ([]model.Recipe, error)

	// FindByKeywords returns up to limit recipes, excluding excludeID,
	// where every keyword appears as a case-sensitive substring of at
	// least one of title, category or ingredients.
	FindByKeywords(ctx context.Context, excludeID int64, keywords []string, limit int) ([]model.Recipe, error)

	Create(ctx context.Context, recipe *model.Recipe) error
	Update(ctx context.Context, recipe *model.Recipe) error
	Delete(ctx context.Context, id int64) error
}
