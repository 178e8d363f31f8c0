package store

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/pantrycook/pantrycook/backend/internal/model"
)

// GormStore implements Store on top of a gorm connection.
type GormStore struct {
	db *gorm.DB
}

// New creates a GormStore.
func New(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) FetchCandidatePool(ctx context.Context, max int) ([]model.Recipe, error) {
	if max <= 0 {
		return []model.Recipe{}, nil
	}

	var recipes []model.Recipe
	err := s.db.WithContext(ctx).
		Order("id DESC").
		Limit(max).
		Find(&recipes).Error
	if err != nil {
		return nil, err
	}
	return recipes, nil
}

func (s *GormStore) FetchByID(ctx context.Context, id int64) (*model.Recipe, error) {
	var recipe model.Recipe
	err := s.db.WithContext(ctx).First(&recipe, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &recipe, nil
}

func (s *GormStore) CountMatching(ctx context.Context, filter SearchFilter) (int64, error) {
	var count int64
	err := s.applyFilter(s.db.WithContext(ctx).Model(&model.Recipe{}), filter).
		Count(&count).Error
	return count, err
}

func (s *GormStore) QueryMatching(ctx context.Context, filter SearchFilter, limit, offset int) ([]model.Recipe, error) {
	var recipes []model.Recipe
	err := s.applyFilter(s.db.WithContext(ctx), filter).
		Order("id DESC").
		Limit(limit).
		Offset(offset).
		Find(&recipes).Error
	if err != nil {
		return nil, err
	}
	return recipes, nil
}

func (s *GormStore) FindByKeywords(ctx context.Context, excludeID int64, keywords []string, limit int) ([]model.Recipe, error) {
	query := s.db.WithContext(ctx).Where("id <> ?", excludeID)

	// AND across keywords, OR across the fields each one may appear in.
	// LIKE without LOWER keeps the store's native case-sensitive semantics.
	for _, kw := range keywords {
		like := "%" + kw + "%"
		query = query.Where(
			"title LIKE ? OR category LIKE ? OR ingredients LIKE ?",
			like, like, like,
		)
	}

	var recipes []model.Recipe
	err := query.Order("id DESC").Limit(limit).Find(&recipes).Error
	if err != nil {
		return nil, err
	}
	return recipes, nil
}

func (s *GormStore) Create(ctx context.Context, recipe *model.Recipe) error {
	return s.db.WithContext(ctx).Create(recipe).Error
}

func (s *GormStore) Update(ctx context.Context, recipe *model.Recipe) error {
	result := s.db.WithContext(ctx).Model(&model.Recipe{}).
		Where("id = ?", recipe.ID).
		Updates(recipe)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) Delete(ctx context.Context, id int64) error {
	result := s.db.WithContext(ctx).Delete(&model.Recipe{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) applyFilter(query *gorm.DB, filter SearchFilter) *gorm.DB {
	if filter.Query != "" {
		like := "%" + strings.ToLower(filter.Query) + "%"
		query = query.Where(
			"LOWER(title) LIKE ? OR LOWER(description) LIKE ? OR LOWER(ingredients) LIKE ?",
			like, like, like,
		)
	}
	if filter.Title != "" {
		query = query.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(filter.Title)+"%")
	}
	if filter.Ingredient != "" {
		query = query.Where("LOWER(ingredients) LIKE ?", "%"+strings.ToLower(filter.Ingredient)+"%")
	}
	if filter.Category != "" {
		query = query.Where("LOWER(category) LIKE ?", "%"+strings.ToLower(filter.Category)+"%")
	}
	if filter.Author != "" {
		query = query.Where("LOWER(author) LIKE ?", "%"+strings.ToLower(filter.Author)+"%")
	}
	if filter.MinRating > 0 {
		query = query.Where("rating >= ?", filter.MinRating)
	}
	if filter.MaxTotalTime > 0 {
		query = query.Where("prep_time_minutes + cook_time_minutes <= ?", filter.MaxTotalTime)
	}
	return query
}
