// Package adapters provides repository implementations for the categories feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"shop_backend/internal/feature/categories/domain/entity"
	"shop_backend/internal/feature/categories/usecase"
)

// categoryMySQL is a MySQL implementation of the CategoryRepository interface.
type categoryMySQL struct {
	db *gorm.DB
}

// Compile-time check to ensure categoryMySQL implements CategoryRepository.
var _ usecase.CategoryRepository = (*categoryMySQL)(nil)

// NewCategoryMySQL creates a new instance of categoryMySQL.
func NewCategoryMySQL(db *gorm.DB) *categoryMySQL {
	return &categoryMySQL{db: db}
}

// Create persists a new category to the database.
func (r *categoryMySQL) Create(ctx context.Context, category *entity.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

// FindByID retrieves a category by ID.
func (r *categoryMySQL) FindByID(ctx context.Context, id uint) (*entity.Category, error) {
	var category entity.Category
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

// List retrieves categories ordered by ID with the given offset/limit.
func (r *categoryMySQL) List(ctx context.Context, offset, limit int) ([]*entity.Category, error) {
	var categories []*entity.Category
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// Count returns the total number of categories.
func (r *categoryMySQL) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Category{}).Count(&count).Error
	return count, err
}

// Update persists changes to an existing category.
func (r *categoryMySQL) Update(ctx context.Context, category *entity.Category) error {
	return r.db.WithContext(ctx).Save(category).Error
}

// Delete removes a category by ID.
func (r *categoryMySQL) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&entity.Category{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrCategoryNotFound
	}
	return nil
}
