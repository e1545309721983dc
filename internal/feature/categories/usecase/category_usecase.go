// Package usecase implements the business logic for the categories feature.
package usecase

import (
	"context"
	"errors"

	"shop_backend/internal/feature/categories/domain/entity"
)

// ErrCategoryNotFound is returned when a category cannot be found by ID.
var ErrCategoryNotFound = errors.New("category not found")

// CategoryRepository abstracts the persistence layer for category entities.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type CategoryRepository interface {
	// Create persists a new category to the storage.
	Create(ctx context.Context, category *entity.Category) error

	// FindByID retrieves a category matching the specified ID.
	// It returns ErrCategoryNotFound if the category does not exist.
	FindByID(ctx context.Context, id uint) (*entity.Category, error)

	// List retrieves categories ordered by ID with the given offset/limit.
	List(ctx context.Context, offset, limit int) ([]*entity.Category, error)

	// Count returns the total number of categories.
	Count(ctx context.Context) (int64, error)

	// Update persists changes to an existing category.
	Update(ctx context.Context, category *entity.Category) error

	// Delete removes a category by ID.
	// It returns ErrCategoryNotFound if the category does not exist.
	Delete(ctx context.Context, id uint) error
}

// categoryUsecase implements the category CRUD business logic.
type categoryUsecase struct {
	categories CategoryRepository
}

// NewCategoryUsecase creates a new instance of categoryUsecase.
func NewCategoryUsecase(categories CategoryRepository) *categoryUsecase {
	return &categoryUsecase{categories: categories}
}

// Create stores a new category.
func (u *categoryUsecase) Create(ctx context.Context, name string) (*entity.Category, error) {
	category := &entity.Category{Name: name}
	if err := u.categories.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// Get returns a single category by ID.
func (u *categoryUsecase) Get(ctx context.Context, id uint) (*entity.Category, error) {
	return u.categories.FindByID(ctx, id)
}

// List returns a page of categories plus the total count for pagination.
func (u *categoryUsecase) List(ctx context.Context, offset, limit int) ([]*entity.Category, int64, error) {
	total, err := u.categories.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	categories, err := u.categories.List(ctx, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	return categories, total, nil
}

// Update renames an existing category.
func (u *categoryUsecase) Update(ctx context.Context, id uint, name string) (*entity.Category, error) {
	category, err := u.categories.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	category.Name = name
	if err := u.categories.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// Delete removes a category by ID.
func (u *categoryUsecase) Delete(ctx context.Context, id uint) error {
	return u.categories.Delete(ctx, id)
}
