// Package adapters provides repository implementations for the products feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"shop_backend/internal/feature/products/domain/entity"
	"shop_backend/internal/feature/products/usecase"
)

// productMySQL is a MySQL implementation of the ProductRepository interface.
type productMySQL struct {
	db *gorm.DB
}

// Compile-time check to ensure productMySQL implements ProductRepository.
var _ usecase.ProductRepository = (*productMySQL)(nil)

// NewProductMySQL creates a new instance of productMySQL.
func NewProductMySQL(db *gorm.DB) *productMySQL {
	return &productMySQL{db: db}
}

// Create persists a new product to the database.
func (r *productMySQL) Create(ctx context.Context, product *entity.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

// FindByID retrieves a product by ID.
func (r *productMySQL) FindByID(ctx context.Context, id uint) (*entity.Product, error) {
	var product entity.Product
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

// List retrieves products ordered by ID with the given offset/limit.
func (r *productMySQL) List(ctx context.Context, offset, limit int) ([]*entity.Product, error) {
	var products []*entity.Product
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// Count returns the total number of products.
func (r *productMySQL) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Product{}).Count(&count).Error
	return count, err
}

// Update persists changes to an existing product.
func (r *productMySQL) Update(ctx context.Context, product *entity.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

// Delete removes a product by ID.
func (r *productMySQL) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&entity.Product{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrProductNotFound
	}
	return nil
}
