// Package usecase implements the business logic for the products feature.
package usecase

import (
	"context"
	"errors"

	"shop_backend/internal/feature/products/domain/entity"
)

// ErrProductNotFound is returned when a product cannot be found by ID.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository abstracts the persistence layer for product entities.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type ProductRepository interface {
	// Create persists a new product to the storage.
	Create(ctx context.Context, product *entity.Product) error

	// FindByID retrieves a product matching the specified ID.
	// It returns ErrProductNotFound if the product does not exist.
	FindByID(ctx context.Context, id uint) (*entity.Product, error)

	// List retrieves products ordered by ID with the given offset/limit.
	List(ctx context.Context, offset, limit int) ([]*entity.Product, error)

	// Count returns the total number of products.
	Count(ctx context.Context) (int64, error)

	// Update persists changes to an existing product.
	Update(ctx context.Context, product *entity.Product) error

	// Delete removes a product by ID.
	// It returns ErrProductNotFound if the product does not exist.
	Delete(ctx context.Context, id uint) error
}

// ProductInput carries the writable product fields for create and update.
type ProductInput struct {
	Name        string
	Description string
	CategoryID  uint
	FullPrice   float64
	Photo       string
	Quantity    int
}

// productUsecase implements the product CRUD business logic.
type productUsecase struct {
	products ProductRepository
}

// NewProductUsecase creates a new instance of productUsecase.
func NewProductUsecase(products ProductRepository) *productUsecase {
	return &productUsecase{products: products}
}

// Create stores a new product. The sale price is always derived from the
// full price and quantity, never taken from the caller.
func (u *productUsecase) Create(ctx context.Context, in ProductInput) (*entity.Product, error) {
	product := &entity.Product{
		Name:        in.Name,
		Description: in.Description,
		CategoryID:  in.CategoryID,
		FullPrice:   in.FullPrice,
		Photo:       in.Photo,
		Quantity:    in.Quantity,
	}
	product.ComputeSalePrice()

	if err := u.products.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// Get returns a single product by ID.
func (u *productUsecase) Get(ctx context.Context, id uint) (*entity.Product, error) {
	return u.products.FindByID(ctx, id)
}

// List returns a page of products plus the total count for pagination.
func (u *productUsecase) List(ctx context.Context, offset, limit int) ([]*entity.Product, int64, error) {
	total, err := u.products.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	products, err := u.products.List(ctx, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

// Update overwrites the writable fields of an existing product and
// recomputes the sale price.
func (u *productUsecase) Update(ctx context.Context, id uint, in ProductInput) (*entity.Product, error) {
	product, err := u.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	product.Name = in.Name
	product.Description = in.Description
	product.CategoryID = in.CategoryID
	product.FullPrice = in.FullPrice
	product.Photo = in.Photo
	product.Quantity = in.Quantity
	product.ComputeSalePrice()

	if err := u.products.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// Delete removes a product by ID.
func (u *productUsecase) Delete(ctx context.Context, id uint) error {
	return u.products.Delete(ctx, id)
}
