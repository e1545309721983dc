// Package entity defines the domain entities for the products feature.
package entity

import "time"

// BulkDiscountThreshold is the stock quantity at which the sale price drops.
const BulkDiscountThreshold = 100

// Product is a storefront item.
type Product struct {
	// ID is the unique identifier for the product.
	ID uint `gorm:"primaryKey" json:"id"`

	// Name is the display name of the product.
	Name string `gorm:"size:255;not null" json:"name"`

	// Description is the long-form description shown on the product page.
	Description string `gorm:"type:text;not null" json:"description"`

	// CategoryID references the owning category.
	CategoryID uint `gorm:"index;not null" json:"categoryId"`

	// FullPrice is the undiscounted price.
	FullPrice float64 `gorm:"not null" json:"fullPrice"`

	// SalePrice is the effective price; derived from FullPrice and Quantity.
	SalePrice float64 `gorm:"not null" json:"salePrice"`

	// Photo is the URL of the product image.
	Photo string `gorm:"size:512;not null" json:"photo"`

	// Quantity is the units in stock.
	Quantity int `gorm:"not null" json:"quantity"`

	// CreatedAt is the timestamp when the product was created.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is the timestamp when the product was last updated.
	UpdatedAt time.Time `json:"updatedAt"`
}

// ComputeSalePrice derives SalePrice from FullPrice and Quantity.
// Stock at or above BulkDiscountThreshold sells at a 10% discount.
func (p *Product) ComputeSalePrice() {
	if p.Quantity >= BulkDiscountThreshold {
		p.SalePrice = p.FullPrice - p.FullPrice/100*10
		return
	}
	p.SalePrice = p.FullPrice
}
