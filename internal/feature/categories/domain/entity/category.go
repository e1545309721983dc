// Package entity defines the domain entities for the categories feature.
package entity

import "time"

// Category groups products for the storefront.
type Category struct {
	// ID is the unique identifier for the category.
	ID uint `gorm:"primaryKey" json:"id"`

	// Name is the display name of the category.
	Name string `gorm:"size:255;not null" json:"name"`

	// CreatedAt is the timestamp when the category was created.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is the timestamp when the category was last updated.
	UpdatedAt time.Time `json:"updatedAt"`
}
