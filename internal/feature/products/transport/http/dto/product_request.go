// Package dto defines data transfer objects for the products feature's HTTP transport layer.
package dto

// ProductReq represents the request body for product create and update.
// The sale price is intentionally absent: it is derived server-side.
type ProductReq struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description" binding:"required"`
	CategoryID  uint    `json:"category_id" binding:"required"`
	FullPrice   float64 `json:"full_price" binding:"required,gt=0"`
	Photo       string  `json:"photo" binding:"required"`

	// Pointer so that a legitimate zero stock still satisfies "required".
	Quantity *int `json:"quantity" binding:"required,gte=0"`
}
