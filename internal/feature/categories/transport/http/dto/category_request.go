// Package dto defines data transfer objects for the categories feature's HTTP transport layer.
package dto

// CategoryReq represents the request body for category create and update.
type CategoryReq struct {
	Name string `json:"name" binding:"required"`
}
