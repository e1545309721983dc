// Package response defines the JSON envelope shared by every endpoint.
//
// All handlers reply with {success, data?, error?, pagination?} so API
// consumers can branch on a single shape regardless of endpoint.
package response

import "github.com/gin-gonic/gin"

// Pagination describes the slice of a collection carried in Data.
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

// Envelope is the uniform response body.
// Error is either a string code or a map of field-level messages.
type Envelope struct {
	Success    bool        `json:"success"`
	Data       any         `json:"data,omitempty"`
	Error      any         `json:"error,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// OK writes a 200 success envelope.
func OK(c *gin.Context, data any) {
	c.JSON(200, Envelope{Success: true, Data: data})
}

// Created writes a 201 success envelope.
func Created(c *gin.Context, data any) {
	c.JSON(201, Envelope{Success: true, Data: data})
}

// Paginated writes a 200 success envelope with pagination metadata.
func Paginated(c *gin.Context, data any, p *Pagination) {
	c.JSON(200, Envelope{Success: true, Data: data, Pagination: p})
}

// Error writes a failure envelope with the given status.
func Error(c *gin.Context, status int, err any) {
	c.JSON(status, Envelope{Success: false, Error: err})
}

// AbortError writes a failure envelope and aborts the middleware chain.
func AbortError(c *gin.Context, status int, err any) {
	c.AbortWithStatusJSON(status, Envelope{Success: false, Error: err})
}
