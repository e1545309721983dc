// Package pagination parses page/limit query parameters and computes offsets.
package pagination

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"shop_backend/internal/shared/response"
)

const (
	// DefaultPage is used when the page parameter is absent or invalid.
	DefaultPage = 1
	// DefaultLimit is used when the limit parameter is absent or invalid.
	DefaultLimit = 20
	// MaxLimit caps the page size a client can request.
	MaxLimit = 100
)

// Params holds sanitized pagination inputs for a list request.
type Params struct {
	Page  int
	Limit int
}

// FromQuery reads page and limit from the query string, falling back to
// defaults on missing or malformed values and clamping the limit.
func FromQuery(c *gin.Context) Params {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil || page < 1 {
		page = DefaultPage
	}

	limit, err := strconv.Atoi(c.Query("limit"))
	if err != nil || limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	return Params{Page: page, Limit: limit}
}

// Offset returns the row offset for the current page.
func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Data builds the envelope pagination metadata for a total row count.
func (p Params) Data(total int64) *response.Pagination {
	pages := int(total) / p.Limit
	if int(total)%p.Limit != 0 {
		pages++
	}
	return &response.Pagination{
		Page:  p.Page,
		Limit: p.Limit,
		Total: total,
		Pages: pages,
	}
}
