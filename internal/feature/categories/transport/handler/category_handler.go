// Package handler provides the HTTP handlers for the categories feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"shop_backend/internal/feature/categories/domain/entity"
	"shop_backend/internal/feature/categories/transport/http/dto"
	"shop_backend/internal/feature/categories/usecase"
	"shop_backend/internal/shared/pagination"
	"shop_backend/internal/shared/response"
)

// CategoryUsecase defines the category operations the handler depends on.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type CategoryUsecase interface {
	Create(ctx context.Context, name string) (*entity.Category, error)
	Get(ctx context.Context, id uint) (*entity.Category, error)
	List(ctx context.Context, offset, limit int) ([]*entity.Category, int64, error)
	Update(ctx context.Context, id uint, name string) (*entity.Category, error)
	Delete(ctx context.Context, id uint) error
}

// CategoryHandler handles HTTP requests for category CRUD.
type CategoryHandler struct {
	categories CategoryUsecase
}

// NewCategoryHandler creates a new instance of CategoryHandler.
func NewCategoryHandler(categories CategoryUsecase) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

// idParam parses the :id path parameter.
func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.Error(c, http.StatusBadRequest, map[string]string{"id": "errors.id.invalid"})
		return 0, false
	}
	return uint(id), true
}

// List handles GET /categories with page/limit pagination.
func (h *CategoryHandler) List(c *gin.Context) {
	params := pagination.FromQuery(c)

	categories, total, err := h.categories.List(c.Request.Context(), params.Offset(), params.Limit)
	if err != nil {
		slog.Error("category list error", "error", err)
		response.Error(c, http.StatusInternalServerError, "internal error")
		return
	}

	response.Paginated(c, categories, params.Data(total))
}

// Create handles POST /category.
func (h *CategoryHandler) Create(c *gin.Context) {
	var req dto.CategoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.FieldErrors(err))
		return
	}

	category, err := h.categories.Create(c.Request.Context(), req.Name)
	if err != nil {
		slog.Error("category create error", "error", err)
		response.Error(c, http.StatusInternalServerError, "internal error")
		return
	}

	response.Created(c, category)
}

// Get handles GET /category/:id.
func (h *CategoryHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	category, err := h.categories.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrCategoryNotFound) {
			response.Error(c, http.StatusNotFound, "errors.category.not_found")
			return
		}
		slog.Error("category get error", "error", err, "id", id)
		response.Error(c, http.StatusInternalServerError, "internal error")
		return
	}

	response.OK(c, category)
}

// Update handles PATCH /category/:id.
func (h *CategoryHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req dto.CategoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.FieldErrors(err))
		return
	}

	category, err := h.categories.Update(c.Request.Context(), id, req.Name)
	if err != nil {
		if errors.Is(err, usecase.ErrCategoryNotFound) {
			response.Error(c, http.StatusNotFound, "errors.category.not_found")
			return
		}
		slog.Error("category update error", "error", err, "id", id)
		response.Error(c, http.StatusInternalServerError, "internal error")
		return
	}

	response.OK(c, category)
}

// Delete handles DELETE /category/:id.
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.categories.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrCategoryNotFound) {
			response.Error(c, http.StatusNotFound, "errors.category.not_found")
			return
		}
		slog.Error("category delete error", "error", err, "id", id)
		response.Error(c, http.StatusInternalServerError, "internal error")
		return
	}

	response.OK(c, nil)
}
