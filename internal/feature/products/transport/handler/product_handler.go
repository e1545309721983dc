// Package handler provides the HTTP handlers for the products feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"shop_backend/internal/feature/products/domain/entity"
	"shop_backend/internal/feature/products/transport/http/dto"
	"shop_backend/internal/feature/products/usecase"
	"shop_backend/internal/shared/pagination"
	"shop_backend/internal/shared/response"
)

// ProductUsecase defines the product operations the handler depends on.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type ProductUsecase interface {
	Create(ctx context.Context, in usecase.ProductInput) (*entity.Product, error)
	Get(ctx context.Context, id uint) (*entity.Product, error)
	List(ctx context.Context, offset, limit int) ([]*entity.Product, int64, error)
	Update(ctx context.Context, id uint, in usecase.ProductInput) (*entity.Product, error)
	Delete(ctx context.Context, id uint) error
}

// ProductHandler handles HTTP requests for product CRUD.
type ProductHandler struct {
	products ProductUsecase
}

// NewProductHandler creates a new instance of ProductHandler.
func NewProductHandler(products ProductUsecase) *ProductHandler {
	return &ProductHandler{products: products}
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

// toInput converts a validated request body into a usecase input.
func toInput(req dto.ProductReq) usecase.ProductInput {
	return usecase.ProductInput{
		Name:        req.Name,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		FullPrice:   req.FullPrice,
		Photo:       req.Photo,
		Quantity:    *req.Quantity,
	}
}

// List handles GET /products with page/limit pagination.
func (h *ProductHandler) List(c *gin.Context) {
	params := pagination.FromQuery(c)

	products, total, err := h.products.List(c.Request.Context(), params.Offset(), params.Limit)
	if err != nil {
		slog.Error("product list error", "error", err)
		response.Error(c, http.StatusInternalServerError, "internal error")
		return
	}

	response.Paginated(c, products, params.Data(total))
}

// Create handles POST /product.
func (h *ProductHandler) Create(c *gin.Context) {
	var req dto.ProductReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.FieldErrors(err))
		return
	}

	product, err := h.products.Create(c.Request.Context(), toInput(req))
	if err != nil {
		slog.Error("product create error", "error", err)
		response.Error(c, http.StatusInternalServerError, "internal error")
		return
	}

	response.Created(c, product)
}

// Get handles GET /product/:id.
func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	product, err := h.products.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrProductNotFound) {
			response.Error(c, http.StatusNotFound, "errors.product.not_found")
			return
		}
		slog.Error("product get error", "error", err, "id", id)
		response.Error(c, http.StatusInternalServerError, "internal error")
		return
	}

	response.OK(c, product)
}

// Update handles PATCH /product/:id.
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req dto.ProductReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.FieldErrors(err))
		return
	}

	product, err := h.products.Update(c.Request.Context(), id, toInput(req))
	if err != nil {
		if errors.Is(err, usecase.ErrProductNotFound) {
			response.Error(c, http.StatusNotFound, "errors.product.not_found")
			return
		}
		slog.Error("product update error", "error", err, "id", id)
		response.Error(c, http.StatusInternalServerError, "internal error")
		return
	}

	response.OK(c, product)
}

// Delete handles DELETE /product/:id.
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.products.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrProductNotFound) {
			response.Error(c, http.StatusNotFound, "errors.product.not_found")
			return
		}
		slog.Error("product delete error", "error", err, "id", id)
		response.Error(c, http.StatusInternalServerError, "internal error")
		return
	}

	response.OK(c, nil)
}
