// Package handler provides the HTTP handlers for the users feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"shop_backend/internal/feature/auth/domain/entity"
	authusecase "shop_backend/internal/feature/auth/usecase"
	"shop_backend/internal/feature/users/transport/http/dto"
	"shop_backend/internal/feature/users/usecase"
	jwtmw "shop_backend/internal/platform/jwt"
	"shop_backend/internal/shared/pagination"
	"shop_backend/internal/shared/response"
)

// UserUsecase defines the user management operations the handler depends on.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type UserUsecase interface {
	List(ctx context.Context, offset, limit int) ([]*entity.User, int64, error)
	Create(ctx context.Context, name, email, password string) (*entity.User, error)
	Get(ctx context.Context, id uint) (*entity.User, error)
	Update(ctx context.Context, callerID, targetID uint, name, email string) (*entity.User, error)
}

// UserHandler handles HTTP requests for user management.
type UserHandler struct {
	users UserUsecase
}

// NewUserHandler creates a new instance of UserHandler.
func NewUserHandler(users UserUsecase) *UserHandler {
	return &UserHandler{users: users}
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

// List handles GET /users with page/limit pagination.
func (h *UserHandler) List(c *gin.Context) {
	params := pagination.FromQuery(c)

	users, total, err := h.users.List(c.Request.Context(), params.Offset(), params.Limit)
	if err != nil {
		slog.Error("user list error", "error", err)
		response.Error(c, http.StatusInternalServerError, "internal error")
		return
	}

	response.Paginated(c, users, params.Data(total))
}

// Create handles POST /user. The admin gate runs upstream in the router.
func (h *UserHandler) Create(c *gin.Context) {
	var req dto.CreateUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.FieldErrors(err))
		return
	}

	user, err := h.users.Create(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, authusecase.ErrEmailAlreadyExists) {
			response.Error(c, http.StatusConflict, map[string]string{"email": "errors.email.taken"})
			return
		}
		slog.Error("user create error", "error", err)
		response.Error(c, http.StatusInternalServerError, "internal error")
		return
	}

	slog.Info("user created", "user_id", user.ID, "email", user.Email)
	response.Created(c, user)
}

// Get handles GET /user/:id.
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	user, err := h.users.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, authusecase.ErrUserNotFound) {
			response.Error(c, http.StatusNotFound, "errors.user.not_found")
			return
		}
		slog.Error("user get error", "error", err, "id", id)
		response.Error(c, http.StatusInternalServerError, "internal error")
		return
	}

	response.OK(c, user)
}

// Update handles PATCH /user/:id. The verified caller identity comes from
// the auth middleware; authorization (self or admin) happens in the usecase.
func (h *UserHandler) Update(c *gin.Context) {
	callerID, ok := jwtmw.UserIDFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "missing bearer token")
		return
	}

	targetID, ok := idParam(c)
	if !ok {
		return
	}

	var req dto.UpdateUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.FieldErrors(err))
		return
	}

	user, err := h.users.Update(c.Request.Context(), callerID, targetID, req.Name, req.Email)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrForbidden):
			response.Error(c, http.StatusForbidden, "errors.user.forbidden")
		case errors.Is(err, authusecase.ErrUserNotFound):
			response.Error(c, http.StatusNotFound, "errors.user.not_found")
		case errors.Is(err, authusecase.ErrEmailAlreadyExists):
			response.Error(c, http.StatusConflict, map[string]string{"email": "errors.email.taken"})
		default:
			slog.Error("user update error", "error", err, "id", targetID)
			response.Error(c, http.StatusInternalServerError, "internal error")
		}
		return
	}

	response.OK(c, user)
}
