package jwtmw

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"shop_backend/internal/feature/auth/domain/entity"
	"shop_backend/internal/shared/response"
)

// ContextUserID is the gin context key the verified caller ID is stored under.
// Handlers receive the identity through this key instead of any ambient
// current-user global.
const ContextUserID = "userID"

// UserFinder loads a user by its verified ID. Defined here by the consumer
// so the middleware does not depend on a concrete repository.
type UserFinder interface {
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}

// AuthRequired returns a Gin middleware function that validates JWT tokens
// and restricts access to authenticated users only.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Get Authorization header
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			response.AbortError(c, http.StatusUnauthorized, "missing bearer token")
			return
		}
		tokenStr := strings.TrimPrefix(auth, "Bearer ")

		// 2. Load secret key from environment variable
		secret := os.Getenv(EnvKeyJWTSecret)
		if secret == "" {
			// Server misconfiguration (JWT_SECRET not set)
			response.AbortError(c, http.StatusInternalServerError, "server misconfigured")
			return
		}

		// 3. Parse and verify JWT signature
		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
			// Check signing algorithm (only HMAC allowed)
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			// Covers bad signatures and expired tokens alike
			response.AbortError(c, http.StatusUnauthorized, "invalid token")
			return
		}

		// 4. Extract claims (payload)
		if claims, ok := token.Claims.(jwt.MapClaims); ok {
			if sub, ok := claims["sub"].(float64); ok { // JWT numbers are decoded as float64
				c.Set(ContextUserID, uint(sub))
			}
		}
		// 5. Pass control to the next handler
		c.Next()
	}
}

// AdminRequired returns a middleware that loads the verified caller and
// rejects non-admin accounts. It must run after AuthRequired.
func AdminRequired(users UserFinder) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := UserIDFromContext(c)
		if !ok {
			response.AbortError(c, http.StatusUnauthorized, "missing bearer token")
			return
		}

		user, err := users.FindByID(c.Request.Context(), userID)
		if err != nil {
			slog.Warn("admin check failed to load user", "error", err, "user_id", userID)
			response.AbortError(c, http.StatusForbidden, "admin access required")
			return
		}
		if !user.IsAdmin {
			response.AbortError(c, http.StatusForbidden, "admin access required")
			return
		}

		c.Next()
	}
}

// UserIDFromContext returns the caller ID set by AuthRequired.
func UserIDFromContext(c *gin.Context) (uint, bool) {
	v, exists := c.Get(ContextUserID)
	if !exists {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
