// Package di provides dependency injection factories for creating application components.
package di

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"shop_backend/internal/feature/auth/adapters"
	"shop_backend/internal/feature/auth/usecase"
	"shop_backend/internal/platform/token"
)

// NewRememberTokenRepository creates a RememberTokenRepository implementation.
// If Redis is available, it returns a Redis-backed implementation.
// Otherwise, it falls back to MySQL.
func NewRememberTokenRepository(rdb *redis.Client, db *gorm.DB) usecase.RememberTokenRepository {
	if rdb != nil {
		return token.NewTokenRedis(rdb, "remember")
	}
	return adapters.NewTokenMySQL(db)
}
