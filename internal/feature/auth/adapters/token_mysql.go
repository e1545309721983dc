package adapters

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"shop_backend/internal/feature/auth/domain/entity"
	"shop_backend/internal/feature/auth/usecase"
)

// tokenByteLength is the number of random bytes per token (64 hex characters).
const tokenByteLength = 32

// maxGenerateAttempts bounds collision retries when inserting a new token.
const maxGenerateAttempts = 3

// tokenMySQL is a MySQL implementation of the RememberTokenRepository interface.
type tokenMySQL struct {
	db *gorm.DB
}

// Compile-time check to ensure tokenMySQL implements RememberTokenRepository.
var _ usecase.RememberTokenRepository = (*tokenMySQL)(nil)

// NewTokenMySQL creates a new instance of tokenMySQL.
func NewTokenMySQL(db *gorm.DB) *tokenMySQL {
	return &tokenMySQL{db: db}
}

// newTokenValue returns a 64-character random hex token.
func newTokenValue() (string, error) {
	buf := make([]byte, tokenByteLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// Generate creates a remember token bound to the user with a fresh validity
// window. The unique index on the token column surfaces collisions, in which
// case a new value is generated and the insert retried.
func (r *tokenMySQL) Generate(ctx context.Context, userID uint) (string, error) {
	now := time.Now()
	for attempt := 0; attempt < maxGenerateAttempts; attempt++ {
		value, err := newTokenValue()
		if err != nil {
			return "", err
		}

		model := TokenModelFromEntity(&entity.RememberToken{
			Token:     value,
			UserID:    userID,
			Type:      entity.TypeRemember,
			CreatedAt: now,
			ExpiresAt: now.Add(entity.RememberTokenValidity),
		})

		if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
			if isDuplicateKey(err) {
				continue // collision with a live token, regenerate
			}
			return "", err
		}
		return value, nil
	}
	return "", fmt.Errorf("failed to generate unique token after %d attempts", maxGenerateAttempts)
}

// Consume looks up a live remember token and returns the owning user ID.
// Unknown, wrong-type, and expired tokens are indistinguishable to the caller.
func (r *tokenMySQL) Consume(ctx context.Context, token string) (uint, error) {
	var model TokenModel
	if err := r.db.WithContext(ctx).
		Where("token = ? AND type = ?", token, entity.TypeRemember).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, usecase.ErrInvalidRememberToken
		}
		return 0, err
	}

	if model.ToEntity().IsExpired() {
		return 0, usecase.ErrInvalidRememberToken
	}
	return model.UserID, nil
}

// ExtendValidity pushes the token's expiry forward by the validity window.
func (r *tokenMySQL) ExtendValidity(ctx context.Context, token string) error {
	result := r.db.WithContext(ctx).
		Model(&TokenModel{}).
		Where("token = ? AND type = ?", token, entity.TypeRemember).
		Update("expires_at", time.Now().Add(entity.RememberTokenValidity))

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrInvalidRememberToken
	}
	return nil
}

// Revoke deletes the token scoped to the owning user. Deleting a token that
// does not exist (or belongs to someone else) is a silent no-op, which keeps
// logout idempotent.
func (r *tokenMySQL) Revoke(ctx context.Context, token string, userID uint) error {
	return r.db.WithContext(ctx).
		Where("token = ? AND user_id = ? AND type = ?", token, userID, entity.TypeRemember).
		Delete(&TokenModel{}).Error
}

// DeleteExpired removes tokens past their validity window.
// Returns the number of deleted tokens. Intended for periodic cleanup.
func (r *tokenMySQL) DeleteExpired(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("expires_at < ?", time.Now()).
		Delete(&TokenModel{})
	return result.RowsAffected, result.Error
}
