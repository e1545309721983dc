// Package token provides a Redis-backed remember-token store.
package token

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"shop_backend/internal/feature/auth/domain/entity"
	"shop_backend/internal/feature/auth/usecase"
)

const (
	tokenByteLength     = 32
	maxGenerateAttempts = 3
)

// TokenRedis implements usecase.RememberTokenRepository using Redis.
// Expiry is enforced twice: by the key TTL and by the ExpiresAt field,
// so a value surviving past its window is still rejected.
type TokenRedis struct {
	client *redis.Client
	prefix string
}

// Compile-time check to ensure TokenRedis implements RememberTokenRepository.
var _ usecase.RememberTokenRepository = (*TokenRedis)(nil)

// NewTokenRedis creates a new TokenRedis instance.
func NewTokenRedis(client *redis.Client, prefix string) *TokenRedis {
	return &TokenRedis{
		client: client,
		prefix: prefix,
	}
}

// tokenKey returns the Redis key for a remember token.
func (r *TokenRedis) tokenKey(token string) string {
	return fmt.Sprintf("%s:%s", r.prefix, token)
}

func newTokenValue() (string, error) {
	buf := make([]byte, tokenByteLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// Generate creates a remember token bound to the user with a fresh validity
// window. SetNX guards against colliding with a live token.
func (r *TokenRedis) Generate(ctx context.Context, userID uint) (string, error) {
	now := time.Now()
	for attempt := 0; attempt < maxGenerateAttempts; attempt++ {
		value, err := newTokenValue()
		if err != nil {
			return "", err
		}

		tok := &entity.RememberToken{
			Token:     value,
			UserID:    userID,
			Type:      entity.TypeRemember,
			CreatedAt: now,
			ExpiresAt: now.Add(entity.RememberTokenValidity),
		}
		data, err := json.Marshal(tok)
		if err != nil {
			return "", fmt.Errorf("failed to marshal token: %w", err)
		}

		ok, err := r.client.SetNX(ctx, r.tokenKey(value), data, entity.RememberTokenValidity).Result()
		if err != nil {
			return "", err
		}
		if !ok {
			continue // collision with a live token, regenerate
		}
		return value, nil
	}
	return "", fmt.Errorf("failed to generate unique token after %d attempts", maxGenerateAttempts)
}

// get loads and decodes a token, mapping a missing key to ErrInvalidRememberToken.
func (r *TokenRedis) get(ctx context.Context, token string) (*entity.RememberToken, error) {
	data, err := r.client.Get(ctx, r.tokenKey(token)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, usecase.ErrInvalidRememberToken
		}
		return nil, err
	}

	var tok entity.RememberToken
	if err := json.Unmarshal(data, &tok); err != nil {
		return nil, fmt.Errorf("failed to unmarshal token: %w", err)
	}
	return &tok, nil
}

// Consume looks up a live remember token and returns the owning user ID.
func (r *TokenRedis) Consume(ctx context.Context, token string) (uint, error) {
	tok, err := r.get(ctx, token)
	if err != nil {
		return 0, err
	}
	if !tok.IsUsable() {
		return 0, usecase.ErrInvalidRememberToken
	}
	return tok.UserID, nil
}

// ExtendValidity pushes the token's expiry (and key TTL) forward by the
// validity window.
func (r *TokenRedis) ExtendValidity(ctx context.Context, token string) error {
	tok, err := r.get(ctx, token)
	if err != nil {
		return err
	}
	if !tok.IsUsable() {
		return usecase.ErrInvalidRememberToken
	}

	tok.ExpiresAt = time.Now().Add(entity.RememberTokenValidity)
	data, err := json.Marshal(tok)
	if err != nil {
		return fmt.Errorf("failed to marshal token: %w", err)
	}
	return r.client.Set(ctx, r.tokenKey(token), data, entity.RememberTokenValidity).Err()
}

// Revoke deletes the token scoped to the owning user. Unknown tokens and
// tokens owned by someone else are silent no-ops, keeping logout idempotent.
func (r *TokenRedis) Revoke(ctx context.Context, token string, userID uint) error {
	tok, err := r.get(ctx, token)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidRememberToken) {
			return nil
		}
		return err
	}
	if tok.UserID != userID {
		return nil
	}
	return r.client.Del(ctx, r.tokenKey(token)).Err()
}
