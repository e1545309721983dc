package usecase

import "context"

// RememberTokenRepository abstracts the persistence layer for remember tokens.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type RememberTokenRepository interface {
	// Generate creates a new random, unguessable token bound to the user
	// with a fixed validity window and returns the token value.
	// Implementations must regenerate on collision with a live token.
	Generate(ctx context.Context, userID uint) (string, error)

	// Consume looks up a live remember token and returns the owning user ID.
	// It returns ErrInvalidRememberToken if the token is unknown, of the
	// wrong kind, or past its validity window.
	Consume(ctx context.Context, token string) (uint, error)

	// ExtendValidity pushes the token's expiry forward by the validity
	// window, enabling "stay logged in" semantics on successful reuse.
	ExtendValidity(ctx context.Context, token string) error

	// Revoke deletes the token scoped to the owning user, so a token cannot
	// be revoked by a non-owner. Revoking an unknown token is a no-op.
	Revoke(ctx context.Context, token string, userID uint) error
}
