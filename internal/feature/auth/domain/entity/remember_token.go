package entity

import "time"

// TypeRemember tags tokens usable for password-less re-authentication.
// The user_tokens table is shared with other token kinds, so every row
// carries a type tag.
const TypeRemember = "remember"

// RememberTokenValidity is the rolling validity window for remember tokens.
// Each successful reuse pushes the expiry forward by this amount.
const RememberTokenValidity = 30 * 24 * time.Hour

// RememberToken is a persisted opaque credential that can be exchanged for
// a fresh session token without a password.
type RememberToken struct {
	Token     string    // Opaque token value (64-character hex string)
	UserID    uint      // Owning user
	Type      string    // Token kind tag (TypeRemember)
	CreatedAt time.Time // Issuance time
	ExpiresAt time.Time // End of the current validity window
}

// IsExpired returns true if the token has passed its validity window.
func (t *RememberToken) IsExpired() bool {
	return time.Now().After(t.ExpiresAt)
}

// IsUsable returns true if the token is a live remember token.
func (t *RememberToken) IsUsable() bool {
	return t.Type == TypeRemember && !t.IsExpired()
}
