// Package entity はauthフィーチャーのドメインエンティティを定義します。
package entity

import "time"

// ResetCodeValidity はパスワードリセットコードの有効期間です。
const ResetCodeValidity = time.Hour

// User represents a registered account.
// It carries the credentials plus the pending password-reset fields.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey" json:"id"`

	// Name is the display name of the user.
	Name string `gorm:"size:255;not null" json:"name"`

	// Email is the user's email address used for authentication.
	// It must be unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null" json:"email"`

	// Password is the bcrypt hash of the user's password.
	// This never stores plaintext passwords and is never serialized.
	Password string `gorm:"size:255;not null" json:"-"`

	// IsAdmin marks accounts allowed through the admin gate.
	IsAdmin bool `gorm:"not null;default:false" json:"isAdmin"`

	// ForgotCode is the pending password-reset code.
	// It is empty unless a reset is in progress and is cleared once consumed.
	ForgotCode string `gorm:"size:16" json:"-"`

	// ForgotGeneratedAt is the time the pending reset code was issued.
	ForgotGeneratedAt *time.Time `json:"-"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time `json:"updatedAt"`
}

// ResetCodeExpired reports whether the pending reset code was issued more
// than ResetCodeValidity ago. A user without a pending code counts as expired.
func (u *User) ResetCodeExpired(now time.Time) bool {
	if u.ForgotCode == "" || u.ForgotGeneratedAt == nil {
		return true
	}
	return now.After(u.ForgotGeneratedAt.Add(ResetCodeValidity))
}
