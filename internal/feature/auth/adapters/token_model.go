package adapters

import (
	"time"

	"shop_backend/internal/feature/auth/domain/entity"
)

// TokenModel is the GORM model for the user_tokens table.
type TokenModel struct {
	ID        uint      `gorm:"primaryKey"`
	Token     string    `gorm:"uniqueIndex;size:64;not null"`
	UserID    uint      `gorm:"index;not null"`
	Type      string    `gorm:"size:32;not null"`
	CreatedAt time.Time `gorm:"not null"`
	ExpiresAt time.Time `gorm:"index;not null"`
}

// TableName returns the table name for GORM.
func (TokenModel) TableName() string {
	return "user_tokens"
}

// ToEntity converts the GORM model to a domain entity.
func (m *TokenModel) ToEntity() *entity.RememberToken {
	return &entity.RememberToken{
		Token:     m.Token,
		UserID:    m.UserID,
		Type:      m.Type,
		CreatedAt: m.CreatedAt,
		ExpiresAt: m.ExpiresAt,
	}
}

// TokenModelFromEntity converts a domain entity to a GORM model.
func TokenModelFromEntity(t *entity.RememberToken) *TokenModel {
	return &TokenModel{
		Token:     t.Token,
		UserID:    t.UserID,
		Type:      t.Type,
		CreatedAt: t.CreatedAt,
		ExpiresAt: t.ExpiresAt,
	}
}
