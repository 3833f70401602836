package entity

import "github.com/google/uuid"

// Account is a platform user. PasswordHash always holds a digest,
// never the plaintext password.
type Account struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"not null;size:100"`
	Email        string    `gorm:"not null;size:100;uniqueIndex:idx_account_email"`
	PasswordHash string    `gorm:"not null;size:255"`
	Active       bool      `gorm:"not null"`
	CreatedAt    int64     `gorm:"not null;autoCreateTime:false"`
	UpdatedAt    int64     `gorm:"not null;autoUpdateTime:false"`

	// Relationships
	Companies []*Company `gorm:"foreignKey:OwnerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
