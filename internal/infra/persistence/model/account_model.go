package model

import (
	"time"

	"github.com/google/uuid"
)

// AccountModel mirrors the 'accounts' table. The unique index on email gives
// inserts atomic insert-if-absent semantics; a colliding registration fails
// at the constraint instead of silently overwriting.
type AccountModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Name         string    `gorm:"type:varchar(100);not null"`
	Phone        string    `gorm:"type:varchar(32);not null"`
	Role         string    `gorm:"type:varchar(16);not null;index"`
	CompanyName  string    `gorm:"type:varchar(255)"`
	GST          string    `gorm:"type:varchar(32)"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}
