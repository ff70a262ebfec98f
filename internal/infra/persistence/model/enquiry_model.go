package model

import (
	"time"

	"github.com/google/uuid"
)

// EnquiryModel mirrors the 'enquiries' table.
type EnquiryModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key"`
	Type        string     `gorm:"type:varchar(8);not null"`
	ProductID   uuid.UUID  `gorm:"type:uuid;not null;index"`
	Quantity    int        `gorm:"not null"`
	CompanyName string     `gorm:"type:varchar(255);not null"`
	Pincode     string     `gorm:"type:varchar(10);not null"`
	Email       string     `gorm:"type:varchar(255);not null"`
	Phone       string     `gorm:"type:varchar(32);not null"`
	GST         string     `gorm:"type:varchar(32)"`
	Status      string     `gorm:"type:varchar(16);not null;index"`
	AssignedTo  *uuid.UUID `gorm:"type:uuid"`
	CreatedAt   time.Time  `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (EnquiryModel) TableName() string {
	return "enquiries"
}
