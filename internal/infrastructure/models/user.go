package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	PrivyID           string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Email             *string   `gorm:"type:varchar(255)"`
	DisplayName       *string   `gorm:"type:varchar(255)"`
	WalletAddress     *string   `gorm:"type:varchar(255)"`
	KYCStatus         string    `gorm:"type:varchar(50);not null;default:'NOT_STARTED'"`
	KYCProviderUserID *string   `gorm:"type:varchar(255)"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
	DeletedAt         gorm.DeletedAt `gorm:"index"`
}
