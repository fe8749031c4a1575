package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Club struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Name          string    `gorm:"type:varchar(100);not null"`
	Ticker        string    `gorm:"type:varchar(20);uniqueIndex;not null"`
	Exchange      string    `gorm:"type:varchar(100);not null"`
	CrestURL      string    `gorm:"type:text"`
	Primary       string    `gorm:"type:varchar(50);column:color_primary"`
	Secondary     string    `gorm:"type:varchar(50);column:color_secondary"`
	GradientStart string    `gorm:"type:varchar(50);column:color_gradient_start"`
	GradientEnd   string    `gorm:"type:varchar(50);column:color_gradient_end"`
	GlowColor     string    `gorm:"type:varchar(50);column:color_glow"`
	IsActive      bool      `gorm:"default:true;index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     gorm.DeletedAt `gorm:"index"`

	// Relations
	Price *Price `gorm:"foreignKey:ClubID"`
}
