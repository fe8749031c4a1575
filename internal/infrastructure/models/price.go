package models

import (
	"time"

	"github.com/google/uuid"
)

// Price is a single-row-per-club latest price. The unique index on ClubID
// is what makes the sync upsert last-write-wins.
type Price struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	ClubID    uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	Price     float64   `gorm:"type:decimal(18,6);not null"`
	ChangePct float64   `gorm:"type:decimal(10,2);not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
