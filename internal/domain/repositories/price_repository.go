package repositories

import (
	"context"

	"github.com/google/uuid"

	"fantera.backend/internal/domain/entities"
)

// PriceRepository defines latest-price data operations. Exactly one row
// exists per club; Upsert overwrites price, change and timestamp.
type PriceRepository interface {
	Upsert(ctx context.Context, price *entities.Price) error
	GetByClubID(ctx context.Context, clubID uuid.UUID) (*entities.Price, error)
	// List returns all latest prices ordered by updated_at descending
	List(ctx context.Context) ([]*entities.Price, error)
}
