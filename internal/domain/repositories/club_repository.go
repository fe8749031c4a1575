package repositories

import (
	"context"

	"github.com/google/uuid"

	"fantera.backend/internal/domain/entities"
)

// ClubRepository defines club data operations
type ClubRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Club, error)
	ListActive(ctx context.Context) ([]*entities.Club, error)
	// ListActiveRefs returns the id+ticker projection used by the price sync
	ListActiveRefs(ctx context.Context) ([]entities.ClubRef, error)
	Create(ctx context.Context, club *entities.Club) error
}
