package repositories

import (
	"context"

	"github.com/volatiletech/null/v8"

	"fantera.backend/internal/domain/entities"
)

// UserRepository defines user data operations
type UserRepository interface {
	GetByPrivyID(ctx context.Context, privyID string) (*entities.User, error)
	// Upsert creates or updates a user keyed by PrivyID, overwriting the
	// mutable profile fields even when they are null.
	Upsert(ctx context.Context, input *entities.UpsertUserInput) (*entities.User, error)
	// UpdateKYC keeps the stored provider user id when the given one is
	// invalid; SetKYC overwrites it unconditionally, even to null.
	UpdateKYC(ctx context.Context, privyID string, status entities.KYCStatus, providerUserID null.String) error
	SetKYC(ctx context.Context, privyID string, status entities.KYCStatus, providerUserID null.String) error
}
