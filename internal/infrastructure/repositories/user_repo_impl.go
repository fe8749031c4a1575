package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"fantera.backend/internal/domain/entities"
	domainerrors "fantera.backend/internal/domain/errors"
	"fantera.backend/internal/infrastructure/models"
	"fantera.backend/pkg/utils"
)

// UserRepository implements user data operations
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// GetByPrivyID gets a user by identity-provider subject id
func (r *UserRepository) GetByPrivyID(ctx context.Context, privyID string) (*entities.User, error) {
	var m models.User
	if err := r.db.WithContext(ctx).Where("privy_id = ?", privyID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// Upsert creates or updates a user keyed by privy_id. On conflict the
// mutable profile fields are overwritten, even to null, which makes the
// webhook safe to deliver more than once.
func (r *UserRepository) Upsert(ctx context.Context, input *entities.UpsertUserInput) (*entities.User, error) {
	m := &models.User{
		ID:            utils.NewID(),
		PrivyID:       input.PrivyID,
		Email:         input.Email.Ptr(),
		DisplayName:   input.DisplayName.Ptr(),
		WalletAddress: input.WalletAddress.Ptr(),
		KYCStatus:     string(entities.KYCNotStarted),
	}

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "privy_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"email", "display_name", "wallet_address", "updated_at"}),
	}).Create(m).Error
	if err != nil {
		return nil, err
	}

	return r.GetByPrivyID(ctx, input.PrivyID)
}

// UpdateKYC updates a user's KYC status. The provider user id is only
// written when the caller has a value; an invalid null.String keeps the
// previously stored id.
func (r *UserRepository) UpdateKYC(ctx context.Context, privyID string, status entities.KYCStatus, providerUserID null.String) error {
	updates := map[string]interface{}{
		"kyc_status": string(status),
		"updated_at": time.Now(),
	}
	if providerUserID.Valid {
		updates["kyc_provider_user_id"] = providerUserID.String
	}
	return r.applyKYC(ctx, privyID, updates)
}

// SetKYC writes a user's KYC status and provider user id unconditionally. A
// fresh submission replaces any id left over from a prior attempt, writing
// NULL when the provider returned none.
func (r *UserRepository) SetKYC(ctx context.Context, privyID string, status entities.KYCStatus, providerUserID null.String) error {
	updates := map[string]interface{}{
		"kyc_status":           string(status),
		"kyc_provider_user_id": providerUserID.Ptr(),
		"updated_at":           time.Now(),
	}
	return r.applyKYC(ctx, privyID, updates)
}

func (r *UserRepository) applyKYC(ctx context.Context, privyID string, updates map[string]interface{}) error {
	result := r.db.WithContext(ctx).Model(&models.User{}).Where("privy_id = ?", privyID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *UserRepository) toEntity(m *models.User) *entities.User {
	return &entities.User{
		ID:                m.ID,
		PrivyID:           m.PrivyID,
		Email:             null.StringFromPtr(m.Email),
		DisplayName:       null.StringFromPtr(m.DisplayName),
		WalletAddress:     null.StringFromPtr(m.WalletAddress),
		KYCStatus:         entities.KYCStatus(m.KYCStatus),
		KYCProviderUserID: null.StringFromPtr(m.KYCProviderUserID),
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}
