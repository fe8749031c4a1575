package usecases

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"fantera.backend/internal/domain/entities"
	domainerrors "fantera.backend/internal/domain/errors"
	"fantera.backend/internal/domain/repositories"
	"fantera.backend/internal/infrastructure/identity"
	"fantera.backend/pkg/logger"
)

// MapPrivyKYCStatus maps a provider verification-status string to the local
// enum. The function is total: unrecognized provider states degrade to
// NOT_STARTED rather than failing.
func MapPrivyKYCStatus(privyStatus string) entities.KYCStatus {
	switch privyStatus {
	case "not_found", "not_started", "incomplete":
		return entities.KYCNotStarted
	case "under_review", "awaiting_questionnaire", "awaiting_ubo", "paused":
		return entities.KYCUnderReview
	case "active":
		return entities.KYCActive
	case "rejected", "offboarded":
		return entities.KYCRejected
	default:
		logger.Warn(context.Background(), "unrecognized provider kyc status",
			zap.String("status", privyStatus))
		return entities.KYCNotStarted
	}
}

// KYCUsecase handles the verification flow
type KYCUsecase struct {
	userRepo  repositories.UserRepository
	kycClient identity.KYCClient
}

// NewKYCUsecase creates a new KYC usecase
func NewKYCUsecase(userRepo repositories.UserRepository, kycClient identity.KYCClient) *KYCUsecase {
	return &KYCUsecase{
		userRepo:  userRepo,
		kycClient: kycClient,
	}
}

// Submit validates the submission and starts verification with the external
// provider. Already-verified users are rejected before the provider is
// called.
func (u *KYCUsecase) Submit(ctx context.Context, privyID string, input *entities.KYCSubmitInput) (*entities.KYCStatusResponse, error) {
	if msgs := input.Validate(); len(msgs) > 0 {
		return nil, domainerrors.Validation("VALIDATION_ERROR", strings.Join(msgs, ", "))
	}

	user, err := u.userRepo.GetByPrivyID(ctx, privyID)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			return nil, domainerrors.NotFound("USER_NOT_FOUND", "User not found")
		}
		return nil, err
	}

	if user.KYCStatus == entities.KYCActive {
		return nil, domainerrors.BadRequest("KYC_ALREADY_ACTIVE", "User is already verified")
	}

	result, err := u.kycClient.InitiateKYC(ctx, privyID, input)
	if err != nil {
		logger.Error(ctx, "kyc initiation failed", zap.String("privy_id", privyID), zap.Error(err))
		return nil, domainerrors.System("KYC_INITIATION_FAILED", "Could not start verification", err)
	}

	// SetKYC overwrites the provider id even when the result carries none,
	// so a stale id from an earlier attempt never survives resubmission.
	if err := u.userRepo.SetKYC(ctx, privyID, entities.KYCUnderReview, result.ProviderUserID); err != nil {
		return nil, err
	}

	return &entities.KYCStatusResponse{KYCStatus: entities.KYCUnderReview}, nil
}

// CheckStatus reconciles the stored status with the provider. ACTIVE and
// NOT_STARTED are stable for polling purposes and short-circuit without a
// provider call; otherwise the mapped provider status is persisted only when
// it differs from the stored one.
func (u *KYCUsecase) CheckStatus(ctx context.Context, privyID string) (*entities.KYCStatusResponse, error) {
	user, err := u.userRepo.GetByPrivyID(ctx, privyID)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			return nil, domainerrors.NotFound("USER_NOT_FOUND", "User not found")
		}
		return nil, err
	}

	if user.KYCStatus == entities.KYCActive || user.KYCStatus == entities.KYCNotStarted {
		return &entities.KYCStatusResponse{KYCStatus: user.KYCStatus}, nil
	}

	providerStatus, err := u.kycClient.GetKYCStatus(ctx, privyID)
	if err != nil {
		logger.Error(ctx, "kyc status check failed", zap.String("privy_id", privyID), zap.Error(err))
		return nil, domainerrors.System("KYC_STATUS_FAILED", "Could not check verification status", err)
	}

	mapped := MapPrivyKYCStatus(providerStatus.Status)
	if mapped != user.KYCStatus {
		// UpdateKYC keeps the stored provider id when the check returned none.
		if err := u.userRepo.UpdateKYC(ctx, privyID, mapped, providerStatus.ProviderUserID); err != nil {
			return nil, err
		}
	}

	return &entities.KYCStatusResponse{KYCStatus: mapped}, nil
}
