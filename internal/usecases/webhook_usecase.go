package usecases

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"

	"fantera.backend/internal/domain/entities"
	"fantera.backend/internal/domain/repositories"
	"fantera.backend/internal/infrastructure/identity"
	"fantera.backend/pkg/logger"
)

// WebhookUsecase processes identity-provider webhook events
type WebhookUsecase struct {
	userRepo repositories.UserRepository
}

// NewWebhookUsecase creates a new webhook usecase
func NewWebhookUsecase(userRepo repositories.UserRepository) *WebhookUsecase {
	return &WebhookUsecase{userRepo: userRepo}
}

// HandleEvent dispatches a verified webhook event. Unrecognized event types
// are acknowledged without side effects so the provider does not retry them.
func (u *WebhookUsecase) HandleEvent(ctx context.Context, event *identity.WebhookEvent) error {
	switch event.Type {
	case "user.created":
		return u.upsertFromEvent(ctx, event)
	default:
		logger.Debug(ctx, "ignoring webhook event", zap.String("type", event.Type))
		return nil
	}
}

func (u *WebhookUsecase) upsertFromEvent(ctx context.Context, event *identity.WebhookEvent) error {
	if event.User.ID == "" {
		logger.Warn(ctx, "webhook event without user payload", zap.String("type", event.Type))
		return nil
	}

	input := extractUserInput(&event.User)
	user, err := u.userRepo.Upsert(ctx, input)
	if err != nil {
		return err
	}

	logger.Info(ctx, "user upserted from webhook",
		zap.String("privy_id", user.PrivyID),
		zap.Bool("has_email", user.Email.Valid),
		zap.Bool("has_wallet", user.WalletAddress.Valid))
	return nil
}

// extractUserInput flattens the linked accounts into an upsert payload. The
// email account wins over the google and apple emails; display name comes
// from google then apple; EVM wallet addresses are normalized to their
// checksummed form, other chains' addresses are stored as delivered.
func extractUserInput(user *identity.WebhookUser) *entities.UpsertUserInput {
	input := &entities.UpsertUserInput{PrivyID: user.ID}

	var googleEmail, appleEmail, googleName, appleName null.String
	for _, account := range user.LinkedAccounts {
		switch account.Type {
		case "email":
			if account.Address != "" && !input.Email.Valid {
				input.Email = null.StringFrom(account.Address)
			}
		case "google_oauth":
			if account.Email != "" && !googleEmail.Valid {
				googleEmail = null.StringFrom(account.Email)
			}
			if account.Name != "" && !googleName.Valid {
				googleName = null.StringFrom(account.Name)
			}
		case "apple_oauth":
			if account.Email != "" && !appleEmail.Valid {
				appleEmail = null.StringFrom(account.Email)
			}
			if account.Name != "" && !appleName.Valid {
				appleName = null.StringFrom(account.Name)
			}
		case "wallet":
			if account.Address != "" && !input.WalletAddress.Valid {
				address := account.Address
				if common.IsHexAddress(address) {
					address = common.HexToAddress(address).Hex()
				}
				input.WalletAddress = null.StringFrom(address)
			}
		}
	}

	if !input.Email.Valid {
		if googleEmail.Valid {
			input.Email = googleEmail
		} else {
			input.Email = appleEmail
		}
	}
	if googleName.Valid {
		input.DisplayName = googleName
	} else {
		input.DisplayName = appleName
	}
	return input
}
