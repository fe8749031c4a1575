package usecases_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/volatiletech/null/v8"

	"fantera.backend/internal/domain/entities"
	"fantera.backend/internal/infrastructure/identity"
	"fantera.backend/internal/usecases"
)

func TestWebhookUserCreated_FullProfile(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := usecases.NewWebhookUsecase(userRepo)

	var captured *entities.UpsertUserInput
	userRepo.On("Upsert", mock.Anything, mock.AnythingOfType("*entities.UpsertUserInput")).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(*entities.UpsertUserInput)
		}).
		Return(&entities.User{PrivyID: "did:privy:abc"}, nil)

	event := &identity.WebhookEvent{
		Type: "user.created",
		User: identity.WebhookUser{
			ID: "did:privy:abc",
			LinkedAccounts: []identity.LinkedAccount{
				{Type: "email", Address: "direct@example.com"},
				{Type: "google_oauth", Email: "g@example.com", Name: "Grace Hopper"},
				{Type: "wallet", Address: "0x52908400098527886e0f7030069857d2e4169ee7"},
			},
		},
	}

	err := uc.HandleEvent(context.Background(), event)

	assert.NoError(t, err)
	assert.Equal(t, "did:privy:abc", captured.PrivyID)
	assert.Equal(t, null.StringFrom("direct@example.com"), captured.Email)
	assert.Equal(t, null.StringFrom("Grace Hopper"), captured.DisplayName)
	// EIP-55 checksummed form of the lowercase input address.
	assert.Equal(t, null.StringFrom("0x52908400098527886E0F7030069857D2E4169EE7"), captured.WalletAddress)
}

func TestWebhookUserCreated_EmailFallbackOrder(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := usecases.NewWebhookUsecase(userRepo)

	var captured *entities.UpsertUserInput
	userRepo.On("Upsert", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(*entities.UpsertUserInput)
		}).
		Return(&entities.User{PrivyID: "did:privy:abc"}, nil)

	event := &identity.WebhookEvent{
		Type: "user.created",
		User: identity.WebhookUser{
			ID: "did:privy:abc",
			LinkedAccounts: []identity.LinkedAccount{
				{Type: "apple_oauth", Email: "a@example.com", Name: "Apple Name"},
				{Type: "google_oauth", Email: "g@example.com", Name: "Google Name"},
			},
		},
	}

	err := uc.HandleEvent(context.Background(), event)

	assert.NoError(t, err)
	assert.Equal(t, null.StringFrom("g@example.com"), captured.Email)
	assert.Equal(t, null.StringFrom("Google Name"), captured.DisplayName)
}

func TestWebhookUserCreated_NonEVMWalletStoredVerbatim(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := usecases.NewWebhookUsecase(userRepo)

	var captured *entities.UpsertUserInput
	userRepo.On("Upsert", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(*entities.UpsertUserInput)
		}).
		Return(&entities.User{PrivyID: "did:privy:abc"}, nil)

	solanaAddress := "4Nd1mYvM6K7jQzfcHgVtRrLWxN9uBqyXoPpSKmWtQeJd"
	event := &identity.WebhookEvent{
		Type: "user.created",
		User: identity.WebhookUser{
			ID: "did:privy:abc",
			LinkedAccounts: []identity.LinkedAccount{
				{Type: "wallet", Address: solanaAddress},
			},
		},
	}

	err := uc.HandleEvent(context.Background(), event)

	assert.NoError(t, err)
	assert.Equal(t, null.StringFrom(solanaAddress), captured.WalletAddress)
}

func TestWebhookUnknownEventIgnored(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := usecases.NewWebhookUsecase(userRepo)

	err := uc.HandleEvent(context.Background(), &identity.WebhookEvent{Type: "user.updated"})

	assert.NoError(t, err)
	userRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestWebhookUserCreated_MissingUserPayload(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := usecases.NewWebhookUsecase(userRepo)

	err := uc.HandleEvent(context.Background(), &identity.WebhookEvent{Type: "user.created"})

	assert.NoError(t, err)
	userRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestWebhookUserCreated_RepoError(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := usecases.NewWebhookUsecase(userRepo)

	userRepo.On("Upsert", mock.Anything, mock.Anything).
		Return(nil, errors.New("db down"))

	err := uc.HandleEvent(context.Background(), &identity.WebhookEvent{
		Type: "user.created",
		User: identity.WebhookUser{ID: "did:privy:abc"},
	})

	assert.Error(t, err)
}
