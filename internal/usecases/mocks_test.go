package usecases_test

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/volatiletech/null/v8"

	"fantera.backend/internal/domain/entities"
	"fantera.backend/internal/infrastructure/identity"
	"fantera.backend/internal/infrastructure/marketdata"
)

// Mock UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByPrivyID(ctx context.Context, privyID string) (*entities.User, error) {
	args := m.Called(ctx, privyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) Upsert(ctx context.Context, input *entities.UpsertUserInput) (*entities.User, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) UpdateKYC(ctx context.Context, privyID string, status entities.KYCStatus, providerUserID null.String) error {
	args := m.Called(ctx, privyID, status, providerUserID)
	return args.Error(0)
}

func (m *MockUserRepository) SetKYC(ctx context.Context, privyID string, status entities.KYCStatus, providerUserID null.String) error {
	args := m.Called(ctx, privyID, status, providerUserID)
	return args.Error(0)
}

// Mock ClubRepository
type MockClubRepository struct {
	mock.Mock
}

func (m *MockClubRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Club, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Club), args.Error(1)
}

func (m *MockClubRepository) ListActive(ctx context.Context) ([]*entities.Club, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Club), args.Error(1)
}

func (m *MockClubRepository) ListActiveRefs(ctx context.Context) ([]entities.ClubRef, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.ClubRef), args.Error(1)
}

func (m *MockClubRepository) Create(ctx context.Context, club *entities.Club) error {
	args := m.Called(ctx, club)
	return args.Error(0)
}

// Mock PriceRepository
type MockPriceRepository struct {
	mock.Mock
}

func (m *MockPriceRepository) Upsert(ctx context.Context, price *entities.Price) error {
	args := m.Called(ctx, price)
	return args.Error(0)
}

func (m *MockPriceRepository) GetByClubID(ctx context.Context, clubID uuid.UUID) (*entities.Price, error) {
	args := m.Called(ctx, clubID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Price), args.Error(1)
}

func (m *MockPriceRepository) List(ctx context.Context) ([]*entities.Price, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Price), args.Error(1)
}

// Mock KYCClient
type MockKYCClient struct {
	mock.Mock
}

func (m *MockKYCClient) InitiateKYC(ctx context.Context, privyUserID string, data *entities.KYCSubmitInput) (*identity.KYCInitiationResult, error) {
	args := m.Called(ctx, privyUserID, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.KYCInitiationResult), args.Error(1)
}

func (m *MockKYCClient) GetKYCStatus(ctx context.Context, privyUserID string) (*identity.KYCStatusResult, error) {
	args := m.Called(ctx, privyUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.KYCStatusResult), args.Error(1)
}

// Mock SnapshotFetcher
type MockSnapshotFetcher struct {
	mock.Mock
}

func (m *MockSnapshotFetcher) GetSnapshots(ctx context.Context, tickers []string) ([]*marketdata.Snapshot, error) {
	args := m.Called(ctx, tickers)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*marketdata.Snapshot), args.Error(1)
}

// Mock PriceCacheStore
type MockPriceCache struct {
	mock.Mock
}

func (m *MockPriceCache) Publish(ctx context.Context, prices []entities.PricePoint) error {
	args := m.Called(ctx, prices)
	return args.Error(0)
}

func (m *MockPriceCache) Fetch(ctx context.Context) ([]entities.PricePoint, bool, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).([]entities.PricePoint), args.Bool(1), args.Error(2)
}
