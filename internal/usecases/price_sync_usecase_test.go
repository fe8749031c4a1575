package usecases_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"fantera.backend/internal/domain/entities"
	domainerrors "fantera.backend/internal/domain/errors"
	"fantera.backend/internal/infrastructure/marketdata"
	"fantera.backend/internal/usecases"
)

func TestPriceSync_Success(t *testing.T) {
	clubRepo := new(MockClubRepository)
	priceRepo := new(MockPriceRepository)
	fetcher := new(MockSnapshotFetcher)
	uc := usecases.NewPriceSyncUsecase(clubRepo, priceRepo, fetcher, nil)

	juve := entities.ClubRef{ID: uuid.New(), Ticker: "JUVE.MI"}
	bvb := entities.ClubRef{ID: uuid.New(), Ticker: "BVB.DE"}

	clubRepo.On("ListActiveRefs", mock.Anything).
		Return([]entities.ClubRef{juve, bvb}, nil)
	fetcher.On("GetSnapshots", mock.Anything, []string{"JUVE.MI", "BVB.DE"}).
		Return([]*marketdata.Snapshot{
			{Symbol: "JUVE.MI", DailyBar: &marketdata.Bar{Close: 2.41}, PrevDailyBar: &marketdata.Bar{Close: 2.43}},
			{Symbol: "BVB.DE", DailyBar: &marketdata.Bar{Close: 3.95}, PrevDailyBar: &marketdata.Bar{Close: 3.80}},
		}, nil)
	priceRepo.On("Upsert", mock.Anything, mock.AnythingOfType("*entities.Price")).Return(nil)

	result, err := uc.Sync(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 2, result.Updated)
	assert.NotEmpty(t, result.Timestamp)
	priceRepo.AssertNumberOfCalls(t, "Upsert", 2)
}

func TestPriceSync_NoActiveClubs(t *testing.T) {
	clubRepo := new(MockClubRepository)
	fetcher := new(MockSnapshotFetcher)
	uc := usecases.NewPriceSyncUsecase(clubRepo, new(MockPriceRepository), fetcher, nil)

	clubRepo.On("ListActiveRefs", mock.Anything).Return([]entities.ClubRef{}, nil)

	result, err := uc.Sync(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 0, result.Updated)
	fetcher.AssertNotCalled(t, "GetSnapshots", mock.Anything, mock.Anything)
}

func TestPriceSync_FetchFailure(t *testing.T) {
	clubRepo := new(MockClubRepository)
	priceRepo := new(MockPriceRepository)
	fetcher := new(MockSnapshotFetcher)
	uc := usecases.NewPriceSyncUsecase(clubRepo, priceRepo, fetcher, nil)

	clubRepo.On("ListActiveRefs", mock.Anything).
		Return([]entities.ClubRef{{ID: uuid.New(), Ticker: "JUVE.MI"}}, nil)
	fetcher.On("GetSnapshots", mock.Anything, mock.Anything).
		Return(nil, errors.New("alpaca 503"))

	_, err := uc.Sync(context.Background())

	var appErr *domainerrors.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, "PRICE_FETCH_FAILED", appErr.Code)
	assert.Equal(t, "Failed to update prices", appErr.Message)
	priceRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestPriceSync_MissingSnapshotsSkipped(t *testing.T) {
	clubRepo := new(MockClubRepository)
	priceRepo := new(MockPriceRepository)
	fetcher := new(MockSnapshotFetcher)
	uc := usecases.NewPriceSyncUsecase(clubRepo, priceRepo, fetcher, nil)

	juve := entities.ClubRef{ID: uuid.New(), Ticker: "JUVE.MI"}
	ghost := entities.ClubRef{ID: uuid.New(), Ticker: "GONE.XX"}

	clubRepo.On("ListActiveRefs", mock.Anything).
		Return([]entities.ClubRef{juve, ghost}, nil)
	fetcher.On("GetSnapshots", mock.Anything, mock.Anything).
		Return([]*marketdata.Snapshot{
			{Symbol: "JUVE.MI", DailyBar: &marketdata.Bar{Close: 2.41}, PrevDailyBar: &marketdata.Bar{Close: 2.43}},
			nil,
		}, nil)
	priceRepo.On("Upsert", mock.Anything, mock.MatchedBy(func(p *entities.Price) bool {
		return p.ClubID == juve.ID
	})).Return(nil)

	result, err := uc.Sync(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 1, result.Updated)
	priceRepo.AssertNumberOfCalls(t, "Upsert", 1)
}

func TestPriceSync_UpsertFailure(t *testing.T) {
	clubRepo := new(MockClubRepository)
	priceRepo := new(MockPriceRepository)
	fetcher := new(MockSnapshotFetcher)
	uc := usecases.NewPriceSyncUsecase(clubRepo, priceRepo, fetcher, nil)

	clubRepo.On("ListActiveRefs", mock.Anything).
		Return([]entities.ClubRef{{ID: uuid.New(), Ticker: "JUVE.MI"}}, nil)
	fetcher.On("GetSnapshots", mock.Anything, mock.Anything).
		Return([]*marketdata.Snapshot{
			{Symbol: "JUVE.MI", DailyBar: &marketdata.Bar{Close: 2.41}},
		}, nil)
	priceRepo.On("Upsert", mock.Anything, mock.Anything).
		Return(errors.New("constraint violation"))

	_, err := uc.Sync(context.Background())

	var appErr *domainerrors.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, "PRICE_FETCH_FAILED", appErr.Code)
}

func TestPriceSync_RefreshesCache(t *testing.T) {
	clubRepo := new(MockClubRepository)
	priceRepo := new(MockPriceRepository)
	fetcher := new(MockSnapshotFetcher)
	cache := new(MockPriceCache)
	uc := usecases.NewPriceSyncUsecase(clubRepo, priceRepo, fetcher, cache)

	juve := entities.ClubRef{ID: uuid.New(), Ticker: "JUVE.MI"}
	clubRepo.On("ListActiveRefs", mock.Anything).Return([]entities.ClubRef{juve}, nil)
	fetcher.On("GetSnapshots", mock.Anything, mock.Anything).
		Return([]*marketdata.Snapshot{
			{Symbol: "JUVE.MI", DailyBar: &marketdata.Bar{Close: 2.41}},
		}, nil)
	priceRepo.On("Upsert", mock.Anything, mock.Anything).Return(nil)
	priceRepo.On("List", mock.Anything).
		Return([]*entities.Price{{ClubID: juve.ID, Price: 2.41}}, nil)
	cache.On("Publish", mock.Anything, mock.Anything).Return(nil)

	_, err := uc.Sync(context.Background())

	assert.NoError(t, err)
	cache.AssertCalled(t, "Publish", mock.Anything, mock.Anything)
}
