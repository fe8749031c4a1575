package usecases

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"fantera.backend/internal/domain/entities"
	"fantera.backend/internal/domain/repositories"
	"fantera.backend/pkg/logger"
)

// PriceCacheStore is the cache surface the price views need
type PriceCacheStore interface {
	Publish(ctx context.Context, prices []entities.PricePoint) error
	Fetch(ctx context.Context) ([]entities.PricePoint, bool, error)
}

// PriceUsecase serves the latest-prices view
type PriceUsecase struct {
	priceRepo repositories.PriceRepository
	clubRepo  repositories.ClubRepository
	cache     PriceCacheStore
}

// NewPriceUsecase creates a new price usecase. The cache is optional; a nil
// cache means every read hits the database.
func NewPriceUsecase(priceRepo repositories.PriceRepository, clubRepo repositories.ClubRepository, cache PriceCacheStore) *PriceUsecase {
	return &PriceUsecase{
		priceRepo: priceRepo,
		clubRepo:  clubRepo,
		cache:     cache,
	}
}

// List returns one latest price point per active club, newest first. Cache
// hits skip the database entirely; cache failures degrade to a database
// read instead of failing the request.
func (u *PriceUsecase) List(ctx context.Context) ([]entities.PricePoint, error) {
	if u.cache != nil {
		points, ok, err := u.cache.Fetch(ctx)
		if err != nil {
			logger.Warn(ctx, "price cache read failed", zap.Error(err))
		} else if ok {
			markStale(points)
			return points, nil
		}
	}

	points, err := u.listFromStore(ctx)
	if err != nil {
		return nil, err
	}

	if u.cache != nil {
		if err := u.cache.Publish(ctx, points); err != nil {
			logger.Warn(ctx, "price cache write failed", zap.Error(err))
		}
	}
	markStale(points)
	return points, nil
}

// markStale flags points whose timestamp is older than the display
// threshold. Staleness is recomputed on every read so cached points stay
// accurate as they age.
func markStale(points []entities.PricePoint) {
	for i := range points {
		updatedAt, err := time.Parse(time.RFC3339, points[i].UpdatedAt)
		if err != nil {
			continue
		}
		points[i].Stale = entities.IsPriceStale(updatedAt, 0)
	}
}

func (u *PriceUsecase) listFromStore(ctx context.Context) ([]entities.PricePoint, error) {
	refs, err := u.clubRepo.ListActiveRefs(ctx)
	if err != nil {
		return nil, err
	}
	tickers := make(map[uuid.UUID]string, len(refs))
	for _, ref := range refs {
		tickers[ref.ID] = ref.Ticker
	}

	prices, err := u.priceRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[uuid.UUID]bool, len(prices))
	points := make([]entities.PricePoint, 0, len(prices))
	for _, price := range prices {
		if seen[price.ClubID] {
			continue
		}
		seen[price.ClubID] = true

		ticker, ok := tickers[price.ClubID]
		if !ok {
			continue
		}
		points = append(points, entities.PricePoint{
			ClubID:    price.ClubID,
			Ticker:    ticker,
			Price:     price.Price,
			ChangePct: price.ChangePct,
			UpdatedAt: price.UpdatedAt.UTC().Format(time.RFC3339),
		})
	}
	return points, nil
}
