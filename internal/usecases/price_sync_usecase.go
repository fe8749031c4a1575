package usecases

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"fantera.backend/internal/domain/entities"
	domainerrors "fantera.backend/internal/domain/errors"
	"fantera.backend/internal/domain/repositories"
	"fantera.backend/internal/infrastructure/marketdata"
	"fantera.backend/pkg/logger"
)

var (
	syncRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fantera_price_sync_runs_total",
		Help: "Price sync runs by outcome.",
	}, []string{"status"})
	syncUpdated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fantera_price_sync_updated_total",
		Help: "Price rows written by the sync.",
	})
	syncDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "fantera_price_sync_duration_seconds",
		Help:    "Wall time of one sync run.",
		Buckets: prometheus.DefBuckets,
	})
)

// PriceSyncUsecase pulls snapshots from the market-data provider and writes
// one latest-price row per active club.
type PriceSyncUsecase struct {
	clubRepo  repositories.ClubRepository
	priceRepo repositories.PriceRepository
	fetcher   marketdata.SnapshotFetcher
	cache     PriceCacheStore
	now       func() time.Time
}

// NewPriceSyncUsecase creates a new price sync usecase. The cache is
// optional.
func NewPriceSyncUsecase(
	clubRepo repositories.ClubRepository,
	priceRepo repositories.PriceRepository,
	fetcher marketdata.SnapshotFetcher,
	cache PriceCacheStore,
) *PriceSyncUsecase {
	return &PriceSyncUsecase{
		clubRepo:  clubRepo,
		priceRepo: priceRepo,
		fetcher:   fetcher,
		cache:     cache,
		now:       time.Now,
	}
}

// Sync runs one full refresh cycle: list active clubs, fetch their
// snapshots in a single batched call, normalize, and upsert concurrently.
// Tickers the provider returned nothing for are skipped; a fetch failure
// fails the whole run. The result reports how many rows were written.
func (u *PriceSyncUsecase) Sync(ctx context.Context) (*entities.PriceSyncResult, error) {
	start := u.now()
	result, err := u.sync(ctx)
	syncDuration.Observe(u.now().Sub(start).Seconds())
	if err != nil {
		syncRuns.WithLabelValues("error").Inc()
		return nil, err
	}
	syncRuns.WithLabelValues("ok").Inc()
	syncUpdated.Add(float64(result.Updated))
	return result, nil
}

func (u *PriceSyncUsecase) sync(ctx context.Context) (*entities.PriceSyncResult, error) {
	clubs, err := u.clubRepo.ListActiveRefs(ctx)
	if err != nil {
		return nil, err
	}
	if len(clubs) == 0 {
		return &entities.PriceSyncResult{
			Updated:   0,
			Timestamp: u.now().UTC().Format(time.RFC3339),
		}, nil
	}

	tickers := make([]string, len(clubs))
	clubByTicker := make(map[string]*entities.ClubRef, len(clubs))
	for i := range clubs {
		tickers[i] = clubs[i].Ticker
		clubByTicker[clubs[i].Ticker] = &clubs[i]
	}

	snapshots, err := u.fetcher.GetSnapshots(ctx, tickers)
	if err != nil {
		logger.Error(ctx, "snapshot fetch failed", zap.Int("tickers", len(tickers)), zap.Error(err))
		return nil, domainerrors.System("PRICE_FETCH_FAILED", "Failed to update prices", err)
	}

	feed := marketdata.Normalize(snapshots)
	updatedAt := u.now()

	g, gctx := errgroup.WithContext(ctx)
	updated := 0
	for _, item := range feed {
		club, ok := clubByTicker[item.Ticker]
		if !ok {
			continue
		}
		updated++

		price := &entities.Price{
			ClubID:    club.ID,
			Price:     item.Price,
			ChangePct: item.ChangePct,
			UpdatedAt: updatedAt,
		}
		g.Go(func() error {
			return u.priceRepo.Upsert(gctx, price)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, domainerrors.System("PRICE_FETCH_FAILED", "Failed to update prices", err)
	}

	u.refreshCache(ctx)

	logger.Info(ctx, "price sync completed",
		zap.Int("clubs", len(clubs)),
		zap.Int("updated", updated))
	return &entities.PriceSyncResult{
		Updated:   updated,
		Timestamp: updatedAt.UTC().Format(time.RFC3339),
	}, nil
}

// refreshCache repopulates the latest-prices cache after a run. Failures
// are logged, never surfaced: the database remains the source of truth.
func (u *PriceSyncUsecase) refreshCache(ctx context.Context) {
	if u.cache == nil {
		return
	}
	reader := NewPriceUsecase(u.priceRepo, u.clubRepo, nil)
	points, err := reader.listFromStore(ctx)
	if err != nil {
		logger.Warn(ctx, "price cache refresh failed", zap.Error(err))
		return
	}
	if err := u.cache.Publish(ctx, points); err != nil {
		logger.Warn(ctx, "price cache publish failed", zap.Error(err))
	}
}
