package jobs

import (
	"context"
	"time"

	"go.uber.org/zap"

	"fantera.backend/internal/domain/entities"
	"fantera.backend/pkg/logger"
)

// PriceSyncer runs one price refresh cycle
type PriceSyncer interface {
	Sync(ctx context.Context) (*entities.PriceSyncResult, error)
}

// PriceSyncJob refreshes club prices on a fixed interval. It backs the
// in-process scheduler; deployments with an external scheduler hit the cron
// endpoint instead and leave this job disabled.
type PriceSyncJob struct {
	syncer   PriceSyncer
	interval time.Duration
	stop     chan struct{}
}

func NewPriceSyncJob(syncer PriceSyncer, interval time.Duration) *PriceSyncJob {
	if interval <= 0 {
		interval = time.Minute
	}
	return &PriceSyncJob{
		syncer:   syncer,
		interval: interval,
		stop:     make(chan struct{}),
	}
}

func (j *PriceSyncJob) Start(ctx context.Context) {
	logger.Info(ctx, "starting price sync job", zap.Duration("interval", j.interval))

	// Run once at startup so a fresh deploy serves prices immediately.
	j.runOnce(ctx)

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info(ctx, "price sync job stopped (context cancelled)")
			return
		case <-j.stop:
			logger.Info(ctx, "price sync job stopped")
			return
		case <-ticker.C:
			j.runOnce(ctx)
		}
	}
}

func (j *PriceSyncJob) Stop() {
	close(j.stop)
}

func (j *PriceSyncJob) runOnce(ctx context.Context) {
	result, err := j.syncer.Sync(ctx)
	if err != nil {
		logger.Error(ctx, "price sync run failed", zap.Error(err))
		return
	}
	logger.Debug(ctx, "price sync run finished", zap.Int("updated", result.Updated))
}
