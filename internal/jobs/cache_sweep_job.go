package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// CacheSweeper removes expired entries and reports how many were dropped.
// Satisfied by the in-memory geocode cache.
type CacheSweeper interface {
	Sweep() int
}

// CacheSweepJob periodically evicts expired geocode cache entries so the
// in-memory cache does not accumulate stale addresses between lookups.
type CacheSweepJob struct {
	cache  CacheSweeper
	cron   *cron.Cron
	logger *slog.Logger
}

// NewCacheSweepJob creates a job that sweeps the geocode cache every ten
// minutes.
func NewCacheSweepJob(cache CacheSweeper, logger *slog.Logger) *CacheSweepJob {
	return &CacheSweepJob{
		cache:  cache,
		cron:   cron.New(cron.WithSeconds()),
		logger: logger.With("component", "cache_sweep_job"),
	}
}

// Start begins the sweep job on a ten minute schedule.
func (j *CacheSweepJob) Start() error {
	_, err := j.cron.AddFunc("0 */10 * * * *", func() {
		ctx := context.Background()

		if removed := j.cache.Sweep(); removed > 0 {
			j.logger.InfoContext(ctx, "Geocode cache sweep completed", "removed", removed)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Geocode cache sweep job started (running every ten minutes)")
	return nil
}

// Stop stops the sweep job.
func (j *CacheSweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Geocode cache sweep job stopped")
}
