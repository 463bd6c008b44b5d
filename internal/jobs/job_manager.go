package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	cacheSweepJob *CacheSweepJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(cache CacheSweeper, logger *slog.Logger) *JobManager {
	return &JobManager{
		cacheSweepJob: NewCacheSweepJob(cache, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.cacheSweepJob.Start(); err != nil {
		return fmt.Errorf("failed to start cache sweep job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.cacheSweepJob.Stop()
}
