package jobs

import (
	"context"
	"time"

	"rentdesk-backend/internal/config"
	"rentdesk-backend/internal/logger"
	"rentdesk-backend/internal/sheet"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	cache  *sheet.SnapshotCache
	config *config.Config
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(cache *sheet.SnapshotCache, cfg *config.Config) *JobRunner {
	return &JobRunner{
		cache:  cache,
		config: cfg,
	}
}

// Config returns the loaded application configuration
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}

// RefreshSnapshot re-fetches the worksheet snapshot ahead of demand so
// lookups rarely pay Graph latency. A failed refresh keeps the current
// snapshot; the next run or a lazy lookup refresh will catch up.
func (jr *JobRunner) RefreshSnapshot() {
	jr.runWithRecovery("refresh-snapshot", func() {
		timeout := time.Duration(jr.config.Graph.TimeoutSeconds) * time.Second
		ctx, cancel := context.WithTimeout(context.Background(), timeout+10*time.Second)
		defer cancel()

		if err := jr.cache.Refresh(ctx); err != nil {
			logger.Error("Snapshot warm refresh failed", "error", err)
			return
		}
		logger.Debug("Snapshot warm refresh succeeded", "fetched_at", jr.cache.FetchedAt())
	})
}
