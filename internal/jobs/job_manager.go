package jobs

import (
	"fmt"
	"log/slog"

	"shipping/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	quoteExpiryJob   *QuoteExpiryJob
	catalogReloadJob *CatalogReloadJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers and cron schedules as dependencies.
func NewJobManager(
	expireQuotesHandler commands.ExpireQuotesCommandHandler,
	reloadCatalogHandler commands.ReloadRateCatalogCommandHandler,
	sweepSchedule string,
	reloadSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		quoteExpiryJob:   NewQuoteExpiryJob(expireQuotesHandler, sweepSchedule, logger),
		catalogReloadJob: NewCatalogReloadJob(reloadCatalogHandler, reloadSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.quoteExpiryJob.Start(); err != nil {
		return fmt.Errorf("failed to start quote expiry job: %w", err)
	}

	if err := jm.catalogReloadJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.quoteExpiryJob.Stop()
		return fmt.Errorf("failed to start catalog reload job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.catalogReloadJob.Stop()
	jm.quoteExpiryJob.Stop()
}
