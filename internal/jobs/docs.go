// Package jobs provides scheduled background tasks for the quotation system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle the periodic housekeeping the service needs.
//
// # Available Jobs
//
// 1. QuoteExpiryJob - Sweeps overdue quotes from Valid to Expired on a schedule
// 2. CatalogReloadJob - Rebuilds the in-memory rate catalog from persisted vendor rate cards
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(
//		expireQuotesHandler, reloadCatalogHandler,
//		sweepSchedule, reloadSchedule, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Both jobs take six-field cron expressions (seconds first). The schedules
// come from configuration so operators can tune sweep pressure per
// deployment.
//
// # Error Handling
//
// - The expiry sweep is advisory: binding re-checks the validity window, so a sweep failure is logged and retried on the next tick
// - A failed catalog reload keeps the previous snapshot serving
// - Failed job starts will stop any already running jobs
package jobs
