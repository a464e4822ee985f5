package jobs

import (
	"context"
	"log/slog"

	"shipping/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// CatalogReloadJob periodically swaps the in-memory rate catalog for the
// current vendor rate cards in the database. A failed reload keeps the
// previous snapshot serving.
type CatalogReloadJob struct {
	handler  commands.ReloadRateCatalogCommandHandler
	cron     *cron.Cron
	schedule string
	logger   *slog.Logger
}

// NewCatalogReloadJob creates the catalog reload with a cron schedule
// (six-field, seconds first).
func NewCatalogReloadJob(
	handler commands.ReloadRateCatalogCommandHandler,
	schedule string,
	logger *slog.Logger,
) *CatalogReloadJob {
	return &CatalogReloadJob{
		handler:  handler,
		cron:     cron.New(cron.WithSeconds()),
		schedule: schedule,
		logger:   logger.With("component", "catalog_reload_job"),
	}
}

// Start begins the catalog reload on its schedule.
func (j *CatalogReloadJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		cmd, err := commands.NewReloadRateCatalogCommand()
		if err != nil {
			j.logger.ErrorContext(ctx, "Failed to build reload catalog command", "error", err)
			return
		}

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Catalog reload failed, keeping previous snapshot", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Catalog reload job started", "schedule", j.schedule)
	return nil
}

// Stop stops the catalog reload job.
func (j *CatalogReloadJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Catalog reload job stopped")
}
