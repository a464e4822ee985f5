package jobs

import (
	"context"
	"log/slog"

	"shipping/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// QuoteExpiryJob periodically flips overdue quotes from Valid to Expired.
// The sweep is housekeeping: binding checks the validity window itself, so a
// delayed sweep never lets a stale quote through.
type QuoteExpiryJob struct {
	handler  commands.ExpireQuotesCommandHandler
	cron     *cron.Cron
	schedule string
	logger   *slog.Logger
}

// NewQuoteExpiryJob creates the expiry sweep with a cron schedule
// (six-field, seconds first).
func NewQuoteExpiryJob(
	handler commands.ExpireQuotesCommandHandler,
	schedule string,
	logger *slog.Logger,
) *QuoteExpiryJob {
	return &QuoteExpiryJob{
		handler:  handler,
		cron:     cron.New(cron.WithSeconds()),
		schedule: schedule,
		logger:   logger.With("component", "quote_expiry_job"),
	}
}

// Start begins the quote expiry sweep on its schedule.
func (j *QuoteExpiryJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		cmd, err := commands.NewExpireQuotesCommand()
		if err != nil {
			j.logger.ErrorContext(ctx, "Failed to build expire quotes command", "error", err)
			return
		}

		expired, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Quote expiry sweep failed", "error", err)
			return
		}

		if expired > 0 {
			j.logger.InfoContext(ctx, "Quote expiry sweep completed", "expired", expired)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Quote expiry job started", "schedule", j.schedule)
	return nil
}

// Stop stops the quote expiry job.
func (j *QuoteExpiryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Quote expiry job stopped")
}
