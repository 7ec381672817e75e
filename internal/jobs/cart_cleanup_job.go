package jobs

import (
	"context"
	"log/slog"
	"time"

	"foodsewa/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// CartCleanupJob manages the scheduled removal of abandoned carts.
// Runs every ten minutes to empty carts that have not been touched within
// the configured time-to-live.
type CartCleanupJob struct {
	handler commands.CleanupAbandonedCartsCommandHandler
	ttl     time.Duration
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewCartCleanupJob creates a new job for cleaning up abandoned carts.
// Uses CleanupAbandonedCartsCommandHandler with the given cart time-to-live.
func NewCartCleanupJob(
	handler commands.CleanupAbandonedCartsCommandHandler,
	ttl time.Duration,
	logger *slog.Logger,
) *CartCleanupJob {
	return &CartCleanupJob{
		handler: handler,
		ttl:     ttl,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "cart_cleanup_job"),
	}
}

// Start begins the cart cleanup job to run every ten minutes.
func (j *CartCleanupJob) Start() error {
	_, err := j.cron.AddFunc("0 */10 * * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewCleanupAbandonedCartsCommand(j.ttl)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Cart cleanup job misconfigured", "error", cmdErr)
			return
		}

		cleared, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Cart cleanup job failed", "error", handleErr)
			return
		}

		if cleared > 0 {
			j.logger.InfoContext(ctx, "Cleared abandoned carts", "count", cleared)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Cart cleanup job started (running every ten minutes)")
	return nil
}

// Stop stops the cart cleanup job.
func (j *CartCleanupJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Cart cleanup job stopped")
}
