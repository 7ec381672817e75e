package jobs

import (
	"context"
	"log/slog"
	"time"

	"foodsewa/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// OrderAutoConfirmJob manages the scheduled confirmation of aged pending
// orders. Runs every thirty seconds as a fallback for restaurants that do
// not react to incoming orders in time.
type OrderAutoConfirmJob struct {
	handler     commands.ConfirmPendingOrdersCommandHandler
	gracePeriod time.Duration
	cron        *cron.Cron
	logger      *slog.Logger
}

// NewOrderAutoConfirmJob creates a new job for confirming pending orders.
// Uses ConfirmPendingOrdersCommandHandler with the given grace period.
func NewOrderAutoConfirmJob(
	handler commands.ConfirmPendingOrdersCommandHandler,
	gracePeriod time.Duration,
	logger *slog.Logger,
) *OrderAutoConfirmJob {
	return &OrderAutoConfirmJob{
		handler:     handler,
		gracePeriod: gracePeriod,
		cron:        cron.New(cron.WithSeconds()),
		logger:      logger.With("component", "order_auto_confirm_job"),
	}
}

// Start begins the order auto-confirm job to run every thirty seconds.
func (j *OrderAutoConfirmJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewConfirmPendingOrdersCommand(j.gracePeriod)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Order auto-confirm job misconfigured", "error", cmdErr)
			return
		}

		confirmed, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Order auto-confirm job failed", "error", handleErr)
			return
		}

		if confirmed > 0 {
			j.logger.InfoContext(ctx, "Auto-confirmed pending orders", "count", confirmed)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order auto-confirm job started (running every thirty seconds)")
	return nil
}

// Stop stops the order auto-confirm job.
func (j *OrderAutoConfirmJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order auto-confirm job stopped")
}
