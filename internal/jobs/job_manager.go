package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"foodsewa/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	cartCleanupJob      *CartCleanupJob
	orderAutoConfirmJob *OrderAutoConfirmJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	cleanupHandler commands.CleanupAbandonedCartsCommandHandler,
	confirmHandler commands.ConfirmPendingOrdersCommandHandler,
	cartTTL time.Duration,
	orderGracePeriod time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		cartCleanupJob:      NewCartCleanupJob(cleanupHandler, cartTTL, logger),
		orderAutoConfirmJob: NewOrderAutoConfirmJob(confirmHandler, orderGracePeriod, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.cartCleanupJob.Start(); err != nil {
		return fmt.Errorf("failed to start cart cleanup job: %w", err)
	}

	if err := jm.orderAutoConfirmJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.cartCleanupJob.Stop()
		return fmt.Errorf("failed to start order auto-confirm job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.orderAutoConfirmJob.Stop()
	jm.cartCleanupJob.Stop()
}
