// Package jobs provides scheduled background tasks for the storefront.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the ordering service.
//
// # Available Jobs
//
// 1. CartCleanupJob - Runs every ten minutes to empty carts abandoned longer than the configured TTL
// 2. OrderAutoConfirmJob - Runs every thirty seconds to confirm pending orders older than the grace period
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(cleanupHandler, confirmHandler, cartTTL, gracePeriod, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The cleanup job uses the cron expression "0 */10 * * * *" and the
// auto-confirm job uses "*/30 * * * * *". Both durations the jobs act on
// (cart TTL and confirmation grace period) come from configuration.
//
// # Error Handling
//
// - Both jobs log failures and keep running; a failed tick is retried on the next schedule
// - Failed job starts will stop any already running jobs
package jobs
