// Package jobs provides scheduled background tasks for the fulfillment system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the order lifecycle.
//
// # Available Jobs
//
// 1. RefundSweepJob - Periodically refunds cancelled and failed orders that
// outlived the refund grace period.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(refundHandler, "*/10 * * * *", 24*time.Hour, logger)
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
// The refund sweep uses a standard five-field cron expression from
// configuration. Runs are idempotent: an order is refunded at most once
// because the refunded status has no outgoing edges.
//
// # Error Handling
//
// Sweep failures are logged and retried on the next scheduled run; a failed
// run rolls back as one transaction, so no order is left half-refunded.
package jobs
