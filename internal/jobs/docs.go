// Package jobs provides scheduled background tasks for the pizzeria.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations around order fulfillment.
//
// # Available Jobs
//
// 1. LowStockJob - Runs every minute to report ingredients whose stock has
// fallen below a configured threshold
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(lowStockHandler, threshold, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The low stock report is advisory. Query failures are logged and the next
// tick tries again; nothing in the fulfillment path depends on this job.
package jobs
