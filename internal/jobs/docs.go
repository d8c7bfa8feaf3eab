// Package jobs provides scheduled background tasks for the delivery engine.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the delivery service.
//
// # Available Jobs
//
// 1. ScheduleGenerationJob - Materializes upcoming orders from active subscriptions
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with the generation handler
//	jobManager, err := jobs.NewJobManager(generateHandler, "0 2 * * *", 14, logger)
//	if err != nil {
//		log.Fatal("Failed to create job manager:", err)
//	}
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
// The generation job takes a standard five-field cron expression from
// configuration, typically a nightly run such as "0 2 * * *". Each run also
// fires once at startup so a fresh deployment serves orders immediately.
//
// # Error Handling
//
// Generation is idempotent: duplicate runs skip already-materialized orders,
// so failures are logged and left for the next tick rather than retried.
package jobs
