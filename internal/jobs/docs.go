// Package jobs provides scheduled background tasks for the order service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. OrderTrafficJob - Runs every second to generate synthetic order traffic:
// it registers random orders and walks them through the status flow using the
// real command handlers, so persistence, locking and event publishing are all
// exercised end to end.
//
// # Usage
//
//	job := jobs.NewOrderTrafficJob(createHandler, updateHandler, logger)
//
//	if err := job.Start(); err != nil {
//		log.Fatal("Failed to start traffic job:", err)
//	}
//
//	defer job.Stop()
//
// # Scheduling
//
// The job uses the cron expression "* * * * * *" which means it runs every
// second. Each tick performs exactly one operation, so the generated load is
// roughly one request per second.
//
// # Error Handling
//
// Version conflicts are expected when something else moves an order the job
// is tracking; the job drops its stale snapshot and continues. All other
// errors are logged.
package jobs
