// Package jobs provides scheduled background tasks for the consolidation
// service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the service.
//
// # Available Jobs
//
// 1. NotificationRelayJob - Drains the notification outbox and posts pending
// messages to the external notification service.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(relayHandler, schedule, batchSize, maxAttempts, logger)
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
// The relay job takes a six-field cron expression with a seconds column,
// for example "*/5 * * * * *" to run every five seconds.
//
// # Error Handling
//
// Per-message send failures are recorded on the outbox rows and retried on
// later passes, so the relay job only logs pass-level failures such as a
// lost database connection.
package jobs
