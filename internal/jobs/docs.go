// Package jobs provides scheduled background tasks for the settlement system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the settlement service.
//
// # Available Jobs
//
// 1. StaleTransitJob - Runs every minute to flag in-transit orders with no
// recent movement so the arbiter can intervene
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(staleTransitHandler, notifier, arbiterID, threshold, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Job errors are logged and the schedule keeps running; one failed tick does
// not stop the job.
package jobs
