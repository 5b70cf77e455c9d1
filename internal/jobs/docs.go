// Package jobs provides scheduled background tasks for the dashboard.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the dashboard service.
//
// # Available Jobs
//
// 1. DashboardRefreshJob - Periodically re-fetches the active time window so
// the dashboard tracks new orders without manual refreshes.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(refreshHandler, "@every 30s", logger)
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
// The refresh job uses a standard cron schedule, "@every 30s" by default.
// A refresh behaves like a manual retry: the dashboard discards its current
// collection and enrichment cache and loads fresh data for the active window.
//
// # Error Handling
//
// Refresh errors are logged; the dashboard itself surfaces the failure state
// to clients, so the job never retries on its own schedule slot.
package jobs
