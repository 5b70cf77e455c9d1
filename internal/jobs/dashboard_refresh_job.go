package jobs

import (
	"context"
	"log/slog"

	"khasdash/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultRefreshSchedule re-fetches the current window every 30 seconds,
// keeping the dashboard close to the live order stream without hammering
// the commerce API.
const DefaultRefreshSchedule = "@every 30s"

// DashboardRefreshJob periodically re-fetches the active time window so the
// dashboard tracks new orders without manual refreshes. A refresh discards
// the current collection and enrichment cache; in-flight user actions win
// over the timer through the dashboard's own staleness handling.
type DashboardRefreshJob struct {
	handler  commands.RefreshDashboardCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewDashboardRefreshJob creates a job that refreshes the dashboard on the
// given cron schedule. An empty schedule falls back to DefaultRefreshSchedule.
func NewDashboardRefreshJob(
	handler commands.RefreshDashboardCommandHandler,
	schedule string,
	logger *slog.Logger,
) *DashboardRefreshJob {
	if schedule == "" {
		schedule = DefaultRefreshSchedule
	}

	return &DashboardRefreshJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(),
		logger:   logger.With("component", "dashboard_refresh_job"),
	}
}

// Start begins the periodic refresh.
func (j *DashboardRefreshJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		cmd := commands.NewRefreshDashboardCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Dashboard refresh job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Dashboard refresh job started", "schedule", j.schedule)
	return nil
}

// Stop stops the periodic refresh.
func (j *DashboardRefreshJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Dashboard refresh job stopped")
}
