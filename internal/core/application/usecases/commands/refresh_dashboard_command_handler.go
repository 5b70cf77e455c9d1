package commands

import (
	"context"
)

// RefreshDashboardCommandHandler re-runs the fetch for the current window.
// The dashboard discards whatever it holds and loads fresh data, so the
// handler is safe to call from a timer as well as a user action.
//
// Example:
//
//	handler := NewRefreshDashboardCommandHandler(controller)
//	cmd := NewRefreshDashboardCommand()
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("refresh failed: %w", err)
//	}
type RefreshDashboardCommandHandler struct {
	dashboard Dashboard
}

// NewRefreshDashboardCommandHandler creates a handler for dashboard refreshes.
func NewRefreshDashboardCommandHandler(dashboard Dashboard) RefreshDashboardCommandHandler {
	return RefreshDashboardCommandHandler{
		dashboard: dashboard,
	}
}

// Handle processes the refresh command.
// Validates the command and restarts the fetch for the active window.
func (h *RefreshDashboardCommandHandler) Handle(ctx context.Context, cmd RefreshDashboardCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	h.dashboard.Retry(ctx)
	return nil
}
