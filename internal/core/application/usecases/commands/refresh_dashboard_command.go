package commands

import (
	"errors"

	"khasdash/internal/pkg/guard"
)

var (
	ErrRefreshDashboardCommandIsNotConstructed = errors.New(
		"RefreshDashboardCommand must be created via NewRefreshDashboardCommand constructor",
	)
)

// RefreshDashboardCommand represents a request to re-fetch the current time
// window. Used both by the retry path after a failed fetch and by the
// periodic refresh job.
//
// Example:
//
//	cmd := NewRefreshDashboardCommand()
//	handler := NewRefreshDashboardCommandHandler(controller)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("refresh failed: %w", err)
//	}
type RefreshDashboardCommand struct {
	guard guard.ConstructorGuard
}

// NewRefreshDashboardCommand creates a command to re-fetch the current window.
// This is a parameterless command.
func NewRefreshDashboardCommand() RefreshDashboardCommand {
	return RefreshDashboardCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
// Returns ErrRefreshDashboardCommandIsNotConstructed if validation fails.
func (c RefreshDashboardCommand) Validate() error {
	return c.guard.Validate(ErrRefreshDashboardCommandIsNotConstructed)
}
