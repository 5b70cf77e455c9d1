package commands

import (
	"context"
)

// SelectWindowCommandHandler applies a time window change to the dashboard.
// Switching the window clears current results and kicks off a fresh fetch.
//
// Example:
//
//	handler := NewSelectWindowCommandHandler(controller)
//	cmd, _ := NewSelectWindowCommand("Monthly")
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("window change failed: %w", err)
//	}
type SelectWindowCommandHandler struct {
	dashboard Dashboard
}

// NewSelectWindowCommandHandler creates a handler for time window changes.
func NewSelectWindowCommandHandler(dashboard Dashboard) SelectWindowCommandHandler {
	return SelectWindowCommandHandler{
		dashboard: dashboard,
	}
}

// Handle processes the window change command.
// Validates the command and delegates to the dashboard state machine.
func (h *SelectWindowCommandHandler) Handle(ctx context.Context, cmd SelectWindowCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.dashboard.SelectWindow(ctx, cmd.Window())
}
