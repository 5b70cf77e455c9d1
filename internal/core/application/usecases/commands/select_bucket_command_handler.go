package commands

import (
	"context"
)

// SelectBucketCommandHandler applies a bucket change to the dashboard.
// Bucket changes are local filters over already fetched orders and never
// trigger a network fetch.
//
// Example:
//
//	handler := NewSelectBucketCommandHandler(controller)
//	cmd, _ := NewSelectBucketCommand("completed")
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("bucket change failed: %w", err)
//	}
type SelectBucketCommandHandler struct {
	dashboard Dashboard
}

// NewSelectBucketCommandHandler creates a handler for bucket changes.
func NewSelectBucketCommandHandler(dashboard Dashboard) SelectBucketCommandHandler {
	return SelectBucketCommandHandler{
		dashboard: dashboard,
	}
}

// Handle processes the bucket change command.
// Validates the command and delegates to the dashboard state machine.
func (h *SelectBucketCommandHandler) Handle(_ context.Context, cmd SelectBucketCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.dashboard.SelectBucket(cmd.Bucket())
}
