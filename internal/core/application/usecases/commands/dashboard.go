package commands

import (
	"context"

	"khasdash/internal/core/domain/model/kernel"
	"khasdash/internal/core/domain/model/order"
)

// Dashboard abstracts the dashboard state machine for command handlers.
// Satisfied by dashboard.Controller.
type Dashboard interface {
	// SelectWindow switches the active time window and starts a fresh fetch.
	SelectWindow(ctx context.Context, window kernel.TimeWindow) error

	// SelectBucket switches the active bucket without refetching.
	SelectBucket(bucket order.Bucket) error

	// Retry re-runs the fetch for the current window.
	Retry(ctx context.Context)
}
