package ports

import (
	"context"
	"time"

	"khasdash/internal/core/domain/model/order"
)

// OrderSource defines the contract for the remote commerce API the dashboard
// ingests orders from. The dashboard is strictly read-only with respect to
// the source.
type OrderSource interface {
	// FetchOrders performs one authenticated bounded fetch of orders created
	// after the given boundary instant. The call is never retried
	// automatically; a non-success response or transport failure yields a
	// FetchError. The returned collection replaces any previously fetched
	// collection wholesale.
	FetchOrders(ctx context.Context, after time.Time) ([]*order.Order, error)
}
