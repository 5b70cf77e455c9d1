package order

// Status represents the lifecycle state of an order as reported by the order
// source. Unlike the workflow buckets, the status set is open: the source may
// introduce statuses this build does not know about, and the dashboard must
// tolerate them without crashing. Unknown statuses simply belong to no bucket
// and stay invisible to every tab.
type Status string

const (
	// StatusPending means the order was placed but not yet acknowledged.
	StatusPending Status = "pending"

	// StatusOnHold means the order is awaiting payment or manual review.
	StatusOnHold Status = "on-hold"

	// StatusProcessing means the order was accepted and is being prepared.
	StatusProcessing Status = "processing"

	// StatusCompleted means the order was delivered.
	StatusCompleted Status = "completed"

	// StatusCancelled means the order was cancelled before fulfillment.
	StatusCancelled Status = "cancelled"

	// StatusRefunded means the order was refunded after payment.
	StatusRefunded Status = "refunded"

	// StatusFailed means payment for the order failed.
	StatusFailed Status = "failed"
)

// getKnownStatuses returns the set of statuses this build classifies.
func getKnownStatuses() map[Status]struct{} {
	return map[Status]struct{}{
		StatusPending:    {},
		StatusOnHold:     {},
		StatusProcessing: {},
		StatusCompleted:  {},
		StatusCancelled:  {},
		StatusRefunded:   {},
		StatusFailed:     {},
	}
}

// IsKnown reports whether the status is part of the known partition.
// Orders with unknown statuses are excluded from every workflow bucket.
func (s Status) IsKnown() bool {
	_, ok := getKnownStatuses()[s]
	return ok
}

// String returns the raw status string as delivered by the order source.
func (s Status) String() string {
	return string(s)
}
