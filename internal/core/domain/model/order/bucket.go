package order

import (
	"khasdash/internal/pkg/errs"
)

// Bucket represents a named workflow stage grouping one or more raw order
// statuses. The status-to-bucket mapping is a fixed total function over the
// known status set: every known status maps to exactly one bucket, and no
// status maps to two buckets. Statuses outside the known set map to no bucket.
type Bucket int

const (
	// BucketUnknown represents an invalid or undefined bucket.
	// This value (0) helps catch uninitialized Bucket values.
	BucketUnknown Bucket = iota

	// BucketCreated holds freshly placed orders awaiting acceptance
	// (pending, on-hold).
	BucketCreated

	// BucketPreparing holds accepted orders being prepared (processing).
	BucketPreparing

	// BucketCompleted holds delivered orders (completed).
	BucketCompleted

	// BucketClosed holds orders that ended without delivery
	// (cancelled, refunded, failed).
	BucketClosed
)

// getBucketIDs returns the mapping of valid Bucket values to their
// presentation ids.
func getBucketIDs() map[Bucket]string {
	return map[Bucket]string{
		BucketCreated:   "created",
		BucketPreparing: "preparing",
		BucketCompleted: "completed",
		BucketClosed:    "closed",
	}
}

// getStatusBuckets returns the fixed status-to-bucket partition.
// Exhaustiveness and disjointness over the known status set are asserted by
// the package tests.
func getStatusBuckets() map[Status]Bucket {
	return map[Status]Bucket{
		StatusPending:    BucketCreated,
		StatusOnHold:     BucketCreated,
		StatusProcessing: BucketPreparing,
		StatusCompleted:  BucketCompleted,
		StatusCancelled:  BucketClosed,
		StatusRefunded:   BucketClosed,
		StatusFailed:     BucketClosed,
	}
}

// AllBuckets returns every valid bucket in presentation order.
func AllBuckets() []Bucket {
	return []Bucket{BucketCreated, BucketPreparing, BucketCompleted, BucketClosed}
}

// BucketFromID resolves a presentation id to its Bucket.
// Returns ObjectNotFoundError for an unrecognized id.
func BucketFromID(id string) (Bucket, error) {
	for bucket, bucketID := range getBucketIDs() {
		if bucketID == id {
			return bucket, nil
		}
	}
	return BucketUnknown, errs.NewObjectNotFoundError("bucketID", id)
}

// BucketForStatus returns the bucket the status belongs to.
// The second return value is false for statuses outside the known partition.
func BucketForStatus(status Status) (Bucket, bool) {
	bucket, ok := getStatusBuckets()[status]
	return bucket, ok
}

// Validate checks if the Bucket value is one of the declared constants.
func (b Bucket) Validate() error {
	if _, ok := getBucketIDs()[b]; !ok {
		return errs.NewValueIsInvalidError("bucket")
	}
	return nil
}

// ID returns the presentation id of the bucket, or "unknown" for invalid
// values.
func (b Bucket) ID() string {
	if id, ok := getBucketIDs()[b]; ok {
		return id
	}
	return "unknown"
}

// String returns the presentation id of the bucket.
// Implements the fmt.Stringer interface.
func (b Bucket) String() string {
	return b.ID()
}
