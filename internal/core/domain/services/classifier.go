package services

import (
	"khasdash/internal/core/domain/model/order"
)

// Classifier is a domain service that partitions a fetched order collection
// into the named workflow buckets.
//
// Key responsibilities:
//   - Projecting the orders of a single bucket for presentation
//   - Counting orders per bucket for the tab counters
//
// Business rules:
//   - Classification is pure and synchronous; the same collection always
//     classifies the same way
//   - Every order lands in at most one bucket
//   - Orders with statuses outside the known partition land in no bucket;
//     an unrecognized future status must not crash the dashboard
//
// Example usage:
//
//	classifier := services.NewClassifier()
//	visible := classifier.Classify(orders, order.BucketCreated)
//	counts := classifier.CountByBucket(orders)
type Classifier struct{}

// NewClassifier creates a new Classifier instance.
func NewClassifier() Classifier {
	return Classifier{}
}

// Classify returns the orders belonging to the given bucket, preserving the
// collection order. Orders with unknown statuses are excluded from every
// bucket.
func (c Classifier) Classify(orders []*order.Order, bucket order.Bucket) []*order.Order {
	classified := make([]*order.Order, 0)
	for _, o := range orders {
		if o == nil {
			continue
		}
		if mapped, ok := order.BucketForStatus(o.Status()); ok && mapped == bucket {
			classified = append(classified, o)
		}
	}
	return classified
}

// CountByBucket returns the number of orders in each bucket. Every valid
// bucket is present in the result, with zero for empty buckets. Orders with
// unknown statuses are not counted anywhere, so the counts summed across all
// buckets equal the number of orders whose status is in the known partition.
func (c Classifier) CountByBucket(orders []*order.Order) map[order.Bucket]int {
	counts := make(map[order.Bucket]int, len(order.AllBuckets()))
	for _, bucket := range order.AllBuckets() {
		counts[bucket] = 0
	}
	for _, o := range orders {
		if o == nil {
			continue
		}
		if bucket, ok := order.BucketForStatus(o.Status()); ok {
			counts[bucket]++
		}
	}
	return counts
}
