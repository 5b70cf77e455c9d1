// Package services provides domain services that operate on the order
// collection as a whole rather than on a single order.
//
// The package includes:
//   - Classifier: A pure domain service that partitions a fetched order
//     collection into named workflow buckets and produces per-bucket counts
//
// Domain services here are stateless and synchronous; all asynchrony lives in
// the application layer.
package services
