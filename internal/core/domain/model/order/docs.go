// Package order provides the domain model for orders fetched from the remote
// commerce source and their classification into workflow stages.
//
// The package includes:
//   - Order: An immutable snapshot of one fetched order, including line
//     items, free-form metadata, and the optional raw coordinate pair
//   - Status: The open set of raw lifecycle statuses delivered by the source
//   - Bucket: The closed set of workflow stages the dashboard presents
//
// Key business rules:
//   - Orders must have a positive source-assigned id and a creation timestamp
//   - Orders are immutable once fetched; a new fetch replaces the collection
//   - The status-to-bucket mapping is exhaustive and disjoint over the known
//     status set
//   - Unknown statuses are tolerated and belong to no bucket
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are
// enforced.
package order
