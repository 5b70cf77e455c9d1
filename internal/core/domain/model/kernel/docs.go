// Package kernel provides core domain primitives for the dashboard system.
// It implements fundamental building blocks following Domain-Driven Design
// principles that are used throughout the domain model.
//
// The package includes:
//   - GeoPoint: A value object for validated WGS 84 coordinate pairs, with a
//     parser for the raw "lat,lon" strings carried in order metadata
//   - TimeWindow: A closed enumeration of named lookback periods that resolve
//     to absolute fetch boundaries
//
// These primitives enforce domain invariants and validation rules, ensuring
// that domain objects are always in a valid state. They are immutable and
// thread-safe, making them suitable for concurrent use.
package kernel
