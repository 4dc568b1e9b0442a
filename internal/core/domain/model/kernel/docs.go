// Package kernel contains the shared value objects of the domain model.
//
// It provides the identifier types used across aggregates:
//   - OrderID: identity of an order aggregate
//   - ProductID: identity of a product referenced by order lines
//
// Both identifiers are immutable, string-backed value objects compared
// by value. Their zero values are invalid; they must be created through
// the provided constructor functions, which either generate a fresh
// random token or validate an externally supplied representation.
package kernel
