// Package order provides domain entities and business logic for order
// management. It implements the Order aggregate root with line
// accumulation, lifecycle management and state transitions.
//
// The package includes:
//   - Order: The aggregate root that owns order lines and the lifecycle state
//   - Line: An immutable value object pairing a product with a quantity
//     and the unit price captured when the line was created
//   - Product: An immutable value object describing a sellable item
//   - Status: A state machine that enforces valid order status transitions
//
// Key business rules:
//   - Products can only be added while the order is Pending
//   - Adding a product that already has a line merges quantities into a
//     single line, keeping the originally captured unit price
//   - Orders can only be completed when Pending and non-empty
//   - Completed orders cannot be cancelled; cancelling an already
//     cancelled order is a permitted no-op
//   - Monetary amounts use exact decimal arithmetic throughout
//
// The package follows Domain-Driven Design principles, providing rich
// domain behavior, encapsulation, and validation to ensure business
// rules are enforced. All mutation goes through aggregate methods; the
// externally visible line collection is always a copy.
package order
