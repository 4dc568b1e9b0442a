package ports

import (
	"context"
	"time"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// It is the only boundary through which the application layer touches
// storage; implementations live in the outbound adapters.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate, replacing
	// its stored lines. Returns an ObjectNotFoundError if no record
	// exists for the aggregate's identifier.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns an ObjectNotFoundError when no record exists, never a
	// partial aggregate.
	Get(ctx context.Context, id kernel.OrderID) (*order.Order, error)

	// Delete removes the order with the given identifier.
	// Deleting an absent order is not an error.
	Delete(ctx context.Context, id kernel.OrderID) error

	// GetAllPendingCreatedBefore retrieves pending orders created before
	// the cutoff. Used by the stale-order cancellation job.
	GetAllPendingCreatedBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error)
}
