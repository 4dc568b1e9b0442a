package order

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// Order represents a customer order. It is the aggregate root that owns
// the order lines and manages the lifecycle from creation through
// completion or cancellation.
//
// Order follows these invariants:
//   - Must have a valid unique identifier
//   - Lines never contain two entries for the same product identifier
//     (adding an existing product merges quantities)
//   - Status transitions only via the defined business operations
//   - updatedAt is refreshed on every mutating operation and never
//     precedes createdAt
//   - Can only be created through NewOrder or RestoreOrder
//
// The Order struct uses private fields to ensure encapsulation and
// maintains its invariants through validated methods. Accessors expose
// copies, so callers cannot bypass invariants by holding a mutable
// reference. An Order instance is owned by a single logical request;
// it is not safe for concurrent mutation.
type Order struct {
	// id is the unique identifier for the order
	id kernel.OrderID

	// lines holds the order lines in insertion order, one per product
	lines []Line

	// status represents the current state in the order lifecycle
	status Status

	// createdAt is when the order was first created
	createdAt time.Time

	// updatedAt tracks the last mutating operation
	updatedAt time.Time

	// pendingEvents accumulates lifecycle events until drained
	pendingEvents []DomainEvent

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new empty Order with a fresh random identifier,
// Pending status and both timestamps set to the current time. A newly
// created order always satisfies every invariant, so construction
// cannot fail.
func NewOrder() *Order {
	now := time.Now()
	return &Order{
		id:            kernel.NewOrderID(),
		lines:         make([]Line, 0),
		status:        Pending,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}
}

// RestoreOrder reconstructs an Order from persisted state. It is used
// exclusively when rehydrating from storage: every argument is
// required, but no business validation beyond that is applied. The
// aggregate is trusted to have been valid when originally persisted.
//
// The lines slice is defensively copied so the caller's slice cannot
// mutate the aggregate after construction.
//
// Returns a validation error if the identifier or status is not
// constructed, a timestamp is zero, or any line fails validation.
func RestoreOrder(
	id kernel.OrderID,
	lines []Line,
	status Status,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		status.Validate(),
		validateTimestamp("createdAt", createdAt),
		validateTimestamp("updatedAt", updatedAt),
		validateLines(lines),
	); err != nil {
		return nil, err
	}

	return &Order{
		id:            id,
		lines:         slices.Clone(lines),
		status:        status,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Order instance was properly constructed.
// Returns ErrOrderIsNotConstructed otherwise. This method should be
// called when accepting orders from outside the package (e.g., in
// repository implementations) to prevent bypassing validation by
// directly instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.OrderID {
	return o.id
}

// Lines returns the order lines in insertion order. The returned slice
// is a copy; mutating it does not affect the aggregate.
func (o *Order) Lines() []Line {
	return slices.Clone(o.lines)
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the timestamp of the last mutating operation.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// AddProduct adds quantity units of the product to the order.
//
// Business rules enforced:
//   - The order must be Pending; otherwise an InvalidStateError naming
//     the current status is returned
//   - The product must be constructed and the quantity positive
//   - If a line for the same product identifier already exists, it is
//     replaced in place by a line with the increased quantity, keeping
//     the EXISTING line's captured unit price; the incoming product's
//     price does not reprice earlier quantity
//   - Otherwise a new line is appended
//
// All preconditions are checked before any mutation, so a failed call
// leaves lines and updatedAt unchanged.
func (o *Order) AddProduct(product Product, quantity int) error {
	if o.status != Pending {
		return errs.NewInvalidStateErrorWithCause(
			"products can only be added to a pending order",
			fmt.Errorf("order is %s", o.status),
		)
	}

	if err := errors.Join(
		product.Validate(),
		validateLineQuantity(quantity),
	); err != nil {
		return err
	}

	for i, line := range o.lines {
		if line.Product().ID().IsEqual(product.ID()) {
			merged, err := line.WithIncreasedQuantity(quantity)
			if err != nil {
				return err
			}
			o.lines[i] = merged
			o.touch()
			return nil
		}
	}

	line, err := NewLine(product, quantity)
	if err != nil {
		return err
	}

	o.lines = append(o.lines, line)
	o.touch()
	return nil
}

// Complete marks the order as completed.
//
// Business rules enforced:
//   - The order must be Pending
//   - The order must contain at least one line
//
// On success the status becomes Completed, updatedAt is refreshed and
// an EventCompleted domain event is recorded for the application layer
// to drain after commit.
func (o *Order) Complete() error {
	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	if len(o.lines) == 0 {
		return errs.NewInvalidStateError("cannot complete an empty order")
	}

	o.status = newStatus
	o.touch()
	o.record(newDomainEvent(EventCompleted, o.id))
	return nil
}

// Cancel marks the order as cancelled.
//
// Completed orders cannot be cancelled. Cancelling an already cancelled
// order succeeds and refreshes updatedAt, but records no second domain
// event.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	firstCancel := o.status != Cancelled
	o.status = newStatus
	o.touch()
	if firstCancel {
		o.record(newDomainEvent(EventCancelled, o.id))
	}
	return nil
}

// Total returns the sum of every line's total using exact decimal
// arithmetic. An empty order totals zero.
func (o *Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, line := range o.lines {
		total = total.Add(line.Total())
	}
	return total
}

// Events returns the domain events recorded since the last drain.
// The returned slice is a copy.
func (o *Order) Events() []DomainEvent {
	return slices.Clone(o.pendingEvents)
}

// ClearEvents drops all recorded domain events. Called by the
// application layer after the events have been processed.
func (o *Order) ClearEvents() {
	o.pendingEvents = nil
}

func (o *Order) record(event DomainEvent) {
	o.pendingEvents = append(o.pendingEvents, event)
}

func (o *Order) touch() {
	o.updatedAt = time.Now()
}

func validateTimestamp(paramName string, ts time.Time) error {
	if ts.IsZero() {
		return errs.NewValueIsRequiredError(paramName)
	}
	return nil
}

func validateLines(lines []Line) error {
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
	}
	return nil
}
