package order

import (
	"time"

	"pedidos/internal/core/domain/model/kernel"
)

// Event names recorded by the aggregate on lifecycle transitions.
const (
	EventCompleted = "order.completed"
	EventCancelled = "order.cancelled"
)

// DomainEvent describes a lifecycle transition of an order aggregate.
// Events accumulate on the aggregate and are drained by the application
// layer after a successful commit; nothing is published externally.
type DomainEvent struct {
	Name       string
	OrderID    kernel.OrderID
	OccurredAt time.Time
}

func newDomainEvent(name string, orderID kernel.OrderID) DomainEvent {
	return DomainEvent{
		Name:       name,
		OrderID:    orderID,
		OccurredAt: time.Now(),
	}
}
