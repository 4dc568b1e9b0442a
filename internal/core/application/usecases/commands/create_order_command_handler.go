package commands

import (
	"context"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles order creation.
// Creates a new empty order in Pending status and returns its
// identifier. Contains no business rules itself; construction is
// delegated to the domain.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	orderID, err := handler.Handle(ctx, NewCreateOrderCommand())
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation.
// Requires an OrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command and returns the new
// order's identifier. Uses a transaction to ensure the order is
// properly persisted or rolled back on error.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (kernel.OrderID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.OrderID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.OrderID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	newOrder := order.NewOrder()
	if err := uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return kernel.OrderID{}, err
	}

	if err := uow.Commit(ctx); err != nil {
		return kernel.OrderID{}, err
	}

	return newOrder.ID(), nil
}
