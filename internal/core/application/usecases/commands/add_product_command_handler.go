package commands

import (
	"context"

	"pedidos/internal/core/domain/model/order"
)

// AddProductCommandHandler handles adding products to pending orders.
// Loads the order, constructs the product value object and delegates
// the merge-or-append decision to the aggregate. The whole operation
// runs inside a unit of work so the line update is atomic.
//
// Example:
//
//	handler := NewAddProductCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to add product: %w", err)
//	}
type AddProductCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAddProductCommandHandler creates a handler for adding products
// to orders. Requires an OrderUoWFactory for transactional persistence.
func NewAddProductCommandHandler(uowFactory OrderUoWFactory) AddProductCommandHandler {
	return AddProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the add product command. Returns an
// ObjectNotFoundError when the order does not exist and an
// InvalidStateError when the order is no longer pending.
func (h *AddProductCommandHandler) Handle(ctx context.Context, cmd AddProductCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderAggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	product, err := order.NewProduct(cmd.ProductID(), cmd.ProductName(), cmd.Price())
	if err != nil {
		return err
	}

	if err := orderAggregate.AddProduct(product, cmd.Quantity()); err != nil {
		return err
	}

	if err := uow.OrderRepository().Update(ctx, orderAggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
