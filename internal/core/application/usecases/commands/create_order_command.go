package commands

import (
	"errors"

	"pedidos/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a request to open a new empty order.
// The order's identity is minted by the domain, so the command carries
// no payload; the guard still enforces construction through the
// constructor.
//
// Example:
//
//	cmd := NewCreateOrderCommand()
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	orderID, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
//	fmt.Printf("Order %s created", orderID)
type CreateOrderCommand struct {
	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to open a new order.
func NewCreateOrderCommand() CreateOrderCommand {
	return CreateOrderCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}
