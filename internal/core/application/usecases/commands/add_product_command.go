package commands

import (
	"errors"
	"fmt"
	"strings"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/pkg/errs"
	"pedidos/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrAddProductCommandIsNotConstructed = errors.New(
		"AddProductCommand must be created via NewAddProductCommand constructor",
	)
)

// AddProductCommand represents a request to add a quantity of a product
// to an existing order. It is the inbound command contract: every field
// is validated at construction, before any repository or aggregate call
// occurs, so an invalid command never reaches the application layer.
//
// Example:
//
//	orderID, _ := kernel.OrderIDFromString(rawOrderID)
//	productID, _ := kernel.ProductIDFromString("LAPTOP-001")
//	cmd, err := NewAddProductCommand(orderID, productID, "Laptop Gaming", price, 1)
//	if err != nil {
//	    return fmt.Errorf("invalid product data: %w", err)
//	}
//
//	handler := NewAddProductCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to add product: %w", err)
//	}
type AddProductCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.OrderID
	productID   kernel.ProductID
	productName string
	price       decimal.Decimal
	quantity    int

	guard guard.ConstructorGuard
}

// NewAddProductCommand creates a command to add a product to an order.
// Validates that both identifiers are constructed, the product name is
// non-blank, the price is positive and the quantity is positive.
// Violations are joined into a single error.
func NewAddProductCommand(
	orderID kernel.OrderID,
	productID kernel.ProductID,
	productName string,
	price decimal.Decimal,
	quantity int,
) (AddProductCommand, error) {
	cmd := AddProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setProductID(productID),
		cmd.setProductName(productName),
		cmd.setPrice(price),
		cmd.setQuantity(quantity),
	); err != nil {
		return AddProductCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAddProductCommandIsNotConstructed if validation fails.
func (c AddProductCommand) Validate() error {
	return c.guard.Validate(ErrAddProductCommandIsNotConstructed)
}

// OrderID returns the identifier of the target order.
func (c AddProductCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// ProductID returns the identifier of the product to add.
func (c AddProductCommand) ProductID() kernel.ProductID {
	return c.productID
}

// ProductName returns the product's display name.
func (c AddProductCommand) ProductName() string {
	return c.productName
}

// Price returns the product's unit price.
func (c AddProductCommand) Price() decimal.Decimal {
	return c.price
}

// Quantity returns the number of units to add.
func (c AddProductCommand) Quantity() int {
	return c.quantity
}

func (c *AddProductCommand) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AddProductCommand) setProductID(productID kernel.ProductID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *AddProductCommand) setProductName(productName string) error {
	if strings.TrimSpace(productName) == "" {
		return errs.NewValueIsRequiredError("productName")
	}

	c.productName = productName
	return nil
}

func (c *AddProductCommand) setPrice(price decimal.Decimal) error {
	if !price.GreaterThan(decimal.Zero) {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%s is not greater than 0", price))
	}

	c.price = price
	return nil
}

func (c *AddProductCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	c.quantity = quantity
	return nil
}
