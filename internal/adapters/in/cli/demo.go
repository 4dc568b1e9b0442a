// Package cli provides a scripted walkthrough of the order lifecycle.
// Used at startup in demo mode to exercise the service end to end
// against a real database without issuing HTTP requests.
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"pedidos/internal/core/application/usecases/commands"
	"pedidos/internal/core/application/usecases/queries"
	"pedidos/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// Demo runs the canonical order walkthrough: create an order, add a
// product twice to show line merging, inspect totals and complete it.
type Demo struct {
	createOrderHandler   commands.CreateOrderCommandHandler
	addProductHandler    commands.AddProductCommandHandler
	completeOrderHandler commands.CompleteOrderCommandHandler
	getOrderHandler      queries.GetOrderQueryHandler
	logger               *slog.Logger
}

// NewDemo creates the demo walkthrough with the required handlers.
func NewDemo(
	createOrderHandler commands.CreateOrderCommandHandler,
	addProductHandler commands.AddProductCommandHandler,
	completeOrderHandler commands.CompleteOrderCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	logger *slog.Logger,
) *Demo {
	return &Demo{
		createOrderHandler:   createOrderHandler,
		addProductHandler:    addProductHandler,
		completeOrderHandler: completeOrderHandler,
		getOrderHandler:      getOrderHandler,
		logger:               logger.With("component", "demo"),
	}
}

// Run executes the walkthrough. Stops on the first failure.
func (d *Demo) Run(ctx context.Context) error {
	orderID, err := d.createOrderHandler.Handle(ctx, commands.NewCreateOrderCommand())
	if err != nil {
		return fmt.Errorf("demo: create order: %w", err)
	}
	d.logger.InfoContext(ctx, "Order created", "order_id", orderID.String())

	laptopID, err := kernel.ProductIDFromString("LAPTOP-001")
	if err != nil {
		return fmt.Errorf("demo: product id: %w", err)
	}
	laptopPrice := decimal.RequireFromString("1200.00")

	addLaptop, err := commands.NewAddProductCommand(orderID, laptopID, "Laptop Gaming", laptopPrice, 1)
	if err != nil {
		return fmt.Errorf("demo: build add product command: %w", err)
	}
	if err := d.addProductHandler.Handle(ctx, addLaptop); err != nil {
		return fmt.Errorf("demo: add product: %w", err)
	}
	d.logger.InfoContext(ctx, "Product added", "product_id", laptopID.String(), "quantity", 1)

	// Adding the same product again merges into the existing line.
	addMore, err := commands.NewAddProductCommand(orderID, laptopID, "Laptop Gaming", laptopPrice, 2)
	if err != nil {
		return fmt.Errorf("demo: build add product command: %w", err)
	}
	if err := d.addProductHandler.Handle(ctx, addMore); err != nil {
		return fmt.Errorf("demo: add product again: %w", err)
	}
	d.logger.InfoContext(ctx, "Product added again", "product_id", laptopID.String(), "quantity", 2)

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return fmt.Errorf("demo: build query: %w", err)
	}
	view, err := d.getOrderHandler.Handle(ctx, query)
	if err != nil {
		return fmt.Errorf("demo: get order: %w", err)
	}
	d.logger.InfoContext(ctx, "Order state",
		"order_id", view.ID,
		"status", view.Status,
		"lines", len(view.Lines),
		"total", view.Total.String(),
	)

	completeCmd, err := commands.NewCompleteOrderCommand(orderID)
	if err != nil {
		return fmt.Errorf("demo: build complete command: %w", err)
	}
	if err := d.completeOrderHandler.Handle(ctx, completeCmd); err != nil {
		return fmt.Errorf("demo: complete order: %w", err)
	}
	d.logger.InfoContext(ctx, "Order completed", "order_id", orderID.String())

	return nil
}
