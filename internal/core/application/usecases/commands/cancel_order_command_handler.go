package commands

import (
	"context"
	"log/slog"
)

// CancelOrderCommandHandler handles order cancellation. Like
// completion, the transition is enforced by the aggregate and the
// recorded domain events are published only after the commit.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	logger     *slog.Logger
}

// NewCancelOrderCommandHandler creates a handler for order
// cancellation. Requires an OrderUoWFactory for transactional
// persistence and a logger for publishing domain events.
func NewCancelOrderCommandHandler(
	uowFactory OrderUoWFactory,
	logger *slog.Logger,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

// Handle processes the order cancellation command. Returns an
// ObjectNotFoundError when the order does not exist and an
// InvalidStateError when the order is already completed.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	if err := orderAggregate.Cancel(); err != nil {
		return err
	}

	if err := uow.OrderRepository().Update(ctx, orderAggregate); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	for _, event := range orderAggregate.Events() {
		h.logger.InfoContext(ctx, "domain event published",
			"event", event.Name,
			"order_id", event.OrderID.String(),
			"occurred_at", event.OccurredAt,
		)
	}
	orderAggregate.ClearEvents()

	return nil
}
