package commands

import (
	"context"
	"log/slog"
)

// CompleteOrderCommandHandler handles order completion. The state
// transition itself lives in the domain; the handler persists the
// result and publishes the recorded domain events after the commit
// succeeds, so observers never see events for rolled-back work.
type CompleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	logger     *slog.Logger
}

// NewCompleteOrderCommandHandler creates a handler for order
// completion. Requires an OrderUoWFactory for transactional
// persistence and a logger for publishing domain events.
func NewCompleteOrderCommandHandler(
	uowFactory OrderUoWFactory,
	logger *slog.Logger,
) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

// Handle processes the order completion command. Returns an
// ObjectNotFoundError when the order does not exist and an
// InvalidStateError when the order cannot be completed.
func (h *CompleteOrderCommandHandler) Handle(ctx context.Context, cmd CompleteOrderCommand) error {
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

	if err := orderAggregate.Complete(); err != nil {
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
