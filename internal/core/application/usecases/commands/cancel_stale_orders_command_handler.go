package commands

import (
	"context"
	"log/slog"
	"time"
)

// CancelStaleOrdersCommandHandler cancels pending orders that have
// outlived their allowed age. All matching orders are cancelled in a
// single transaction; a failure on any one of them rolls back the
// whole batch.
type CancelStaleOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	logger     *slog.Logger
}

// NewCancelStaleOrdersCommandHandler creates a handler for stale
// order cancellation. Requires an OrderUoWFactory for transactional
// persistence and a logger for publishing domain events.
func NewCancelStaleOrdersCommandHandler(
	uowFactory OrderUoWFactory,
	logger *slog.Logger,
) CancelStaleOrdersCommandHandler {
	return CancelStaleOrdersCommandHandler{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

// Handle cancels every pending order created before now minus the
// command's age threshold. Returns the number of orders cancelled.
func (h *CancelStaleOrdersCommandHandler) Handle(ctx context.Context, cmd CancelStaleOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cutoff := time.Now().UTC().Add(-cmd.OlderThan())

	staleOrders, err := uow.OrderRepository().GetAllPendingCreatedBefore(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	for _, staleOrder := range staleOrders {
		if err := staleOrder.Cancel(); err != nil {
			return 0, err
		}

		if err := uow.OrderRepository().Update(ctx, staleOrder); err != nil {
			return 0, err
		}
	}

	if err := uow.Commit(ctx); err != nil {
		return 0, err
	}

	for _, staleOrder := range staleOrders {
		for _, event := range staleOrder.Events() {
			h.logger.InfoContext(ctx, "domain event published",
				"event", event.Name,
				"order_id", event.OrderID.String(),
				"occurred_at", event.OccurredAt,
			)
		}
		staleOrder.ClearEvents()
	}

	return len(staleOrders), nil
}
