package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"pedidos/internal/core/domain/model/order"
	"pedidos/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order from the database.
// Reads the raw tables instead of rehydrating the aggregate; the line
// and order totals are computed here from the stored unit prices.
//
// Example:
//
//	handler := NewGetOrderQueryHandler(db)
//	view, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get order: %v", err)
//	    return err
//	}
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single order queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query and returns the order view.
// Returns an ObjectNotFoundError when no order exists for the given
// identifier. Lines are sorted by insertion order.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	var resp GetOrderQueryResponse
	var storedStatus string
	var createdAt, updatedAt time.Time

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			status,
			created_at,
			updated_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().String()).Row()

	if err := row.Scan(&resp.ID, &storedStatus, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("orderId", query.OrderID())
		}
		return GetOrderQueryResponse{}, err
	}

	status, err := statusFromStored(storedStatus)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.Status = status.String()
	resp.CreatedAt = createdAt
	resp.UpdatedAt = updatedAt

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			product_id,
			product_name,
			quantity,
			unit_price
		FROM order_items
		WHERE order_id = ?
		ORDER BY id
	`, query.OrderID().String()).Rows()
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	defer rows.Close()

	resp.Lines = make([]GetOrderLineResponse, 0)
	resp.Total = decimal.Zero

	for rows.Next() {
		var line GetOrderLineResponse
		var unitPrice string

		if err := rows.Scan(&line.ProductID, &line.ProductName, &line.Quantity, &unitPrice); err != nil {
			return GetOrderQueryResponse{}, err
		}

		line.UnitPrice, err = decimal.NewFromString(unitPrice)
		if err != nil {
			return GetOrderQueryResponse{}, errs.NewValueIsInvalidErrorWithCause("unitPrice", err)
		}

		line.Total = line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity)))
		resp.Total = resp.Total.Add(line.Total)
		resp.Lines = append(resp.Lines, line)
	}

	if err := rows.Err(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	return resp, nil
}

// statusFromStored converts the persisted status label into a domain
// status. The orders table keeps the labels of the legacy system, so
// both NUEVO and PROCESANDO map to the pending state.
func statusFromStored(stored string) (order.Status, error) {
	switch stored {
	case "NUEVO", "PROCESANDO":
		return order.Pending, nil
	case "COMPLETADO":
		return order.Completed, nil
	case "CANCELADO":
		return order.Cancelled, nil
	default:
		return order.Unknown, errs.NewValueIsInvalidError("status")
	}
}
