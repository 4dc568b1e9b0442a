// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/core/domain/model/order"
	"pedidos/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Persisted status labels. The orders table keeps the labels of the
// legacy system this service replaced, so reads must accept both NUEVO
// and PROCESANDO as the pending state. Writes always use NUEVO.
const (
	statusNuevo      = "NUEVO"
	statusProcesando = "PROCESANDO"
	statusCompletado = "COMPLETADO"
	statusCancelado  = "CANCELADO"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Lines live in their own table and are eagerly loaded with the order.
type OrderDTO struct {
	ID        string    `gorm:"type:varchar(64);primaryKey"`
	Status    string    `gorm:"type:varchar(16);index"`
	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
	Lines     []LineDTO `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// LineDTO represents one order line row. The surrogate key preserves
// insertion order so lines come back in the order they were added.
type LineDTO struct {
	ID          uint   `gorm:"primaryKey;autoIncrement"`
	OrderID     string `gorm:"type:varchar(64);index"`
	ProductID   string `gorm:"type:varchar(64)"`
	ProductName string `gorm:"type:varchar(255)"`
	Quantity    int
	UnitPrice   decimal.Decimal `gorm:"type:numeric(10,2)"`
}

// TableName specifies the database table name for order lines.
func (LineDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	lines := aggregate.Lines()
	lineDTOs := make([]LineDTO, 0, len(lines))
	for _, line := range lines {
		lineDTOs = append(lineDTOs, LineDTO{
			OrderID:     aggregate.ID().String(),
			ProductID:   line.Product().ID().String(),
			ProductName: line.Product().Name(),
			Quantity:    line.Quantity(),
			UnitPrice:   line.UnitPrice(),
		})
	}

	return OrderDTO{
		ID:        aggregate.ID().String(),
		Status:    statusToDTO(aggregate.Status()),
		CreatedAt: aggregate.CreatedAt(),
		UpdatedAt: aggregate.UpdatedAt(),
		Lines:     lineDTOs,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including its lines using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.OrderIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}

	status, err := statusFromDTO(dto.Status)
	if err != nil {
		return nil, err
	}

	lines := make([]order.Line, 0, len(dto.Lines))
	for _, lineDTO := range dto.Lines {
		productID, pidErr := kernel.ProductIDFromString(lineDTO.ProductID)
		if pidErr != nil {
			return nil, pidErr
		}

		product, prodErr := order.NewProduct(productID, lineDTO.ProductName, lineDTO.UnitPrice)
		if prodErr != nil {
			return nil, prodErr
		}

		line, lineErr := order.NewLine(product, lineDTO.Quantity)
		if lineErr != nil {
			return nil, lineErr
		}

		lines = append(lines, line)
	}

	return order.RestoreOrder(id, lines, status, dto.CreatedAt, dto.UpdatedAt)
}

func statusToDTO(status order.Status) string {
	switch status {
	case order.Completed:
		return statusCompletado
	case order.Cancelled:
		return statusCancelado
	default:
		return statusNuevo
	}
}

func statusFromDTO(stored string) (order.Status, error) {
	switch stored {
	case statusNuevo, statusProcesando:
		return order.Pending, nil
	case statusCompletado:
		return order.Completed, nil
	case statusCancelado:
		return order.Cancelled, nil
	default:
		return order.Unknown, errs.NewValueIsInvalidError("status")
	}
}
