package order

import (
	"errors"
	"fmt"

	"pedidos/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Line is a value object pairing a product with a quantity and a price
// snapshot. The unit price is captured from the product when the line
// is created; later price changes never reprice an existing line.
//
// A line has no identity of its own: two lines are "the same line"
// when they reference the same product identifier, regardless of
// quantity or price. Lines are immutable; quantity increases produce a
// new Line instance.
type Line struct {
	product   Product
	quantity  int
	unitPrice decimal.Decimal
}

// NewLine creates a Line for the given product and quantity, capturing
// the product's current price as the line's unit price.
//
// The product must be constructed and the quantity positive; violations
// fail with the corresponding validation error.
func NewLine(product Product, quantity int) (Line, error) {
	if err := errors.Join(
		product.Validate(),
		validateLineQuantity(quantity),
	); err != nil {
		return Line{}, err
	}

	return Line{
		product:   product,
		quantity:  quantity,
		unitPrice: product.Price(),
	}, nil
}

// Validate ensures the line's fields satisfy the construction rules.
// A zero-value Line always fails.
func (l Line) Validate() error {
	return errors.Join(
		l.product.Validate(),
		validateLineQuantity(l.quantity),
	)
}

// IsEqual compares two lines by their product identifier only.
// Quantity and unit price do not participate in line identity.
func (l Line) IsEqual(other Line) bool {
	return l.product.ID().IsEqual(other.product.ID())
}

// Product returns the product captured by the line.
func (l Line) Product() Product {
	return l.product
}

// Quantity returns the number of units on the line.
func (l Line) Quantity() int {
	return l.quantity
}

// UnitPrice returns the price snapshot taken when the line was created.
func (l Line) UnitPrice() decimal.Decimal {
	return l.unitPrice
}

// Total returns unitPrice * quantity using exact decimal arithmetic.
func (l Line) Total() decimal.Decimal {
	return l.unitPrice.Mul(decimal.NewFromInt(int64(l.quantity)))
}

// WithIncreasedQuantity returns a new Line with quantity increased by
// additional, keeping the same product and the originally captured
// unit price. The receiver is not modified.
//
// Returns a validation error if additional is not positive.
func (l Line) WithIncreasedQuantity(additional int) (Line, error) {
	if err := validateLineQuantity(additional); err != nil {
		return Line{}, err
	}

	return Line{
		product:   l.product,
		quantity:  l.quantity + additional,
		unitPrice: l.unitPrice,
	}, nil
}

func validateLineQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	return nil
}
