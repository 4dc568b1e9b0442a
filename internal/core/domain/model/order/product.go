package order

import (
	"errors"
	"fmt"
	"strings"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Product is a value object describing a sellable item as captured at
// the time of use: identifier, display name and current price. In this
// bounded context products have no identity of their own; two products
// are equal only when id, name and price all match.
//
// Product is immutable once constructed and safe to share by reference
// or copy. Price changes in a catalog do not retroactively affect
// products already embedded in order lines.
type Product struct {
	// id identifies the product across the system
	id kernel.ProductID

	// name is the human-readable product name (non-blank)
	name string

	// price is the unit price at capture time (must be positive)
	price decimal.Decimal
}

// NewProduct creates a Product with validation. Each violated field is
// reported by name; multiple violations are joined into a single error.
//
// Parameters:
//   - id: product identifier (must be constructed)
//   - name: display name (must be non-blank)
//   - price: unit price (must be greater than 0)
func NewProduct(id kernel.ProductID, name string, price decimal.Decimal) (Product, error) {
	var product Product

	if err := errors.Join(
		product.setID(id),
		product.setName(name),
		product.setPrice(price),
	); err != nil {
		return Product{}, err
	}

	return product, nil
}

// Validate ensures the product's fields satisfy the construction rules.
// A zero-value Product always fails.
func (p Product) Validate() error {
	return errors.Join(
		p.id.Validate(),
		validateProductName(p.name),
		validateProductPrice(p.price),
	)
}

// IsEqual compares two products structurally: identifier, name and
// price must all be equal.
func (p Product) IsEqual(other Product) bool {
	return p.id.IsEqual(other.id) && p.name == other.name && p.price.Equal(other.price)
}

// ID returns the product's identifier.
func (p Product) ID() kernel.ProductID {
	return p.id
}

// Name returns the product's display name.
func (p Product) Name() string {
	return p.name
}

// Price returns the product's unit price.
func (p Product) Price() decimal.Decimal {
	return p.price
}

func (p *Product) setID(id kernel.ProductID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if err := validateProductName(name); err != nil {
		return err
	}
	p.name = name
	return nil
}

func (p *Product) setPrice(price decimal.Decimal) error {
	if err := validateProductPrice(price); err != nil {
		return err
	}
	p.price = price
	return nil
}

func validateProductName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("productName")
	}
	return nil
}

func validateProductPrice(price decimal.Decimal) error {
	if !price.GreaterThan(decimal.Zero) {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%s is not greater than 0", price))
	}
	return nil
}
