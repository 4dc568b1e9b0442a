package kernel

import (
	"strings"

	"pedidos/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrProductIDIsNotConstructed is returned when validating a zero-value
// ProductID.
var ErrProductIDIsNotConstructed = errs.NewValueIsRequiredError(
	"ProductID must be created via NewProductID or ProductIDFromString",
)

// ProductID is a value object that represents the identity of a product
// referenced by an order line. Unlike OrderID, product identifiers are
// usually business codes minted elsewhere ("LAPTOP-001"), so the string
// form carries no format constraint beyond being non-blank.
//
// The zero value of ProductID is invalid and must be constructed using
// NewProductID or ProductIDFromString.
type ProductID struct {
	value string
}

// NewProductID generates a new random product identifier.
func NewProductID() ProductID {
	return ProductID{value: uuid.NewString()}
}

// ProductIDFromString creates a ProductID from its string representation.
// Returns a ValueIsRequiredError if the string is empty or blank.
func ProductIDFromString(s string) (ProductID, error) {
	if strings.TrimSpace(s) == "" {
		return ProductID{}, errs.NewValueIsRequiredError("productId")
	}
	return ProductID{value: s}, nil
}

// String returns the underlying string representation of the identifier.
func (id ProductID) String() string {
	return id.value
}

// IsEqual compares two product identifiers for equality.
func (id ProductID) IsEqual(other ProductID) bool {
	return id.value == other.value
}

// Validate checks if the ProductID is properly constructed.
// Returns ErrProductIDIsNotConstructed for a zero value.
func (id ProductID) Validate() error {
	if id.value == "" {
		return ErrProductIDIsNotConstructed
	}
	return nil
}
