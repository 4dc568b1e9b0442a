package kernel

import (
	"strings"

	"pedidos/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrOrderIDIsNotConstructed indicates that an OrderID was not properly
// initialized through one of the constructor functions. This error is
// returned when validating a zero-value OrderID.
var ErrOrderIDIsNotConstructed = errs.NewValueIsRequiredError(
	"OrderID must be created via NewOrderID or OrderIDFromString",
)

// OrderID is a value object that represents the identity of an order
// aggregate. It wraps an opaque, non-empty string and is compared by
// value, making it safe to use as a map key.
//
// The zero value of OrderID is invalid and must be constructed using
// NewOrderID (random token) or OrderIDFromString (external value).
//
// OrderID is immutable and thread-safe, making it suitable for
// concurrent use.
//
// Example usage:
//
//	// Generate a new identity for a fresh order
//	id := kernel.NewOrderID()
//
//	// Adapt an externally supplied representation
//	id, err := kernel.OrderIDFromString("a2f6e9d4-...")
//	if err != nil {
//	    // handle error
//	}
type OrderID struct {
	value string
}

// NewOrderID generates a new random order identifier.
// The generated token is a UUID string, guaranteed unique with
// extremely high probability.
func NewOrderID() OrderID {
	return OrderID{value: uuid.NewString()}
}

// OrderIDFromString creates an OrderID from its string representation.
// The string must be non-blank; no format beyond that is imposed, so
// identifiers minted by external systems round-trip unchanged.
//
// Returns a ValueIsRequiredError if the string is empty or contains
// only whitespace. This function is typically used when reconstructing
// orders from persistence or when parsing identifiers at an adapter
// boundary.
func OrderIDFromString(s string) (OrderID, error) {
	if strings.TrimSpace(s) == "" {
		return OrderID{}, errs.NewValueIsRequiredError("orderId")
	}
	return OrderID{value: s}, nil
}

// String returns the underlying string representation of the identifier.
func (id OrderID) String() string {
	return id.value
}

// IsEqual compares two order identifiers for equality.
// Returns true if both wrap the same string value.
func (id OrderID) IsEqual(other OrderID) bool {
	return id.value == other.value
}

// Validate checks if the OrderID is properly constructed.
// Returns ErrOrderIDIsNotConstructed for a zero value.
func (id OrderID) Validate() error {
	if id.value == "" {
		return ErrOrderIDIsNotConstructed
	}
	return nil
}
