package order_test

import (
	"testing"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/core/domain/model/order"
	"pedidos/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustProductID(t *testing.T, s string) kernel.ProductID {
	t.Helper()
	id, err := kernel.ProductIDFromString(s)
	require.NoError(t, err)
	return id
}

func price(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func TestNewProduct(t *testing.T) {
	validID := mustProductID(t, "LAPTOP-001")

	t.Run("should create valid product with all valid parameters", func(t *testing.T) {
		p, err := order.NewProduct(validID, "Laptop Gaming", price(t, "1200.00"))

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.True(t, p.ID().IsEqual(validID))
		assert.Equal(t, "Laptop Gaming", p.Name())
		assert.True(t, p.Price().Equal(price(t, "1200.00")))
	})

	t.Run("should fail with missing identifier", func(t *testing.T) {
		var missingID kernel.ProductID

		_, err := order.NewProduct(missingID, "Laptop Gaming", price(t, "1200.00"))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with blank name", func(t *testing.T) {
		_, err := order.NewProduct(validID, "   ", price(t, "1200.00"))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "productName")
	})

	t.Run("should fail with zero price", func(t *testing.T) {
		_, err := order.NewProduct(validID, "Laptop Gaming", decimal.Zero)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "price")
	})

	t.Run("should fail with negative price", func(t *testing.T) {
		_, err := order.NewProduct(validID, "Laptop Gaming", price(t, "-0.01"))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should report all violations together", func(t *testing.T) {
		var missingID kernel.ProductID

		_, err := order.NewProduct(missingID, "", decimal.Zero)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "ProductID must be created")
		assert.Contains(t, err.Error(), "productName")
		assert.Contains(t, err.Error(), "price")
	})
}

func TestProduct_IsEqual(t *testing.T) {
	id := mustProductID(t, "LAPTOP-001")

	t.Run("should be equal when id, name and price match", func(t *testing.T) {
		p1, _ := order.NewProduct(id, "Laptop", price(t, "1200.00"))
		p2, _ := order.NewProduct(id, "Laptop", price(t, "1200.00"))

		assert.True(t, p1.IsEqual(p2))
	})

	t.Run("should differ when any field differs", func(t *testing.T) {
		p1, _ := order.NewProduct(id, "Laptop", price(t, "1200.00"))
		differentName, _ := order.NewProduct(id, "Notebook", price(t, "1200.00"))
		differentPrice, _ := order.NewProduct(id, "Laptop", price(t, "1199.99"))
		differentID, _ := order.NewProduct(mustProductID(t, "MOUSE-002"), "Laptop", price(t, "1200.00"))

		assert.False(t, p1.IsEqual(differentName))
		assert.False(t, p1.IsEqual(differentPrice))
		assert.False(t, p1.IsEqual(differentID))
	})
}

func TestProduct_Validate(t *testing.T) {
	t.Run("zero value is invalid", func(t *testing.T) {
		var p order.Product

		require.Error(t, p.Validate())
	})
}
