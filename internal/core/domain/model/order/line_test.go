package order_test

import (
	"testing"

	"pedidos/internal/core/domain/model/order"
	"pedidos/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLine(t *testing.T) {
	product, err := order.NewProduct(mustProductID(t, "LAPTOP-001"), "Laptop", decimal.NewFromFloat(1200.00))
	require.NoError(t, err)

	t.Run("should create line and capture unit price from product", func(t *testing.T) {
		line, err := order.NewLine(product, 2)

		require.NoError(t, err)
		require.NoError(t, line.Validate())
		assert.True(t, line.Product().IsEqual(product))
		assert.Equal(t, 2, line.Quantity())
		assert.True(t, line.UnitPrice().Equal(product.Price()))
	})

	t.Run("should fail with zero quantity", func(t *testing.T) {
		_, err := order.NewLine(product, 0)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "quantity")
	})

	t.Run("should fail with negative quantity", func(t *testing.T) {
		_, err := order.NewLine(product, -3)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should fail with unconstructed product", func(t *testing.T) {
		var zero order.Product

		_, err := order.NewLine(zero, 1)

		require.Error(t, err)
	})
}

func TestLine_Total(t *testing.T) {
	t.Run("should multiply unit price by quantity exactly", func(t *testing.T) {
		product, _ := order.NewProduct(mustProductID(t, "WIDGET-001"), "Widget", price(t, "0.10"))
		line, err := order.NewLine(product, 3)
		require.NoError(t, err)

		assert.True(t, line.Total().Equal(price(t, "0.30")),
			"expected 0.30, got %s", line.Total())
	})
}

func TestLine_WithIncreasedQuantity(t *testing.T) {
	product, _ := order.NewProduct(mustProductID(t, "LAPTOP-001"), "Laptop", price(t, "1200.00"))
	line, err := order.NewLine(product, 2)
	require.NoError(t, err)

	t.Run("should produce new line with summed quantity and same price", func(t *testing.T) {
		increased, err := line.WithIncreasedQuantity(3)

		require.NoError(t, err)
		assert.Equal(t, 5, increased.Quantity())
		assert.True(t, increased.UnitPrice().Equal(line.UnitPrice()))
		assert.True(t, increased.IsEqual(line))
	})

	t.Run("should not mutate the receiver", func(t *testing.T) {
		_, err := line.WithIncreasedQuantity(3)

		require.NoError(t, err)
		assert.Equal(t, 2, line.Quantity())
	})

	t.Run("should fail with non-positive increase", func(t *testing.T) {
		_, err := line.WithIncreasedQuantity(0)
		require.Error(t, err)

		_, err = line.WithIncreasedQuantity(-1)
		require.Error(t, err)
	})
}

func TestLine_IsEqual(t *testing.T) {
	t.Run("lines for the same product are the same line", func(t *testing.T) {
		p1, _ := order.NewProduct(mustProductID(t, "LAPTOP-001"), "Laptop", price(t, "1200.00"))
		p2, _ := order.NewProduct(mustProductID(t, "LAPTOP-001"), "Laptop Pro", price(t, "1500.00"))

		line1, _ := order.NewLine(p1, 1)
		line2, _ := order.NewLine(p2, 7)

		assert.True(t, line1.IsEqual(line2))
	})

	t.Run("lines for different products differ", func(t *testing.T) {
		p1, _ := order.NewProduct(mustProductID(t, "LAPTOP-001"), "Laptop", price(t, "1200.00"))
		p2, _ := order.NewProduct(mustProductID(t, "MOUSE-002"), "Mouse", price(t, "25.00"))

		line1, _ := order.NewLine(p1, 1)
		line2, _ := order.NewLine(p2, 1)

		assert.False(t, line1.IsEqual(line2))
	})
}
