package order_test

import (
	"fmt"
	"testing"

	"pedidos/internal/core/domain/model/order"
	"pedidos/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(order.Unknown))
		assert.Equal(t, 1, int(order.Pending))
		assert.Equal(t, 2, int(order.Completed))
		assert.Equal(t, 3, int(order.Cancelled))
	})
}

func TestStatus_String(t *testing.T) {
	cases := map[order.Status]string{
		order.Unknown:    "Unknown",
		order.Pending:    "Pending",
		order.Completed:  "Completed",
		order.Cancelled:  "Cancelled",
		order.Status(99): "Unknown",
	}

	for status, expected := range cases {
		t.Run(fmt.Sprintf("status %d is %s", int(status), expected), func(t *testing.T) {
			assert.Equal(t, expected, status.String())
		})
	}
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		for _, status := range []order.Status{order.Pending, order.Completed, order.Cancelled} {
			require.NoError(t, status.Validate())
		}
	})

	t.Run("should reject Unknown status", func(t *testing.T) {
		err := order.Unknown.Validate()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject out-of-range values", func(t *testing.T) {
		require.Error(t, order.Status(42).Validate())
		require.Error(t, order.Status(-1).Validate())
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.False(t, order.Pending.IsTerminal())
	assert.True(t, order.Completed.IsTerminal())
	assert.True(t, order.Cancelled.IsTerminal())
}

func TestStatus_Complete(t *testing.T) {
	t.Run("should transition Pending to Completed", func(t *testing.T) {
		newStatus, err := order.Pending.Complete()

		require.NoError(t, err)
		assert.Equal(t, order.Completed, newStatus)
	})

	t.Run("should reject completion from any other status", func(t *testing.T) {
		for _, status := range []order.Status{order.Unknown, order.Completed, order.Cancelled} {
			_, err := status.Complete()

			require.Error(t, err)
			require.ErrorIs(t, err, errs.ErrInvalidState)
			assert.Contains(t, err.Error(), status.String())
		}
	})
}

func TestStatus_Cancel(t *testing.T) {
	t.Run("should transition Pending to Cancelled", func(t *testing.T) {
		newStatus, err := order.Pending.Cancel()

		require.NoError(t, err)
		assert.Equal(t, order.Cancelled, newStatus)
	})

	t.Run("should allow re-cancelling a Cancelled status", func(t *testing.T) {
		newStatus, err := order.Cancelled.Cancel()

		require.NoError(t, err)
		assert.Equal(t, order.Cancelled, newStatus)
	})

	t.Run("should reject cancelling a Completed status", func(t *testing.T) {
		_, err := order.Completed.Cancel()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Contains(t, err.Error(), "completed order cannot be cancelled")
	})

	t.Run("should reject cancelling an Unknown status", func(t *testing.T) {
		_, err := order.Unknown.Cancel()

		require.Error(t, err)
	})
}
