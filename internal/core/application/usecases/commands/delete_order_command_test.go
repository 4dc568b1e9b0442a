package commands_test

import (
	"testing"

	"pedidos/internal/core/application/usecases/commands"
	"pedidos/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeleteOrderCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewOrderID()
	cmd, err := commands.NewDeleteOrderCommand(orderID)
	require.NoError(t, err)
	assert.True(t, cmd.OrderID().IsEqual(orderID))
	require.NoError(t, cmd.Validate())
}

func TestNewDeleteOrderCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewDeleteOrderCommand(kernel.OrderID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrOrderIDIsNotConstructed)
}

func TestDeleteOrderCommand_ZeroValueFailsValidation(t *testing.T) {
	cmd := commands.DeleteOrderCommand{}
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrDeleteOrderCommandIsNotConstructed)
}
