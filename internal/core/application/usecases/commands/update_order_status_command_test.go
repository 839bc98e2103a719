package commands_test

import (
	"testing"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateOrderStatusCommand(t *testing.T) {
	t.Run("should create command with valid parameters", func(t *testing.T) {
		expected := 2
		meta := map[string]any{"actor": "ops", "client_ts": "2025-06-01T12:00:00Z"}

		cmd, err := commands.NewUpdateOrderStatusCommand("ORD-1", order.Shipped, &expected, meta)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, "ORD-1", cmd.OrderID())
		assert.Equal(t, order.Shipped, cmd.NewStatus())
		require.NotNil(t, cmd.ExpectedVersion())
		assert.Equal(t, 2, *cmd.ExpectedVersion())
		assert.Equal(t, meta, cmd.Meta())
	})

	t.Run("expected version and meta are optional", func(t *testing.T) {
		cmd, err := commands.NewUpdateOrderStatusCommand("ORD-1", order.Cancelled, nil, nil)

		require.NoError(t, err)
		assert.Nil(t, cmd.ExpectedVersion())
		assert.Nil(t, cmd.Meta())
	})

	t.Run("should reject empty order id", func(t *testing.T) {
		_, err := commands.NewUpdateOrderStatusCommand("", order.Shipped, nil, nil)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject invalid status", func(t *testing.T) {
		_, err := commands.NewUpdateOrderStatusCommand("ORD-1", order.Unknown, nil, nil)

		require.Error(t, err)
	})

	t.Run("should reject negative expected version", func(t *testing.T) {
		expected := -1
		_, err := commands.NewUpdateOrderStatusCommand("ORD-1", order.Shipped, &expected, nil)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value command fails validation", func(t *testing.T) {
		var cmd commands.UpdateOrderStatusCommand

		err := cmd.Validate()

		require.Error(t, err)
		assert.Equal(t, commands.ErrUpdateOrderStatusCommandIsNotConstructed, err)
	})
}
