package commands_test

import (
	"testing"

	"zinger/internal/core/application/usecases/commands"
	"zinger/internal/core/domain/model/order"
	"zinger/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlaceOrderCommand(t *testing.T) {
	t.Run("keeps caller supplied id", func(t *testing.T) {
		cmd, err := commands.NewPlaceOrderCommand(testCaller(), testDraft(), []commands.OrderLine{{ItemID: 1, Quantity: 2}})

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, "ORD-1", cmd.OrderID())
		assert.Len(t, cmd.Lines(), 1)
	})

	t.Run("generates id and owner when missing", func(t *testing.T) {
		draft := testDraft()
		draft.ID = ""
		draft.UserMobile = ""

		cmd, err := commands.NewPlaceOrderCommand(testCaller(), draft, []commands.OrderLine{{ItemID: 1, Quantity: 1}})

		require.NoError(t, err)
		assert.NotEmpty(t, cmd.OrderID())
		assert.Equal(t, testCaller().Mobile, cmd.Draft().UserMobile)
	})

	t.Run("requires items", func(t *testing.T) {
		_, err := commands.NewPlaceOrderCommand(testCaller(), testDraft(), nil)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects bad lines", func(t *testing.T) {
		_, err := commands.NewPlaceOrderCommand(testCaller(), testDraft(), []commands.OrderLine{{ItemID: 0, Quantity: -1}})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "items[0].itemId")
		assert.Contains(t, err.Error(), "items[0].quantity")
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		assert.ErrorIs(t, commands.PlaceOrderCommand{}.Validate(), commands.ErrPlaceOrderCommandIsNotConstructed)
	})

	t.Run("lines are copied", func(t *testing.T) {
		lines := []commands.OrderLine{{ItemID: 1, Quantity: 1}}
		cmd, err := commands.NewPlaceOrderCommand(testCaller(), order.Draft{ID: "X", ShopID: 1}, lines)
		require.NoError(t, err)

		lines[0].Quantity = 9
		assert.Equal(t, 1, cmd.Lines()[0].Quantity)
	})
}
