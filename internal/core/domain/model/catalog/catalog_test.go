package catalog_test

import (
	"testing"

	"fooddelivery/internal/core/domain/model/catalog"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem(t *testing.T) {
	restaurantID := kernel.NewUUID()

	t.Run("should create an item with a trimmed name", func(t *testing.T) {
		item, err := catalog.NewItem(kernel.NewUUID(), restaurantID, "  Margherita ", decimal.RequireFromString("10.00"))

		require.NoError(t, err)
		require.NoError(t, item.Validate())
		assert.Equal(t, "Margherita", item.Name())
		assert.True(t, item.RestaurantID().IsEqual(restaurantID))
		assert.True(t, decimal.RequireFromString("10").Equal(item.Price()))
	})

	t.Run("should reject a negative price and a blank name together", func(t *testing.T) {
		_, err := catalog.NewItem(kernel.NewUUID(), restaurantID, " ", decimal.NewFromInt(-1))

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject a missing restaurant", func(t *testing.T) {
		_, err := catalog.NewItem(kernel.NewUUID(), kernel.UUID{}, "Soup", decimal.Zero)

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})

	t.Run("zero value item should fail validation", func(t *testing.T) {
		var item catalog.Item
		require.ErrorIs(t, item.Validate(), catalog.ErrItemIsNotConstructed)
	})
}

func TestNewMenu(t *testing.T) {
	restaurantID := kernel.NewUUID()
	itemID := kernel.NewUUID()

	t.Run("should collapse duplicate items", func(t *testing.T) {
		menu, err := catalog.NewMenu(kernel.NewUUID(), restaurantID, "Lunch", decimal.RequireFromString("15.00"),
			[]kernel.UUID{itemID, itemID})

		require.NoError(t, err)
		assert.Len(t, menu.ItemIDs(), 1)
	})

	t.Run("should require at least one item", func(t *testing.T) {
		_, err := catalog.NewMenu(kernel.NewUUID(), restaurantID, "Empty", decimal.Zero, nil)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}
