package commands_test

import (
	"testing"
	"time"

	"fooddelivery/internal/core/domain/model/catalog"
	"fooddelivery/internal/core/domain/model/delivery"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/restaurant"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

const (
	testPickupToken      = "00112233445566778899aabbccddeeff"
	testConfirmationCode = "042042"
)

var testNow = time.Date(2024, time.May, 14, 12, 30, 0, 0, time.UTC)

func testCodes(t *testing.T) order.HandoffCodes {
	t.Helper()
	codes, err := order.NewHandoffCodes(testPickupToken, testConfirmationCode)
	require.NoError(t, err)
	return codes
}

func newTestRestaurant(t *testing.T, ownerID kernel.UUID) *restaurant.Restaurant {
	t.Helper()
	r, err := restaurant.NewRestaurant(kernel.NewUUID(), ownerID, "Trattoria", testNow)
	require.NoError(t, err)
	return r
}

func newTestLocation(t *testing.T, restaurantID kernel.UUID) *restaurant.Location {
	t.Helper()
	point, err := kernel.NewLocation(52.52, 13.405)
	require.NoError(t, err)
	loc, err := restaurant.NewLocation(restaurantID, point, "1 Market Square", "10:00", "22:00",
		[]time.Weekday{time.Monday, time.Friday})
	require.NoError(t, err)
	return loc
}

func fullLocationPatch(t *testing.T) restaurant.LocationPatch {
	t.Helper()
	point, err := kernel.NewLocation(52.52, 13.405)
	require.NoError(t, err)
	address, opening, closing := "1 Market Square", "10:00", "22:00"
	return restaurant.LocationPatch{
		Point:        &point,
		Address:      &address,
		OpeningHours: &opening,
		ClosingHours: &closing,
		WorkingDays:  []time.Weekday{time.Monday, time.Friday},
	}
}

func newTestItem(t *testing.T, restaurantID kernel.UUID, price string) *catalog.Item {
	t.Helper()
	item, err := catalog.NewItem(kernel.NewUUID(), restaurantID, "Margherita", decimal.RequireFromString(price))
	require.NoError(t, err)
	return item
}

func newTestMenu(t *testing.T, restaurantID kernel.UUID, price string, itemIDs ...kernel.UUID) *catalog.Menu {
	t.Helper()
	menu, err := catalog.NewMenu(kernel.NewUUID(), restaurantID, "Lunch combo", decimal.RequireFromString(price), itemIDs)
	require.NoError(t, err)
	return menu
}

func newPendingOrder(t *testing.T, customerID, restaurantID kernel.UUID) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), customerID, restaurantID, testNow)
	require.NoError(t, err)
	return o
}

func newReadyOrder(t *testing.T, restaurantID kernel.UUID) *order.Order {
	t.Helper()
	o := newPendingOrder(t, kernel.NewUUID(), restaurantID)
	for _, step := range []order.Status{order.Confirmed, order.Preparing, order.Ready} {
		require.NoError(t, o.Advance(step, testNow))
	}
	o.PullEvents()
	return o
}

func newClaimedOrder(t *testing.T, agentID kernel.UUID) (*order.Order, *delivery.Delivery) {
	t.Helper()
	o := newReadyOrder(t, kernel.NewUUID())
	require.NoError(t, o.Claim(agentID, testCodes(t), testNow))
	o.PullEvents()

	d, err := delivery.NewDelivery(kernel.NewUUID(), o.ID(), agentID, testNow)
	require.NoError(t, err)
	require.NoError(t, d.Accept())
	return o, d
}

func newPickedUpOrder(t *testing.T, agentID kernel.UUID) (*order.Order, *delivery.Delivery) {
	t.Helper()
	o, d := newClaimedOrder(t, agentID)
	require.NoError(t, o.ConfirmPickup(agentID, testPickupToken, testNow))
	require.NoError(t, d.MarkPickedUp(testNow))
	o.PullEvents()
	return o, d
}

func newTestRestaurantWithID(id, ownerID kernel.UUID) (*restaurant.Restaurant, error) {
	return restaurant.NewRestaurant(id, ownerID, "Trattoria", testNow)
}
