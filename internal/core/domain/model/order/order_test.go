package order_test

import (
	"testing"
	"time"

	"fooddelivery/internal/core/domain/model/catalog"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, time.May, 14, 12, 30, 0, 0, time.UTC)

func mustItem(t *testing.T, restaurantID kernel.UUID, price string) *catalog.Item {
	t.Helper()
	item, err := catalog.NewItem(kernel.NewUUID(), restaurantID, "item", decimal.RequireFromString(price))
	require.NoError(t, err)
	return item
}

func mustMenu(t *testing.T, restaurantID kernel.UUID, price string) *catalog.Menu {
	t.Helper()
	menu, err := catalog.NewMenu(kernel.NewUUID(), restaurantID, "menu", decimal.RequireFromString(price),
		[]kernel.UUID{kernel.NewUUID()})
	require.NoError(t, err)
	return menu
}

func mustCodes(t *testing.T) order.HandoffCodes {
	t.Helper()
	codes, err := order.NewHandoffCodes(testPickupToken, testConfirmationCode)
	require.NoError(t, err)
	return codes
}

func newPendingOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), time.Now())
	require.NoError(t, err)
	return o
}

// readyOrder walks a fresh order through the kitchen steps.
func readyOrder(t *testing.T) *order.Order {
	t.Helper()
	o := newPendingOrder(t)
	require.NoError(t, o.Advance(order.Confirmed, testNow))
	require.NoError(t, o.Advance(order.Preparing, testNow))
	require.NoError(t, o.Advance(order.Ready, testNow))
	o.PullEvents()
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("should start PENDING with a zero total", func(t *testing.T) {
		o := newPendingOrder(t)

		require.NoError(t, o.Validate())
		assert.Equal(t, order.Pending, o.Status())
		assert.True(t, o.TotalPrice().IsZero())
		assert.Nil(t, o.AgentID())
		assert.Nil(t, o.Codes())
	})

	t.Run("should reject missing identifiers and time", func(t *testing.T) {
		_, err := order.NewOrder(kernel.UUID{}, kernel.NewUUID(), kernel.NewUUID(), time.Now())
		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)

		_, err = order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), time.Time{})
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero value should fail validation", func(t *testing.T) {
		var o order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should require agent and codes for claimed statuses", func(t *testing.T) {
		_, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			order.PickedUp, decimal.Zero, time.Now(), nil, nil, nil, nil)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject hand-off codes outside claimed statuses", func(t *testing.T) {
		agentID := kernel.NewUUID()
		codes := mustCodes(t)

		for _, status := range []order.Status{order.Ready, order.Delivered, order.Cancelled} {
			_, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
				status, decimal.Zero, time.Now(), &agentID, &codes, nil, nil)

			require.ErrorIs(t, err, errs.ErrValueIsInvalid, status.String())
		}
	})

	t.Run("should keep the agent of a delivered order", func(t *testing.T) {
		agentID := kernel.NewUUID()

		o, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			order.Delivered, decimal.Zero, time.Now(), &agentID, nil, nil, nil)

		require.NoError(t, err)
		require.NotNil(t, o.AgentID())
		assert.True(t, o.AgentID().IsEqual(agentID))
		assert.Nil(t, o.Codes())
	})

	t.Run("should keep the stored total until recomputed", func(t *testing.T) {
		itemID := kernel.NewUUID()
		line, err := order.NewItemLine(itemID, decimal.RequireFromString("4.50"), 2)
		require.NoError(t, err)

		o, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			order.Pending, decimal.RequireFromString("7.00"), time.Now(), nil, nil, []order.ItemLine{line}, nil)
		require.NoError(t, err)
		assert.Equal(t, "7", o.TotalPrice().String())

		total, err := o.RecomputeTotal()

		require.NoError(t, err)
		assert.Equal(t, "9", total.String())
	})
}

func TestOrder_Lines(t *testing.T) {
	t.Run("should compute 33.00 for two items and one menu", func(t *testing.T) {
		// Given
		o := newPendingOrder(t)
		a := mustItem(t, o.RestaurantID(), "10.00")
		b := mustItem(t, o.RestaurantID(), "5.00")
		m := mustMenu(t, o.RestaurantID(), "8.00")

		// When
		require.NoError(t, o.AddItem(a, 2))
		require.NoError(t, o.AddItem(b, 1))
		require.NoError(t, o.AddMenu(m))
		total, err := o.RecomputeTotal()

		// Then
		require.NoError(t, err)
		assert.True(t, decimal.RequireFromString("33.00").Equal(total))
		assert.True(t, total.Equal(o.TotalPrice()))
	})

	t.Run("should keep the total in sync after every mutation", func(t *testing.T) {
		o := newPendingOrder(t)
		a := mustItem(t, o.RestaurantID(), "2.50")
		m := mustMenu(t, o.RestaurantID(), "12.00")

		require.NoError(t, o.AddItem(a, 1))
		assert.Equal(t, "2.5", o.TotalPrice().String())

		require.NoError(t, o.AddItem(a, 3))
		assert.Equal(t, "10", o.TotalPrice().String())
		require.Len(t, o.Items(), 1)
		assert.Equal(t, 4, o.Items()[0].Quantity())

		require.NoError(t, o.AddMenu(m))
		assert.Equal(t, "22", o.TotalPrice().String())

		require.NoError(t, o.RemoveItem(a.ID()))
		assert.Equal(t, "12", o.TotalPrice().String())

		require.NoError(t, o.RemoveMenu(m.ID()))
		assert.True(t, o.TotalPrice().IsZero())
	})

	t.Run("should reject a menu added twice", func(t *testing.T) {
		o := newPendingOrder(t)
		m := mustMenu(t, o.RestaurantID(), "8.00")
		require.NoError(t, o.AddMenu(m))

		err := o.AddMenu(m)

		require.ErrorIs(t, err, order.ErrMenuAlreadyInOrder)
		assert.Equal(t, "8", o.TotalPrice().String())
	})

	t.Run("should reject entries of another restaurant", func(t *testing.T) {
		o := newPendingOrder(t)

		require.ErrorIs(t, o.AddItem(mustItem(t, kernel.NewUUID(), "1.00"), 1), order.ErrForeignCatalogEntry)
		require.ErrorIs(t, o.AddMenu(mustMenu(t, kernel.NewUUID(), "1.00")), order.ErrForeignCatalogEntry)
	})

	t.Run("should reject non positive quantities", func(t *testing.T) {
		o := newPendingOrder(t)

		require.ErrorIs(t, o.AddItem(mustItem(t, o.RestaurantID(), "1.00"), 0), errs.ErrValueIsInvalid)
	})

	t.Run("should report missing lines", func(t *testing.T) {
		o := newPendingOrder(t)

		require.ErrorIs(t, o.RemoveItem(kernel.NewUUID()), errs.ErrObjectNotFound)
		require.ErrorIs(t, o.RemoveMenu(kernel.NewUUID()), errs.ErrObjectNotFound)
	})

	t.Run("should freeze lines and total once confirmed", func(t *testing.T) {
		o := newPendingOrder(t)
		a := mustItem(t, o.RestaurantID(), "3.00")
		require.NoError(t, o.AddItem(a, 1))
		require.NoError(t, o.Advance(order.Confirmed, testNow))

		require.ErrorIs(t, o.AddItem(a, 1), order.ErrOrderNotEditable)
		require.ErrorIs(t, o.RemoveItem(a.ID()), order.ErrOrderNotEditable)
		require.ErrorIs(t, o.AddMenu(mustMenu(t, o.RestaurantID(), "1.00")), order.ErrOrderNotEditable)
		_, err := o.RecomputeTotal()
		require.ErrorIs(t, err, order.ErrOrderNotEditable)
		assert.Equal(t, "3", o.TotalPrice().String())
	})
}

func TestOrder_AdvanceAndCancel(t *testing.T) {
	t.Run("should record an event per kitchen step", func(t *testing.T) {
		o := newPendingOrder(t)

		require.NoError(t, o.Advance(order.Confirmed, testNow))
		require.NoError(t, o.Advance(order.Preparing, testNow))
		events := o.PullEvents()

		require.Len(t, events, 2)
		first, ok := events[0].(order.StatusChangedEvent)
		require.True(t, ok)
		assert.Equal(t, "PENDING", first.From)
		assert.Equal(t, "CONFIRMED", first.To)
		assert.True(t, first.AggregateID().IsEqual(o.ID()))
		assert.Empty(t, o.PullEvents())
	})

	t.Run("should stamp events with the given time", func(t *testing.T) {
		// Given
		o := newPendingOrder(t)
		at := time.Date(2024, time.June, 1, 9, 15, 0, 0, time.FixedZone("CEST", 2*60*60))

		// When
		require.NoError(t, o.Advance(order.Confirmed, at))
		require.NoError(t, o.Cancel("closed early", at.Add(time.Minute)))

		// Then
		events := o.PullEvents()
		require.Len(t, events, 2)
		assert.Equal(t, at.UTC(), events[0].OccurredAt())
		assert.Equal(t, time.UTC, events[0].OccurredAt().Location())
		assert.Equal(t, at.Add(time.Minute).UTC(), events[1].OccurredAt())
	})

	t.Run("should not skip kitchen steps", func(t *testing.T) {
		o := newPendingOrder(t)

		require.ErrorIs(t, o.Advance(order.Ready, testNow), errs.ErrInvalidTransition)
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("should not drive hand-off statuses", func(t *testing.T) {
		o := readyOrder(t)

		require.ErrorIs(t, o.Advance(order.AcceptedForDelivery, testNow), errs.ErrInvalidTransition)
		require.ErrorIs(t, o.Advance(order.Delivered, testNow), errs.ErrInvalidTransition)
	})

	t.Run("should cancel from PENDING and CONFIRMED only", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.AddItem(mustItem(t, o.RestaurantID(), "4.00"), 1))
		require.NoError(t, o.Cancel("changed my mind", testNow))
		assert.Equal(t, order.Cancelled, o.Status())
		assert.Empty(t, o.Items())
		assert.Equal(t, "4", o.TotalPrice().String())

		confirmed := newPendingOrder(t)
		require.NoError(t, confirmed.Advance(order.Confirmed, testNow))
		require.NoError(t, confirmed.Cancel("", testNow))

		ready := readyOrder(t)
		require.ErrorIs(t, ready.Cancel("", testNow), errs.ErrInvalidTransition)
		assert.Equal(t, order.Ready, ready.Status())
	})
}

func TestOrder_Claim(t *testing.T) {
	t.Run("should claim a READY order", func(t *testing.T) {
		o := readyOrder(t)
		agentID := kernel.NewUUID()

		require.NoError(t, o.Claim(agentID, mustCodes(t), testNow))

		assert.Equal(t, order.AcceptedForDelivery, o.Status())
		require.NotNil(t, o.AgentID())
		assert.True(t, o.AgentID().IsEqual(agentID))
		require.NotNil(t, o.Codes())
		assert.Equal(t, testPickupToken, o.Codes().PickupToken())
	})

	t.Run("should report AlreadyClaimed for a held order", func(t *testing.T) {
		o := readyOrder(t)
		first := kernel.NewUUID()
		require.NoError(t, o.Claim(first, mustCodes(t), testNow))

		err := o.Claim(kernel.NewUUID(), mustCodes(t), testNow)

		require.ErrorIs(t, err, order.ErrAlreadyClaimed)
		assert.True(t, o.AgentID().IsEqual(first))
	})

	t.Run("should report NotClaimable before READY", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Advance(order.Confirmed, testNow))

		err := o.Claim(kernel.NewUUID(), mustCodes(t), testNow)

		require.ErrorIs(t, err, order.ErrOrderNotClaimable)
		assert.Nil(t, o.AgentID())
		assert.Nil(t, o.Codes())
	})
}

func TestOrder_Handoff(t *testing.T) {
	claimed := func(t *testing.T) (*order.Order, kernel.UUID) {
		t.Helper()
		o := readyOrder(t)
		agentID := kernel.NewUUID()
		require.NoError(t, o.Claim(agentID, mustCodes(t), testNow))
		return o, agentID
	}

	t.Run("should leave the order untouched on a wrong token", func(t *testing.T) {
		o, agentID := claimed(t)

		err := o.ConfirmPickup(agentID, "ffffffffffffffffffffffffffffffff", testNow)

		require.ErrorIs(t, err, order.ErrInvalidHandoffCode)
		assert.Equal(t, order.AcceptedForDelivery, o.Status())
		assert.NotNil(t, o.Codes())
	})

	t.Run("should reject another agent", func(t *testing.T) {
		o, _ := claimed(t)

		err := o.ConfirmPickup(kernel.NewUUID(), testPickupToken, testNow)

		require.ErrorIs(t, err, order.ErrAgentNotAuthorized)
		assert.Equal(t, order.AcceptedForDelivery, o.Status())
	})

	t.Run("should not deliver before pickup", func(t *testing.T) {
		o, agentID := claimed(t)

		err := o.ConfirmDelivery(agentID, testConfirmationCode, testNow)

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.NotNil(t, o.Codes())
	})

	t.Run("should clear codes after delivery and refuse replays", func(t *testing.T) {
		o, agentID := claimed(t)
		require.NoError(t, o.ConfirmPickup(agentID, testPickupToken, testNow))
		assert.Equal(t, order.PickedUp, o.Status())

		require.NoError(t, o.ConfirmDelivery(agentID, testConfirmationCode, testNow))

		assert.Equal(t, order.Delivered, o.Status())
		assert.Nil(t, o.Codes())
		require.ErrorIs(t, o.ConfirmDelivery(agentID, testConfirmationCode, testNow), errs.ErrInvalidTransition)
		require.ErrorIs(t, o.ConfirmPickup(agentID, testPickupToken, testNow), errs.ErrInvalidTransition)
		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("should report the status before a wrong confirmation code", func(t *testing.T) {
		// Given
		o, agentID := claimed(t)

		// When
		err := o.ConfirmDelivery(agentID, "999999", testNow)

		// Then
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.NotErrorIs(t, err, order.ErrInvalidHandoffCode)
		assert.Equal(t, order.AcceptedForDelivery, o.Status())
		assert.NotNil(t, o.Codes())
	})

	t.Run("should report the status before a wrong pickup token", func(t *testing.T) {
		// Given
		o, agentID := claimed(t)
		require.NoError(t, o.ConfirmPickup(agentID, testPickupToken, testNow))

		// When
		err := o.ConfirmPickup(agentID, "ffffffffffffffffffffffffffffffff", testNow)

		// Then
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, order.PickedUp, o.Status())
	})

	t.Run("should return a picked up order to READY on cancellation", func(t *testing.T) {
		o, agentID := claimed(t)
		require.NoError(t, o.ConfirmPickup(agentID, testPickupToken, testNow))
		o.PullEvents()

		require.NoError(t, o.CancelHandoff(agentID, "vehicle broke down", testNow))

		assert.Equal(t, order.Ready, o.Status())
		assert.Nil(t, o.AgentID())
		assert.Nil(t, o.Codes())
		events := o.PullEvents()
		require.Len(t, events, 2)
		assert.Equal(t, "DELIVERY_CANCELLED", events[0].(order.StatusChangedEvent).To)
		assert.Equal(t, "READY", events[1].(order.StatusChangedEvent).To)

		second := kernel.NewUUID()
		require.NoError(t, o.Claim(second, mustCodes(t), testNow))
		assert.True(t, o.AgentID().IsEqual(second))
	})

	t.Run("should not let the previous agent act after cancellation", func(t *testing.T) {
		o, agentID := claimed(t)
		require.NoError(t, o.CancelHandoff(agentID, "", testNow))

		require.ErrorIs(t, o.ConfirmPickup(agentID, testPickupToken, testNow), order.ErrAgentNotAuthorized)
		require.ErrorIs(t, o.CancelHandoff(agentID, "", testNow), order.ErrAgentNotAuthorized)
	})

	t.Run("should not cancel a delivered hand-off", func(t *testing.T) {
		o, agentID := claimed(t)
		require.NoError(t, o.ConfirmPickup(agentID, testPickupToken, testNow))
		require.NoError(t, o.ConfirmDelivery(agentID, testConfirmationCode, testNow))

		require.ErrorIs(t, o.CancelHandoff(agentID, "", testNow), errs.ErrInvalidTransition)
		assert.Equal(t, order.Delivered, o.Status())
	})
}
