package order

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"fooddelivery/internal/core/domain/model/catalog"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// Order is the aggregate root for a customer order placed with one restaurant.
//
// Order follows these invariants:
//   - While PENDING, totalPrice equals Σ item.price*qty + Σ menu.price over its lines
//   - Lines change only while PENDING; after confirmation the total is frozen
//   - A menu appears at most once; an item appears once with an accumulated quantity
//   - Every line belongs to the order's restaurant
//   - An agent is present from claim onward and is kept once the order is DELIVERED
//   - Hand-off codes are present only while ACCEPTED_FOR_DELIVERY or PICKED_UP
//   - Status changes go through the order state machine before any field is written
type Order struct {
	id           kernel.UUID
	customerID   kernel.UUID
	restaurantID kernel.UUID
	status       Status
	totalPrice   decimal.Decimal
	placedAt     time.Time

	// agentID is the delivery agent holding the order (nil until claimed)
	agentID *kernel.UUID

	// codes are issued on claim and cleared on delivery or hand-off cancellation
	codes *HandoffCodes

	items []ItemLine
	menus []MenuLine

	events []kernel.DomainEvent
	guard  guard.ConstructorGuard
}

// NewOrder creates an empty PENDING order with a zero total.
//
// Example:
//
//	o, err := order.NewOrder(kernel.NewUUID(), customerID, restaurantID, time.Now())
//	if err != nil {
//	    return err
//	}
//	err = o.AddItem(pizza, 2)
func NewOrder(id, customerID, restaurantID kernel.UUID, placedAt time.Time) (*Order, error) {
	if err := errors.Join(id.Validate(), customerID.Validate(), restaurantID.Validate()); err != nil {
		return nil, err
	}
	if placedAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("placedAt")
	}

	return &Order{
		id:           id,
		customerID:   customerID,
		restaurantID: restaurantID,
		status:       Pending,
		totalPrice:   decimal.Zero,
		placedAt:     placedAt.UTC(),
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// RestoreOrder rebuilds an order from storage. The stored total is kept as is;
// call RecomputeTotal to re-price a PENDING order against the current catalog.
func RestoreOrder(
	id, customerID, restaurantID kernel.UUID,
	status Status,
	totalPrice decimal.Decimal,
	placedAt time.Time,
	agentID *kernel.UUID,
	codes *HandoffCodes,
	items []ItemLine,
	menus []MenuLine,
) (*Order, error) {
	o, err := NewOrder(id, customerID, restaurantID, placedAt)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}
	if status.IsClaimed() && (agentID == nil || codes == nil) {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s requires an agent and hand-off codes", status),
		)
	}
	if !status.IsClaimed() && codes != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"codes is invalid",
			fmt.Errorf("%s cannot carry hand-off codes", status),
		)
	}
	if agentID != nil {
		if err = agentID.Validate(); err != nil {
			return nil, err
		}
	}

	o.status = status
	o.totalPrice = totalPrice
	o.agentID = agentID
	o.codes = codes
	o.items = slices.Clone(items)
	o.menus = slices.Clone(menus)
	return o, nil
}

// Validate ensures the order was built by NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

func (o *Order) RestaurantID() kernel.UUID {
	return o.restaurantID
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) TotalPrice() decimal.Decimal {
	return o.totalPrice
}

func (o *Order) PlacedAt() time.Time {
	return o.placedAt
}

// AgentID returns the delivery agent holding the order, or nil.
func (o *Order) AgentID() *kernel.UUID {
	return o.agentID
}

// Codes returns the current hand-off codes, or nil when none are outstanding.
func (o *Order) Codes() *HandoffCodes {
	return o.codes
}

func (o *Order) Items() []ItemLine {
	return slices.Clone(o.items)
}

func (o *Order) Menus() []MenuLine {
	return slices.Clone(o.menus)
}

// PullEvents returns the events recorded since the last call and forgets them.
func (o *Order) PullEvents() []kernel.DomainEvent {
	events := o.events
	o.events = nil
	return events
}

// AddItem adds quantity units of item, merging with an existing line, and re-prices the order.
func (o *Order) AddItem(item *catalog.Item, quantity int) error {
	if err := o.requireEditable(); err != nil {
		return err
	}
	if err := item.Validate(); err != nil {
		return err
	}
	if !item.RestaurantID().IsEqual(o.restaurantID) {
		return fmt.Errorf("%w: item %s", ErrForeignCatalogEntry, item.ID())
	}

	idx := slices.IndexFunc(o.items, func(l ItemLine) bool { return l.itemID.IsEqual(item.ID()) })
	if idx >= 0 {
		quantity += o.items[idx].quantity
	}

	line, err := NewItemLine(item.ID(), item.Price(), quantity)
	if err != nil {
		return err
	}

	if idx >= 0 {
		o.items[idx] = line
	} else {
		o.items = append(o.items, line)
	}
	o.totalPrice = o.sumLines()
	return nil
}

// RemoveItem drops the whole line for itemID and re-prices the order.
func (o *Order) RemoveItem(itemID kernel.UUID) error {
	if err := o.requireEditable(); err != nil {
		return err
	}

	idx := slices.IndexFunc(o.items, func(l ItemLine) bool { return l.itemID.IsEqual(itemID) })
	if idx < 0 {
		return errs.NewObjectNotFoundError("itemId", itemID.String())
	}

	o.items = slices.Delete(o.items, idx, idx+1)
	o.totalPrice = o.sumLines()
	return nil
}

// AddMenu adds menu once and re-prices the order. A second add fails with ErrMenuAlreadyInOrder.
func (o *Order) AddMenu(menu *catalog.Menu) error {
	if err := o.requireEditable(); err != nil {
		return err
	}
	if err := menu.Validate(); err != nil {
		return err
	}
	if !menu.RestaurantID().IsEqual(o.restaurantID) {
		return fmt.Errorf("%w: menu %s", ErrForeignCatalogEntry, menu.ID())
	}
	if slices.ContainsFunc(o.menus, func(l MenuLine) bool { return l.menuID.IsEqual(menu.ID()) }) {
		return ErrMenuAlreadyInOrder
	}

	line, err := NewMenuLine(menu.ID(), menu.Price())
	if err != nil {
		return err
	}

	o.menus = append(o.menus, line)
	o.totalPrice = o.sumLines()
	return nil
}

// RemoveMenu drops menuID and re-prices the order.
func (o *Order) RemoveMenu(menuID kernel.UUID) error {
	if err := o.requireEditable(); err != nil {
		return err
	}

	idx := slices.IndexFunc(o.menus, func(l MenuLine) bool { return l.menuID.IsEqual(menuID) })
	if idx < 0 {
		return errs.NewObjectNotFoundError("menuId", menuID.String())
	}

	o.menus = slices.Delete(o.menus, idx, idx+1)
	o.totalPrice = o.sumLines()
	return nil
}

// RecomputeTotal re-prices a PENDING order from its lines.
func (o *Order) RecomputeTotal() (decimal.Decimal, error) {
	if err := o.requireEditable(); err != nil {
		return decimal.Zero, err
	}

	o.totalPrice = o.sumLines()
	return o.totalPrice, nil
}

// Advance moves the order along the kitchen steps: CONFIRMED, PREPARING and READY.
// Every other status is owned by claim, hand-off or cancellation and is rejected here.
func (o *Order) Advance(target Status, at time.Time) error {
	if !target.isKitchenStep() {
		return errs.NewInvalidTransitionError(machine.Entity(), o.status.String(), target.String())
	}
	return o.transition(target, "", at)
}

// Cancel cancels a PENDING or CONFIRMED order and releases its lines.
// The total keeps its last value for history.
func (o *Order) Cancel(reason string, at time.Time) error {
	if err := o.transition(Cancelled, reason, at); err != nil {
		return err
	}

	o.items = nil
	o.menus = nil
	return nil
}

// Claim assigns the order to agentID and stores freshly issued hand-off codes.
func (o *Order) Claim(agentID kernel.UUID, codes HandoffCodes, at time.Time) error {
	if err := errors.Join(agentID.Validate(), codes.Validate()); err != nil {
		return err
	}
	if o.status.IsClaimed() {
		return ErrAlreadyClaimed
	}
	if o.status != Ready {
		return fmt.Errorf("%w: order is %s", ErrOrderNotClaimable, o.status)
	}

	o.agentID = &agentID
	o.codes = &codes
	return o.transition(AcceptedForDelivery, "", at)
}

// ConfirmPickup checks the agent, the status and the pickup token, then marks the order
// PICKED_UP. A failed check leaves the order untouched.
func (o *Order) ConfirmPickup(agentID kernel.UUID, pickupToken string, at time.Time) error {
	if err := o.requireAgent(agentID); err != nil {
		return err
	}
	if err := machine.AssertTransition(o.status, PickedUp); err != nil {
		return err
	}
	if o.codes == nil || !o.codes.MatchesPickupToken(pickupToken) {
		return ErrInvalidHandoffCode
	}

	return o.transition(PickedUp, "", at)
}

// ConfirmDelivery checks the agent, the status and the confirmation code, marks the order
// DELIVERED and clears both codes so neither can be replayed.
func (o *Order) ConfirmDelivery(agentID kernel.UUID, confirmationCode string, at time.Time) error {
	if err := o.requireAgent(agentID); err != nil {
		return err
	}
	if err := machine.AssertTransition(o.status, Delivered); err != nil {
		return err
	}
	if o.codes == nil || !o.codes.MatchesConfirmationCode(confirmationCode) {
		return ErrInvalidHandoffCode
	}

	if err := o.transition(Delivered, "", at); err != nil {
		return err
	}
	o.codes = nil
	return nil
}

// CancelHandoff releases a claimed order: it passes through DELIVERY_CANCELLED back to READY,
// and the agent and codes are cleared.
func (o *Order) CancelHandoff(agentID kernel.UUID, reason string, at time.Time) error {
	if err := o.requireAgent(agentID); err != nil {
		return err
	}
	if err := machine.AssertTransition(o.status, DeliveryCancelled); err != nil {
		return err
	}

	if err := o.transition(DeliveryCancelled, reason, at); err != nil {
		return err
	}
	o.agentID = nil
	o.codes = nil
	return o.transition(Ready, reason, at)
}

func (o *Order) transition(target Status, reason string, at time.Time) error {
	next, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	previous := o.status
	o.status = next
	o.events = append(o.events, newStatusChangedEvent(o, previous, next, reason, at))
	return nil
}

func (o *Order) requireEditable() error {
	if o.status != Pending {
		return fmt.Errorf("%w: order is %s", ErrOrderNotEditable, o.status)
	}
	return nil
}

func (o *Order) requireAgent(agentID kernel.UUID) error {
	if o.agentID == nil || !o.agentID.IsEqual(agentID) {
		return ErrAgentNotAuthorized
	}
	return nil
}

func (o *Order) sumLines() decimal.Decimal {
	total := decimal.Zero
	for _, l := range o.items {
		total = total.Add(l.Subtotal())
	}
	for _, l := range o.menus {
		total = total.Add(l.Price())
	}
	return total
}
