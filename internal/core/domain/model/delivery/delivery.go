package delivery

import (
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery constructor")

// Delivery binds an order to the agent who claimed it and stamps the hand-off times.
type Delivery struct {
	id           kernel.UUID
	orderID      kernel.UUID
	agentID      kernel.UUID
	status       Status
	assignedAt   time.Time
	pickupTime   *time.Time
	deliveryTime *time.Time
	guard        guard.ConstructorGuard
}

// NewDelivery creates an ASSIGNED delivery.
func NewDelivery(id, orderID, agentID kernel.UUID, assignedAt time.Time) (*Delivery, error) {
	if err := errors.Join(id.Validate(), orderID.Validate(), agentID.Validate()); err != nil {
		return nil, err
	}
	if assignedAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("assignedAt")
	}

	return &Delivery{
		id:         id,
		orderID:    orderID,
		agentID:    agentID,
		status:     Assigned,
		assignedAt: assignedAt.UTC(),
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// RestoreDelivery rebuilds a delivery from storage.
func RestoreDelivery(
	id, orderID, agentID kernel.UUID,
	status Status,
	assignedAt time.Time,
	pickupTime, deliveryTime *time.Time,
) (*Delivery, error) {
	d, err := NewDelivery(id, orderID, agentID, assignedAt)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}

	d.status = status
	d.pickupTime = pickupTime
	d.deliveryTime = deliveryTime
	return d, nil
}

func (d *Delivery) Validate() error {
	if d == nil {
		return ErrDeliveryIsNotConstructed
	}
	return d.guard.Validate(ErrDeliveryIsNotConstructed)
}

func (d *Delivery) ID() kernel.UUID {
	return d.id
}

func (d *Delivery) OrderID() kernel.UUID {
	return d.orderID
}

func (d *Delivery) AgentID() kernel.UUID {
	return d.agentID
}

func (d *Delivery) Status() Status {
	return d.status
}

func (d *Delivery) AssignedAt() time.Time {
	return d.assignedAt
}

func (d *Delivery) PickupTime() *time.Time {
	return d.pickupTime
}

func (d *Delivery) DeliveryTime() *time.Time {
	return d.deliveryTime
}

// Accept records that the agent took the assignment.
func (d *Delivery) Accept() error {
	return d.transition(Accepted)
}

// MarkPickedUp stamps the pickup time.
func (d *Delivery) MarkPickedUp(at time.Time) error {
	if err := d.transition(PickedUp); err != nil {
		return err
	}
	at = at.UTC()
	d.pickupTime = &at
	return nil
}

// StartTransit records that the agent left the restaurant.
func (d *Delivery) StartTransit() error {
	return d.transition(InTransit)
}

// MarkDelivered stamps the delivery time. A delivery still at PICKED_UP passes through
// IN_TRANSIT first, because agents are not required to report departure.
func (d *Delivery) MarkDelivered(at time.Time) error {
	if d.status == PickedUp {
		if err := d.transition(InTransit); err != nil {
			return err
		}
	}
	if err := d.transition(Delivered); err != nil {
		return err
	}
	at = at.UTC()
	d.deliveryTime = &at
	return nil
}

func (d *Delivery) Cancel() error {
	return d.transition(Cancelled)
}

func (d *Delivery) transition(target Status) error {
	next, err := d.status.TransitionTo(target)
	if err != nil {
		return err
	}
	d.status = next
	return nil
}
