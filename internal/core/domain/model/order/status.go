package order

import (
	"fmt"
	"strings"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

// Status is the lifecycle state of an order.
//
// State transitions:
//
//	PENDING               -> CONFIRMED | CANCELLED
//	CONFIRMED             -> PREPARING | CANCELLED
//	PREPARING             -> READY
//	READY                 -> ACCEPTED_FOR_DELIVERY
//	ACCEPTED_FOR_DELIVERY -> PICKED_UP | DELIVERY_CANCELLED
//	PICKED_UP             -> DELIVERED | DELIVERY_CANCELLED
//	DELIVERY_CANCELLED    -> READY
//
// DELIVERED and CANCELLED are terminal. DELIVERY_CANCELLED is transient: a cancelled hand-off
// passes through it and lands on READY again.
type Status int

const (
	Unknown Status = iota
	Pending
	Confirmed
	Preparing
	Ready
	AcceptedForDelivery
	PickedUp
	Delivered
	Cancelled
	DeliveryCancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:             "UNKNOWN",
		Pending:             "PENDING",
		Confirmed:           "CONFIRMED",
		Preparing:           "PREPARING",
		Ready:               "READY",
		AcceptedForDelivery: "ACCEPTED_FOR_DELIVERY",
		PickedUp:            "PICKED_UP",
		Delivered:           "DELIVERED",
		Cancelled:           "CANCELLED",
		DeliveryCancelled:   "DELIVERY_CANCELLED",
	}
}

// statusAliases maps names written by earlier versions of the service to canonical statuses.
func statusAliases() map[string]Status {
	return map[string]Status{
		"ACCEPTED_BY_DELIVERY":   AcceptedForDelivery,
		"PREPARING_FOR_DELIVERY": AcceptedForDelivery,
		"OUT_FOR_DELIVERY":       PickedUp,
	}
}

var machine = kernel.NewStateMachine("order", map[Status][]Status{
	Pending:             {Confirmed, Cancelled},
	Confirmed:           {Preparing, Cancelled},
	Preparing:           {Ready},
	Ready:               {AcceptedForDelivery},
	AcceptedForDelivery: {PickedUp, DeliveryCancelled},
	PickedUp:            {Delivered, DeliveryCancelled},
	DeliveryCancelled:   {Ready},
})

// CanTransition reports whether an order may move from one status to another.
func CanTransition(from, to Status) bool {
	return machine.CanTransition(from, to)
}

// ParseStatus accepts canonical names and historical aliases, case-insensitively.
func ParseStatus(s string) (Status, error) {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	if status, ok := statusAliases()[normalized]; ok {
		return status, nil
	}
	for status, name := range getStatusStrings() {
		if status != Unknown && name == normalized {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a known order status", s))
}

// Validate rejects Unknown and out-of-range values.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// TransitionTo returns target when the table allows it.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := machine.AssertTransition(s, target); err != nil {
		return Unknown, err
	}
	return target, nil
}

// IsClaimed reports whether a delivery agent currently holds the order.
func (s Status) IsClaimed() bool {
	return s == AcceptedForDelivery || s == PickedUp
}

// IsTerminal reports whether no further transition is possible.
func (s Status) IsTerminal() bool {
	return machine.IsTerminal(s)
}

func (s Status) isKitchenStep() bool {
	return s == Confirmed || s == Preparing || s == Ready
}
