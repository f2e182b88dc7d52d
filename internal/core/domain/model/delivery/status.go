package delivery

import (
	"fmt"
	"strings"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

// Status is the lifecycle state of a delivery.
//
//	ASSIGNED -> ACCEPTED -> PICKED_UP -> IN_TRANSIT -> DELIVERED
//
// CANCELLED is reachable from every non-terminal status.
type Status int

const (
	Unknown Status = iota
	Assigned
	Accepted
	PickedUp
	InTransit
	Delivered
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		Assigned:  "ASSIGNED",
		Accepted:  "ACCEPTED",
		PickedUp:  "PICKED_UP",
		InTransit: "IN_TRANSIT",
		Delivered: "DELIVERED",
		Cancelled: "CANCELLED",
	}
}

var machine = kernel.NewStateMachine("delivery", map[Status][]Status{
	Assigned:  {Accepted, Cancelled},
	Accepted:  {PickedUp, Cancelled},
	PickedUp:  {InTransit, Cancelled},
	InTransit: {Delivered, Cancelled},
})

// CanTransition reports whether a delivery may move from one status to another.
func CanTransition(from, to Status) bool {
	return machine.CanTransition(from, to)
}

// ParseStatus accepts canonical names case-insensitively, plus OUT_FOR_DELIVERY for IN_TRANSIT.
func ParseStatus(s string) (Status, error) {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	if normalized == "OUT_FOR_DELIVERY" {
		return InTransit, nil
	}
	for status, name := range getStatusStrings() {
		if status != Unknown && name == normalized {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a known delivery status", s))
}

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

func (s Status) IsTerminal() bool {
	return machine.IsTerminal(s)
}
