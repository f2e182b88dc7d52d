package commands

import (
	"errors"
	"fmt"

	"fooddelivery/internal/core/domain/model/kernel"
)

var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrRestaurantNotFound = errors.New("restaurant not found")
	ErrItemNotFound       = errors.New("item not found")
	ErrMenuNotFound       = errors.New("menu not found")

	// ErrRestaurantNotReady is returned when orders are placed with a restaurant that
	// has no location document.
	ErrRestaurantNotReady = errors.New("restaurant is not fully provisioned")

	// ErrNotAuthorized is returned when the requester may not act on the restaurant or order.
	ErrNotAuthorized = errors.New("requester is not authorized")

	// ErrLocationProvisioningFailed means the location document could not be written and
	// the relational row was removed again. Nothing is left behind.
	ErrLocationProvisioningFailed = errors.New("restaurant location provisioning failed")

	// ErrPartialProvisioningFailure means the location document could not be written and
	// removing the relational row failed too. The restaurant exists without a location.
	ErrPartialProvisioningFailure = errors.New("restaurant left partially provisioned")
)

// Half names the part of a restaurant a saga step failed on.
type Half string

const (
	RelationalHalf Half = "relational"
	DocumentHalf   Half = "document"
)

// PartialProvisioningError reports a restaurant whose compensation failed.
// It matches ErrPartialProvisioningFailure with errors.Is.
type PartialProvisioningError struct {
	RestaurantID kernel.UUID
	FailedHalf   Half
	Cause        error
	Compensation error
}

func (e *PartialProvisioningError) Error() string {
	return fmt.Sprintf("%s: restaurant %s, %s write failed (%v), compensation failed (%v)",
		ErrPartialProvisioningFailure, e.RestaurantID, e.FailedHalf, e.Cause, e.Compensation)
}

func (e *PartialProvisioningError) Is(target error) bool {
	return target == ErrPartialProvisioningFailure
}

func (e *PartialProvisioningError) Unwrap() []error {
	return []error{e.Cause, e.Compensation}
}
