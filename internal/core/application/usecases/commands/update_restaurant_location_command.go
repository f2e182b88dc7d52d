package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/restaurant"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrUpdateRestaurantLocationCommandIsNotConstructed = errors.New(
	"UpdateRestaurantLocationCommand must be created via NewUpdateRestaurantLocationCommand constructor",
)

// UpdateRestaurantLocationCommand changes some fields of the location document. When the
// restaurant has no document yet, the patch must carry every field.
type UpdateRestaurantLocationCommand struct { //nolint:recvcheck //using for validation
	restaurantID kernel.UUID
	requesterID  kernel.UUID
	patch        restaurant.LocationPatch

	guard guard.ConstructorGuard
}

func NewUpdateRestaurantLocationCommand(
	restaurantID, requesterID kernel.UUID,
	patch restaurant.LocationPatch,
) (UpdateRestaurantLocationCommand, error) {
	var patchErr error
	if patch.IsEmpty() {
		patchErr = errs.NewValueIsRequiredError("location")
	}
	if err := errors.Join(restaurantID.Validate(), requesterID.Validate(), patchErr); err != nil {
		return UpdateRestaurantLocationCommand{}, err
	}

	return UpdateRestaurantLocationCommand{
		restaurantID: restaurantID,
		requesterID:  requesterID,
		patch:        patch,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateRestaurantLocationCommand) Validate() error {
	return c.guard.Validate(ErrUpdateRestaurantLocationCommandIsNotConstructed)
}

func (c UpdateRestaurantLocationCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

func (c UpdateRestaurantLocationCommand) RequesterID() kernel.UUID {
	return c.requesterID
}

func (c UpdateRestaurantLocationCommand) Patch() restaurant.LocationPatch {
	return c.patch
}
