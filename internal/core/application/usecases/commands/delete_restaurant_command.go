package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrDeleteRestaurantCommandIsNotConstructed = errors.New(
	"DeleteRestaurantCommand must be created via NewDeleteRestaurantCommand constructor",
)

type DeleteRestaurantCommand struct { //nolint:recvcheck //using for validation
	restaurantID kernel.UUID
	requesterID  kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteRestaurantCommand(restaurantID, requesterID kernel.UUID) (DeleteRestaurantCommand, error) {
	if err := errors.Join(restaurantID.Validate(), requesterID.Validate()); err != nil {
		return DeleteRestaurantCommand{}, err
	}

	return DeleteRestaurantCommand{
		restaurantID: restaurantID,
		requesterID:  requesterID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteRestaurantCommand) Validate() error {
	return c.guard.Validate(ErrDeleteRestaurantCommandIsNotConstructed)
}

func (c DeleteRestaurantCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

func (c DeleteRestaurantCommand) RequesterID() kernel.UUID {
	return c.requesterID
}
