package commands

import (
	"errors"
	"strings"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/restaurant"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrCreateRestaurantCommandIsNotConstructed = errors.New(
	"CreateRestaurantCommand must be created via NewCreateRestaurantCommand constructor",
)

// CreateRestaurantCommand registers a restaurant and, when a location is given, its
// location document.
//
// Example:
//
//	address := "12 Harbour Street"
//	cmd, err := NewCreateRestaurantCommand(kernel.NewUUID(), ownerID, "Luigi's", &restaurant.LocationPatch{
//	    Point:        &point,
//	    Address:      &address,
//	    OpeningHours: &opening,
//	    ClosingHours: &closing,
//	    WorkingDays:  []time.Weekday{time.Monday, time.Tuesday},
//	})
type CreateRestaurantCommand struct { //nolint:recvcheck //using for validation
	restaurantID kernel.UUID
	ownerID      kernel.UUID
	name         string
	location     *restaurant.Location

	guard guard.ConstructorGuard
}

// NewCreateRestaurantCommand validates the identifiers and the name. A non-nil location must
// carry every field.
func NewCreateRestaurantCommand(
	restaurantID, ownerID kernel.UUID,
	name string,
	location *restaurant.LocationPatch,
) (CreateRestaurantCommand, error) {
	cmd := CreateRestaurantCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		restaurantID.Validate(),
		ownerID.Validate(),
		cmd.setName(name),
	); err != nil {
		return CreateRestaurantCommand{}, err
	}

	if location != nil {
		loc, err := restaurant.NewLocationFromPatch(restaurantID, *location)
		if err != nil {
			return CreateRestaurantCommand{}, err
		}
		cmd.location = loc
	}

	cmd.restaurantID = restaurantID
	cmd.ownerID = ownerID
	return cmd, nil
}

func (c CreateRestaurantCommand) Validate() error {
	return c.guard.Validate(ErrCreateRestaurantCommandIsNotConstructed)
}

func (c CreateRestaurantCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

func (c CreateRestaurantCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

func (c CreateRestaurantCommand) Name() string {
	return c.name
}

// Location is nil when the restaurant is created without one.
func (c CreateRestaurantCommand) Location() *restaurant.Location {
	return c.location
}

func (c *CreateRestaurantCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}
