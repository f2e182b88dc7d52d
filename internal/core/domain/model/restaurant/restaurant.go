package restaurant

import (
	"errors"
	"strings"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrRestaurantIsNotConstructed = errors.New("Restaurant must be created via NewRestaurant constructor")

// Restaurant is the relational half of a restaurant.
type Restaurant struct {
	id        kernel.UUID
	ownerID   kernel.UUID
	name      string
	createdAt time.Time
	guard     guard.ConstructorGuard
}

func NewRestaurant(id, ownerID kernel.UUID, name string, createdAt time.Time) (*Restaurant, error) {
	name = strings.TrimSpace(name)

	var nameErr, timeErr error
	if name == "" {
		nameErr = errs.NewValueIsRequiredError("name")
	}
	if createdAt.IsZero() {
		timeErr = errs.NewValueIsRequiredError("createdAt")
	}
	if err := errors.Join(id.Validate(), ownerID.Validate(), nameErr, timeErr); err != nil {
		return nil, err
	}

	return &Restaurant{
		id:        id,
		ownerID:   ownerID,
		name:      name,
		createdAt: createdAt.UTC(),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (r *Restaurant) Validate() error {
	if r == nil {
		return ErrRestaurantIsNotConstructed
	}
	return r.guard.Validate(ErrRestaurantIsNotConstructed)
}

func (r *Restaurant) ID() kernel.UUID {
	return r.id
}

func (r *Restaurant) OwnerID() kernel.UUID {
	return r.ownerID
}

func (r *Restaurant) Name() string {
	return r.name
}

func (r *Restaurant) CreatedAt() time.Time {
	return r.createdAt
}

// IsManagedBy reports whether userID owns the restaurant.
func (r *Restaurant) IsManagedBy(userID kernel.UUID) bool {
	return r.ownerID.IsEqual(userID)
}
