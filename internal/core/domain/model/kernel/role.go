package kernel

import (
	"fmt"
	"strings"

	"fooddelivery/internal/pkg/errs"
)

// Role is the caller role held by the identity subsystem. The core only reads it.
type Role int

const (
	RoleUnknown Role = iota
	RoleCustomer
	RoleRestaurantOwner
	RoleDeliveryDriver
	RoleAdmin
)

var roleNames = map[Role]string{
	RoleCustomer:        "customer",
	RoleRestaurantOwner: "restaurant_owner",
	RoleDeliveryDriver:  "delivery_driver",
	RoleAdmin:           "admin",
}

// ParseRole maps the stored role name (case-insensitive) to a Role.
func ParseRole(s string) (Role, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	for role, name := range roleNames {
		if name == normalized {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a known role", s))
}

func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return "unknown"
}
