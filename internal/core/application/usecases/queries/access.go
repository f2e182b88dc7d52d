// Package queries contains the read side: order, restaurant and delivery views read
// straight from the stores with SQL, bypassing the aggregates.
package queries

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	// ErrNotAuthorized is returned when the requester may not see the resource.
	ErrNotAuthorized = errors.New("requester is not authorized")

	// ErrNoPickupToken is returned for a pickup QR of an order that is not claimed.
	ErrNoPickupToken = errors.New("order has no active pickup token")
)

func isAdmin(ctx context.Context, users ports.UserDirectory, id kernel.UUID) (bool, error) {
	user, err := users.Get(ctx, id)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return user.Role == kernel.RoleAdmin, nil
}

// orderParticipants are the users with a part in one order.
type orderParticipants struct {
	CustomerID      uuid.UUID
	OwnerID         uuid.UUID
	DeliveryAgentID *uuid.UUID
}

// authorizeOrderReader lets the customer, the assigned agent, the restaurant owner and
// admins through.
func authorizeOrderReader(ctx context.Context, users ports.UserDirectory, p orderParticipants, id kernel.UUID) error {
	requester := id.Bytes()
	if p.CustomerID == requester || p.OwnerID == requester {
		return nil
	}
	if p.DeliveryAgentID != nil && *p.DeliveryAgentID == requester {
		return nil
	}

	admin, err := isAdmin(ctx, users, id)
	if err != nil {
		return err
	}
	if !admin {
		return ErrNotAuthorized
	}
	return nil
}

func uuidFromColumn(raw uuid.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(raw[:])
}
