package queries

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrGetPickupQRQueryIsNotConstructed = errors.New(
	"GetPickupQRQuery must be created via NewGetPickupQRQuery constructor",
)

// GetPickupQRQuery renders the pickup token of a claimed order for the restaurant to
// show at the counter. Only the restaurant owner and admins may read it.
type GetPickupQRQuery struct {
	orderID     kernel.UUID
	requesterID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetPickupQRQuery(orderID, requesterID kernel.UUID) (GetPickupQRQuery, error) {
	if err := errors.Join(orderID.Validate(), requesterID.Validate()); err != nil {
		return GetPickupQRQuery{}, err
	}
	return GetPickupQRQuery{orderID: orderID, requesterID: requesterID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetPickupQRQuery) Validate() error {
	return q.guard.Validate(ErrGetPickupQRQueryIsNotConstructed)
}

type GetPickupQRQueryResponse struct {
	PNG []byte
}
