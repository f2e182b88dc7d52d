// Package deliveryrepo persists deliveries. The unique index on order_id is what
// makes a claim win exactly once when agents race for the same order.
package deliveryrepo

import (
	"time"

	"fooddelivery/internal/core/domain/model/delivery"
	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// OrderIDIndex names the unique index on deliveries.order_id.
const OrderIDIndex = "idx_deliveries_order_id"

type DeliveryDTO struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID      uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_deliveries_order_id"`
	AgentID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	Status       string     `gorm:"type:varchar(32);not null"`
	AssignedAt   time.Time  `gorm:"not null"`
	PickupTime   *time.Time
	DeliveryTime *time.Time
}

func (DeliveryDTO) TableName() string {
	return "deliveries"
}

func fromDomain(d *delivery.Delivery) DeliveryDTO {
	return DeliveryDTO{
		ID:           d.ID().Bytes(),
		OrderID:      d.OrderID().Bytes(),
		AgentID:      d.AgentID().Bytes(),
		Status:       d.Status().String(),
		AssignedAt:   d.AssignedAt(),
		PickupTime:   d.PickupTime(),
		DeliveryTime: d.DeliveryTime(),
	}
}

func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	agentID, err := kernel.UUIDFromBytes(dto.AgentID[:])
	if err != nil {
		return nil, err
	}
	status, err := delivery.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return delivery.RestoreDelivery(id, orderID, agentID, status, dto.AssignedAt, dto.PickupTime, dto.DeliveryTime)
}
