// Package restaurantrepo persists the relational half of restaurants.
package restaurantrepo

import (
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/restaurant"

	"github.com/google/uuid"
)

type RestaurantDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"type:varchar(255);not null"`
	CreatedAt time.Time `gorm:"not null"`
}

func (RestaurantDTO) TableName() string {
	return "restaurants"
}

func fromDomain(r *restaurant.Restaurant) RestaurantDTO {
	return RestaurantDTO{
		ID:        r.ID().Bytes(),
		OwnerID:   r.OwnerID().Bytes(),
		Name:      r.Name(),
		CreatedAt: r.CreatedAt(),
	}
}

func toDomain(dto RestaurantDTO) (*restaurant.Restaurant, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}
	return restaurant.NewRestaurant(id, ownerID, dto.Name, dto.CreatedAt)
}
