// Package locationrepo keeps restaurant location documents in MongoDB, one document
// per restaurant keyed by restaurantId.
package locationrepo

import (
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/restaurant"
)

const collectionName = "restaurant_locations"

// LocationDocument is the stored shape of a restaurant.Location.
type LocationDocument struct {
	RestaurantID string    `bson:"restaurantId"`
	Latitude     float64   `bson:"latitude"`
	Longitude    float64   `bson:"longitude"`
	Address      string    `bson:"address"`
	OpeningHours string    `bson:"openingHours"`
	ClosingHours string    `bson:"closingHours"`
	WorkingDays  []string  `bson:"workingDays"`
	UpdatedAt    time.Time `bson:"updatedAt"`
}

func fromDomain(loc *restaurant.Location, now time.Time) LocationDocument {
	days := make([]string, 0, len(loc.WorkingDays()))
	for _, d := range loc.WorkingDays() {
		days = append(days, d.String())
	}

	return LocationDocument{
		RestaurantID: loc.RestaurantID().String(),
		Latitude:     loc.Point().Latitude(),
		Longitude:    loc.Point().Longitude(),
		Address:      loc.Address(),
		OpeningHours: loc.OpeningHours(),
		ClosingHours: loc.ClosingHours(),
		WorkingDays:  days,
		UpdatedAt:    now,
	}
}

func toDomain(doc LocationDocument) (*restaurant.Location, error) {
	restaurantID, err := kernel.UUIDFromString(doc.RestaurantID)
	if err != nil {
		return nil, err
	}
	point, err := kernel.NewLocation(doc.Latitude, doc.Longitude)
	if err != nil {
		return nil, err
	}

	days := make([]time.Weekday, 0, len(doc.WorkingDays))
	for _, name := range doc.WorkingDays {
		d, dayErr := restaurant.ParseWeekday(name)
		if dayErr != nil {
			return nil, dayErr
		}
		days = append(days, d)
	}

	return restaurant.NewLocation(restaurantID, point, doc.Address, doc.OpeningHours, doc.ClosingHours, days)
}
