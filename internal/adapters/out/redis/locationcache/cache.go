// Package locationcache puts a Redis read-through cache in front of a location store.
// Writes go to the store and evict the cached copy. A failing cache never fails a call.
package locationcache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/restaurant"
	"fooddelivery/internal/core/ports"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "restaurant:location:"

type cachedLocation struct {
	RestaurantID string   `json:"restaurantId"`
	Latitude     float64  `json:"latitude"`
	Longitude    float64  `json:"longitude"`
	Address      string   `json:"address"`
	OpeningHours string   `json:"openingHours"`
	ClosingHours string   `json:"closingHours"`
	WorkingDays  []string `json:"workingDays"`
}

// CachedLocationStore implements ports.LocationStore by decorating another store.
type CachedLocationStore struct {
	next   ports.LocationStore
	client redis.Cmdable
	ttl    time.Duration
	logger *slog.Logger
}

func NewCachedLocationStore(next ports.LocationStore, client redis.Cmdable, ttl time.Duration,
	logger *slog.Logger) *CachedLocationStore {
	return &CachedLocationStore{
		next:   next,
		client: client,
		ttl:    ttl,
		logger: logger.With("component", "location_cache"),
	}
}

func (s *CachedLocationStore) Upsert(ctx context.Context, location *restaurant.Location) error {
	if err := s.next.Upsert(ctx, location); err != nil {
		return err
	}
	s.evict(ctx, location.RestaurantID())
	return nil
}

func (s *CachedLocationStore) Get(ctx context.Context, restaurantID kernel.UUID) (*restaurant.Location, error) {
	key := cacheKey(restaurantID)

	raw, err := s.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		loc, decodeErr := decode(raw)
		if decodeErr == nil {
			return loc, nil
		}
		s.logger.WarnContext(ctx, "dropping undecodable cache entry", "key", key, "error", decodeErr)
	case !errors.Is(err, redis.Nil):
		s.logger.WarnContext(ctx, "cache read failed", "key", key, "error", err)
	}

	loc, err := s.next.Get(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	if payload, encodeErr := encode(loc); encodeErr == nil {
		if setErr := s.client.Set(ctx, key, payload, s.ttl).Err(); setErr != nil {
			s.logger.WarnContext(ctx, "cache write failed", "key", key, "error", setErr)
		}
	}
	return loc, nil
}

func (s *CachedLocationStore) Delete(ctx context.Context, restaurantID kernel.UUID) error {
	if err := s.next.Delete(ctx, restaurantID); err != nil {
		return err
	}
	s.evict(ctx, restaurantID)
	return nil
}

// Missing always asks the underlying store.
func (s *CachedLocationStore) Missing(ctx context.Context, restaurantIDs []kernel.UUID) ([]kernel.UUID, error) {
	return s.next.Missing(ctx, restaurantIDs)
}

func (s *CachedLocationStore) evict(ctx context.Context, restaurantID kernel.UUID) {
	key := cacheKey(restaurantID)
	if err := s.client.Del(ctx, key).Err(); err != nil {
		s.logger.WarnContext(ctx, "cache eviction failed", "key", key, "error", err)
	}
}

func cacheKey(restaurantID kernel.UUID) string {
	return keyPrefix + restaurantID.String()
}

func encode(loc *restaurant.Location) ([]byte, error) {
	days := make([]string, 0, len(loc.WorkingDays()))
	for _, d := range loc.WorkingDays() {
		days = append(days, d.String())
	}
	return json.Marshal(cachedLocation{
		RestaurantID: loc.RestaurantID().String(),
		Latitude:     loc.Point().Latitude(),
		Longitude:    loc.Point().Longitude(),
		Address:      loc.Address(),
		OpeningHours: loc.OpeningHours(),
		ClosingHours: loc.ClosingHours(),
		WorkingDays:  days,
	})
}

func decode(raw []byte) (*restaurant.Location, error) {
	var c cachedLocation
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, err
	}

	restaurantID, err := kernel.UUIDFromString(c.RestaurantID)
	if err != nil {
		return nil, err
	}
	point, err := kernel.NewLocation(c.Latitude, c.Longitude)
	if err != nil {
		return nil, err
	}
	days := make([]time.Weekday, 0, len(c.WorkingDays))
	for _, name := range c.WorkingDays {
		d, dayErr := restaurant.ParseWeekday(name)
		if dayErr != nil {
			return nil, dayErr
		}
		days = append(days, d)
	}

	return restaurant.NewLocation(restaurantID, point, c.Address, c.OpeningHours, c.ClosingHours, days)
}
