package locationrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/restaurant"
	"fooddelivery/internal/pkg/errs"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoLocationStore implements ports.LocationStore.
type MongoLocationStore struct {
	collection *mongo.Collection
	now        func() time.Time
}

// NewMongoLocationStore binds the store to db and ensures the unique restaurantId index.
func NewMongoLocationStore(ctx context.Context, db *mongo.Database) (*MongoLocationStore, error) {
	collection := db.Collection(collectionName)

	_, err := collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "restaurantId", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("uniq_restaurant_id"),
	})
	if err != nil {
		return nil, fmt.Errorf("create restaurantId index: %w", err)
	}

	return &MongoLocationStore{
		collection: collection,
		now:        func() time.Time { return time.Now().UTC() },
	}, nil
}

func (s *MongoLocationStore) Upsert(ctx context.Context, location *restaurant.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}

	doc := fromDomain(location, s.now())
	_, err := s.collection.ReplaceOne(ctx,
		bson.D{{Key: "restaurantId", Value: doc.RestaurantID}},
		doc,
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("upsert location of restaurant %s: %w", doc.RestaurantID, err)
	}
	return nil
}

func (s *MongoLocationStore) Get(ctx context.Context, restaurantID kernel.UUID) (*restaurant.Location, error) {
	if err := restaurantID.Validate(); err != nil {
		return nil, err
	}

	var doc LocationDocument
	err := s.collection.FindOne(ctx, bson.D{{Key: "restaurantId", Value: restaurantID.String()}}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errs.NewObjectNotFoundError("location", restaurantID.String())
		}
		return nil, err
	}

	return toDomain(doc)
}

func (s *MongoLocationStore) Delete(ctx context.Context, restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}

	_, err := s.collection.DeleteOne(ctx, bson.D{{Key: "restaurantId", Value: restaurantID.String()}})
	return err
}

func (s *MongoLocationStore) Missing(ctx context.Context, restaurantIDs []kernel.UUID) ([]kernel.UUID, error) {
	if len(restaurantIDs) == 0 {
		return nil, nil
	}

	keys := make([]string, 0, len(restaurantIDs))
	for _, id := range restaurantIDs {
		keys = append(keys, id.String())
	}

	cursor, err := s.collection.Find(ctx,
		bson.D{{Key: "restaurantId", Value: bson.D{{Key: "$in", Value: keys}}}},
		options.Find().SetProjection(bson.D{{Key: "restaurantId", Value: 1}}),
	)
	if err != nil {
		return nil, err
	}

	var found []LocationDocument
	if err = cursor.All(ctx, &found); err != nil {
		return nil, err
	}

	present := make(map[string]struct{}, len(found))
	for _, doc := range found {
		present[doc.RestaurantID] = struct{}{}
	}

	var missing []kernel.UUID
	for _, id := range restaurantIDs {
		if _, ok := present[id.String()]; !ok {
			missing = append(missing, id)
		}
	}
	return missing, nil
}
