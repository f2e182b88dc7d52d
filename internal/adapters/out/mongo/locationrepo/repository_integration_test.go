package locationrepo_test

import (
	"context"
	"testing"
	"time"

	"fooddelivery/internal/adapters/out/mongo/locationrepo"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/restaurant"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type LocationStoreIntegrationTestSuite struct {
	suite.Suite
	container *mongodb.MongoDBContainer
	client    *mongo.Client
	db        *mongo.Database
	store     *locationrepo.MongoLocationStore
}

func (suite *LocationStoreIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := mongodb.Run(ctx, "mongo:7")
	suite.Require().NoError(err)
	suite.container = container

	uri, err := container.ConnectionString(ctx)
	suite.Require().NoError(err)

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	suite.Require().NoError(err)
	suite.client = client
	suite.db = client.Database("fooddelivery_test")
}

func (suite *LocationStoreIntegrationTestSuite) SetupTest() {
	ctx := context.Background()
	suite.Require().NoError(suite.db.Drop(ctx))

	store, err := locationrepo.NewMongoLocationStore(ctx, suite.db)
	suite.Require().NoError(err)
	suite.store = store
}

func (suite *LocationStoreIntegrationTestSuite) TearDownSuite() {
	ctx := context.Background()
	if suite.client != nil {
		suite.Require().NoError(suite.client.Disconnect(ctx))
	}
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(ctx))
	}
}

func (suite *LocationStoreIntegrationTestSuite) TestUpsert_ThenGet() {
	ctx := context.Background()
	loc := suite.newLocation(kernel.NewUUID(), "Abay 10")

	suite.Require().NoError(suite.store.Upsert(ctx, loc))

	loaded, err := suite.store.Get(ctx, loc.RestaurantID())
	suite.Require().NoError(err)
	suite.Equal("Abay 10", loaded.Address())
	suite.Equal("09:00", loaded.OpeningHours())
	suite.Equal([]time.Weekday{time.Monday, time.Tuesday}, loaded.WorkingDays())
	suite.InDelta(43.2389, loaded.Point().Latitude(), 1e-9)
}

func (suite *LocationStoreIntegrationTestSuite) TestUpsert_ReplacesExistingDocument() {
	ctx := context.Background()
	restaurantID := kernel.NewUUID()
	suite.Require().NoError(suite.store.Upsert(ctx, suite.newLocation(restaurantID, "Abay 10")))

	suite.Require().NoError(suite.store.Upsert(ctx, suite.newLocation(restaurantID, "Dostyk 5")))

	count, err := suite.db.Collection("restaurant_locations").CountDocuments(ctx, map[string]any{})
	suite.Require().NoError(err)
	suite.Equal(int64(1), count)
	loaded, err := suite.store.Get(ctx, restaurantID)
	suite.Require().NoError(err)
	suite.Equal("Dostyk 5", loaded.Address())
}

func (suite *LocationStoreIntegrationTestSuite) TestGet_Missing_ReturnsNotFound() {
	_, err := suite.store.Get(context.Background(), kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *LocationStoreIntegrationTestSuite) TestDelete_IsIdempotent() {
	ctx := context.Background()
	loc := suite.newLocation(kernel.NewUUID(), "Abay 10")
	suite.Require().NoError(suite.store.Upsert(ctx, loc))

	suite.Require().NoError(suite.store.Delete(ctx, loc.RestaurantID()))
	suite.Require().NoError(suite.store.Delete(ctx, loc.RestaurantID()))

	_, err := suite.store.Get(ctx, loc.RestaurantID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *LocationStoreIntegrationTestSuite) TestMissing_ReturnsIDsWithoutDocument() {
	ctx := context.Background()
	provisioned := suite.newLocation(kernel.NewUUID(), "Abay 10")
	suite.Require().NoError(suite.store.Upsert(ctx, provisioned))
	orphan := kernel.NewUUID()

	missing, err := suite.store.Missing(ctx, []kernel.UUID{provisioned.RestaurantID(), orphan})

	suite.Require().NoError(err)
	suite.Equal([]kernel.UUID{orphan}, missing)
}

func (suite *LocationStoreIntegrationTestSuite) newLocation(restaurantID kernel.UUID, address string) *restaurant.Location {
	point, err := kernel.NewLocation(43.2389, 76.8897)
	suite.Require().NoError(err)
	loc, err := restaurant.NewLocation(restaurantID, point, address, "09:00", "22:00",
		[]time.Weekday{time.Tuesday, time.Monday})
	suite.Require().NoError(err)
	return loc
}

func TestLocationStoreIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(LocationStoreIntegrationTestSuite))
}
