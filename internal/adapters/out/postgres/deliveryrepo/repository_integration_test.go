package deliveryrepo_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"fooddelivery/internal/adapters/out/postgres/deliveryrepo"
	"fooddelivery/internal/adapters/out/postgres/pgtest"
	"fooddelivery/internal/core/domain/model/delivery"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

type DeliveryRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *deliveryrepo.GormDeliveryRepository
	tracker    *MockAggregateTracker
}

func (suite *DeliveryRepositoryIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.container = container
	suite.Require().NoError(err)
	suite.db = db
}

func (suite *DeliveryRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(pgtest.Truncate(suite.db))

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = deliveryrepo.NewGormDeliveryRepository(suite.db, suite.tracker)
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestAdd_ThenGetByOrderID() {
	ctx := context.Background()
	d := suite.newAcceptedDelivery(kernel.NewUUID())

	suite.Require().NoError(suite.repository.Add(ctx, d))

	loaded, err := suite.repository.GetByOrderID(ctx, d.OrderID())
	suite.Require().NoError(err)
	suite.True(loaded.ID().IsEqual(d.ID()))
	suite.True(loaded.AgentID().IsEqual(d.AgentID()))
	suite.Equal(delivery.Accepted, loaded.Status())
	suite.Nil(loaded.PickupTime())
	suite.Nil(loaded.DeliveryTime())
	suite.tracker.AssertCalled(suite.T(), "TrackAggregate", d.ID(), d)
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestAdd_SecondDeliveryForOrder_ReturnsAlreadyExists() {
	ctx := context.Background()
	orderID := kernel.NewUUID()
	suite.Require().NoError(suite.repository.Add(ctx, suite.newAcceptedDelivery(orderID)))

	err := suite.repository.Add(ctx, suite.newAcceptedDelivery(orderID))

	suite.Require().ErrorIs(err, errs.ErrObjectAlreadyExists)
	suite.assertDeliveryCount(1)
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestAdd_ConcurrentDeliveriesForOrder_ExactlyOneWins() {
	const agents = 8
	ctx := context.Background()
	orderID := kernel.NewUUID()

	var (
		wg        sync.WaitGroup
		winners   atomic.Int32
		conflicts atomic.Int32
		start     = make(chan struct{})
	)
	for range agents {
		d := suite.newAcceptedDelivery(orderID)
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			err := suite.repository.Add(ctx, d)
			switch {
			case err == nil:
				winners.Add(1)
			case errors.Is(err, errs.ErrObjectAlreadyExists):
				conflicts.Add(1)
			}
		}()
	}
	close(start)
	wg.Wait()

	suite.Equal(int32(1), winners.Load())
	suite.Equal(int32(agents-1), conflicts.Load())
	suite.assertDeliveryCount(1)
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestUpdate_PersistsTimestamps() {
	ctx := context.Background()
	d := suite.newAcceptedDelivery(kernel.NewUUID())
	suite.Require().NoError(suite.repository.Add(ctx, d))

	pickedUp := time.Now().UTC()
	suite.Require().NoError(d.MarkPickedUp(pickedUp))
	suite.Require().NoError(d.MarkDelivered(pickedUp.Add(20 * time.Minute)))
	suite.Require().NoError(suite.repository.Update(ctx, d))

	loaded, err := suite.repository.GetByOrderID(ctx, d.OrderID())
	suite.Require().NoError(err)
	suite.Equal(delivery.Delivered, loaded.Status())
	suite.Require().NotNil(loaded.PickupTime())
	suite.Require().NotNil(loaded.DeliveryTime())
	suite.WithinDuration(pickedUp, *loaded.PickupTime(), time.Millisecond)
	suite.WithinDuration(pickedUp.Add(20*time.Minute), *loaded.DeliveryTime(), time.Millisecond)
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestDelete_FreesTheOrderForAnotherDelivery() {
	ctx := context.Background()
	orderID := kernel.NewUUID()
	first := suite.newAcceptedDelivery(orderID)
	suite.Require().NoError(suite.repository.Add(ctx, first))

	suite.Require().NoError(suite.repository.Delete(ctx, first.ID()))

	_, err := suite.repository.GetByOrderID(ctx, orderID)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.Require().NoError(suite.repository.Add(ctx, suite.newAcceptedDelivery(orderID)))

	err = suite.repository.Delete(ctx, first.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *DeliveryRepositoryIntegrationTestSuite) newAcceptedDelivery(orderID kernel.UUID) *delivery.Delivery {
	d, err := delivery.NewDelivery(kernel.NewUUID(), orderID, kernel.NewUUID(), time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(d.Accept())
	return d
}

func (suite *DeliveryRepositoryIntegrationTestSuite) assertDeliveryCount(expected int) {
	var count int64
	suite.Require().NoError(suite.db.Model(&deliveryrepo.DeliveryDTO{}).Count(&count).Error)
	suite.Equal(int64(expected), count)
}

func TestDeliveryRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(DeliveryRepositoryIntegrationTestSuite))
}
