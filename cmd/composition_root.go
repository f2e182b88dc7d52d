package cmd

import (
	"log/slog"

	"fooddelivery/internal/adapters/in/http"
	"fooddelivery/internal/adapters/out/postgres"
	"fooddelivery/internal/adapters/out/postgres/userrepo"
	"fooddelivery/internal/adapters/out/qr"
	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/jobs"
	"fooddelivery/internal/pkg/metrics"

	"gorm.io/gorm"
)

// CompositionRoot builds every handler from the infrastructure created in main.
type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	users      ports.UserDirectory
	locations  ports.LocationStore
	recorder   *metrics.Recorder
	logger     *slog.Logger
	clock      services.Clock
	issuer     *services.CodeIssuer
}

func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	locations ports.LocationStore,
	publisher ports.EventPublisher,
	recorder *metrics.Recorder,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		config: config,
		gormDB: gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB,
			postgres.WithEventPublisher(publisher),
			postgres.WithLogger(logger),
		),
		users:     userrepo.NewGormUserDirectory(gormDB),
		locations: locations,
		recorder:  recorder,
		logger:    logger,
		clock:     services.SystemClock{},
		issuer:    services.NewCodeIssuer(),
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) deliveryUoWFactory() commands.DeliveryUoWFactory {
	return FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) restaurantUoWFactory() commands.RestaurantUoWFactory {
	return FuncRestaurantUoWFactory(func() commands.RestaurantUoW {
		return c.uowFactory.Create()
	})
}

// CreateHandlers wires every use case the HTTP API exposes.
func (c *CompositionRoot) CreateHandlers() http.Handlers {
	createRestaurant := commands.NewCreateRestaurantCommandHandler(c.restaurantUoWFactory(), c.users, c.locations,
		c.clock, c.config.LocationWriteTimeout, c.logger, c.recorder)
	deleteRestaurant := commands.NewDeleteRestaurantCommandHandler(c.restaurantUoWFactory(), c.users, c.locations)
	updateLocation := commands.NewUpdateRestaurantLocationCommandHandler(c.restaurantUoWFactory(), c.users,
		c.locations, c.config.LocationWriteTimeout)
	createItem := commands.NewCreateItemCommandHandler(c.restaurantUoWFactory(), c.users)
	createMenu := commands.NewCreateMenuCommandHandler(c.restaurantUoWFactory(), c.users)

	createOrder := commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.locations, c.clock)
	addItem := commands.NewAddOrderItemCommandHandler(c.orderUoWFactory())
	removeItem := commands.NewRemoveOrderItemCommandHandler(c.orderUoWFactory())
	addMenu := commands.NewAddOrderMenuCommandHandler(c.orderUoWFactory())
	removeMenu := commands.NewRemoveOrderMenuCommandHandler(c.orderUoWFactory())
	recompute := commands.NewRecomputeOrderTotalCommandHandler(c.orderUoWFactory())
	cancelOrder := commands.NewCancelOrderCommandHandler(c.orderUoWFactory(), c.users, c.clock)
	updateStatus := commands.NewUpdateOrderStatusCommandHandler(c.orderUoWFactory(), c.users, c.clock)

	claim := commands.NewClaimOrderCommandHandler(c.deliveryUoWFactory(), c.users, c.issuer, c.clock, c.recorder)
	pickup := commands.NewConfirmPickupCommandHandler(c.deliveryUoWFactory(), c.clock, c.recorder)
	transit := commands.NewStartTransitCommandHandler(c.deliveryUoWFactory(), c.recorder)
	deliver := commands.NewConfirmDeliveryCommandHandler(c.deliveryUoWFactory(), c.clock, c.recorder)
	cancelHandoff := commands.NewCancelHandoffCommandHandler(c.deliveryUoWFactory(), c.clock, c.recorder)

	getOrder := queries.NewGetOrderQueryHandler(c.gormDB, c.users)
	claimable := queries.NewListClaimableOrdersQueryHandler(c.gormDB, c.locations)
	agentOrders := queries.NewListAgentOrdersQueryHandler(c.gormDB)
	getRestaurant := queries.NewGetRestaurantQueryHandler(c.gormDB, c.locations)
	pickupQR := queries.NewGetPickupQRQueryHandler(c.gormDB, c.users, qr.NewEncoder())
	unprovisioned := c.CreateListUnprovisionedRestaurantsQueryHandler()
	watchOrders := queries.NewWatchOrdersQueryHandler(c.gormDB, c.users)

	return http.Handlers{
		CreateRestaurant:         &createRestaurant,
		DeleteRestaurant:         &deleteRestaurant,
		UpdateRestaurantLocation: &updateLocation,
		CreateItem:               &createItem,
		CreateMenu:               &createMenu,

		CreateOrder:         &createOrder,
		AddOrderItem:        &addItem,
		RemoveOrderItem:     &removeItem,
		AddOrderMenu:        &addMenu,
		RemoveOrderMenu:     &removeMenu,
		RecomputeOrderTotal: &recompute,
		CancelOrder:         &cancelOrder,
		UpdateOrderStatus:   &updateStatus,

		ClaimOrder:      &claim,
		ConfirmPickup:   &pickup,
		StartTransit:    &transit,
		ConfirmDelivery: &deliver,
		CancelHandoff:   &cancelHandoff,

		GetOrder:                     getOrder,
		ListClaimableOrders:          claimable,
		ListAgentOrders:              agentOrders,
		GetRestaurant:                getRestaurant,
		GetPickupQR:                  pickupQR,
		ListUnprovisionedRestaurants: unprovisioned,
		WatchOrders:                  watchOrders,
	}
}

func (c *CompositionRoot) CreateListUnprovisionedRestaurantsQueryHandler() queries.ListUnprovisionedRestaurantsQueryHandler {
	return queries.NewListUnprovisionedRestaurantsQueryHandler(c.gormDB, c.locations)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	audit := jobs.NewProvisioningAuditJob(
		c.CreateListUnprovisionedRestaurantsQueryHandler(),
		c.recorder,
		c.config.AuditSchedule,
		c.logger,
	)
	return jobs.NewJobManager(audit)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}

type FuncRestaurantUoWFactory func() commands.RestaurantUoW

func (f FuncRestaurantUoWFactory) Create() commands.RestaurantUoW {
	return f()
}
