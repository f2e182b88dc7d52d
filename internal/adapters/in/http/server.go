// Package http exposes the command and query handlers over a JSON API built on echo.
// Callers are identified by the X-User-ID header set by the gateway.
package http

import (
	"context"
	"log/slog"
	"net/http"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/restaurant"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// CommandHandler is implemented by every command handler without a result.
type CommandHandler[C any] interface {
	Handle(ctx context.Context, cmd C) error
}

// ResultHandler is implemented by query handlers and by commands that return a result.
type ResultHandler[C, R any] interface {
	Handle(ctx context.Context, cmd C) (R, error)
}

// Handlers lists the use cases the API routes to.
type Handlers struct {
	CreateRestaurant         ResultHandler[commands.CreateRestaurantCommand, commands.CreateRestaurantResult]
	DeleteRestaurant         CommandHandler[commands.DeleteRestaurantCommand]
	UpdateRestaurantLocation ResultHandler[commands.UpdateRestaurantLocationCommand, *restaurant.Location]
	CreateItem               CommandHandler[commands.CreateItemCommand]
	CreateMenu               CommandHandler[commands.CreateMenuCommand]

	CreateOrder         CommandHandler[commands.CreateOrderCommand]
	AddOrderItem        CommandHandler[commands.AddOrderItemCommand]
	RemoveOrderItem     CommandHandler[commands.RemoveOrderItemCommand]
	AddOrderMenu        CommandHandler[commands.AddOrderMenuCommand]
	RemoveOrderMenu     CommandHandler[commands.RemoveOrderMenuCommand]
	RecomputeOrderTotal ResultHandler[commands.RecomputeOrderTotalCommand, decimal.Decimal]
	CancelOrder         CommandHandler[commands.CancelOrderCommand]
	UpdateOrderStatus   CommandHandler[commands.UpdateOrderStatusCommand]

	ClaimOrder      ResultHandler[commands.ClaimOrderCommand, commands.ClaimOrderResult]
	ConfirmPickup   CommandHandler[commands.ConfirmPickupCommand]
	StartTransit    CommandHandler[commands.StartTransitCommand]
	ConfirmDelivery CommandHandler[commands.ConfirmDeliveryCommand]
	CancelHandoff   CommandHandler[commands.CancelHandoffCommand]

	GetOrder                     ResultHandler[queries.GetOrderQuery, queries.GetOrderQueryResponse]
	ListClaimableOrders          ResultHandler[queries.ListClaimableOrdersQuery, queries.ListClaimableOrdersQueryResponse]
	ListAgentOrders              ResultHandler[queries.ListAgentOrdersQuery, queries.ListAgentOrdersQueryResponse]
	GetRestaurant                ResultHandler[queries.GetRestaurantQuery, queries.GetRestaurantQueryResponse]
	GetPickupQR                  ResultHandler[queries.GetPickupQRQuery, queries.GetPickupQRQueryResponse]
	WatchOrders                  CommandHandler[queries.WatchOrdersQuery]
	ListUnprovisionedRestaurants ResultHandler[
		queries.ListUnprovisionedRestaurantsQuery,
		queries.ListUnprovisionedRestaurantsQueryResponse,
	]
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	h      Handlers
	hub    *Hub
	logger *slog.Logger
}

func NewServer(handlers Handlers, hub *Hub, logger *slog.Logger) *Server {
	return &Server{
		h:      handlers,
		hub:    hub,
		logger: logger.With("component", "http"),
	}
}

// Register mounts the API under /api/v1, the websocket feed when a hub is set, and the
// error handler. Both require X-User-ID. Health and metrics stay with the caller.
func (s *Server) Register(e *echo.Echo) {
	e.HTTPErrorHandler = s.ErrorHandler

	api := e.Group("/api/v1", Identity)

	api.POST("/restaurants", s.CreateRestaurant)
	api.GET("/restaurants/unprovisioned", s.ListUnprovisionedRestaurants)
	api.GET("/restaurants/:restaurantId", s.GetRestaurant)
	api.DELETE("/restaurants/:restaurantId", s.DeleteRestaurant)
	api.PATCH("/restaurants/:restaurantId/location", s.UpdateRestaurantLocation)
	api.POST("/restaurants/:restaurantId/items", s.CreateItem)
	api.POST("/restaurants/:restaurantId/menus", s.CreateMenu)

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/claimable", s.ListClaimableOrders)
	api.GET("/orders/:orderId", s.GetOrder)
	api.POST("/orders/:orderId/items", s.AddOrderItem)
	api.DELETE("/orders/:orderId/items/:itemId", s.RemoveOrderItem)
	api.POST("/orders/:orderId/menus", s.AddOrderMenu)
	api.DELETE("/orders/:orderId/menus/:menuId", s.RemoveOrderMenu)
	api.POST("/orders/:orderId/total", s.RecomputeOrderTotal)
	api.POST("/orders/:orderId/cancel", s.CancelOrder)
	api.PUT("/orders/:orderId/status", s.UpdateOrderStatus)

	api.POST("/orders/:orderId/claim", s.ClaimOrder)
	api.POST("/orders/:orderId/pickup", s.ConfirmPickup)
	api.POST("/orders/:orderId/transit", s.StartTransit)
	api.POST("/orders/:orderId/delivery", s.ConfirmDelivery)
	api.POST("/orders/:orderId/handoff/cancel", s.CancelHandoff)
	api.GET("/orders/:orderId/pickup-qr", s.GetPickupQR)
	api.GET("/agents/me/orders", s.ListAgentOrders)

	if s.hub != nil {
		e.GET("/ws/orders", s.WatchOrders, Identity)
	}
}

func bind(c echo.Context, body any) error {
	if err := c.Bind(body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	return nil
}
