package http

import (
	"net/http"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// CreateOrder handles POST /api/v1/orders. The caller is the customer.
func (s *Server) CreateOrder(c echo.Context) error {
	customerID, err := currentUser(c)
	if err != nil {
		return err
	}

	var body NewOrder
	if err = bind(c, &body); err != nil {
		return err
	}

	restaurantID, err := parseUUID("restaurantId", body.RestaurantID)
	if err != nil {
		return err
	}
	items := make([]commands.OrderItemRequest, 0, len(body.Items))
	for _, line := range body.Items {
		itemID, parseErr := parseUUID("itemId", line.ItemID)
		if parseErr != nil {
			return parseErr
		}
		items = append(items, commands.OrderItemRequest{ItemID: itemID, Quantity: line.Quantity})
	}
	menuIDs, err := parseUUIDs("menuIds", body.MenuIDs)
	if err != nil {
		return err
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, customerID, restaurantID, items, menuIDs)
	if err != nil {
		return err
	}
	if err = s.h.CreateOrder.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, Created{ID: orderID.String()})
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(c echo.Context) error {
	requesterID, orderID, err := callerAndOrder(c)
	if err != nil {
		return err
	}

	query, err := queries.NewGetOrderQuery(orderID, requesterID)
	if err != nil {
		return err
	}
	response, err := s.h.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orderView(response))
}

func (s *Server) AddOrderItem(c echo.Context) error {
	customerID, orderID, err := callerAndOrder(c)
	if err != nil {
		return err
	}

	var body OrderItemBody
	if err = bind(c, &body); err != nil {
		return err
	}
	itemID, err := parseUUID("itemId", body.ItemID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewAddOrderItemCommand(orderID, customerID, itemID, body.Quantity)
	if err != nil {
		return err
	}
	if err = s.h.AddOrderItem.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) RemoveOrderItem(c echo.Context) error {
	customerID, orderID, err := callerAndOrder(c)
	if err != nil {
		return err
	}
	itemID, err := pathUUID(c, "itemId")
	if err != nil {
		return err
	}

	cmd, err := commands.NewRemoveOrderItemCommand(orderID, customerID, itemID)
	if err != nil {
		return err
	}
	if err = s.h.RemoveOrderItem.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) AddOrderMenu(c echo.Context) error {
	customerID, orderID, err := callerAndOrder(c)
	if err != nil {
		return err
	}

	var body OrderMenuBody
	if err = bind(c, &body); err != nil {
		return err
	}
	menuID, err := parseUUID("menuId", body.MenuID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewAddOrderMenuCommand(orderID, customerID, menuID)
	if err != nil {
		return err
	}
	if err = s.h.AddOrderMenu.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) RemoveOrderMenu(c echo.Context) error {
	customerID, orderID, err := callerAndOrder(c)
	if err != nil {
		return err
	}
	menuID, err := pathUUID(c, "menuId")
	if err != nil {
		return err
	}

	cmd, err := commands.NewRemoveOrderMenuCommand(orderID, customerID, menuID)
	if err != nil {
		return err
	}
	if err = s.h.RemoveOrderMenu.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// RecomputeOrderTotal handles POST /api/v1/orders/{orderId}/total.
func (s *Server) RecomputeOrderTotal(c echo.Context) error {
	customerID, orderID, err := callerAndOrder(c)
	if err != nil {
		return err
	}

	cmd, err := commands.NewRecomputeOrderTotalCommand(orderID, customerID)
	if err != nil {
		return err
	}
	total, err := s.h.RecomputeOrderTotal.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, TotalView{TotalPrice: total})
}

func (s *Server) CancelOrder(c echo.Context) error {
	requesterID, orderID, err := callerAndOrder(c)
	if err != nil {
		return err
	}

	var body ReasonBody
	if err = bind(c, &body); err != nil {
		return err
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, requesterID, body.Reason)
	if err != nil {
		return err
	}
	if err = s.h.CancelOrder.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// UpdateOrderStatus handles PUT /api/v1/orders/{orderId}/status for kitchen progression.
func (s *Server) UpdateOrderStatus(c echo.Context) error {
	requesterID, orderID, err := callerAndOrder(c)
	if err != nil {
		return err
	}

	var body StatusBody
	if err = bind(c, &body); err != nil {
		return err
	}
	target, err := order.ParseStatus(body.Status)
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, requesterID, target)
	if err != nil {
		return err
	}
	if err = s.h.UpdateOrderStatus.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func callerAndOrder(c echo.Context) (kernel.UUID, kernel.UUID, error) {
	userID, err := currentUser(c)
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}
	orderID, err := pathUUID(c, "orderId")
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}
	return userID, orderID, nil
}

// WatchOrders streams order events over a websocket. With ?orderId= the caller must have
// a part in that order; without it the caller must be an admin.
func (s *Server) WatchOrders(c echo.Context) error {
	requesterID, err := currentUser(c)
	if err != nil {
		return err
	}
	orderID, err := optionalQueryUUID(c, "orderId")
	if err != nil {
		return err
	}

	query, err := queries.NewWatchOrdersQuery(requesterID, orderID)
	if err != nil {
		return err
	}
	if err = s.h.WatchOrders.Handle(c.Request().Context(), query); err != nil {
		return err
	}
	return s.hub.Serve(c, orderID)
}
