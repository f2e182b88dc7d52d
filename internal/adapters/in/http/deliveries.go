package http

import (
	"net/http"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// ListClaimableOrders handles GET /api/v1/orders/claimable?restaurantId=&lat=&lon=&limit=.
func (s *Server) ListClaimableOrders(c echo.Context) error {
	restaurantID, err := optionalQueryUUID(c, "restaurantId")
	if err != nil {
		return err
	}
	near, err := optionalQueryPoint(c)
	if err != nil {
		return err
	}
	limit, err := optionalQueryInt(c, "limit")
	if err != nil {
		return err
	}

	query, err := queries.NewListClaimableOrdersQuery(restaurantID, near, limit)
	if err != nil {
		return err
	}
	response, err := s.h.ListClaimableOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	views := make([]ClaimableOrderView, 0, len(response.Orders))
	for _, o := range response.Orders {
		views = append(views, ClaimableOrderView{
			OrderID:        o.OrderID.String(),
			RestaurantID:   o.RestaurantID.String(),
			RestaurantName: o.RestaurantName,
			Address:        o.Address,
			DistanceKm:     o.DistanceKm,
			TotalPrice:     o.TotalPrice,
			PlacedAt:       o.PlacedAt,
		})
	}
	return c.JSON(http.StatusOK, views)
}

// ClaimOrder handles POST /api/v1/orders/{orderId}/claim. The caller is the agent.
func (s *Server) ClaimOrder(c echo.Context) error {
	agentID, orderID, err := callerAndOrder(c)
	if err != nil {
		return err
	}

	cmd, err := commands.NewClaimOrderCommand(orderID, agentID)
	if err != nil {
		return err
	}
	result, err := s.h.ClaimOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, ClaimView{DeliveryID: result.DeliveryID.String(), Status: result.Status.String()})
}

func (s *Server) ConfirmPickup(c echo.Context) error {
	agentID, orderID, err := callerAndOrder(c)
	if err != nil {
		return err
	}

	var body PickupBody
	if err = bind(c, &body); err != nil {
		return err
	}

	cmd, err := commands.NewConfirmPickupCommand(orderID, agentID, body.PickupToken)
	if err != nil {
		return err
	}
	if err = s.h.ConfirmPickup.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) StartTransit(c echo.Context) error {
	agentID, orderID, err := callerAndOrder(c)
	if err != nil {
		return err
	}

	cmd, err := commands.NewStartTransitCommand(orderID, agentID)
	if err != nil {
		return err
	}
	if err = s.h.StartTransit.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) ConfirmDelivery(c echo.Context) error {
	agentID, orderID, err := callerAndOrder(c)
	if err != nil {
		return err
	}

	var body DeliveryBody
	if err = bind(c, &body); err != nil {
		return err
	}

	cmd, err := commands.NewConfirmDeliveryCommand(orderID, agentID, body.ConfirmationCode)
	if err != nil {
		return err
	}
	if err = s.h.ConfirmDelivery.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// CancelHandoff handles POST /api/v1/orders/{orderId}/handoff/cancel. The order goes
// back to READY and can be claimed again.
func (s *Server) CancelHandoff(c echo.Context) error {
	agentID, orderID, err := callerAndOrder(c)
	if err != nil {
		return err
	}

	var body ReasonBody
	if err = bind(c, &body); err != nil {
		return err
	}

	cmd, err := commands.NewCancelHandoffCommand(orderID, agentID, body.Reason)
	if err != nil {
		return err
	}
	if err = s.h.CancelHandoff.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// GetPickupQR handles GET /api/v1/orders/{orderId}/pickup-qr and answers with a PNG.
func (s *Server) GetPickupQR(c echo.Context) error {
	requesterID, orderID, err := callerAndOrder(c)
	if err != nil {
		return err
	}

	query, err := queries.NewGetPickupQRQuery(orderID, requesterID)
	if err != nil {
		return err
	}
	response, err := s.h.GetPickupQR.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.Blob(http.StatusOK, "image/png", response.PNG)
}

// ListAgentOrders handles GET /api/v1/agents/me/orders.
func (s *Server) ListAgentOrders(c echo.Context) error {
	agentID, err := currentUser(c)
	if err != nil {
		return err
	}

	query, err := queries.NewListAgentOrdersQuery(agentID)
	if err != nil {
		return err
	}
	response, err := s.h.ListAgentOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	views := make([]AgentOrderView, 0, len(response.Orders))
	for _, o := range response.Orders {
		views = append(views, AgentOrderView{
			OrderID:        o.OrderID.String(),
			DeliveryID:     o.DeliveryID.String(),
			RestaurantID:   o.RestaurantID.String(),
			OrderStatus:    o.OrderStatus.String(),
			DeliveryStatus: o.DeliveryStatus.String(),
			TotalPrice:     o.TotalPrice,
			AssignedAt:     o.AssignedAt,
			PickupTime:     o.PickupTime,
			DeliveryTime:   o.DeliveryTime,
		})
	}
	return c.JSON(http.StatusOK, views)
}
