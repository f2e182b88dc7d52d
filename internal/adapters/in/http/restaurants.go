package http

import (
	"net/http"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/restaurant"

	"github.com/labstack/echo/v4"
)

// CreateRestaurant handles POST /api/v1/restaurants. The caller becomes the owner.
func (s *Server) CreateRestaurant(c echo.Context) error {
	ownerID, err := currentUser(c)
	if err != nil {
		return err
	}

	var body NewRestaurant
	if err = bind(c, &body); err != nil {
		return err
	}

	var patch *restaurant.LocationPatch
	if body.Location != nil {
		p, patchErr := body.Location.toPatch()
		if patchErr != nil {
			return patchErr
		}
		patch = &p
	}

	cmd, err := commands.NewCreateRestaurantCommand(kernel.NewUUID(), ownerID, body.Name, patch)
	if err != nil {
		return err
	}

	result, err := s.h.CreateRestaurant.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, RestaurantCreated{
		ID:           result.RestaurantID.String(),
		Provisioning: result.State.String(),
	})
}

// GetRestaurant handles GET /api/v1/restaurants/{restaurantId}.
func (s *Server) GetRestaurant(c echo.Context) error {
	restaurantID, err := pathUUID(c, "restaurantId")
	if err != nil {
		return err
	}

	query, err := queries.NewGetRestaurantQuery(restaurantID)
	if err != nil {
		return err
	}

	response, err := s.h.GetRestaurant.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, restaurantView(response))
}

func (s *Server) DeleteRestaurant(c echo.Context) error {
	requesterID, err := currentUser(c)
	if err != nil {
		return err
	}
	restaurantID, err := pathUUID(c, "restaurantId")
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteRestaurantCommand(restaurantID, requesterID)
	if err != nil {
		return err
	}
	if err = s.h.DeleteRestaurant.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// UpdateRestaurantLocation handles PATCH /api/v1/restaurants/{restaurantId}/location.
// Omitted fields keep their stored value.
func (s *Server) UpdateRestaurantLocation(c echo.Context) error {
	requesterID, err := currentUser(c)
	if err != nil {
		return err
	}
	restaurantID, err := pathUUID(c, "restaurantId")
	if err != nil {
		return err
	}

	var body LocationBody
	if err = bind(c, &body); err != nil {
		return err
	}
	patch, err := body.toPatch()
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdateRestaurantLocationCommand(restaurantID, requesterID, patch)
	if err != nil {
		return err
	}

	location, err := s.h.UpdateRestaurantLocation.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, locationView(location))
}

func (s *Server) CreateItem(c echo.Context) error {
	requesterID, err := currentUser(c)
	if err != nil {
		return err
	}
	restaurantID, err := pathUUID(c, "restaurantId")
	if err != nil {
		return err
	}

	var body NewItem
	if err = bind(c, &body); err != nil {
		return err
	}

	itemID := kernel.NewUUID()
	cmd, err := commands.NewCreateItemCommand(itemID, restaurantID, requesterID, body.Name, body.Price)
	if err != nil {
		return err
	}
	if err = s.h.CreateItem.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, Created{ID: itemID.String()})
}

func (s *Server) CreateMenu(c echo.Context) error {
	requesterID, err := currentUser(c)
	if err != nil {
		return err
	}
	restaurantID, err := pathUUID(c, "restaurantId")
	if err != nil {
		return err
	}

	var body NewMenu
	if err = bind(c, &body); err != nil {
		return err
	}
	itemIDs, err := parseUUIDs("itemIds", body.ItemIDs)
	if err != nil {
		return err
	}

	menuID := kernel.NewUUID()
	cmd, err := commands.NewCreateMenuCommand(menuID, restaurantID, requesterID, body.Name, body.Price, itemIDs)
	if err != nil {
		return err
	}
	if err = s.h.CreateMenu.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, Created{ID: menuID.String()})
}

// ListUnprovisionedRestaurants handles GET /api/v1/restaurants/unprovisioned.
func (s *Server) ListUnprovisionedRestaurants(c echo.Context) error {
	query, err := queries.NewListUnprovisionedRestaurantsQuery()
	if err != nil {
		return err
	}

	response, err := s.h.ListUnprovisionedRestaurants.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	views := make([]UnprovisionedRestaurantView, 0, len(response.Restaurants))
	for _, r := range response.Restaurants {
		views = append(views, UnprovisionedRestaurantView{
			ID:        r.ID.String(),
			OwnerID:   r.OwnerID.String(),
			Name:      r.Name,
			CreatedAt: r.CreatedAt,
		})
	}
	return c.JSON(http.StatusOK, views)
}
