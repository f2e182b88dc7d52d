package http

import (
	"time"

	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/restaurant"

	"github.com/shopspring/decimal"
)

type LocationBody struct {
	Latitude     *float64 `json:"latitude,omitempty"`
	Longitude    *float64 `json:"longitude,omitempty"`
	Address      *string  `json:"address,omitempty"`
	OpeningHours *string  `json:"openingHours,omitempty"`
	ClosingHours *string  `json:"closingHours,omitempty"`
	WorkingDays  []string `json:"workingDays,omitempty"`
}

// toPatch converts the body. Latitude and longitude are only meaningful together.
func (b LocationBody) toPatch() (restaurant.LocationPatch, error) {
	patch := restaurant.LocationPatch{
		Address:      b.Address,
		OpeningHours: b.OpeningHours,
		ClosingHours: b.ClosingHours,
	}

	if b.Latitude != nil || b.Longitude != nil {
		if b.Latitude == nil || b.Longitude == nil {
			return restaurant.LocationPatch{}, errMissingCoordinate
		}
		point, err := kernel.NewLocation(*b.Latitude, *b.Longitude)
		if err != nil {
			return restaurant.LocationPatch{}, err
		}
		patch.Point = &point
	}

	for _, name := range b.WorkingDays {
		day, err := restaurant.ParseWeekday(name)
		if err != nil {
			return restaurant.LocationPatch{}, err
		}
		patch.WorkingDays = append(patch.WorkingDays, day)
	}
	return patch, nil
}

type LocationView struct {
	Latitude     float64  `json:"latitude"`
	Longitude    float64  `json:"longitude"`
	Address      string   `json:"address"`
	OpeningHours string   `json:"openingHours"`
	ClosingHours string   `json:"closingHours"`
	WorkingDays  []string `json:"workingDays"`
}

func locationView(l *restaurant.Location) *LocationView {
	if l == nil {
		return nil
	}
	days := make([]string, 0, len(l.WorkingDays()))
	for _, d := range l.WorkingDays() {
		days = append(days, d.String())
	}
	return &LocationView{
		Latitude:     l.Point().Latitude(),
		Longitude:    l.Point().Longitude(),
		Address:      l.Address(),
		OpeningHours: l.OpeningHours(),
		ClosingHours: l.ClosingHours(),
		WorkingDays:  days,
	}
}

type NewRestaurant struct {
	Name     string        `json:"name"`
	Location *LocationBody `json:"location,omitempty"`
}

type RestaurantCreated struct {
	ID           string `json:"id"`
	Provisioning string `json:"provisioning"`
}

type NewItem struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

type NewMenu struct {
	Name    string          `json:"name"`
	Price   decimal.Decimal `json:"price"`
	ItemIDs []string        `json:"itemIds"`
}

type Created struct {
	ID string `json:"id"`
}

type RestaurantView struct {
	ID           string        `json:"id"`
	OwnerID      string        `json:"ownerId"`
	Name         string        `json:"name"`
	CreatedAt    time.Time     `json:"createdAt"`
	Provisioning string        `json:"provisioning"`
	Location     *LocationView `json:"location,omitempty"`
	Items        []ItemView    `json:"items"`
	Menus        []MenuView    `json:"menus"`
}

type ItemView struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

type MenuView struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Price   decimal.Decimal `json:"price"`
	ItemIDs []string        `json:"itemIds"`
}

func restaurantView(r queries.GetRestaurantQueryResponse) RestaurantView {
	view := RestaurantView{
		ID:           r.ID.String(),
		OwnerID:      r.OwnerID.String(),
		Name:         r.Name,
		CreatedAt:    r.CreatedAt,
		Provisioning: r.Provisioning.String(),
		Location:     locationView(r.Location),
		Items:        make([]ItemView, 0, len(r.Items)),
		Menus:        make([]MenuView, 0, len(r.Menus)),
	}
	for _, i := range r.Items {
		view.Items = append(view.Items, ItemView{ID: i.ID.String(), Name: i.Name, Price: i.Price})
	}
	for _, m := range r.Menus {
		view.Menus = append(view.Menus, MenuView{ID: m.ID.String(), Name: m.Name, Price: m.Price, ItemIDs: uuidStrings(m.ItemIDs)})
	}
	return view
}

type UnprovisionedRestaurantView struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"ownerId"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

type NewOrder struct {
	RestaurantID string          `json:"restaurantId"`
	Items        []OrderItemBody `json:"items"`
	MenuIDs      []string        `json:"menuIds"`
}

type OrderItemBody struct {
	ItemID   string `json:"itemId"`
	Quantity int    `json:"quantity"`
}

type OrderMenuBody struct {
	MenuID string `json:"menuId"`
}

type ReasonBody struct {
	Reason string `json:"reason"`
}

type StatusBody struct {
	Status string `json:"status"`
}

type PickupBody struct {
	PickupToken string `json:"pickupToken"`
}

type DeliveryBody struct {
	ConfirmationCode string `json:"confirmationCode"`
}

type TotalView struct {
	TotalPrice decimal.Decimal `json:"totalPrice"`
}

type OrderView struct {
	ID               string          `json:"id"`
	CustomerID       string          `json:"customerId"`
	RestaurantID     string          `json:"restaurantId"`
	Status           string          `json:"status"`
	TotalPrice       decimal.Decimal `json:"totalPrice"`
	PlacedAt         time.Time       `json:"placedAt"`
	AgentID          string          `json:"agentId,omitempty"`
	ConfirmationCode string          `json:"confirmationCode,omitempty"`
	Items            []OrderLineView `json:"items"`
	Menus            []OrderLineView `json:"menus"`
}

type OrderLineView struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity,omitempty"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

func orderView(o queries.GetOrderQueryResponse) OrderView {
	view := OrderView{
		ID:               o.ID.String(),
		CustomerID:       o.CustomerID.String(),
		RestaurantID:     o.RestaurantID.String(),
		Status:           o.Status.String(),
		TotalPrice:       o.TotalPrice,
		PlacedAt:         o.PlacedAt,
		ConfirmationCode: o.ConfirmationCode,
		Items:            make([]OrderLineView, 0, len(o.Items)),
		Menus:            make([]OrderLineView, 0, len(o.Menus)),
	}
	if o.AgentID != nil {
		view.AgentID = o.AgentID.String()
	}
	for _, i := range o.Items {
		view.Items = append(view.Items, OrderLineView{
			ID: i.ItemID.String(), Name: i.Name, Quantity: i.Quantity, UnitPrice: i.UnitPrice,
		})
	}
	for _, m := range o.Menus {
		view.Menus = append(view.Menus, OrderLineView{ID: m.MenuID.String(), Name: m.Name, UnitPrice: m.Price})
	}
	return view
}

type ClaimableOrderView struct {
	OrderID        string          `json:"orderId"`
	RestaurantID   string          `json:"restaurantId"`
	RestaurantName string          `json:"restaurantName"`
	Address        string          `json:"address,omitempty"`
	DistanceKm     *float64        `json:"distanceKm,omitempty"`
	TotalPrice     decimal.Decimal `json:"totalPrice"`
	PlacedAt       time.Time       `json:"placedAt"`
}

type ClaimView struct {
	DeliveryID string `json:"deliveryId"`
	Status     string `json:"status"`
}

type AgentOrderView struct {
	OrderID        string          `json:"orderId"`
	DeliveryID     string          `json:"deliveryId"`
	RestaurantID   string          `json:"restaurantId"`
	OrderStatus    string          `json:"orderStatus"`
	DeliveryStatus string          `json:"deliveryStatus"`
	TotalPrice     decimal.Decimal `json:"totalPrice"`
	AssignedAt     time.Time       `json:"assignedAt"`
	PickupTime     *time.Time      `json:"pickupTime,omitempty"`
	DeliveryTime   *time.Time      `json:"deliveryTime,omitempty"`
}

func uuidStrings(ids []kernel.UUID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}
	return out
}

func parseUUIDs(param string, raw []string) ([]kernel.UUID, error) {
	ids := make([]kernel.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := parseUUID(param, s)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
