package commands

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"
)

// CreateOrderCommandHandler places a PENDING order with a fully provisioned restaurant
// and prices it from the catalog.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	locations  ports.LocationStore
	clock      services.Clock
}

func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	locations ports.LocationStore,
	clock services.Clock,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		locations:  locations,
		clock:      clock,
	}
}

// Handle fails with ErrRestaurantNotReady when the restaurant has no location document,
// and with order.ErrForeignCatalogEntry when a line belongs to another restaurant.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	r, err := uow.RestaurantRepository().Get(ctx, cmd.RestaurantID())
	if err != nil {
		return notFoundAs(err, ErrRestaurantNotFound)
	}

	_, err = h.locations.Get(ctx, r.ID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrRestaurantNotReady
	}
	if err != nil {
		return err
	}

	o, err := order.NewOrder(cmd.OrderID(), cmd.CustomerID(), r.ID(), h.clock.Now())
	if err != nil {
		return err
	}

	catalogRepo := uow.CatalogRepository()
	for _, line := range cmd.Items() {
		item, itemErr := catalogRepo.GetItem(ctx, line.ItemID)
		if itemErr != nil {
			return notFoundAs(itemErr, ErrItemNotFound)
		}
		if err = o.AddItem(item, line.Quantity); err != nil {
			return err
		}
	}
	for _, menuID := range cmd.MenuIDs() {
		menu, menuErr := catalogRepo.GetMenu(ctx, menuID)
		if menuErr != nil {
			return notFoundAs(menuErr, ErrMenuNotFound)
		}
		if err = o.AddMenu(menu); err != nil {
			return err
		}
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
