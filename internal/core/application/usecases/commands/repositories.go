// Package commands contains the operations that change state: restaurant provisioning,
// catalog management, order editing, claiming and the delivery hand-off.
// Every handler validates its command, runs in one unit of work and commits all or nothing.
package commands

import (
	"context"

	"fooddelivery/internal/core/ports"
)

// Unit of Work interfaces give each handler only the repositories it needs.
type (
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	DeliveryRepoFactory interface {
		DeliveryRepository() ports.DeliveryRepository
	}

	RestaurantRepoFactory interface {
		RestaurantRepository() ports.RestaurantRepository
	}

	CatalogRepoFactory interface {
		CatalogRepository() ports.CatalogRepository
	}

	// RestaurantUoW covers restaurant rows and their catalog.
	RestaurantUoW interface {
		TxManager
		RestaurantRepoFactory
		CatalogRepoFactory
	}

	RestaurantUoWFactory interface {
		Create() RestaurantUoW
	}

	// OrderUoW covers placing and editing orders, which reads the restaurant and its catalog.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		RestaurantRepoFactory
		CatalogRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// DeliveryUoW covers claim and hand-off, where an order and its delivery change together.
	//
	// Example:
	//   uow := factory.Create()
	//   if err := uow.Begin(ctx); err != nil {
	//       return err
	//   }
	//   defer func() { _ = uow.Rollback(ctx) }()
	//
	//   o, err := uow.OrderRepository().Get(ctx, orderID)
	//   // ... change the order and its delivery
	//
	//   err = uow.Commit(ctx)
	DeliveryUoW interface {
		TxManager
		OrderRepoFactory
		DeliveryRepoFactory
	}

	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}
)
