package commands_test

import (
	"errors"
	"testing"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/catalog"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/restaurant"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeleteRestaurantCommandHandler_Handle(t *testing.T) {
	t.Run("should delete the document before the relational row", func(t *testing.T) {
		// Given
		ctx := t.Context()
		ownerID := kernel.NewUUID()
		r := newTestRestaurant(t, ownerID)

		restaurantRepo := new(MockRestaurantRepository)
		locations := new(MockLocationStore)
		uow := new(MockUoW)
		factory := new(MockRestaurantUoWFactory)

		mock.InOrder(
			factory.On("Create").Return(uow).Once(),
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("RestaurantRepository").Return(restaurantRepo).Once(),
			restaurantRepo.On("Get", ctx, r.ID()).Return(r, nil).Once(),
			locations.On("Delete", ctx, r.ID()).Return(nil).Once(),
			restaurantRepo.On("Delete", ctx, r.ID()).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		cmd, err := commands.NewDeleteRestaurantCommand(r.ID(), ownerID)
		require.NoError(t, err)
		handler := commands.NewDeleteRestaurantCommandHandler(factory, new(MockUserDirectory), locations)

		// When
		err = handler.Handle(ctx, cmd)

		// Then
		require.NoError(t, err)
		uow.AssertExpectations(t)
		restaurantRepo.AssertExpectations(t)
		locations.AssertExpectations(t)
	})

	t.Run("should keep the relational row when the document delete fails", func(t *testing.T) {
		ctx := t.Context()
		ownerID := kernel.NewUUID()
		r := newTestRestaurant(t, ownerID)

		restaurantRepo := new(MockRestaurantRepository)
		locations := new(MockLocationStore)
		uow := new(MockUoW)
		factory := new(MockRestaurantUoWFactory)

		mock.InOrder(
			factory.On("Create").Return(uow).Once(),
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("RestaurantRepository").Return(restaurantRepo).Once(),
			restaurantRepo.On("Get", ctx, r.ID()).Return(r, nil).Once(),
			locations.On("Delete", ctx, r.ID()).Return(errors.New("mongo down")).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		cmd, err := commands.NewDeleteRestaurantCommand(r.ID(), ownerID)
		require.NoError(t, err)
		handler := commands.NewDeleteRestaurantCommandHandler(factory, new(MockUserDirectory), locations)

		err = handler.Handle(ctx, cmd)

		require.EqualError(t, err, "mongo down")
		restaurantRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("should let an admin delete any restaurant", func(t *testing.T) {
		ctx := t.Context()
		adminID := kernel.NewUUID()
		r := newTestRestaurant(t, kernel.NewUUID())

		restaurantRepo := new(MockRestaurantRepository)
		locations := new(MockLocationStore)
		users := new(MockUserDirectory)
		uow := new(MockUoW)
		factory := new(MockRestaurantUoWFactory)

		mock.InOrder(
			factory.On("Create").Return(uow).Once(),
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("RestaurantRepository").Return(restaurantRepo).Once(),
			restaurantRepo.On("Get", ctx, r.ID()).Return(r, nil).Once(),
			users.On("Get", ctx, adminID).Return(ports.User{ID: adminID, Role: kernel.RoleAdmin}, nil).Once(),
			locations.On("Delete", ctx, r.ID()).Return(nil).Once(),
			restaurantRepo.On("Delete", ctx, r.ID()).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		cmd, err := commands.NewDeleteRestaurantCommand(r.ID(), adminID)
		require.NoError(t, err)
		handler := commands.NewDeleteRestaurantCommandHandler(factory, users, locations)

		require.NoError(t, handler.Handle(ctx, cmd))
		users.AssertExpectations(t)
	})

	t.Run("should refuse other users", func(t *testing.T) {
		ctx := t.Context()
		strangerID := kernel.NewUUID()
		r := newTestRestaurant(t, kernel.NewUUID())

		restaurantRepo := new(MockRestaurantRepository)
		locations := new(MockLocationStore)
		users := new(MockUserDirectory)
		uow := new(MockUoW)
		factory := new(MockRestaurantUoWFactory)

		mock.InOrder(
			factory.On("Create").Return(uow).Once(),
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("RestaurantRepository").Return(restaurantRepo).Once(),
			restaurantRepo.On("Get", ctx, r.ID()).Return(r, nil).Once(),
			users.On("Get", ctx, strangerID).Return(ports.User{ID: strangerID, Role: kernel.RoleRestaurantOwner}, nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		cmd, err := commands.NewDeleteRestaurantCommand(r.ID(), strangerID)
		require.NoError(t, err)
		handler := commands.NewDeleteRestaurantCommandHandler(factory, users, locations)

		err = handler.Handle(ctx, cmd)

		require.ErrorIs(t, err, commands.ErrNotAuthorized)
		locations.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("should return ErrRestaurantNotFound", func(t *testing.T) {
		ctx := t.Context()
		id := kernel.NewUUID()

		restaurantRepo := new(MockRestaurantRepository)
		uow := new(MockUoW)
		factory := new(MockRestaurantUoWFactory)

		mock.InOrder(
			factory.On("Create").Return(uow).Once(),
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("RestaurantRepository").Return(restaurantRepo).Once(),
			restaurantRepo.On("Get", ctx, id).Return(nil, errs.NewObjectNotFoundError("restaurantId", id)).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		cmd, err := commands.NewDeleteRestaurantCommand(id, kernel.NewUUID())
		require.NoError(t, err)
		handler := commands.NewDeleteRestaurantCommandHandler(factory, new(MockUserDirectory), new(MockLocationStore))

		require.ErrorIs(t, handler.Handle(ctx, cmd), commands.ErrRestaurantNotFound)
	})
}

func TestUpdateRestaurantLocationCommandHandler_Handle(t *testing.T) {
	expectOwnerRead := func(t *testing.T, r *restaurant.Restaurant) *MockRestaurantUoWFactory {
		t.Helper()
		ctx := t.Context()
		restaurantRepo := new(MockRestaurantRepository)
		uow := new(MockUoW)
		factory := new(MockRestaurantUoWFactory)
		mock.InOrder(
			factory.On("Create").Return(uow).Once(),
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("RestaurantRepository").Return(restaurantRepo).Once(),
			restaurantRepo.On("Get", ctx, r.ID()).Return(r, nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)
		return factory
	}

	t.Run("should patch an existing document", func(t *testing.T) {
		// Given
		ctx := t.Context()
		ownerID := kernel.NewUUID()
		r := newTestRestaurant(t, ownerID)
		current := newTestLocation(t, r.ID())
		locations := new(MockLocationStore)
		factory := expectOwnerRead(t, r)

		closing := "23:30"
		locations.On("Get", ctx, r.ID()).Return(current, nil).Once()
		locations.On("Upsert", mock.MatchedBy(hasDeadline), mock.AnythingOfType("*restaurant.Location")).Return(nil).Once()

		cmd, err := commands.NewUpdateRestaurantLocationCommand(r.ID(), ownerID,
			restaurant.LocationPatch{ClosingHours: &closing})
		require.NoError(t, err)
		handler := commands.NewUpdateRestaurantLocationCommandHandler(factory, new(MockUserDirectory), locations, 0)

		// When
		updated, err := handler.Handle(ctx, cmd)

		// Then
		require.NoError(t, err)
		assert.Equal(t, "23:30", updated.ClosingHours())
		assert.Equal(t, current.Address(), updated.Address())
		assert.Equal(t, current.OpeningHours(), updated.OpeningHours())
		locations.AssertExpectations(t)
	})

	t.Run("should provision a restaurant that has no document yet", func(t *testing.T) {
		ctx := t.Context()
		ownerID := kernel.NewUUID()
		r := newTestRestaurant(t, ownerID)
		locations := new(MockLocationStore)
		factory := expectOwnerRead(t, r)

		locations.On("Get", ctx, r.ID()).Return(nil, errs.NewObjectNotFoundError("restaurantId", r.ID())).Once()
		locations.On("Upsert", mock.Anything, mock.AnythingOfType("*restaurant.Location")).Return(nil).Once()

		cmd, err := commands.NewUpdateRestaurantLocationCommand(r.ID(), ownerID, fullLocationPatch(t))
		require.NoError(t, err)
		handler := commands.NewUpdateRestaurantLocationCommandHandler(factory, new(MockUserDirectory), locations, 0)

		updated, err := handler.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, r.ID(), updated.RestaurantID())
	})

	t.Run("should reject a partial patch when there is nothing to patch", func(t *testing.T) {
		ctx := t.Context()
		ownerID := kernel.NewUUID()
		r := newTestRestaurant(t, ownerID)
		locations := new(MockLocationStore)
		factory := expectOwnerRead(t, r)

		address := "2 Market Square"
		locations.On("Get", ctx, r.ID()).Return(nil, errs.NewObjectNotFoundError("restaurantId", r.ID())).Once()

		cmd, err := commands.NewUpdateRestaurantLocationCommand(r.ID(), ownerID,
			restaurant.LocationPatch{Address: &address})
		require.NoError(t, err)
		handler := commands.NewUpdateRestaurantLocationCommandHandler(factory, new(MockUserDirectory), locations, 0)

		_, err = handler.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		locations.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	})

	t.Run("should require at least one field", func(t *testing.T) {
		_, err := commands.NewUpdateRestaurantLocationCommand(kernel.NewUUID(), kernel.NewUUID(), restaurant.LocationPatch{})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestCreateItemCommandHandler_Handle(t *testing.T) {
	t.Run("should add the item to the restaurant's catalog", func(t *testing.T) {
		// Given
		ctx := t.Context()
		ownerID := kernel.NewUUID()
		r := newTestRestaurant(t, ownerID)

		restaurantRepo := new(MockRestaurantRepository)
		catalogRepo := new(MockCatalogRepository)
		uow := new(MockUoW)
		factory := new(MockRestaurantUoWFactory)

		mock.InOrder(
			factory.On("Create").Return(uow).Once(),
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("RestaurantRepository").Return(restaurantRepo).Once(),
			restaurantRepo.On("Get", ctx, r.ID()).Return(r, nil).Once(),
			uow.On("CatalogRepository").Return(catalogRepo).Once(),
			catalogRepo.On("AddItem", ctx, mock.AnythingOfType("*catalog.Item")).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		cmd, err := commands.NewCreateItemCommand(kernel.NewUUID(), r.ID(), ownerID, "Margherita",
			decimal.RequireFromString("12.50"))
		require.NoError(t, err)
		handler := commands.NewCreateItemCommandHandler(factory, new(MockUserDirectory))

		// When
		err = handler.Handle(ctx, cmd)

		// Then
		require.NoError(t, err)
		item := catalogRepo.Calls[0].Arguments[1].(*catalog.Item)
		assert.Equal(t, cmd.ItemID(), item.ID())
		assert.Equal(t, r.ID(), item.RestaurantID())
		assert.True(t, decimal.RequireFromString("12.50").Equal(item.Price()))
		uow.AssertExpectations(t)
	})

	t.Run("should reject a negative price", func(t *testing.T) {
		ctx := t.Context()
		ownerID := kernel.NewUUID()
		r := newTestRestaurant(t, ownerID)

		restaurantRepo := new(MockRestaurantRepository)
		uow := new(MockUoW)
		factory := new(MockRestaurantUoWFactory)

		mock.InOrder(
			factory.On("Create").Return(uow).Once(),
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("RestaurantRepository").Return(restaurantRepo).Once(),
			restaurantRepo.On("Get", ctx, r.ID()).Return(r, nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		cmd, err := commands.NewCreateItemCommand(kernel.NewUUID(), r.ID(), ownerID, "Margherita",
			decimal.RequireFromString("-1"))
		require.NoError(t, err)
		handler := commands.NewCreateItemCommandHandler(factory, new(MockUserDirectory))

		err = handler.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestCreateMenuCommandHandler_Handle(t *testing.T) {
	t.Run("should return ErrItemNotFound when an item is not in the catalog", func(t *testing.T) {
		// Given
		ctx := t.Context()
		ownerID := kernel.NewUUID()
		r := newTestRestaurant(t, ownerID)

		restaurantRepo := new(MockRestaurantRepository)
		catalogRepo := new(MockCatalogRepository)
		uow := new(MockUoW)
		factory := new(MockRestaurantUoWFactory)

		mock.InOrder(
			factory.On("Create").Return(uow).Once(),
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("RestaurantRepository").Return(restaurantRepo).Once(),
			restaurantRepo.On("Get", ctx, r.ID()).Return(r, nil).Once(),
			uow.On("CatalogRepository").Return(catalogRepo).Once(),
			catalogRepo.On("AddMenu", ctx, mock.AnythingOfType("*catalog.Menu")).
				Return(errs.NewObjectNotFoundError("itemIds", "one or more menu items")).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		cmd, err := commands.NewCreateMenuCommand(kernel.NewUUID(), r.ID(), ownerID, "Lunch combo",
			decimal.RequireFromString("8.00"), []kernel.UUID{kernel.NewUUID()})
		require.NoError(t, err)
		handler := commands.NewCreateMenuCommandHandler(factory, new(MockUserDirectory))

		// When
		err = handler.Handle(ctx, cmd)

		// Then
		require.ErrorIs(t, err, commands.ErrItemNotFound)
		uow.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("should require at least one item", func(t *testing.T) {
		_, err := commands.NewCreateMenuCommand(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "Combo",
			decimal.RequireFromString("8.00"), nil)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}
