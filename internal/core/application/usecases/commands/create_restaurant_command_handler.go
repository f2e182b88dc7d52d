package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/restaurant"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/metrics"
)

const DefaultLocationWriteTimeout = 5 * time.Second

type CreateRestaurantResult struct {
	RestaurantID kernel.UUID
	State        restaurant.ProvisioningState
}

// CreateRestaurantCommandHandler writes a restaurant across the relational store and the
// location document store.
//
// The two writes cannot share a transaction, so the handler runs them as a saga:
//  1. commit the relational row
//  2. upsert the location document, bounded by the write timeout
//  3. if 2 fails, delete the row again in a context the caller cannot cancel
//
// When step 3 fails too, the restaurant is left RELATIONAL_ONLY and the returned error is a
// *PartialProvisioningError. The provisioning audit job reports such restaurants.
type CreateRestaurantCommandHandler struct {
	uowFactory   RestaurantUoWFactory
	users        ports.UserDirectory
	locations    ports.LocationStore
	clock        services.Clock
	writeTimeout time.Duration
	logger       *slog.Logger
	recorder     *metrics.Recorder
}

func NewCreateRestaurantCommandHandler(
	uowFactory RestaurantUoWFactory,
	users ports.UserDirectory,
	locations ports.LocationStore,
	clock services.Clock,
	writeTimeout time.Duration,
	logger *slog.Logger,
	recorder *metrics.Recorder,
) CreateRestaurantCommandHandler {
	if writeTimeout <= 0 {
		writeTimeout = DefaultLocationWriteTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}

	return CreateRestaurantCommandHandler{
		uowFactory:   uowFactory,
		users:        users,
		locations:    locations,
		clock:        clock,
		writeTimeout: writeTimeout,
		logger:       logger.With("component", "restaurant_saga"),
		recorder:     recorder,
	}
}

func (h *CreateRestaurantCommandHandler) Handle(
	ctx context.Context,
	cmd CreateRestaurantCommand,
) (CreateRestaurantResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateRestaurantResult{}, err
	}
	if err := h.authorizeOwner(ctx, cmd.OwnerID()); err != nil {
		return CreateRestaurantResult{}, err
	}

	r, err := restaurant.NewRestaurant(cmd.RestaurantID(), cmd.OwnerID(), cmd.Name(), h.clock.Now())
	if err != nil {
		return CreateRestaurantResult{}, err
	}

	result := CreateRestaurantResult{RestaurantID: r.ID(), State: restaurant.Failed}
	if err = h.addRestaurant(ctx, r); err != nil {
		return result, err
	}

	result.State, err = h.provisionLocation(ctx, r.ID(), cmd.Location())
	h.recorder.Provisioning(result.State.String())
	return result, err
}

func (h *CreateRestaurantCommandHandler) authorizeOwner(ctx context.Context, ownerID kernel.UUID) error {
	owner, err := h.users.Get(ctx, ownerID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrNotAuthorized
	}
	if err != nil {
		return err
	}
	if owner.Role != kernel.RoleRestaurantOwner && owner.Role != kernel.RoleAdmin {
		return ErrNotAuthorized
	}
	return nil
}

func (h *CreateRestaurantCommandHandler) addRestaurant(ctx context.Context, r *restaurant.Restaurant) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.RestaurantRepository().Add(ctx, r); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h *CreateRestaurantCommandHandler) provisionLocation(
	ctx context.Context,
	restaurantID kernel.UUID,
	location *restaurant.Location,
) (restaurant.ProvisioningState, error) {
	if location == nil {
		return restaurant.RelationalOnly, nil
	}

	writeCtx, cancel := context.WithTimeout(ctx, h.writeTimeout)
	writeErr := h.locations.Upsert(writeCtx, location)
	cancel()
	if writeErr == nil {
		return restaurant.Provisioned, nil
	}

	compensationErr := h.compensate(ctx, restaurantID)
	if compensationErr == nil {
		h.logger.WarnContext(ctx, "restaurant location write failed, restaurant removed",
			"restaurant_id", restaurantID.String(),
			"error", writeErr)
		return restaurant.Failed, fmt.Errorf("%w: %w", ErrLocationProvisioningFailed, writeErr)
	}

	h.logger.ErrorContext(ctx, "restaurant left partially provisioned",
		"restaurant_id", restaurantID.String(),
		"failed_half", string(DocumentHalf),
		"error", writeErr,
		"compensation_error", compensationErr)
	return restaurant.RelationalOnly, &PartialProvisioningError{
		RestaurantID: restaurantID,
		FailedHalf:   DocumentHalf,
		Cause:        writeErr,
		Compensation: compensationErr,
	}
}

// compensate removes whatever the saga wrote. A timed out upsert may still have landed, so
// the document is deleted too; only the relational delete decides the outcome.
func (h *CreateRestaurantCommandHandler) compensate(ctx context.Context, restaurantID kernel.UUID) error {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), h.writeTimeout)
	defer cancel()

	if err := h.locations.Delete(ctx, restaurantID); err != nil {
		h.logger.WarnContext(ctx, "delete location document during compensation",
			"restaurant_id", restaurantID.String(),
			"error", err)
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.RestaurantRepository().Delete(ctx, restaurantID); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
