package commands

import (
	"context"
	"errors"
	"time"

	"consolidation/internal/core/domain/model/kernel"
	"consolidation/internal/pkg/guard"
)

var ErrUpdateDriverLocationCommandIsNotConstructed = errors.New(
	"UpdateDriverLocationCommand must be created via NewUpdateDriverLocationCommand constructor",
)

// UpdateDriverLocationCommand represents a driver position ping for a
// delivery in progress.
type UpdateDriverLocationCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	location   kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewUpdateDriverLocationCommand creates a command to record a position ping.
func NewUpdateDriverLocationCommand(deliveryID kernel.UUID, location kernel.GeoPoint) (UpdateDriverLocationCommand, error) {
	if err := deliveryID.Validate(); err != nil {
		return UpdateDriverLocationCommand{}, err
	}
	if err := location.Validate(); err != nil {
		return UpdateDriverLocationCommand{}, err
	}

	return UpdateDriverLocationCommand{
		deliveryID: deliveryID,
		location:   location,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDriverLocationCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDriverLocationCommandIsNotConstructed)
}

// DeliveryID returns the delivery being tracked.
func (c UpdateDriverLocationCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// Location returns the reported position.
func (c UpdateDriverLocationCommand) Location() kernel.GeoPoint {
	return c.location
}

// UpdateDriverLocationCommandHandler records driver position pings.
type UpdateDriverLocationCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewUpdateDriverLocationCommandHandler creates a handler for location
// updates.
func NewUpdateDriverLocationCommandHandler(uowFactory DeliveryUoWFactory) UpdateDriverLocationCommandHandler {
	return UpdateDriverLocationCommandHandler{uowFactory: uowFactory}
}

// Handle processes the ping. Pings for deliveries that are not in progress
// fail with an InvalidStateError.
func (h *UpdateDriverLocationCommandHandler) Handle(ctx context.Context, cmd UpdateDriverLocationCommand) error {
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

	repo := uow.DeliveryRepository()
	run, err := repo.Get(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}

	if err = run.UpdateLocation(cmd.Location(), time.Now()); err != nil {
		return err
	}
	if err = repo.Update(ctx, run); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
